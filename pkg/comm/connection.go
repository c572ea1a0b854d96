/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/options"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/config/endpoint"
)

// Connection invokes unary methods on one node address. The underlying
// gRPC connection is shared through the connector.
type Connection struct {
	address   endpoint.Address
	connector *CachingConnector
	params    *params
	dialOpts  []grpc.DialOption
	done      int32
}

var _ Invoker = (*Connection)(nil)

// NewConnection creates a connection to address. TLS is used for the TLS
// ports unless WithInsecure is given.
func NewConnection(connector *CachingConnector, address endpoint.Address, opts ...options.Opt) (*Connection, error) {
	if address.Host == "" {
		return nil, errors.New("node address not specified")
	}

	params := defaultParams()
	options.Apply(params, opts)

	return &Connection{
		address:   address,
		connector: connector,
		params:    params,
		dialOpts:  newDialOpts(address, params),
	}, nil
}

func newDialOpts(address endpoint.Address, params *params) []grpc.DialOption {
	var dialOpts []grpc.DialOption

	if params.keepAliveParams.Time > 0 || params.keepAliveParams.Timeout > 0 {
		dialOpts = append(dialOpts, grpc.WithKeepaliveParams(params.keepAliveParams))
	}
	if params.maxRecvMsgSize > 0 {
		dialOpts = append(dialOpts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(params.maxRecvMsgSize)))
	}

	if address.IsTLS() && !params.insecure {
		logger.Debugf("Creating a secure connection to [%s] with TLS HostOverride [%s]", address, params.hostOverride)
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig(params))))
	} else {
		logger.Debugf("Creating an insecure connection [%s]", address)
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	return dialOpts
}

// Address returns the node address
func (c *Connection) Address() endpoint.Address {
	return c.address
}

// Invoke sends req to method, e.g. "/proto.CryptoService/cryptoTransfer".
// Failing to connect yields a ConnectionFailed client status; errors
// returned by the call itself carry their gRPC status.
func (c *Connection) Invoke(ctx context.Context, method string, req []byte) ([]byte, error) {
	if c.Closed() {
		return nil, status.Errorf(status.ConnectionFailed, "connection to %s is closed", c.address)
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.params.connectTimeout)
	conn, err := c.connector.DialContext(dialCtx, c.address.String(), c.dialOpts...)
	cancel()
	if err != nil {
		return nil, status.New(status.ClientStatus, status.ConnectionFailed.ToInt32(), err.Error(), nil)
	}
	defer c.connector.ReleaseConn(conn)

	var resp []byte
	if err := conn.Invoke(ctx, method, req, &resp, grpc.ForceCodec(rawCodec{})); err != nil {
		if s, ok := grpcstatus.FromError(err); ok {
			return nil, status.NewFromGRPCStatus(s)
		}
		return nil, errors.Wrapf(err, "invoking %s on %s failed", method, c.address)
	}
	return resp, nil
}

// Close drops the cached connection to the node
func (c *Connection) Close() error {
	if !atomic.CompareAndSwapInt32(&c.done, 0, 1) {
		logger.Debugf("Already closed")
		return nil
	}
	c.connector.Remove(c.address.String())
	return nil
}

// Closed returns true if the connection has been closed
func (c *Connection) Closed() bool {
	return atomic.LoadInt32(&c.done) == 1
}
