/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"time"

	"github.com/spf13/cast"
	"google.golang.org/grpc/keepalive"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/options"
)

type params struct {
	hostOverride    string
	certHash        []byte
	keepAliveParams keepalive.ClientParameters
	insecure        bool
	connectTimeout  time.Duration
	maxRecvMsgSize  int
}

func defaultParams() *params {
	return &params{
		connectTimeout: 3 * time.Second,
	}
}

// WithHostOverride sets the server name expected in the node's TLS certificate
func WithHostOverride(value string) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(hostOverrideSetter); ok {
			setter.SetHostOverride(value)
		}
	}
}

// WithCertHash pins the node's TLS certificate to the hex encoded SHA-384
// hash of its PEM encoding, as published in the address book
func WithCertHash(value []byte) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(certHashSetter); ok {
			setter.SetCertHash(value)
		}
	}
}

// WithKeepAliveParams sets the gRPC keep-alive parameters
func WithKeepAliveParams(value keepalive.ClientParameters) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(keepAliveParamsSetter); ok {
			setter.SetKeepAliveParams(value)
		}
	}
}

// WithConnectTimeout bounds how long a connection may take to become ready
func WithConnectTimeout(value time.Duration) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(connectTimeoutSetter); ok {
			setter.SetConnectTimeout(value)
		}
	}
}

// WithInsecure connects without TLS regardless of the address port
func WithInsecure() options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(insecureSetter); ok {
			setter.SetInsecure(true)
		}
	}
}

// WithMaxRecvMsgSize raises the size limit of responses
func WithMaxRecvMsgSize(value int) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(maxRecvMsgSizeSetter); ok {
			setter.SetMaxRecvMsgSize(value)
		}
	}
}

func (p *params) SetHostOverride(value string) {
	logger.Debugf("HostOverride: %s", value)
	p.hostOverride = value
}

func (p *params) SetCertHash(value []byte) {
	logger.Debugf("CertHash: %s", value)
	p.certHash = value
}

func (p *params) SetKeepAliveParams(value keepalive.ClientParameters) {
	logger.Debugf("KeepAliveParams: %#v", value)
	p.keepAliveParams = value
}

func (p *params) SetConnectTimeout(value time.Duration) {
	logger.Debugf("ConnectTimeout: %s", value)
	p.connectTimeout = value
}

func (p *params) SetInsecure(value bool) {
	logger.Debugf("Insecure: %t", value)
	p.insecure = value
}

func (p *params) SetMaxRecvMsgSize(value int) {
	logger.Debugf("MaxRecvMsgSize: %d", value)
	p.maxRecvMsgSize = value
}

type hostOverrideSetter interface {
	SetHostOverride(value string)
}

type certHashSetter interface {
	SetCertHash(value []byte)
}

type keepAliveParamsSetter interface {
	SetKeepAliveParams(value keepalive.ClientParameters)
}

type connectTimeoutSetter interface {
	SetConnectTimeout(value time.Duration)
}

type insecureSetter interface {
	SetInsecure(value bool)
}

type maxRecvMsgSizeSetter interface {
	SetMaxRecvMsgSize(value int)
}

// OptsFromConfig returns connection options from a gRPC options map, e.g.
// the client.grpc section of the configuration. Values may be strings.
func OptsFromConfig(grpcOpts map[string]interface{}) []options.Opt {
	var opts []options.Opt
	if v, ok := grpcOpts["ssl-target-name-override"]; ok {
		opts = append(opts, WithHostOverride(cast.ToString(v)))
	}
	if v, ok := grpcOpts["connect-timeout"]; ok {
		opts = append(opts, WithConnectTimeout(cast.ToDuration(v)))
	}
	if v, ok := grpcOpts["max-recv-msg-size"]; ok {
		opts = append(opts, WithMaxRecvMsgSize(cast.ToInt(v)))
	}
	if cast.ToBool(grpcOpts["allow-insecure"]) {
		opts = append(opts, WithInsecure())
	}

	var kap keepalive.ClientParameters
	if v, ok := grpcOpts["keep-alive-time"]; ok {
		kap.Time = cast.ToDuration(v)
	}
	if v, ok := grpcOpts["keep-alive-timeout"]; ok {
		kap.Timeout = cast.ToDuration(v)
	}
	if v, ok := grpcOpts["keep-alive-permit"]; ok {
		kap.PermitWithoutStream = cast.ToBool(v)
	}
	if kap != (keepalive.ClientParameters{}) {
		opts = append(opts, WithKeepAliveParams(kap))
	}
	return opts
}
