/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	normalTimeout = 5 * time.Second

	normalSweepTime = 5 * time.Second
	normalIdleTime  = 10 * time.Second
	shortSweepTime  = 10 * time.Millisecond
	shortIdleTime   = 15 * time.Millisecond
)

var insecureOpt = grpc.WithTransportCredentials(insecure.NewCredentials())

func TestConnectorHappyPath(t *testing.T) {
	connector := NewCachingConnector(normalSweepTime, normalIdleTime)
	defer connector.Close()

	ctx, cancel := context.WithTimeout(context.Background(), normalTimeout)
	defer cancel()

	conn1, err := connector.DialContext(ctx, nodeAddrs[0].String(), insecureOpt)
	require.NoError(t, err)
	assert.Equal(t, connectivity.Ready, conn1.GetState(), "connection should be ready")

	conn2, err := connector.DialContext(ctx, nodeAddrs[0].String(), insecureOpt)
	require.NoError(t, err)
	assert.True(t, conn1 == conn2, "connections should match")

	conn3, err := connector.DialContext(ctx, nodeAddrs[1].String(), insecureOpt)
	require.NoError(t, err)
	assert.False(t, conn1 == conn3, "connections should not match")
}

func TestConnectorDoubleClose(t *testing.T) {
	connector := NewCachingConnector(normalSweepTime, normalIdleTime)
	defer connector.Close()
	connector.Close()
}

func TestReleaseAfterClose(t *testing.T) {
	connector := NewCachingConnector(normalSweepTime, normalIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), normalTimeout)
	defer cancel()

	conn1, err := connector.DialContext(ctx, nodeAddrs[0].String(), insecureOpt)
	require.NoError(t, err)
	connector.Close()
	assert.Equal(t, connectivity.Shutdown, conn1.GetState(), "connection should be shutdown")
	connector.ReleaseConn(conn1)
}

func TestDialAfterClose(t *testing.T) {
	connector := NewCachingConnector(normalSweepTime, normalIdleTime)
	connector.Close()

	ctx, cancel := context.WithTimeout(context.Background(), normalTimeout)
	defer cancel()

	_, err := connector.DialContext(ctx, nodeAddrs[0].String(), insecureOpt)
	assert.Error(t, err, "expecting error when dialing after connector is closed")
}

func TestDialAfterStop(t *testing.T) {
	srv, addr, err := startNode(nodeListenAddress)
	require.NoError(t, err)

	connector := NewCachingConnector(normalSweepTime, normalIdleTime)
	defer connector.Close()

	conn1, err := connector.DialContext(context.Background(), addr.String(), insecureOpt)
	require.NoError(t, err)
	connector.ReleaseConn(conn1)
	srv.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.Eventually(t, func() bool {
		_, err := connector.DialContext(ctx, addr.String(), insecureOpt)
		return err != nil
	}, normalTimeout, 50*time.Millisecond)
}

func TestConnectorIdleSweep(t *testing.T) {
	connector := NewCachingConnector(shortSweepTime, shortIdleTime)
	defer connector.Close()

	ctx, cancel := context.WithTimeout(context.Background(), normalTimeout)
	defer cancel()

	conn1, err := connector.DialContext(ctx, nodeAddrs[2].String(), insecureOpt)
	require.NoError(t, err)
	connector.ReleaseConn(conn1)

	assert.Eventually(t, func() bool {
		return conn1.GetState() == connectivity.Shutdown
	}, normalTimeout, 10*time.Millisecond, "idle connection should be closed")

	conn2, err := connector.DialContext(ctx, nodeAddrs[2].String(), insecureOpt)
	require.NoError(t, err)
	assert.False(t, conn1 == conn2, "a new connection should be created")
}

func TestConnectorConcurrent(t *testing.T) {
	connector := NewCachingConnector(shortSweepTime, shortIdleTime)
	defer connector.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 30)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), normalTimeout)
			defer cancel()
			conn, err := connector.DialContext(ctx, nodeAddrs[i%len(nodeAddrs)].String(), insecureOpt)
			if err != nil {
				errs <- err
				return
			}
			connector.ReleaseConn(conn)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestConnectorRemove(t *testing.T) {
	connector := NewCachingConnector(normalSweepTime, normalIdleTime)
	defer connector.Close()

	ctx, cancel := context.WithTimeout(context.Background(), normalTimeout)
	defer cancel()

	conn1, err := connector.DialContext(ctx, nodeAddrs[1].String(), insecureOpt)
	require.NoError(t, err)
	connector.Remove(nodeAddrs[1].String())
	assert.Equal(t, connectivity.Shutdown, conn1.GetState())

	// unknown targets are ignored
	connector.Remove("127.0.0.1:1")
}
