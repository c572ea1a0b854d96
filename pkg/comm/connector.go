/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

const (
	connShutdownTimeout = 50 * time.Millisecond

	// DefaultSweepTime is how often idle connections are looked for
	DefaultSweepTime = time.Minute
	// DefaultIdleTime is how long an unused connection is kept open
	DefaultIdleTime = 5 * time.Minute
)

// CachingConnector shares one gRPC connection per node address between all
// requests of a client. Connections unused for longer than idleTime are
// closed by a janitor goroutine that sweeps every sweepTime. Callers release
// connections with ReleaseConn. The connector can't be used after Close.
type CachingConnector struct {
	conns         sync.Map
	sweepTime     time.Duration
	idleTime      time.Duration
	index         map[*grpc.ClientConn]*cachedConn
	lock          sync.Mutex
	waitgroup     sync.WaitGroup
	janitorChan   chan *cachedConn
	janitorDone   chan bool
	janitorClosed chan bool
}

type cachedConn struct {
	target    string
	conn      *grpc.ClientConn
	open      int
	lastOpen  time.Time
	lastClose time.Time
}

// NewCachingConnector creates a connection cache governed by sweepTime and
// idleTime
func NewCachingConnector(sweepTime time.Duration, idleTime time.Duration) *CachingConnector {
	cc := CachingConnector{
		index:         map[*grpc.ClientConn]*cachedConn{},
		janitorChan:   make(chan *cachedConn),
		janitorDone:   make(chan bool),
		janitorClosed: make(chan bool, 1),
		sweepTime:     sweepTime,
		idleTime:      idleTime,
	}

	// the janitor stops itself when nothing is left to watch and pushes onto
	// janitorClosed; seeding it makes the first use start the janitor
	cc.janitorClosed <- true
	return &cc
}

// Close flushes all cached connections
func (cc *CachingConnector) Close() {
	cc.lock.Lock()
	defer cc.lock.Unlock()

	if cc.janitorDone == nil {
		logger.Warn("Trying to close connector after already closed")
		return
	}
	logger.Debug("closing caching gRPC connector")

	select {
	case <-cc.janitorClosed:
		logger.Debugf("janitor not running")
	case cc.janitorDone <- true:
		logger.Debugf("janitor stopped")
	}
	cc.waitgroup.Wait()

	// connections that never opened were not handed to the janitor
	cc.conns.Range(func(k, v interface{}) bool {
		c := v.(*cachedConn)
		if c.conn.GetState() != connectivity.Shutdown {
			closeConn(c.conn)
		}
		cc.conns.Delete(k)
		return true
	})
	cc.index = map[*grpc.ClientConn]*cachedConn{}

	close(cc.janitorChan)
	close(cc.janitorClosed)
	close(cc.janitorDone)
	cc.janitorDone = nil
}

// DialContext returns a ready connection to target, creating it on first
// use. ctx bounds the wait for the connection to become ready.
func (cc *CachingConnector) DialContext(ctx context.Context, target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	logger.Debugf("DialContext: %s", target)

	c, ok := cc.loadConn(target)
	if !ok {
		createdConn, err := cc.createConn(target, opts...)
		if err != nil {
			return nil, errors.WithMessage(err, "connection creation failed")
		}
		c = createdConn
	}

	if err := cc.openConn(ctx, c); err != nil {
		// start from a fresh connection next time rather than wait out the
		// reconnect backoff of this one
		cc.removeConn(target)
		return nil, errors.WithMessagef(err, "dialing connection failed [%s]", target)
	}
	return c.conn, nil
}

// ReleaseConn notifies the cache that the connection is no longer in use
func (cc *CachingConnector) ReleaseConn(conn *grpc.ClientConn) {
	cc.lock.Lock()
	defer cc.lock.Unlock()

	if cc.janitorDone == nil {
		logger.Warn("Trying to release connection after connector closed")

		if conn.GetState() != connectivity.Shutdown {
			logger.Warn("Connection is not shutdown, trying to close ...")
			closeConn(conn)
		}
		return
	}

	cconn, ok := cc.index[conn]
	if !ok {
		logger.Debugf("connection not found [%p]", conn)
		return
	}
	logger.Debugf("ReleaseConn [%s]", cconn.target)

	if cconn.open > 0 {
		cconn.lastClose = time.Now()
		cconn.open--
	}

	cc.updateJanitor(cconn)
}

// Remove closes the connection to target, e.g. when a node leaves the
// network
func (cc *CachingConnector) Remove(target string) {
	cc.removeConn(target)
}

func (cc *CachingConnector) loadConn(target string) (*cachedConn, bool) {
	connRaw, ok := cc.conns.Load(target)
	if !ok {
		return nil, false
	}
	c := connRaw.(*cachedConn)
	if c.conn.GetState() != connectivity.Shutdown {
		logger.Debugf("using cached connection [%s: %p]", target, c)
		return c, true
	}
	cc.shutdownConn(c)
	return nil, false
}

func (cc *CachingConnector) createConn(target string, opts ...grpc.DialOption) (*cachedConn, error) {
	cc.lock.Lock()
	defer cc.lock.Unlock()

	if cc.janitorDone == nil {
		return nil, errors.New("connector is closed")
	}

	if connRaw, ok := cc.conns.Load(target); ok {
		if c := connRaw.(*cachedConn); c.conn.GetState() != connectivity.Shutdown {
			return c, nil
		}
	}

	logger.Debugf("creating connection [%s]", target)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "creating gRPC client failed")
	}

	cconn := &cachedConn{
		target: target,
		conn:   conn,
	}
	cc.conns.Store(target, cconn)
	cc.index[conn] = cconn

	return cconn, nil
}

func (cc *CachingConnector) openConn(ctx context.Context, c *cachedConn) error {
	if err := waitConn(ctx, c.conn, connectivity.Ready); err != nil {
		return err
	}

	cc.lock.Lock()
	defer cc.lock.Unlock()

	if cc.janitorDone == nil {
		return errors.New("connector is closed")
	}
	c.open++
	c.lastOpen = time.Now()
	cc.updateJanitor(c)

	logger.Debugf("connection was opened [%s]", c.target)
	return nil
}

// waitConn waits until conn reaches targetState. A connection that fails
// to connect is reported right away instead of waiting for grpc's own
// reconnect backoff.
func waitConn(ctx context.Context, conn *grpc.ClientConn, targetState connectivity.State) error {
	for {
		state := conn.GetState()
		if state == targetState {
			return nil
		}
		switch state {
		case connectivity.Idle:
			conn.Connect()
		case connectivity.TransientFailure:
			if targetState == connectivity.Ready {
				return errors.Errorf("connection is in %s state", state)
			}
		case connectivity.Shutdown:
			return errors.Errorf("connection is in %s state", state)
		}
		if !conn.WaitForStateChange(ctx, state) {
			return errors.Wrap(ctx.Err(), "waiting for connection failed")
		}
	}
}

func (cc *CachingConnector) shutdownConn(cconn *cachedConn) {
	cc.lock.Lock()
	defer cc.lock.Unlock()

	logger.Debugf("connection was shutdown [%s]", cconn.target)
	cc.conns.Delete(cconn.target)
	delete(cc.index, cconn.conn)

	if cc.janitorDone == nil {
		return
	}
	cconn.open = 0
	cconn.lastClose = time.Time{}
	cc.updateJanitor(cconn)
}

func (cc *CachingConnector) removeConn(target string) {
	cc.remove(target, false)
}

func (cc *CachingConnector) remove(target string, onlyIdle bool) {
	cc.lock.Lock()
	defer cc.lock.Unlock()

	if connRaw, ok := cc.conns.Load(target); ok {
		c := connRaw.(*cachedConn)
		if onlyIdle && c.open > 0 {
			logger.Debugf("connection is in use again [%s]", target)
			return
		}
		logger.Debugf("removing connection [%s]", target)
		delete(cc.index, c.conn)
		cc.conns.Delete(target)
		if err := c.conn.Close(); err != nil {
			logger.Debugf("unable to close connection [%s]", err)
		}
	}
}

// updateJanitor must be called with the lock held. A janitor that exits
// concurrently signals janitorClosed, so a new one is started instead of
// blocking on the send.
func (cc *CachingConnector) updateJanitor(c *cachedConn) {
	cClone := *c
	for {
		select {
		case <-cc.janitorClosed:
			logger.Debugf("janitor not started")
			cc.waitgroup.Add(1)
			go janitor(cc.sweepTime, cc.idleTime, &cc.waitgroup, cc.janitorChan, cc.janitorClosed, cc.janitorDone, cc.sweepRemove)
		case cc.janitorChan <- &cClone:
			return
		}
	}
}

// sweepRemove runs on the janitor goroutine, which can't take the lock while
// the connector is blocked sending to it, so closing happens asynchronously
func (cc *CachingConnector) sweepRemove(target string) {
	go cc.remove(target, true)
}

type connRemoveNotifier func(target string)

// janitor receives connection updates on conn and every sweepTime closes
// connections that are shut down or have been released for longer than
// idleTime. It exits on done, flushing everything, or on its own when no
// connection is left, signalling closed.
func janitor(sweepTime time.Duration, idleTime time.Duration, wg *sync.WaitGroup, conn chan *cachedConn, closed chan bool, done chan bool, connRemove connRemoveNotifier) {
	logger.Debugf("starting connection janitor")
	defer wg.Done()

	conns := map[string]*cachedConn{}
	ticker := time.NewTicker(sweepTime)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			logger.Debugf("flushing connection janitor with open connections [%d]", len(conns))
			flush(conns)
			return
		case c := <-conn:
			cache(conns, c)
		case <-ticker.C:
			for _, target := range sweep(conns, idleTime) {
				connRemove(target)
				delete(conns, target)
			}

			if len(conns) == 0 {
				logger.Debugf("closing connection janitor")
				closed <- true
				return
			}
		}
	}
}

func cache(conns map[string]*cachedConn, updateConn *cachedConn) {
	c, ok := conns[updateConn.target]
	if ok && updateConn.lastClose.IsZero() && updateConn.conn.GetState() == connectivity.Shutdown {
		// already dropped by the connector
		delete(conns, updateConn.target)
		return
	}

	if ok && c.conn != updateConn.conn {
		logger.Debugf("connection change in connection janitor")
		if err := c.conn.Close(); err != nil {
			logger.Debugf("unable to close connection [%s]", err)
		}
	}

	conns[updateConn.target] = updateConn
}

func flush(conns map[string]*cachedConn) {
	for _, c := range conns {
		logger.Debugf("connection janitor closing connection [%s]", c.target)
		closeConn(c.conn)
	}
}

func sweep(conns map[string]*cachedConn, idleTime time.Duration) []string {
	rm := make([]string, 0, len(conns))
	now := time.Now()
	for _, c := range conns {
		if c.open == 0 && now.After(c.lastClose.Add(idleTime)) {
			logger.Debugf("connection janitor closing idle connection [%s]", c.target)
			rm = append(rm, c.target)
		} else if c.conn.GetState() == connectivity.Shutdown {
			logger.Debugf("connection already closed [%s]", c.target)
			rm = append(rm, c.target)
		}
	}
	return rm
}

func closeConn(conn *grpc.ClientConn) {
	if err := conn.Close(); err != nil {
		logger.Debugf("unable to close connection [%s]", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connShutdownTimeout)
	defer cancel()
	if err := waitConn(ctx, conn, connectivity.Shutdown); err != nil {
		logger.Debugf("unable to wait for connection close [%s]", err)
	}
}
