/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/pkg/comm"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/config/endpoint"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
)

// Node backoff defaults
const (
	DefaultMinNodeBackoff = 8 * time.Second
	DefaultMaxNodeBackoff = time.Hour
)

// InvokerFactory opens the transport to one node address
type InvokerFactory func(address endpoint.Address) (comm.Invoker, error)

// Node is one address (proxy) of a consensus node together with its health.
// A node that fails is not used again until its readmit time; the wait
// doubles with every failure and halves with every answer.
type Node struct {
	accountID entity.AccountID
	address   endpoint.Address
	factory   InvokerFactory

	lock           sync.Mutex
	invoker        comm.Invoker
	minBackoff     time.Duration
	maxBackoff     time.Duration
	currentBackoff time.Duration
	readmitTime    time.Time
	badStatusCount int
	now            func() time.Time
}

func newNode(accountID entity.AccountID, address endpoint.Address, factory InvokerFactory, minBackoff, maxBackoff time.Duration) *Node {
	return &Node{
		accountID:      accountID,
		address:        address,
		factory:        factory,
		minBackoff:     minBackoff,
		maxBackoff:     maxBackoff,
		currentBackoff: minBackoff,
		now:            time.Now,
	}
}

// AccountID returns the account of the node
func (n *Node) AccountID() entity.AccountID {
	return n.accountID
}

// Address returns the address of this proxy
func (n *Node) Address() endpoint.Address {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.address
}

// Invoker returns the transport to the node, opening it on first use
func (n *Node) Invoker() (comm.Invoker, error) {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.invoker == nil {
		invoker, err := n.factory(n.address)
		if err != nil {
			return nil, errors.WithMessagef(err, "opening connection to node %s at %s failed", n.accountID, n.address)
		}
		n.invoker = invoker
	}
	return n.invoker, nil
}

// IncreaseBackoff marks the node unhealthy for the current backoff, then
// doubles the backoff up to the maximum
func (n *Node) IncreaseBackoff() {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.badStatusCount++
	n.readmitTime = n.now().Add(n.currentBackoff)
	n.currentBackoff *= 2
	if n.currentBackoff > n.maxBackoff {
		n.currentBackoff = n.maxBackoff
	}
}

// DecreaseBackoff halves the backoff down to the minimum
func (n *Node) DecreaseBackoff() {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.currentBackoff /= 2
	if n.currentBackoff < n.minBackoff {
		n.currentBackoff = n.minBackoff
	}
}

// IsHealthy reports whether the readmit time has passed
func (n *Node) IsHealthy() bool {
	n.lock.Lock()
	defer n.lock.Unlock()
	return !n.readmitTime.After(n.now())
}

// RemainingBackoff returns how long until the node is healthy again
func (n *Node) RemainingBackoff() time.Duration {
	n.lock.Lock()
	defer n.lock.Unlock()

	if d := n.readmitTime.Sub(n.now()); d > 0 {
		return d
	}
	return 0
}

// ReadmitTime returns when the node is healthy again
func (n *Node) ReadmitTime() time.Time {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.readmitTime
}

// CurrentBackoff returns the wait applied on the next failure
func (n *Node) CurrentBackoff() time.Duration {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.currentBackoff
}

// BadStatusCount returns how many times the node failed
func (n *Node) BadStatusCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.badStatusCount
}

func (n *Node) setBackoffLimits(minBackoff, maxBackoff time.Duration) {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.currentBackoff == n.minBackoff {
		n.currentBackoff = minBackoff
	}
	n.minBackoff, n.maxBackoff = minBackoff, maxBackoff
	if n.currentBackoff > maxBackoff {
		n.currentBackoff = maxBackoff
	}
}

// setAddress switches the port, dropping the transport to the old one
func (n *Node) setAddress(address endpoint.Address) {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.address == address {
		return
	}
	_ = n.closeInvoker() // nolint: errcheck
	n.address = address
}

// Close drops the transport to the node
func (n *Node) Close() error {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.closeInvoker()
}

func (n *Node) closeInvoker() error {
	if n.invoker == nil {
		return nil
	}
	err := n.invoker.Close()
	n.invoker = nil
	if err != nil {
		logger.Debugf("closing connection to node %s failed: %s", n.accountID, err)
		return errors.WithMessagef(err, "closing connection to node %s failed", n.accountID)
	}
	return nil
}

func (n *Node) String() string {
	return n.accountID.String() + "@" + n.Address().String()
}
