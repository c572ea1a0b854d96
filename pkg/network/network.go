/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package network tracks the consensus nodes of a ledger and their health,
// and selects the nodes a request is sent to.
package network

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/comm"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/multi"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/options"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/config/endpoint"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
)

var logger = logging.NewLogger("hiero/network")

// Network is the set of nodes of one ledger. It is safe for concurrent use.
type Network struct {
	lock            sync.Mutex
	nodes           []*Node
	byAccount       map[entity.AccountID][]*Node
	healthy         map[*Node]bool
	earliestReadmit time.Time

	ledgerID           entity.LedgerID
	tls                bool
	maxNodeAttempts    int
	minNodeBackoff     time.Duration
	maxNodeBackoff     time.Duration
	minNodeReadmitTime time.Duration
	maxNodeReadmitTime time.Duration
	maxNodesPerRequest int

	factory   InvokerFactory
	connOpts  []options.Opt
	connector *comm.CachingConnector
	rand      *rand.Rand
	now       func() time.Time
}

// Option configures a Network
type Option func(*Network)

// WithInvokerFactory replaces the gRPC transport, e.g. with mocks
func WithInvokerFactory(factory InvokerFactory) Option {
	return func(n *Network) {
		n.factory = factory
	}
}

// WithConnectionOpts sets the options of the gRPC connections
func WithConnectionOpts(opts ...options.Opt) Option {
	return func(n *Network) {
		n.connOpts = append(n.connOpts, opts...)
	}
}

// WithLedgerID sets the ledger the nodes belong to
func WithLedgerID(ledgerID entity.LedgerID) Option {
	return func(n *Network) {
		n.ledgerID = ledgerID
	}
}

// WithTransportSecurity moves the nodes of the initial address book onto
// their TLS ports
func WithTransportSecurity(tls bool) Option {
	return func(n *Network) {
		n.tls = tls
	}
}

// New creates a network from an address book of "host:port" to node
// account ID
func New(book map[string]entity.AccountID, opts ...Option) (*Network, error) {
	n := &Network{
		byAccount:          map[entity.AccountID][]*Node{},
		healthy:            map[*Node]bool{},
		maxNodeAttempts:    -1,
		minNodeBackoff:     DefaultMinNodeBackoff,
		maxNodeBackoff:     DefaultMaxNodeBackoff,
		minNodeReadmitTime: DefaultMinNodeBackoff,
		maxNodeReadmitTime: DefaultMaxNodeBackoff,
		rand:               rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	tls := n.tls
	n.tls = false
	if n.factory == nil {
		n.connector = comm.NewCachingConnector(comm.DefaultSweepTime, comm.DefaultIdleTime)
		n.factory = n.grpcInvoker
	}

	if err := n.SetNetwork(book); err != nil {
		n.Close()
		return nil, err
	}
	n.SetTransportSecurity(tls)
	return n, nil
}

func (n *Network) grpcInvoker(address endpoint.Address) (comm.Invoker, error) {
	opts := n.connOpts
	if !address.IsTLS() {
		opts = append(append([]options.Opt{}, opts...), comm.WithInsecure())
	}
	return comm.NewConnection(n.connector, address, opts...)
}

// SetNetwork replaces the address book. Addresses are taken as given.
// Nodes already known by host and account are kept along with their
// health; nodes no longer listed are closed.
func (n *Network) SetNetwork(book map[string]entity.AccountID) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	type entry struct {
		address   endpoint.Address
		accountID entity.AccountID
	}
	entries := make([]entry, 0, len(book))
	for addr, id := range book {
		address, err := endpoint.ParseAddress(addr)
		if err != nil {
			return status.Errorf(status.InvalidArgument, "invalid network entry: %s", err)
		}
		entries = append(entries, entry{address: address, accountID: id.WithoutChecksum()})
	}
	// map iteration is random; keep node order stable
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].accountID.Num != entries[j].accountID.Num {
			return entries[i].accountID.Num < entries[j].accountID.Num
		}
		return entries[i].address.String() < entries[j].address.String()
	})

	old := n.nodes
	var nodes []*Node
	byAccount := map[entity.AccountID][]*Node{}
	for _, e := range entries {
		if containsHost(byAccount[e.accountID], e.address.Host) {
			// the same host on another port is the same node
			continue
		}
		node := takeNode(&old, e.accountID, e.address.Host)
		if node == nil {
			node = newNode(e.accountID, e.address, n.factory, n.minNodeBackoff, n.maxNodeBackoff)
			node.now = n.now
			logger.Debugf("adding node %s", node)
		} else {
			node.setAddress(e.address)
		}
		nodes = append(nodes, node)
		byAccount[e.accountID] = append(byAccount[e.accountID], node)
	}

	for _, node := range old {
		logger.Debugf("removing node %s", node)
		if err := node.Close(); err != nil {
			logger.Warnf("%s", err)
		}
	}

	n.nodes = nodes
	n.byAccount = byAccount
	n.healthy = map[*Node]bool{}
	n.earliestReadmit = time.Time{}
	n.readmitNodes()
	return nil
}

func containsHost(nodes []*Node, host string) bool {
	for _, node := range nodes {
		if node.Address().Host == host {
			return true
		}
	}
	return false
}

// takeNode removes and returns the node of nodes matching account and host
func takeNode(nodes *[]*Node, accountID entity.AccountID, host string) *Node {
	for i, node := range *nodes {
		if node.accountID == accountID && node.Address().Host == host {
			*nodes = append((*nodes)[:i], (*nodes)[i+1:]...)
			return node
		}
	}
	return nil
}

// Network returns the address book, "host:port" to node account ID
func (n *Network) Network() map[string]entity.AccountID {
	n.lock.Lock()
	defer n.lock.Unlock()

	book := make(map[string]entity.AccountID, len(n.nodes))
	for _, node := range n.nodes {
		book[node.Address().String()] = node.accountID
	}
	return book
}

// Nodes returns all nodes
func (n *Network) Nodes() []*Node {
	n.lock.Lock()
	defer n.lock.Unlock()
	return append([]*Node{}, n.nodes...)
}

// NodeAccountIDs returns the distinct node accounts in ascending order
func (n *Network) NodeAccountIDs() []entity.AccountID {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.accountIDs(n.nodes)
}

func (n *Network) accountIDs(nodes []*Node) []entity.AccountID {
	seen := map[entity.AccountID]bool{}
	var ids []entity.AccountID
	for _, node := range nodes {
		if !seen[node.accountID] {
			seen[node.accountID] = true
			ids = append(ids, node.accountID)
		}
	}
	return ids
}

// NodeAccountIDsForExecute picks the nodes a new request is prepared for:
// MaxNodesPerRequest random healthy node accounts, or a third of them when
// unset. Nodes that failed more than MaxNodeAttempts times are dropped
// first. Without healthy nodes it waits for the earliest readmission.
func (n *Network) NodeAccountIDsForExecute(ctx context.Context) ([]entity.AccountID, error) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.removeFailedNodes()
	if len(n.nodes) == 0 {
		return nil, status.Errorf(status.NoNodesFound, "network has no nodes")
	}

	count := (len(n.byAccount) + 2) / 3
	if n.maxNodesPerRequest > 0 {
		count = n.maxNodesPerRequest
	}
	if count > len(n.byAccount) {
		count = len(n.byAccount)
	}

	for {
		n.readmitNodes()
		if len(n.healthy) > 0 {
			break
		}
		wait := n.earliestReadmit.Sub(n.now())
		logger.Debugf("no healthy nodes, waiting %s", wait)
		if err := n.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	healthy := make([]*Node, 0, len(n.healthy))
	for _, node := range n.nodes {
		if n.healthy[node] {
			healthy = append(healthy, node)
		}
	}
	n.rand.Shuffle(len(healthy), func(i, j int) { healthy[i], healthy[j] = healthy[j], healthy[i] })
	ids := n.accountIDs(healthy)
	if len(ids) > count {
		ids = ids[:count]
	}
	return ids, nil
}

// sleep waits without holding the lock
func (n *Network) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	n.lock.Unlock()
	defer n.lock.Lock()

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return status.Errorf(status.Timeout, "waiting for a healthy node: %s", ctx.Err())
	}
}

func (n *Network) removeFailedNodes() {
	if n.maxNodeAttempts <= 0 {
		return
	}
	kept := n.nodes[:0]
	for _, node := range n.nodes {
		if node.BadStatusCount() < n.maxNodeAttempts {
			kept = append(kept, node)
			continue
		}
		logger.Warnf("removing node %s after %d failures", node, node.BadStatusCount())
		if err := node.Close(); err != nil {
			logger.Warnf("%s", err)
		}
		delete(n.healthy, node)
		n.byAccount[node.accountID] = removeNode(n.byAccount[node.accountID], node)
		if len(n.byAccount[node.accountID]) == 0 {
			delete(n.byAccount, node.accountID)
		}
	}
	n.nodes = kept
}

func removeNode(nodes []*Node, node *Node) []*Node {
	kept := make([]*Node, 0, len(nodes))
	for _, other := range nodes {
		if other != node {
			kept = append(kept, other)
		}
	}
	return kept
}

// readmitNodes must be called with the lock held
func (n *Network) readmitNodes() {
	now := n.now()
	if now.Before(n.earliestReadmit) {
		return
	}

	next := now.Add(n.maxNodeReadmitTime)
	for _, node := range n.nodes {
		if t := node.ReadmitTime(); t.After(now) && t.Before(next) {
			next = t
		}
	}
	if min := now.Add(n.minNodeReadmitTime); next.Before(min) {
		next = min
	}
	n.earliestReadmit = next

	for _, node := range n.nodes {
		if !node.ReadmitTime().After(now) {
			n.healthy[node] = true
		}
	}
}

// NodesForAccount returns the proxies of a node account. An unknown account
// is an illegal state error.
func (n *Network) NodesForAccount(accountID entity.AccountID) ([]*Node, error) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.readmitNodes()
	nodes, ok := n.byAccount[accountID.WithoutChecksum()]
	if !ok || len(nodes) == 0 {
		return nil, status.Errorf(status.IllegalState, "node account %s is not in the network", accountID)
	}
	return append([]*Node{}, nodes...), nil
}

// NodesForExecute maps the node accounts of a request to the nodes to try.
// A single node account yields all of its proxies; otherwise one random
// proxy per account is used.
func (n *Network) NodesForExecute(accountIDs []entity.AccountID) ([]*Node, error) {
	if len(accountIDs) == 1 {
		return n.NodesForAccount(accountIDs[0])
	}

	nodes := make([]*Node, 0, len(accountIDs))
	for _, id := range accountIDs {
		proxies, err := n.NodesForAccount(id)
		if err != nil {
			return nil, err
		}
		n.lock.Lock()
		nodes = append(nodes, proxies[n.rand.Intn(len(proxies))])
		n.lock.Unlock()
	}
	return nodes, nil
}

// IncreaseBackoff marks a node as failed
func (n *Network) IncreaseBackoff(node *Node) {
	n.lock.Lock()
	defer n.lock.Unlock()

	node.IncreaseBackoff()
	delete(n.healthy, node)
	if t := node.ReadmitTime(); n.earliestReadmit.IsZero() || t.Before(n.earliestReadmit) {
		n.earliestReadmit = t
	}
}

// DecreaseBackoff marks a node as answering
func (n *Network) DecreaseBackoff(node *Node) {
	node.DecreaseBackoff()
}

// LedgerID returns the ledger of the network
func (n *Network) LedgerID() entity.LedgerID {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.ledgerID
}

// SetLedgerID sets the ledger of the network
func (n *Network) SetLedgerID(ledgerID entity.LedgerID) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.ledgerID = ledgerID
}

// TransportSecurity reports whether nodes are reached over TLS
func (n *Network) TransportSecurity() bool {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.tls
}

// SetTransportSecurity moves every node onto its TLS or plaintext port.
// A node stays where it is when another node already listens on the port
// it would move to.
func (n *Network) SetTransportSecurity(tls bool) {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.tls == tls {
		return
	}
	n.tls = tls

	taken := make(map[endpoint.Address]bool, len(n.nodes))
	for _, node := range n.nodes {
		taken[node.Address()] = true
	}
	for _, node := range n.nodes {
		from := node.Address()
		to := from.ToInsecure()
		if tls {
			to = from.ToSecure()
		}
		if to == from {
			continue
		}
		if taken[to] {
			logger.Warnf("keeping node %s on %s, %s is used by another node", node.AccountID(), from, to)
			continue
		}
		delete(taken, from)
		taken[to] = true
		node.setAddress(to)
	}
}

// SetMaxNodeAttempts sets how many failures remove a node; 0 or less
// never removes nodes
func (n *Network) SetMaxNodeAttempts(attempts int) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.maxNodeAttempts = attempts
}

// MaxNodeAttempts returns how many failures remove a node
func (n *Network) MaxNodeAttempts() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.maxNodeAttempts
}

// SetNodeBackoff sets the backoff limits of all nodes
func (n *Network) SetNodeBackoff(minBackoff, maxBackoff time.Duration) error {
	if minBackoff < 0 || maxBackoff < 0 {
		return status.Errorf(status.InvalidArgument, "node backoff can't be negative")
	}
	if minBackoff > maxBackoff {
		return status.Errorf(status.InvalidArgument, "min node backoff %s exceeds max node backoff %s", minBackoff, maxBackoff)
	}

	n.lock.Lock()
	defer n.lock.Unlock()

	n.minNodeBackoff, n.maxNodeBackoff = minBackoff, maxBackoff
	for _, node := range n.nodes {
		node.setBackoffLimits(minBackoff, maxBackoff)
	}
	return nil
}

// NodeBackoff returns the backoff limits of the nodes
func (n *Network) NodeBackoff() (time.Duration, time.Duration) {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.minNodeBackoff, n.maxNodeBackoff
}

// SetNodeReadmitTime bounds how often unhealthy nodes are reconsidered
func (n *Network) SetNodeReadmitTime(minTime, maxTime time.Duration) error {
	if minTime < 0 || maxTime < minTime {
		return status.Errorf(status.InvalidArgument, "invalid node readmit times %s and %s", minTime, maxTime)
	}

	n.lock.Lock()
	defer n.lock.Unlock()
	n.minNodeReadmitTime, n.maxNodeReadmitTime = minTime, maxTime
	return nil
}

// SetMaxNodesPerRequest limits how many nodes a request is prepared for;
// 0 selects a third of the network
func (n *Network) SetMaxNodesPerRequest(max int) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.maxNodesPerRequest = max
}

// MaxNodesPerRequest returns the node limit of requests
func (n *Network) MaxNodesPerRequest() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.maxNodesPerRequest
}

// Close drops the transport to every node
func (n *Network) Close() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	var errs error
	for _, node := range n.nodes {
		errs = multi.Append(errs, node.Close())
	}
	if n.connector != nil {
		n.connector.Close()
	}
	return errs
}
