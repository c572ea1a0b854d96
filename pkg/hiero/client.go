/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hiero is the client of a Hiero ledger: it builds, signs and
// submits transactions and queries to the consensus nodes and retries them
// across nodes until they are answered.
package hiero

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/retry"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
	"github.com/hiero-ledger/hiero-client-go/pkg/metrics"
	"github.com/hiero-ledger/hiero-client-go/pkg/network"
)

var logger = logging.NewLogger("hiero/client")

// Client defaults
const (
	DefaultGrpcDeadline   = 10 * time.Second
	DefaultRequestTimeout = 2 * time.Minute
)

// DefaultMaxQueryPayment is what a query may cost without an explicit limit
var DefaultMaxQueryPayment = hbar.New(1)

// Signer signs a message on behalf of a public key
type Signer func(message []byte) []byte

// Operator is the account paying for transactions and queries, and the key
// signing for it
type Operator struct {
	AccountID entity.AccountID
	PublicKey keys.PublicKey
	signer    Signer
}

// Sign signs message with the operator key
func (o *Operator) Sign(message []byte) []byte {
	return o.signer(message)
}

// Client holds the network of a ledger, the operator and the execution
// defaults of transactions and queries. It is safe for concurrent use.
type Client struct {
	lock sync.RWMutex

	network       *network.Network
	mirrorNetwork []string
	operator      *Operator

	maxTransactionFee     *hbar.Amount
	maxQueryPayment       *hbar.Amount
	regenerateTxID        bool
	maxAttempts           int
	minBackoff            time.Duration
	maxBackoff            time.Duration
	grpcDeadline          time.Duration
	requestTimeout        time.Duration
	autoValidateChecksums bool

	limiter     *rate.Limiter
	metrics     *metrics.ClientMetrics
	networkOpts []network.Option
}

// ClientOption describes a functional parameter for the client constructors
type ClientOption func(*Client) error

// WithNetworkOptions passes options to the network, e.g. a custom transport
func WithNetworkOptions(opts ...network.Option) ClientOption {
	return func(c *Client) error {
		c.networkOpts = append(c.networkOpts, opts...)
		return nil
	}
}

// WithOperator sets the operator of the client
func WithOperator(accountID entity.AccountID, privateKey keys.PrivateKey) ClientOption {
	return func(c *Client) error {
		c.SetOperator(accountID, privateKey)
		return nil
	}
}

// WithMetrics registers the client metrics with a prometheus registerer
func WithMetrics(r prometheus.Registerer) ClientOption {
	return func(c *Client) error {
		return c.EnableMetrics(r)
	}
}

func newClient(opts []ClientOption) (*Client, error) {
	c := &Client{
		regenerateTxID: true,
		maxAttempts:    retry.DefaultAttempts,
		minBackoff:     retry.DefaultInitialBackoff,
		maxBackoff:     retry.DefaultMaxBackoff,
		grpcDeadline:   DefaultGrpcDeadline,
		requestTimeout: DefaultRequestTimeout,
		metrics:        metrics.NewDisabledClientMetrics(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.WithMessage(err, "client option failed")
		}
	}
	return c, nil
}

// ForNetwork creates a client for a custom network of "host:port" to node
// account ID
func ForNetwork(book map[string]entity.AccountID, opts ...ClientOption) (*Client, error) {
	c, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	n, err := network.New(book, c.networkOpts...)
	if err != nil {
		return nil, err
	}
	c.network = n
	return c, nil
}

// ForLedger creates a client for mainnet, testnet or previewnet using the
// built-in address book
func ForLedger(ledgerID entity.LedgerID, opts ...ClientOption) (*Client, error) {
	c, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	n, book, err := network.ForLedger(ledgerID, c.networkOpts...)
	if err != nil {
		return nil, err
	}
	c.network = n
	c.mirrorNetwork = book.MirrorNetwork
	return c, nil
}

// ForMainnet creates a client for mainnet
func ForMainnet(opts ...ClientOption) (*Client, error) {
	return ForLedger(entity.LedgerMainnet, opts...)
}

// ForTestnet creates a client for testnet
func ForTestnet(opts ...ClientOption) (*Client, error) {
	return ForLedger(entity.LedgerTestnet, opts...)
}

// ForPreviewnet creates a client for previewnet
func ForPreviewnet(opts ...ClientOption) (*Client, error) {
	return ForLedger(entity.LedgerPreviewnet, opts...)
}

// ForName creates a client for "mainnet", "testnet" or "previewnet"
func ForName(name string, opts ...ClientOption) (*Client, error) {
	ledgerID, err := entity.LedgerIDFromString(name)
	if err != nil {
		return nil, status.Errorf(status.InvalidArgument, "unknown network name [%s]", name)
	}
	return ForLedger(ledgerID, opts...)
}

// SetOperator sets the account paying for transactions and queries and
// the key signing for it
func (c *Client) SetOperator(accountID entity.AccountID, privateKey keys.PrivateKey) {
	c.SetOperatorWith(accountID, privateKey.PublicKey(), privateKey.Sign)
}

// SetOperatorWith sets the operator with a custom signer, e.g. an HSM
func (c *Client) SetOperatorWith(accountID entity.AccountID, publicKey keys.PublicKey, signer Signer) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.operator = &Operator{AccountID: accountID, PublicKey: publicKey, signer: signer}
}

// Operator returns the operator, or nil when unset
func (c *Client) Operator() *Operator {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.operator
}

// OperatorAccountID returns the operator account and whether one is set
func (c *Client) OperatorAccountID() (entity.AccountID, bool) {
	op := c.Operator()
	if op == nil {
		return entity.AccountID{}, false
	}
	return op.AccountID, true
}

// Network returns the consensus nodes of the client
func (c *Client) Network() *network.Network {
	return c.network
}

// GetNetwork returns the address book, "host:port" to node account ID
func (c *Client) GetNetwork() map[string]entity.AccountID {
	return c.network.Network()
}

// SetNetwork replaces the address book. Known nodes keep their health.
func (c *Client) SetNetwork(book map[string]entity.AccountID) error {
	return c.network.SetNetwork(book)
}

// MirrorNetwork returns the mirror node addresses
func (c *Client) MirrorNetwork() []string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return append([]string{}, c.mirrorNetwork...)
}

// SetMirrorNetwork sets the mirror node addresses
func (c *Client) SetMirrorNetwork(addresses []string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.mirrorNetwork = append([]string{}, addresses...)
}

// GetLedgerID returns the ledger of the network; it is the input of entity
// ID checksums
func (c *Client) GetLedgerID() entity.LedgerID {
	return c.network.LedgerID()
}

// SetLedgerID sets the ledger of the network
func (c *Client) SetLedgerID(ledgerID entity.LedgerID) {
	c.network.SetLedgerID(ledgerID)
}

// SetTransportSecurity switches all nodes to their TLS or plaintext port
func (c *Client) SetTransportSecurity(tls bool) {
	c.network.SetTransportSecurity(tls)
}

// MaxTransactionFee returns the client default transaction fee, if set
func (c *Client) MaxTransactionFee() (hbar.Amount, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.maxTransactionFee == nil {
		return hbar.Zero, false
	}
	return *c.maxTransactionFee, true
}

// SetDefaultMaxTransactionFee sets the fee used by transactions without
// their own limit
func (c *Client) SetDefaultMaxTransactionFee(fee hbar.Amount) error {
	if fee.IsNegative() {
		return status.Errorf(status.InvalidArgument, "max transaction fee must not be negative: %s", fee)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.maxTransactionFee = &fee
	return nil
}

// MaxQueryPayment returns what a query may cost without its own limit
func (c *Client) MaxQueryPayment() hbar.Amount {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.maxQueryPayment == nil {
		return DefaultMaxQueryPayment
	}
	return *c.maxQueryPayment
}

// SetDefaultMaxQueryPayment sets what a query may cost without its own limit
func (c *Client) SetDefaultMaxQueryPayment(payment hbar.Amount) error {
	if payment.IsNegative() {
		return status.Errorf(status.InvalidArgument, "max query payment must not be negative: %s", payment)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.maxQueryPayment = &payment
	return nil
}

// RegenerateTransactionID reports whether expired transaction IDs are
// regenerated by default
func (c *Client) RegenerateTransactionID() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.regenerateTxID
}

// SetDefaultRegenerateTransactionID sets whether a transaction rejected as
// expired is retried with a new transaction ID
func (c *Client) SetDefaultRegenerateTransactionID(regenerate bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.regenerateTxID = regenerate
}

// MaxAttempts returns the default number of attempts of a request
func (c *Client) MaxAttempts() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.maxAttempts
}

// SetMaxAttempts sets the default number of attempts of a request
func (c *Client) SetMaxAttempts(attempts int) error {
	if attempts <= 0 {
		return status.Errorf(status.InvalidArgument, "max attempts must be positive: %d", attempts)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.maxAttempts = attempts
	return nil
}

// MinBackoff returns the first wait between attempts
func (c *Client) MinBackoff() time.Duration {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.minBackoff
}

// SetMinBackoff sets the first wait between attempts
func (c *Client) SetMinBackoff(d time.Duration) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if err := validateBackoff(d, c.maxBackoff); err != nil {
		return err
	}
	c.minBackoff = d
	return nil
}

// MaxBackoff returns the longest wait between attempts
func (c *Client) MaxBackoff() time.Duration {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.maxBackoff
}

// SetMaxBackoff sets the longest wait between attempts
func (c *Client) SetMaxBackoff(d time.Duration) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if err := validateBackoff(c.minBackoff, d); err != nil {
		return err
	}
	c.maxBackoff = d
	return nil
}

func validateBackoff(minBackoff, maxBackoff time.Duration) error {
	return retry.Opts{
		InitialBackoff: minBackoff,
		MaxBackoff:     maxBackoff,
		BackoffFactor:  retry.DefaultBackoffFactor,
	}.Validate()
}

// GrpcDeadline returns the deadline of a single gRPC call
func (c *Client) GrpcDeadline() time.Duration {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.grpcDeadline
}

// SetGrpcDeadline sets the deadline of a single gRPC call
func (c *Client) SetGrpcDeadline(d time.Duration) error {
	if d <= 0 {
		return status.Errorf(status.InvalidArgument, "gRPC deadline must be positive: %s", d)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.grpcDeadline = d
	return nil
}

// RequestTimeout returns the time a request may take across all attempts
func (c *Client) RequestTimeout() time.Duration {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.requestTimeout
}

// SetRequestTimeout sets the time a request may take across all attempts
// when the context has no deadline
func (c *Client) SetRequestTimeout(d time.Duration) error {
	if d <= 0 {
		return status.Errorf(status.InvalidArgument, "request timeout must be positive: %s", d)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.requestTimeout = d
	return nil
}

// AutoValidateChecksums reports whether entity ID checksums are validated
// before requests are submitted
func (c *Client) AutoValidateChecksums() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.autoValidateChecksums
}

// SetAutoValidateChecksums enables checksum validation before submission
func (c *Client) SetAutoValidateChecksums(validate bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.autoValidateChecksums = validate
}

// SetMaxNodeAttempts sets how many failures remove a node; 0 or less
// never removes nodes
func (c *Client) SetMaxNodeAttempts(attempts int) {
	c.network.SetMaxNodeAttempts(attempts)
}

// SetNodeBackoff sets the backoff limits of unhealthy nodes
func (c *Client) SetNodeBackoff(minBackoff, maxBackoff time.Duration) error {
	return c.network.SetNodeBackoff(minBackoff, maxBackoff)
}

// SetNodeReadmitTime bounds how often unhealthy nodes are reconsidered
func (c *Client) SetNodeReadmitTime(minTime, maxTime time.Duration) error {
	return c.network.SetNodeReadmitTime(minTime, maxTime)
}

// SetMaxNodesPerRequest limits how many nodes a request is prepared for
func (c *Client) SetMaxNodesPerRequest(max int) error {
	if max < 0 {
		return status.Errorf(status.InvalidArgument, "max nodes per request must not be negative: %d", max)
	}
	c.network.SetMaxNodesPerRequest(max)
	return nil
}

// SetRequestRate limits the gRPC calls of the client to perSecond with the
// given burst; a rate of 0 or less removes the limit
func (c *Client) SetRequestRate(perSecond float64, burst int) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if perSecond <= 0 {
		c.limiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
}

// waitRate blocks until the rate limit admits another call
func (c *Client) waitRate(ctx context.Context) error {
	c.lock.RLock()
	limiter := c.limiter
	c.lock.RUnlock()
	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		return status.Errorf(status.Timeout, "request rate limit: %s", err)
	}
	return nil
}

// EnableMetrics registers the client metrics with r, or the default
// prometheus registerer when r is nil
func (c *Client) EnableMetrics(r prometheus.Registerer) error {
	m, err := metrics.NewClientMetrics(metrics.NewPrometheusProvider(r))
	if err != nil {
		return err
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.metrics = m
	return nil
}

func (c *Client) clientMetrics() *metrics.ClientMetrics {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.metrics
}

// Close releases the connections to all nodes
func (c *Client) Close() error {
	logger.Debug("closing client")
	return c.network.Close()
}
