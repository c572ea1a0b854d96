/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/retry"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/network"
)

// executionState is the outcome of one attempt as judged by the request
type executionState int

const (
	// executionFinished: the node answered OK
	executionFinished executionState = iota
	// executionRetry: wait the backoff, then try again
	executionRetry
	// executionServerError: the node cannot serve now, try the next one
	executionServerError
	// executionRequestError: the request was rejected
	executionRequestError
)

// request is implemented by transactions and queries. The executor drives
// it through the attempts; index is the position of the attempted node in
// the node account IDs of the request.
type request interface {
	settings() *executable
	requestType() string
	name() string
	method() string
	onExecute(ctx context.Context, client *Client) error
	makeRequest(ctx context.Context, client *Client, index int) ([]byte, error)
	decode(resp []byte) (rcode.Code, interface{}, error)
	shouldRetry(client *Client, code rcode.Code, response interface{}) executionState
	mapStatusError(code rcode.Code, response interface{}) error
	mapResponse(response interface{}, nodeID entity.AccountID, req []byte) (interface{}, error)
}

// executable holds the settings shared by transactions and queries. Unset
// values fall back to the client, then to the package defaults.
type executable struct {
	nodeAccountIDs []entity.AccountID

	maxAttempts  *int
	minBackoff   *time.Duration
	maxBackoff   *time.Duration
	grpcDeadline *time.Duration

	requestListener  func(method string, req []byte)
	responseListener func(method string, resp []byte)

	// guard rejects edits, e.g. of a frozen transaction
	guard func() error
}

func (e *executable) checkEditable() error {
	if e.guard == nil {
		return nil
	}
	return e.guard()
}

// NodeAccountIDs returns the nodes the request is sent to
func (e *executable) NodeAccountIDs() []entity.AccountID {
	return append([]entity.AccountID{}, e.nodeAccountIDs...)
}

// SetNodeAccountIDs sets the nodes the request is sent to instead of
// letting the network choose
func (e *executable) SetNodeAccountIDs(ids []entity.AccountID) error {
	if err := e.checkEditable(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return status.Errorf(status.InvalidArgument, "node account IDs must not be empty")
	}
	e.nodeAccountIDs = append([]entity.AccountID{}, ids...)
	return nil
}

// SetMaxAttempts sets the attempts of this request across all nodes
func (e *executable) SetMaxAttempts(attempts int) error {
	if err := e.checkEditable(); err != nil {
		return err
	}
	if attempts <= 0 {
		return status.Errorf(status.InvalidArgument, "max attempts must be positive: %d", attempts)
	}
	e.maxAttempts = &attempts
	return nil
}

// SetMinBackoff sets the first wait between attempts of this request
func (e *executable) SetMinBackoff(d time.Duration) error {
	if err := e.checkEditable(); err != nil {
		return err
	}
	maxBackoff := retry.DefaultMaxBackoff
	if e.maxBackoff != nil {
		maxBackoff = *e.maxBackoff
	}
	if err := validateBackoff(d, maxBackoff); err != nil {
		return err
	}
	e.minBackoff = &d
	return nil
}

// SetMaxBackoff sets the longest wait between attempts of this request
func (e *executable) SetMaxBackoff(d time.Duration) error {
	if err := e.checkEditable(); err != nil {
		return err
	}
	minBackoff := retry.DefaultInitialBackoff
	if e.minBackoff != nil {
		minBackoff = *e.minBackoff
	}
	if err := validateBackoff(minBackoff, d); err != nil {
		return err
	}
	e.maxBackoff = &d
	return nil
}

// SetGrpcDeadline sets the deadline of each gRPC call of this request
func (e *executable) SetGrpcDeadline(d time.Duration) error {
	if err := e.checkEditable(); err != nil {
		return err
	}
	if d <= 0 {
		return status.Errorf(status.InvalidArgument, "gRPC deadline must be positive: %s", d)
	}
	e.grpcDeadline = &d
	return nil
}

// SetRequestListener is called with the encoded request of every attempt
func (e *executable) SetRequestListener(listener func(method string, req []byte)) {
	e.requestListener = listener
}

// SetResponseListener is called with the encoded response of every attempt
func (e *executable) SetResponseListener(listener func(method string, resp []byte)) {
	e.responseListener = listener
}

type executionParams struct {
	maxAttempts  int
	minBackoff   time.Duration
	maxBackoff   time.Duration
	grpcDeadline time.Duration
}

func (e *executable) resolve(client *Client) executionParams {
	p := executionParams{
		maxAttempts:  client.MaxAttempts(),
		minBackoff:   client.MinBackoff(),
		maxBackoff:   client.MaxBackoff(),
		grpcDeadline: client.GrpcDeadline(),
	}
	if e.maxAttempts != nil {
		p.maxAttempts = *e.maxAttempts
	}
	if e.minBackoff != nil {
		p.minBackoff = *e.minBackoff
	}
	if e.maxBackoff != nil {
		p.maxBackoff = *e.maxBackoff
	}
	if e.grpcDeadline != nil {
		p.grpcDeadline = *e.grpcDeadline
	}
	if p.maxBackoff < p.minBackoff {
		p.maxBackoff = p.minBackoff
	}
	return p
}

// attemptError marks a failed attempt the executor may retry. wait tells
// whether the backoff is waited before the next attempt.
type attemptError struct {
	err  error
	wait bool
}

func (e *attemptError) Error() string { return e.err.Error() }

func (e *attemptError) Cause() error { return e.err }

// executionHandler counts the attempts of one execution. Attempt errors are
// retried; transport errors are retried when the default retry policy
// considers them transient.
type executionHandler struct {
	maxAttempts int
	failed      int
	exhausted   bool
	transport   retry.Handler
}

func newExecutionHandler(maxAttempts int) *executionHandler {
	return &executionHandler{
		maxAttempts: maxAttempts,
		transport: retry.New(retry.Opts{
			Attempts:       maxAttempts,
			RetryableCodes: retry.DefaultRetryableCodes,
		}),
	}
}

func (h *executionHandler) Required(err error) bool {
	var ae *attemptError
	if !errors.As(err, &ae) && !h.transport.Required(err) {
		return false
	}
	h.failed++
	if h.failed >= h.maxAttempts {
		h.exhausted = true
		return false
	}
	return true
}

// execute runs req against the nodes of the client until it succeeds, is
// rejected or runs out of attempts
func execute(ctx context.Context, client *Client, req request) (interface{}, error) {
	if client == nil {
		return nil, status.Errorf(status.IllegalState, "%s requires a client", req.name())
	}
	start := time.Now()
	resp, err := run(ctx, client, req)
	client.clientMetrics().Request(req.requestType(), req.name(), start, err)
	return resp, err
}

func run(ctx context.Context, client *Client, req request) (interface{}, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.RequestTimeout())
		defer cancel()
	}

	if err := req.onExecute(ctx, client); err != nil {
		return nil, err
	}

	e := req.settings()
	params := e.resolve(client)
	nodes, err := client.network.NodesForExecute(e.nodeAccountIDs)
	if err != nil {
		return nil, err
	}

	backoff := retry.NewBackoff(retry.Opts{
		InitialBackoff: params.minBackoff,
		MaxBackoff:     params.maxBackoff,
		BackoffFactor:  retry.DefaultBackoffFactor,
	})
	var wait time.Duration
	responses := make(map[*network.Node]rcode.Code)

	handler := newExecutionHandler(params.maxAttempts)
	invoker := retry.NewInvoker(handler, retry.WithBeforeRetry(func(err error) {
		var ae *attemptError
		if errors.As(err, &ae) && ae.wait {
			wait = backoff.Next()
		}
	}))

	resp, err := invoker.Invoke(ctx, func(attempt int) (interface{}, error) {
		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
		wait = 0

		node, err := pickNode(ctx, nodes, attempt)
		if err != nil {
			return nil, err
		}
		index := nodeIndex(e.nodeAccountIDs, node.AccountID())

		reqBytes, err := req.makeRequest(ctx, client, index)
		if err != nil {
			return nil, err
		}
		if err := client.waitRate(ctx); err != nil {
			return nil, err
		}

		respBytes, err := invokeNode(ctx, e, node, req.method(), reqBytes, params.grpcDeadline)
		if err != nil {
			client.clientMetrics().Attempt(node.AccountID().String(), "transport")
			if isTransient(err) {
				client.network.IncreaseBackoff(node)
			}
			return nil, err
		}
		client.network.DecreaseBackoff(node)

		code, response, err := req.decode(respBytes)
		if err != nil {
			return nil, err
		}

		state := req.shouldRetry(client, code, response)
		logger.WithFields(logging.Fields{"node": node.AccountID().String(), "attempt": attempt + 1}).
			Debugf("%s answered %s", req.name(), code)
		if state == executionServerError {
			// back off only once every node answered BUSY
			responses[node] = code
			if !allBusy(responses, len(nodes)) {
				client.clientMetrics().Attempt(node.AccountID().String(), "server_error")
				return nil, &attemptError{err: &PrecheckError{Status: code}}
			}
			clear(responses)
			state = executionRetry
		}

		switch state {
		case executionRetry:
			client.clientMetrics().Attempt(node.AccountID().String(), "retry")
			return nil, &attemptError{err: req.mapStatusError(code, response), wait: true}
		case executionRequestError:
			client.clientMetrics().Attempt(node.AccountID().String(), "rejected")
			return nil, req.mapStatusError(code, response)
		}
		client.clientMetrics().Attempt(node.AccountID().String(), "ok")
		return req.mapResponse(response, node.AccountID(), reqBytes)
	})
	if err == nil {
		return resp, nil
	}
	if handler.exhausted {
		return nil, &MaxAttemptsExceededError{Attempts: params.maxAttempts, LastErr: errors.Cause(err)}
	}
	return nil, errors.Cause(err)
}

// invokeNode sends one request to node with its own deadline
func allBusy(responses map[*network.Node]rcode.Code, nodes int) bool {
	if len(responses) < nodes {
		return false
	}
	for _, code := range responses {
		if code != rcode.Busy {
			return false
		}
	}
	return true
}

func invokeNode(ctx context.Context, e *executable, node *network.Node, method string, req []byte, deadline time.Duration) ([]byte, error) {
	invoker, err := node.Invoker()
	if err != nil {
		return nil, status.New(status.ClientStatus, status.ConnectionFailed.ToInt32(), err.Error(), nil)
	}

	if e.requestListener != nil {
		e.requestListener(method, req)
	}

	callCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()
	resp, err := invoker.Invoke(callCtx, method, req)
	if err != nil {
		return nil, err
	}

	if e.responseListener != nil {
		e.responseListener(method, resp)
	}
	return resp, nil
}

// isTransient reports whether a transport error should move the request to
// another node
func isTransient(err error) bool {
	s, ok := status.FromError(err)
	if !ok {
		return false
	}
	for _, code := range retry.DefaultRetryableCodes[s.Group] {
		if status.Code(s.Code) == code {
			return true
		}
	}
	return false
}

// pickNode takes the first healthy node from attempt on. Without one it
// waits for the node closest to readmission.
func pickNode(ctx context.Context, nodes []*network.Node, attempt int) (*network.Node, error) {
	start := attempt % len(nodes)
	for i := range nodes {
		node := nodes[(start+i)%len(nodes)]
		if node.IsHealthy() {
			return node, nil
		}
	}

	next := nodes[0]
	for _, node := range nodes[1:] {
		if node.RemainingBackoff() < next.RemainingBackoff() {
			next = node
		}
	}
	logger.Debugf("no healthy node, waiting %s for %s", next.RemainingBackoff(), next)
	if err := sleep(ctx, next.RemainingBackoff()); err != nil {
		return nil, err
	}
	return next, nil
}

func nodeIndex(ids []entity.AccountID, id entity.AccountID) int {
	for i, other := range ids {
		if other.Equal(id) {
			return i
		}
	}
	return 0
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return status.Errorf(status.Timeout, "request timed out while backing off: %s", ctx.Err())
	}
}
