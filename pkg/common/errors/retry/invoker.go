/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"context"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/multi"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
	"github.com/pkg/errors"
)

var logger = logging.NewLogger("hiero/retry")

// Invocation is one attempt of an operation. attempt starts at zero.
type Invocation func(attempt int) (interface{}, error)

// BeforeRetryHandler is called with the failure of an attempt when the
// handler decided to retry it, before the next attempt starts. This is
// where callers compute the backoff to wait.
type BeforeRetryHandler func(error)

// RetryableInvoker repeats an Invocation for as long as its Handler
// considers the returned errors transient
type RetryableInvoker struct {
	handler     Handler
	beforeRetry BeforeRetryHandler
}

// InvokerOpt is an invoker option
type InvokerOpt func(invoker *RetryableInvoker)

// WithBeforeRetry sets the function called between a failed attempt and
// its retry
func WithBeforeRetry(beforeRetry BeforeRetryHandler) InvokerOpt {
	return func(invoker *RetryableInvoker) {
		invoker.beforeRetry = beforeRetry
	}
}

// NewInvoker creates a new RetryableInvoker
func NewInvoker(handler Handler, opts ...InvokerOpt) *RetryableInvoker {
	invoker := &RetryableInvoker{
		handler: handler,
	}
	for _, opt := range opts {
		opt(invoker)
	}
	return invoker
}

// Invoke runs invocation until it succeeds or returns an error the handler
// does not retry; that error is returned unchanged. When ctx is done
// before an attempt starts, Invoke returns a Timeout status that carries
// the message of the last failure.
func (ri *RetryableInvoker) Invoke(ctx context.Context, invocation Invocation) (interface{}, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, timeoutError(err, lastErr)
		}

		retval, err := invocation(attempt)
		if err == nil {
			if attempt > 0 {
				logger.Debugf("attempt #%d succeeded after [%s]", attempt+1, lastErr)
			}
			return retval, nil
		}

		if !ri.retry(err) {
			logger.Debugf("attempt #%d failed with [%s], giving up", attempt+1, err)
			return nil, err
		}
		logger.Debugf("attempt #%d failed with [%s], retrying", attempt+1, err)
		lastErr = err
	}
}

// retry asks the handler about err. For a multi error one transient
// member is enough.
func (ri *RetryableInvoker) retry(err error) bool {
	candidates := []error{err}
	if m, ok := err.(multi.Errors); ok {
		candidates = m
	}
	for _, e := range candidates {
		if !ri.handler.Required(e) {
			continue
		}
		if ri.beforeRetry != nil {
			ri.beforeRetry(err)
		}
		return true
	}
	return false
}

func timeoutError(ctxErr error, lastErr error) error {
	msg := ctxErr.Error()
	if lastErr != nil {
		msg = errors.WithMessage(lastErr, msg).Error()
	}
	return status.Errorf(status.Timeout, "%s", msg)
}
