/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package retry provides the retransmission policy of the SDK: how many
// attempts an execution may make, how long it waits between attempts and
// which errors are transient.
// The defaults below match the network's recommended client settings and
// can be overridden per client or per request:
//  client.SetMaxAttempts(5)
//  tx.SetMinBackoff(100 * time.Millisecond)
package retry

import (
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

// Opts defines the retry parameters
type Opts struct {
	// Attempts the maximum number of attempts made across all nodes
	Attempts int
	// InitialBackoff the backoff interval for the first retry attempt
	InitialBackoff time.Duration
	// MaxBackoff the maximum backoff interval for any retry attempt
	MaxBackoff time.Duration
	// BackoffFactor the factor by which the InitialBackoff is exponentially
	// incremented for consecutive retry attempts.
	// For example, a backoff factor of 2 will result in a backoff of
	// InitialBackoff * 2 * 2 on the third attempt.
	BackoffFactor float64
	// RetryableCodes defines the status codes, mapped by group, that are
	// transient. This will default to retry.DefaultRetryableCodes.
	RetryableCodes map[status.Group][]status.Code
}

// Validate checks that the options describe a usable policy
func (o Opts) Validate() error {
	if o.Attempts < 0 {
		return status.Errorf(status.InvalidArgument, "max attempts must not be negative: %d", o.Attempts)
	}
	if o.InitialBackoff < 0 {
		return status.Errorf(status.InvalidArgument, "min backoff must not be negative: %s", o.InitialBackoff)
	}
	if o.MaxBackoff < o.InitialBackoff {
		return status.Errorf(status.InvalidArgument, "max backoff %s must not be lower than min backoff %s", o.MaxBackoff, o.InitialBackoff)
	}
	if o.BackoffFactor < 1 {
		return status.Errorf(status.InvalidArgument, "backoff factor must be at least 1: %v", o.BackoffFactor)
	}
	return nil
}

// Handler decides whether the error of an attempt is retried. Handlers
// are stateful and serve a single execution.
type Handler interface {
	Required(err error) bool
}

// impl retries the codes of opts.RetryableCodes up to opts.Attempts times
type impl struct {
	opts    Opts
	retries int
}

// New returns a Handler for opts. DefaultRetryableCodes apply when opts
// has none.
func New(opts Opts) Handler {
	if len(opts.RetryableCodes) == 0 {
		opts.RetryableCodes = DefaultRetryableCodes
	}
	return &impl{opts: opts}
}

// Required determines if retry is required for the given error.
// Waiting is left to the caller, see Backoff.
func (i *impl) Required(err error) bool {
	if i.retries == i.opts.Attempts {
		return false
	}

	s, ok := status.FromError(err)
	if ok && err != nil && i.isRetryable(s.Group, s.Code) {
		i.retries++
		return true
	}

	return false
}

// isRetryable determines if the given status is configured to be retryable
func (i *impl) isRetryable(g status.Group, c int32) bool {
	for group, codes := range i.opts.RetryableCodes {
		if g != group {
			continue
		}
		for _, code := range codes {
			if status.Code(c) == code {
				return true
			}
		}
	}
	return false
}

// Backoff is an exponentially growing delay bounded by the options'
// InitialBackoff and MaxBackoff. It is not safe for concurrent use.
type Backoff struct {
	opts    Opts
	current time.Duration
}

// NewBackoff returns a Backoff starting at opts.InitialBackoff
func NewBackoff(opts Opts) *Backoff {
	if opts.BackoffFactor < 1 {
		opts.BackoffFactor = DefaultBackoffFactor
	}
	return &Backoff{opts: opts, current: opts.InitialBackoff}
}

// Next returns the delay to wait now and grows the delay for the next call
func (b *Backoff) Next() time.Duration {
	d := b.current
	next := time.Duration(float64(b.current) * b.opts.BackoffFactor)
	if next > b.opts.MaxBackoff {
		next = b.opts.MaxBackoff
	}
	b.current = next
	return d
}
