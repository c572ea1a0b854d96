/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	grpcCodes "google.golang.org/grpc/codes"
)

const (
	// DefaultAttempts number of attempts made by default
	DefaultAttempts = 10
	// DefaultInitialBackoff default initial backoff
	DefaultInitialBackoff = 250 * time.Millisecond
	// DefaultMaxBackoff default maximum backoff
	DefaultMaxBackoff = 8 * time.Second
	// DefaultBackoffFactor default backoff factor
	DefaultBackoffFactor = 2.0
)

// Node health suggested defaults
const (
	// NodeDefaultMinBackoff the backoff applied to a node after its first failure
	NodeDefaultMinBackoff = 8 * time.Second
	// NodeDefaultMaxBackoff upper bound of a node's backoff
	NodeDefaultMaxBackoff = time.Hour
)

// DefaultOpts default retry options
var DefaultOpts = Opts{
	Attempts:       DefaultAttempts,
	InitialBackoff: DefaultInitialBackoff,
	MaxBackoff:     DefaultMaxBackoff,
	BackoffFactor:  DefaultBackoffFactor,
	RetryableCodes: DefaultRetryableCodes,
}

// DefaultRetryableCodes these are the error codes, grouped by source of error,
// that mark the node as unhealthy and move the execution to another node
var DefaultRetryableCodes = map[status.Group][]status.Code{
	status.ClientStatus: {
		status.ConnectionFailed,
	},
	status.GRPCTransportStatus: {
		status.Code(grpcCodes.Unavailable),
		status.Code(grpcCodes.ResourceExhausted),
		status.Code(grpcCodes.Internal),
	},
}
