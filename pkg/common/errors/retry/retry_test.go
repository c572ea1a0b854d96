/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"fmt"
	"testing"
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/stretchr/testify/assert"
	grpcCodes "google.golang.org/grpc/codes"
)

func TestRetryRequired(t *testing.T) {
	attempts := 3
	transientErr := status.New(status.GRPCTransportStatus,
		int32(grpcCodes.Unavailable), "", nil)
	nonTransientErr := status.NewFromResponseCode(status.PrecheckServerStatus, rcode.InvalidSignature)
	unknownErr := fmt.Errorf("Unknown")

	r := New(Opts{
		Attempts:       attempts,
		BackoffFactor:  2,
		InitialBackoff: 1 * time.Millisecond,
		MaxBackoff:     1 * time.Second,
	})
	for i := 1; i <= attempts; i++ {
		assert.True(t, r.Required(transientErr), "Expected retry to be required on transient error")
	}
	assert.False(t, r.Required(transientErr), "Expected retry to not be required after exhausting attempts")
	r = New(DefaultOpts)
	assert.False(t, r.Required(nonTransientErr), "Expected retry to not be required on non-transient error")
	assert.False(t, r.Required(nil), "Expected retry to not be required without error")
	r = New(Opts{Attempts: 2})
	assert.False(t, r.Required(unknownErr), "Expected retry to not be required on unknown error")
	assert.True(t, r.Required(status.Errorf(status.ConnectionFailed, "dial failed")))
}

func TestBackoff(t *testing.T) {
	b := NewBackoff(Opts{
		BackoffFactor:  2,
		InitialBackoff: 250 * time.Millisecond,
		MaxBackoff:     time.Second,
	})
	assert.Equal(t, 250*time.Millisecond, b.Next(), "Expected initial backoff on first wait")
	assert.Equal(t, 500*time.Millisecond, b.Next(), "Expected doubled backoff on second wait")
	assert.Equal(t, time.Second, b.Next())
	assert.Equal(t, time.Second, b.Next(), "Expected max backoff")

	b = NewBackoff(Opts{InitialBackoff: time.Millisecond, MaxBackoff: time.Second})
	b.Next()
	assert.Equal(t, 2*time.Millisecond, b.Next(), "Expected default factor when unset")
}

func TestOptsValidate(t *testing.T) {
	assert.NoError(t, DefaultOpts.Validate())

	opts := DefaultOpts
	opts.MaxBackoff = opts.InitialBackoff - 1
	err := opts.Validate()
	assert.True(t, status.Is(err, status.ClientStatus, status.InvalidArgument.ToInt32()))

	opts = DefaultOpts
	opts.InitialBackoff = -1
	assert.Error(t, opts.Validate())

	opts = DefaultOpts
	opts.Attempts = -1
	assert.Error(t, opts.Validate())

	opts = DefaultOpts
	opts.BackoffFactor = 0.5
	assert.Error(t, opts.Validate())
}
