/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package futurevalue holds the result of a computation that runs at most
// once and may still be in progress. The asynchronous executions of the
// SDK hand one out per request.
package futurevalue

import (
	"context"
	"sync"
)

// Initializer computes the value
type Initializer[T any] func() (T, error)

// Value is a result computed once by its Initializer. Any number of
// goroutines may wait for it.
type Value[T any] struct {
	initializer Initializer[T]
	once        sync.Once
	done        chan struct{}

	// written before done is closed
	value T
	err   error
}

// New returns a Value that is computed by initializer on the first call
// to Initialize or Start
func New[T any](initializer Initializer[T]) *Value[T] {
	return &Value[T]{
		initializer: initializer,
		done:        make(chan struct{}),
	}
}

// Start computes the value on a new goroutine
func (f *Value[T]) Start() *Value[T] {
	go f.Initialize() //nolint:errcheck
	return f
}

// Initialize computes the value on the calling goroutine and returns it.
// Only the first call runs the initializer; later calls wait for it and
// return the same result.
func (f *Value[T]) Initialize() (T, error) {
	f.once.Do(func() {
		f.value, f.err = f.initializer()
		close(f.done)
	})
	return f.Get()
}

// Done is closed once the value is set
func (f *Value[T]) Done() <-chan struct{} {
	return f.done
}

// Get waits for the value
func (f *Value[T]) Get() (T, error) {
	<-f.done
	return f.value, f.err
}

// GetWithContext waits for the value or until ctx is done, whichever
// comes first
func (f *Value[T]) GetWithContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then passes the value to callback on a new goroutine once it is set
func (f *Value[T]) Then(callback func(T, error)) {
	go func() {
		callback(f.Get())
	}()
}

// IsSet reports whether the value is set
func (f *Value[T]) IsSet() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
