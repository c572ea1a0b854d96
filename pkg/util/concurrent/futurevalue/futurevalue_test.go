/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futurevalue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleValue_Get() {
	fv := New(func() (string, error) {
		return "SUCCESS", nil
	})

	done := make(chan bool)
	go func() {
		value, err := fv.Get()
		if err != nil {
			fmt.Printf("Error returned from Get: %s\n", err)
		}
		fmt.Println(value)
		done <- true
	}()

	fv.Initialize() //nolint:errcheck
	<-done
	// Output: SUCCESS
}

func ExampleValue_Then() {
	done := make(chan struct{})
	New(func() (int, error) {
		return 42, nil
	}).Start().Then(func(v int, err error) {
		fmt.Println(v, err)
		close(done)
	})

	<-done
	// Output: 42 <nil>
}

func TestFutureValueGet(t *testing.T) {
	expectedValue := "Value1"

	fv := New(func() (string, error) {
		return expectedValue, nil
	})
	assert.False(t, fv.IsSet())

	concurrency := 100
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			value, err := fv.Get()
			if err != nil {
				t.Errorf("received error: %s", err)
			}
			if value != expectedValue {
				t.Errorf("expecting value [%s] but received [%s]", expectedValue, value)
			}
		}()
	}

	value, err := fv.Initialize()
	require.NoError(t, err)

	wg.Wait()

	assert.Equal(t, expectedValue, value)
	assert.True(t, fv.IsSet())
}

func TestFutureValueGetWithError(t *testing.T) {
	fv := New(func() (interface{}, error) {
		return nil, fmt.Errorf("some error")
	})

	concurrency := 100
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			if _, err := fv.Get(); err == nil {
				t.Errorf("expecting error but received none")
			}
		}()
	}

	_, err := fv.Initialize()
	require.Error(t, err)

	wg.Wait()
}

func TestInitializeRunsOnce(t *testing.T) {
	var calls int32
	fv := New(func() (int32, error) {
		return atomic.AddInt32(&calls, 1), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := fv.Initialize()
			assert.NoError(t, err)
			assert.Equal(t, int32(1), v)
		}()
	}
	wg.Wait()

	fv.Start()
	v, err := fv.Get()
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetWithContext(t *testing.T) {
	release := make(chan struct{})
	fv := New(func() (int, error) {
		<-release
		return 1, nil
	}).Start()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := fv.GetWithContext(ctx)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.False(t, fv.IsSet())

	close(release)
	<-fv.Done()
	v, err := fv.GetWithContext(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestThenReceivesError(t *testing.T) {
	result := make(chan error, 1)
	New(func() (string, error) {
		return "", fmt.Errorf("node unavailable")
	}).Start().Then(func(_ string, err error) {
		result <- err
	})

	select {
	case err := <-result:
		assert.EqualError(t, err, "node unavailable")
	case <-time.After(time.Second):
		t.Fatal("callback was not called")
	}
}
