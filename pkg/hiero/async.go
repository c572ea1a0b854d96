/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"

	"github.com/hiero-ledger/hiero-client-go/pkg/util/concurrent/futurevalue"
)

// Future is the pending result of an asynchronous execution
type Future[T any] struct {
	*futurevalue.Value[T]
}

func goExecute[T any](ctx context.Context, fn func(context.Context) (T, error)) Future[T] {
	return Future[T]{futurevalue.New(func() (T, error) {
		return fn(ctx)
	}).Start()}
}

func goCallback[T any](ctx context.Context, fn func(context.Context) (T, error), callback func(T, error)) {
	goExecute(ctx, fn).Then(callback)
}

// ExecuteAsync executes the transaction on its own goroutine
func (t *Transaction) ExecuteAsync(ctx context.Context, client *Client) Future[*TransactionResponse] {
	return goExecute(ctx, func(ctx context.Context) (*TransactionResponse, error) {
		return t.Execute(ctx, client)
	})
}

// ExecuteWithCallback executes the transaction on its own goroutine and
// passes the outcome to callback
func (t *Transaction) ExecuteWithCallback(ctx context.Context, client *Client, callback func(*TransactionResponse, error)) {
	goCallback(ctx, func(ctx context.Context) (*TransactionResponse, error) {
		return t.Execute(ctx, client)
	}, callback)
}

// GetReceiptAsync waits for the receipt on its own goroutine
func (r *TransactionResponse) GetReceiptAsync(ctx context.Context, client *Client) Future[*TransactionReceipt] {
	return goExecute(ctx, func(ctx context.Context) (*TransactionReceipt, error) {
		return r.GetReceipt(ctx, client)
	})
}

// ExecuteAsync gets the balance on its own goroutine
func (q *AccountBalanceQuery) ExecuteAsync(ctx context.Context, client *Client) Future[*AccountBalance] {
	return goExecute(ctx, func(ctx context.Context) (*AccountBalance, error) {
		return q.Execute(ctx, client)
	})
}

// ExecuteWithCallback gets the balance on its own goroutine and passes it
// to callback
func (q *AccountBalanceQuery) ExecuteWithCallback(ctx context.Context, client *Client, callback func(*AccountBalance, error)) {
	goCallback(ctx, func(ctx context.Context) (*AccountBalance, error) {
		return q.Execute(ctx, client)
	}, callback)
}

// ExecuteAsync gets the account info on its own goroutine
func (q *AccountInfoQuery) ExecuteAsync(ctx context.Context, client *Client) Future[*AccountInfo] {
	return goExecute(ctx, func(ctx context.Context) (*AccountInfo, error) {
		return q.Execute(ctx, client)
	})
}

// ExecuteAsync gets the token info on its own goroutine
func (q *TokenInfoQuery) ExecuteAsync(ctx context.Context, client *Client) Future[*TokenInfo] {
	return goExecute(ctx, func(ctx context.Context) (*TokenInfo, error) {
		return q.Execute(ctx, client)
	})
}

// ExecuteAsync gets the receipt on its own goroutine
func (q *TransactionReceiptQuery) ExecuteAsync(ctx context.Context, client *Client) Future[*TransactionReceipt] {
	return goExecute(ctx, func(ctx context.Context) (*TransactionReceipt, error) {
		return q.Execute(ctx, client)
	})
}

// ExecuteWithCallback gets the receipt on its own goroutine and passes it
// to callback
func (q *TransactionReceiptQuery) ExecuteWithCallback(ctx context.Context, client *Client, callback func(*TransactionReceipt, error)) {
	goCallback(ctx, func(ctx context.Context) (*TransactionReceipt, error) {
		return q.Execute(ctx, client)
	}, callback)
}

// ExecuteAsync gets the record on its own goroutine
func (q *TransactionRecordQuery) ExecuteAsync(ctx context.Context, client *Client) Future[*TransactionRecord] {
	return goExecute(ctx, func(ctx context.Context) (*TransactionRecord, error) {
		return q.Execute(ctx, client)
	})
}
