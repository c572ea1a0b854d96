/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/network"
)

func newTransfer(t *testing.T, nodes ...entity.AccountID) *TransferTransaction {
	tx := NewTransferTransaction()
	if len(nodes) > 0 {
		require.NoError(t, tx.SetNodeAccountIDs(nodes))
	}
	require.NoError(t, tx.AddHbarTransfer(operatorID, hbar.New(-1)))
	require.NoError(t, tx.AddHbarTransfer(entity.NewAccountID(0, 0, 2002), hbar.New(1)))
	return tx
}

func TestExecuteTransaction(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.OK))),
	})

	tx := newTransfer(t, node3)
	resp, err := tx.Execute(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, node3, resp.NodeID)
	id, _ := tx.TransactionID()
	assert.True(t, resp.TransactionID.Equal(id))
	hash, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, hash, resp.Hash)

	require.Equal(t, 1, r3.count())
	assert.Equal(t, hapi.CryptoTransfer, r3.methods[0])

	// the operator pays, so the operator signed
	sigs, err := tx.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs[node3], 1)
	assert.Equal(t, operatorKey(t).PublicKey().BytesRaw(), sigs[node3][0].PublicKeyPrefix)
}

func TestExecuteTwice(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.InsufficientPayerBalance)), answer(txResponse(rcode.OK))),
	})

	tx := newTransfer(t, node3)
	_, err := tx.Execute(context.Background(), client)
	require.Error(t, err)
	assert.False(t, tx.IsExecuted(), "a failed submission can be repeated")

	_, err = tx.Execute(context.Background(), client)
	require.NoError(t, err)
	assert.True(t, tx.IsExecuted())

	_, err = tx.Execute(context.Background(), client)
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
	assert.Equal(t, 2, r3.count())
}

func TestExecuteWithoutClient(t *testing.T) {
	_, err := newTransfer(t, node3).Execute(context.Background(), nil)
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
}

func TestExecuteBusyNodeMovesOn(t *testing.T) {
	var r3, r4 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.Busy))),
		"node4": r4.sequence(answer(txResponse(rcode.OK))),
	})

	resp, err := newTransfer(t, node3, node4).Execute(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, node4, resp.NodeID)
	assert.Equal(t, 1, r3.count())
	assert.Equal(t, 1, r4.count())
}

func TestExecuteBacksOffOnlyWhenAllNodesBusy(t *testing.T) {
	for _, tc := range []struct {
		name     string
		node4    rcode.Code
		waits    bool
		attempts int
	}{
		{"all busy", rcode.Busy, true, 3},
		{"one not active", rcode.PlatformNotActive, false, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, map[string]nodeHandler{
				"node3": answer(txResponse(rcode.Busy)),
				"node4": answer(txResponse(tc.node4)),
			})
			require.NoError(t, client.SetMaxBackoff(time.Second))
			require.NoError(t, client.SetMinBackoff(400*time.Millisecond))
			require.NoError(t, client.SetMaxAttempts(tc.attempts))

			start := time.Now()
			_, err := newTransfer(t, node3, node4).Execute(context.Background(), client)
			elapsed := time.Since(start)

			var exceeded *MaxAttemptsExceededError
			require.True(t, errors.As(err, &exceeded), "unexpected error: %v", err)
			if tc.waits {
				assert.GreaterOrEqual(t, elapsed, 400*time.Millisecond)
			} else {
				assert.Less(t, elapsed, 400*time.Millisecond)
			}
		})
	}
}

func TestAllBusy(t *testing.T) {
	n3, n4 := &network.Node{}, &network.Node{}
	assert.False(t, allBusy(map[*network.Node]rcode.Code{n3: rcode.Busy}, 2))
	assert.True(t, allBusy(map[*network.Node]rcode.Code{n3: rcode.Busy, n4: rcode.Busy}, 2))
	assert.False(t, allBusy(map[*network.Node]rcode.Code{n3: rcode.Busy, n4: rcode.PlatformTransactionNotCreated}, 2))
}

func TestExecuteTransportErrorMovesOn(t *testing.T) {
	var r3, r4 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(failWith(unavailable())),
		"node4": r4.sequence(answer(txResponse(rcode.OK))),
	})

	resp, err := newTransfer(t, node3, node4).Execute(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, node4, resp.NodeID)

	for _, node := range client.Network().Nodes() {
		if node.AccountID().Equal(node3) {
			assert.False(t, node.IsHealthy())
			assert.Equal(t, 1, node.BadStatusCount())
		}
	}
}

func TestExecuteRejectedByPrecheck(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.InsufficientPayerBalance))),
	})

	tx := newTransfer(t, node3)
	_, err := tx.Execute(context.Background(), client)
	require.Error(t, err)

	var precheck *PrecheckError
	require.True(t, errors.As(err, &precheck))
	assert.Equal(t, rcode.InsufficientPayerBalance, precheck.Status)
	id, _ := tx.TransactionID()
	require.NotNil(t, precheck.TransactionID)
	assert.True(t, precheck.TransactionID.Equal(id))
	assert.Equal(t, 1, r3.count())

	s, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, status.PrecheckServerStatus, s.Group)
}

func TestExecuteMaxAttemptsExceeded(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.Busy))),
	})

	tx := newTransfer(t, node3)
	require.NoError(t, tx.SetMaxAttempts(3))
	_, err := tx.Execute(context.Background(), client)

	var exceeded *MaxAttemptsExceededError
	require.True(t, errors.As(err, &exceeded), "unexpected error: %v", err)
	assert.Equal(t, 3, exceeded.Attempts)
	assert.Equal(t, 3, r3.count())

	var precheck *PrecheckError
	require.True(t, errors.As(exceeded.LastErr, &precheck))
	assert.Equal(t, rcode.Busy, precheck.Status)
}

func TestExecuteRegeneratesExpiredTransactionID(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.TransactionExpired)), answer(txResponse(rcode.OK))),
	})

	tx := newTransfer(t, node3)
	resp, err := tx.Execute(context.Background(), client)
	require.NoError(t, err)
	require.Equal(t, 2, r3.count())

	first := TransactionIDFromRecord(requestBody(t, r3.request(0)).Message("transactionID"))
	second := TransactionIDFromRecord(requestBody(t, r3.request(1)).Message("transactionID"))
	assert.False(t, first.Equal(second))
	assert.True(t, resp.TransactionID.Equal(second))
	assert.True(t, second.AccountID.Equal(operatorID))
}

func TestExecuteExpiredExplicitTransactionID(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.TransactionExpired))),
	})

	tx := newTransfer(t, node3)
	require.NoError(t, tx.SetTransactionID(GenerateTransactionID(operatorID)))
	_, err := tx.Execute(context.Background(), client)

	var precheck *PrecheckError
	require.True(t, errors.As(err, &precheck))
	assert.Equal(t, rcode.TransactionExpired, precheck.Status)
	assert.Equal(t, 1, r3.count())
}

func TestExecuteRegenerationDisabled(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.TransactionExpired))),
	})
	client.SetDefaultRegenerateTransactionID(false)

	_, err := newTransfer(t, node3).Execute(context.Background(), client)
	var precheck *PrecheckError
	require.True(t, errors.As(err, &precheck))
	assert.Equal(t, 1, r3.count())
}

func TestExecuteHonorsContext(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.Busy))),
	})
	require.NoError(t, client.SetMaxBackoff(time.Second))
	require.NoError(t, client.SetMinBackoff(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := newTransfer(t, node3).Execute(ctx, client)
	assertStatus(t, err, status.ClientStatus, status.Timeout)
}

func TestExecuteListeners(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.OK))),
	})

	var requests, responses []string
	tx := newTransfer(t, node3)
	tx.SetRequestListener(func(method string, _ []byte) { requests = append(requests, method) })
	tx.SetResponseListener(func(method string, _ []byte) { responses = append(responses, method) })

	_, err := tx.Execute(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, []string{hapi.CryptoTransfer}, requests)
	assert.Equal(t, []string{hapi.CryptoTransfer}, responses)
}

func TestExecuteAsync(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.OK))),
	})

	future := newTransfer(t, node3).ExecuteAsync(context.Background(), client)
	resp, err := future.Get()
	require.NoError(t, err)
	assert.Equal(t, node3, resp.NodeID)

	done := make(chan error, 1)
	newTransfer(t, node3).ExecuteWithCallback(context.Background(), client, func(_ *TransactionResponse, err error) {
		done <- err
	})
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not called")
	}
}

func TestExecutableSettings(t *testing.T) {
	tx := NewTransferTransaction()
	assertStatus(t, tx.SetNodeAccountIDs(nil), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, tx.SetMaxAttempts(0), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, tx.SetMaxBackoff(time.Millisecond), status.ClientStatus, status.InvalidArgument)

	require.NoError(t, tx.SetMinBackoff(time.Millisecond))
	require.NoError(t, tx.SetMaxBackoff(2*time.Millisecond))
	assertStatus(t, tx.SetMinBackoff(time.Second), status.ClientStatus, status.InvalidArgument)

	client := newTestClient(t, nil)
	params := tx.resolve(client)
	assert.Equal(t, time.Millisecond, params.minBackoff)
	assert.Equal(t, 2*time.Millisecond, params.maxBackoff)
	assert.Equal(t, client.MaxAttempts(), params.maxAttempts)
	assert.Equal(t, DefaultGrpcDeadline, params.grpcDeadline)
}
