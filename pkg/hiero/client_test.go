/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/retry"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
)

func TestClientDefaults(t *testing.T) {
	client, err := ForNetwork(testBook, noDial())
	require.NoError(t, err)
	closeClient(t, client)

	assert.Equal(t, retry.DefaultAttempts, client.MaxAttempts())
	assert.Equal(t, retry.DefaultInitialBackoff, client.MinBackoff())
	assert.Equal(t, retry.DefaultMaxBackoff, client.MaxBackoff())
	assert.Equal(t, DefaultGrpcDeadline, client.GrpcDeadline())
	assert.Equal(t, DefaultRequestTimeout, client.RequestTimeout())
	assert.Equal(t, DefaultMaxQueryPayment, client.MaxQueryPayment())
	assert.True(t, client.RegenerateTransactionID())
	assert.False(t, client.AutoValidateChecksums())
	assert.Nil(t, client.Operator())

	_, ok := client.MaxTransactionFee()
	assert.False(t, ok)
	assert.Equal(t, testBook, client.GetNetwork())
}

func TestClientSettersValidate(t *testing.T) {
	client, err := ForNetwork(testBook, noDial())
	require.NoError(t, err)
	closeClient(t, client)

	assertStatus(t, client.SetMaxAttempts(0), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetMinBackoff(-time.Second), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetMaxBackoff(time.Millisecond), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetGrpcDeadline(0), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetRequestTimeout(0), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetDefaultMaxTransactionFee(hbar.FromTinybars(-1)), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetDefaultMaxQueryPayment(hbar.FromTinybars(-1)), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetMaxNodesPerRequest(-1), status.ClientStatus, status.InvalidArgument)

	require.NoError(t, client.SetDefaultMaxTransactionFee(hbar.New(3)))
	fee, ok := client.MaxTransactionFee()
	require.True(t, ok)
	assert.Equal(t, hbar.New(3), fee)
}

func TestClientForName(t *testing.T) {
	for _, name := range []string{"mainnet", "testnet", "previewnet"} {
		client, err := ForName(name, noDial())
		require.NoError(t, err, name)
		closeClient(t, client)
		assert.NotEmpty(t, client.GetNetwork(), name)
		assert.NotEmpty(t, client.MirrorNetwork(), name)
	}

	_, err := ForName("nonet")
	assertStatus(t, err, status.ClientStatus, status.InvalidArgument)
}

func TestClientForLedgerChecksums(t *testing.T) {
	client, err := ForTestnet(noDial())
	require.NoError(t, err)
	closeClient(t, client)

	assert.Equal(t, entity.LedgerTestnet, client.GetLedgerID())
	id, err := entity.AccountIDFromString("0.0.123-" + entity.Checksum("0.0.123", entity.LedgerTestnet))
	require.NoError(t, err)
	require.NoError(t, id.ValidateChecksum(client))
}

func TestClientOperatorWithSigner(t *testing.T) {
	client, err := ForNetwork(testBook, noDial())
	require.NoError(t, err)
	closeClient(t, client)

	key := operatorKey(t)
	var signed int
	client.SetOperatorWith(operatorID, key.PublicKey(), func(message []byte) []byte {
		signed++
		return key.Sign(message)
	})

	accountID, ok := client.OperatorAccountID()
	require.True(t, ok)
	assert.Equal(t, operatorID, accountID)

	msg := []byte("payload")
	assert.True(t, key.PublicKey().Verify(msg, client.Operator().Sign(msg)))
	assert.Equal(t, 1, signed)
}

func TestClientMetrics(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.Busy)), answer(txResponse(rcode.OK))),
	})
	registry := prometheus.NewRegistry()
	require.NoError(t, client.EnableMetrics(registry))

	_, err := newTransfer(t, node3).Execute(context.Background(), client)
	require.NoError(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["hiero_client_requests_received"])
	assert.True(t, names["hiero_client_node_attempts"])
	assert.True(t, names["hiero_client_request_duration"])

	// a second client shares the registry
	other := newTestClient(t, nil)
	require.NoError(t, other.EnableMetrics(registry))
}

func TestClientRequestRate(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(txResponse(rcode.OK))),
	})
	client.SetRequestRate(1, 1)

	_, err := newTransfer(t, node3).Execute(context.Background(), client)
	require.NoError(t, err)

	// the burst is spent; a short deadline cannot wait for the next token
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = newTransfer(t, node3).Execute(ctx, client)
	assertStatus(t, err, status.ClientStatus, status.Timeout)

	client.SetRequestRate(0, 0)
	_, err = newTransfer(t, node3).Execute(context.Background(), client)
	require.NoError(t, err)
}
