/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

func assertStatus(t *testing.T, err error, group status.Group, code status.Code) {
	t.Helper()
	require.Error(t, err)
	s, ok := status.FromError(err)
	require.True(t, ok, "not a status error: %s", err)
	assert.Equal(t, group, s.Group)
	assert.EqualValues(t, code, s.Code)
}

func newFrozenTransfer(t *testing.T, nodes ...entity.AccountID) *TransferTransaction {
	tx := NewTransferTransaction()
	require.NoError(t, tx.SetTransactionID(NewTransactionIDWithValidStart(operatorID, time.Unix(1700000000, 1))))
	require.NoError(t, tx.SetNodeAccountIDs(nodes))
	require.NoError(t, tx.AddHbarTransfer(operatorID, hbar.New(-1)))
	require.NoError(t, tx.AddHbarTransfer(entity.NewAccountID(0, 0, 2002), hbar.New(1)))
	_, err := tx.Freeze()
	require.NoError(t, err)
	return tx
}

func TestFreezeRequiresIDAndNodes(t *testing.T) {
	tx := NewTransferTransaction()
	_, err := tx.Freeze()
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
	assert.False(t, tx.IsFrozen())

	require.NoError(t, tx.SetTransactionID(GenerateTransactionID(operatorID)))
	_, err = tx.Freeze()
	assertStatus(t, err, status.ClientStatus, status.IllegalState)

	require.NoError(t, tx.SetNodeAccountIDs([]entity.AccountID{node3}))
	_, err = tx.Freeze()
	require.NoError(t, err)
	assert.True(t, tx.IsFrozen())

	// freezing again keeps the frozen state
	_, err = tx.Freeze()
	require.NoError(t, err)
}

func TestFreezeWithClient(t *testing.T) {
	client := newTestClient(t, nil)
	require.NoError(t, client.SetMaxNodesPerRequest(2))

	tx := NewTransferTransaction()
	_, err := tx.FreezeWith(client)
	require.NoError(t, err)

	id, ok := tx.TransactionID()
	require.True(t, ok)
	assert.True(t, id.AccountID.Equal(operatorID))
	assert.ElementsMatch(t, []entity.AccountID{node3, node4}, tx.NodeAccountIDs())

	body, err := wire.Unmarshal(hapi.TransactionBody, tx.bodies[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(transferKind.DefaultMaxFee.Tinybars()), body.Uint("transactionFee"))
}

func TestFreezeWithClientWithoutOperator(t *testing.T) {
	client := newTestClient(t, nil)
	client.operator = nil

	_, err := NewTransferTransaction().FreezeWith(client)
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
}

func TestFrozenTransactionIsImmutable(t *testing.T) {
	tx := newFrozenTransfer(t, node3)

	assertStatus(t, tx.SetTransactionMemo("memo"), status.ClientStatus, status.IllegalState)
	assertStatus(t, tx.SetMaxTransactionFee(hbar.New(3)), status.ClientStatus, status.IllegalState)
	assertStatus(t, tx.SetNodeAccountIDs([]entity.AccountID{node4}), status.ClientStatus, status.IllegalState)
	assertStatus(t, tx.SetMaxAttempts(3), status.ClientStatus, status.IllegalState)
	assertStatus(t, tx.AddHbarTransfer(operatorID, hbar.New(1)), status.ClientStatus, status.IllegalState)
	assert.Equal(t, "", tx.TransactionMemo())
}

func TestMaxTransactionFeeFallback(t *testing.T) {
	client := newTestClient(t, nil)

	tx := NewTokenCreateTransaction()
	assert.Equal(t, hbar.New(40), tx.resolveFee(client))

	require.NoError(t, client.SetDefaultMaxTransactionFee(hbar.New(7)))
	assert.Equal(t, hbar.New(7), tx.resolveFee(client))

	require.NoError(t, tx.SetMaxTransactionFee(hbar.New(9)))
	assert.Equal(t, hbar.New(9), tx.resolveFee(client))

	assertStatus(t, tx.SetMaxTransactionFee(hbar.New(-1)), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, client.SetDefaultMaxTransactionFee(hbar.New(-1)), status.ClientStatus, status.InvalidArgument)
}

func TestTokenDeleteRequiresToken(t *testing.T) {
	tx := NewTokenDeleteTransaction()
	require.NoError(t, tx.SetTransactionID(GenerateTransactionID(operatorID)))
	require.NoError(t, tx.SetNodeAccountIDs([]entity.AccountID{node3}))

	_, err := tx.Freeze()
	assertStatus(t, err, status.ClientStatus, status.InvalidArgument)
	assert.False(t, tx.IsFrozen())

	require.NoError(t, tx.SetTokenID(entity.NewTokenID(0, 0, 5005)))
	_, err = tx.Freeze()
	require.NoError(t, err)
}

func TestTokenDeleteFromBodyWithoutPayload(t *testing.T) {
	body := hapi.TransactionBody.New().
		Set("transactionID", GenerateTransactionID(operatorID).ToRecord()).
		Set("memo", "no payload")
	_, err := NewTokenDeleteTransactionFromBody(body)
	assertStatus(t, err, status.ClientStatus, status.InvalidArgument)
}

func TestSignIsIdempotent(t *testing.T) {
	tx := newFrozenTransfer(t, node3, node4)
	key := operatorKey(t)

	require.NoError(t, tx.Sign(key))
	require.NoError(t, tx.Sign(key))

	sigs, err := tx.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	for node, pairs := range sigs {
		require.Len(t, pairs, 1, "node %s", node)
		assert.Equal(t, key.PublicKey().BytesRaw(), pairs[0].PublicKeyPrefix)

		i := nodeIndex(tx.nodeAccountIDs, node)
		assert.True(t, key.PublicKey().Verify(tx.bodies[i], pairs[0].Signature))
	}
}

func TestSignRequiresFrozen(t *testing.T) {
	tx := NewTransferTransaction()
	assertStatus(t, tx.Sign(operatorKey(t)), status.ClientStatus, status.IllegalState)
	_, err := tx.Hash()
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
	_, err = tx.ToBytes()
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
}

func TestAddSignatureRequiresSingleNode(t *testing.T) {
	key := operatorKey(t)

	multi := newFrozenTransfer(t, node3, node4)
	assertStatus(t, multi.AddSignature(key.PublicKey(), []byte{1}), status.ClientStatus, status.IllegalState)

	single := newFrozenTransfer(t, node3)
	signature := key.Sign(single.bodies[0])
	require.NoError(t, single.AddSignature(key.PublicKey(), signature))

	sigs, err := single.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs[node3], 1)
	assert.Equal(t, signature, sigs[node3][0].Signature)
}

func TestHashChangesWithSignatures(t *testing.T) {
	tx := newFrozenTransfer(t, node3, node4)

	unsigned, err := tx.Hash()
	require.NoError(t, err)
	assert.Len(t, unsigned, 48)

	require.NoError(t, tx.Sign(operatorKey(t)))
	signed, err := tx.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, unsigned, signed)

	perNode, err := tx.HashPerNode()
	require.NoError(t, err)
	require.Len(t, perNode, 2)
	assert.Equal(t, signed, perNode[node3])
	assert.NotEqual(t, perNode[node3], perNode[node4])
}

func TestTransactionBytesRoundTrip(t *testing.T) {
	tx := NewTransferTransaction()
	require.NoError(t, tx.SetTransactionID(NewTransactionIDWithValidStart(operatorID, time.Unix(1700000000, 5))))
	require.NoError(t, tx.SetNodeAccountIDs([]entity.AccountID{node3, node4}))
	require.NoError(t, tx.SetTransactionMemo("round trip"))
	require.NoError(t, tx.SetMaxTransactionFee(hbar.New(3)))
	require.NoError(t, tx.AddHbarTransfer(operatorID, hbar.New(-5)))
	require.NoError(t, tx.AddHbarTransfer(entity.NewAccountID(0, 0, 2002), hbar.New(5)))
	_, err := tx.Freeze()
	require.NoError(t, err)
	require.NoError(t, tx.Sign(operatorKey(t)))

	b, err := tx.ToBytes()
	require.NoError(t, err)

	decoded, err := TransactionFromBytes(b)
	require.NoError(t, err)
	assert.True(t, decoded.IsFrozen())
	assert.Equal(t, transferKind, decoded.Kind())
	assert.Equal(t, "round trip", decoded.TransactionMemo())
	assert.Equal(t, []entity.AccountID{node3, node4}, decoded.NodeAccountIDs())

	id, ok := decoded.TransactionID()
	require.True(t, ok)
	assert.True(t, id.Equal(*tx.transactionID))

	fee, ok := decoded.MaxTransactionFee()
	require.True(t, ok)
	assert.Equal(t, hbar.New(3), fee)

	want, err := tx.HashPerNode()
	require.NoError(t, err)
	got, err := decoded.HashPerNode()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	again, err := decoded.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestTransactionFromBodyBytes(t *testing.T) {
	body := hapi.TransactionBody.New().
		Set("transactionID", GenerateTransactionID(operatorID).ToRecord()).
		Set("nodeAccountID", node3.ToRecord()).
		Set("memo", "body only").
		Set("tokenDeletion", hapi.TokenDeleteTransactionBody.New().Set("token", entity.NewTokenID(0, 0, 7).ToRecord()))

	tx, err := TransactionFromBytes(body.Marshal())
	require.NoError(t, err)
	assert.False(t, tx.IsFrozen())
	assert.Equal(t, tokenDeleteKind, tx.Kind())
	assert.Equal(t, "body only", tx.TransactionMemo())

	// still editable
	require.NoError(t, tx.SetTransactionMemo("edited"))
}

func TestTransactionFromBytesInvalid(t *testing.T) {
	_, err := TransactionFromBytes([]byte{0xff, 0xff, 0xff})
	assertStatus(t, err, status.ClientStatus, status.InvalidArgument)
}

func TestValidateChecksums(t *testing.T) {
	good, err := entity.AccountIDFromString("0.0.123-" + entity.Checksum("0.0.123", entity.LedgerTestnet))
	require.NoError(t, err)
	bad, err := entity.AccountIDFromString("0.0.124-" + entity.Checksum("0.0.123", entity.LedgerTestnet))
	require.NoError(t, err)

	tx := NewTransferTransaction()
	require.NoError(t, tx.AddHbarTransfer(good, hbar.New(1)))
	require.NoError(t, tx.AddHbarTransfer(operatorID, hbar.New(-1)))
	require.NoError(t, tx.ValidateChecksums(entity.LedgerTestnet))

	require.NoError(t, tx.AddHbarTransfer(bad, hbar.New(0)))
	err = tx.ValidateChecksums(entity.LedgerTestnet)
	assertStatus(t, err, status.ClientStatus, status.BadEntityID)
}

func TestTransferMergesAmounts(t *testing.T) {
	tx := NewTransferTransaction()
	receiver := entity.NewAccountID(0, 0, 2002)
	token := entity.NewTokenID(0, 0, 9)

	require.NoError(t, tx.AddHbarTransfer(receiver, hbar.New(1)))
	require.NoError(t, tx.AddHbarTransfer(receiver, hbar.New(2)))
	require.NoError(t, tx.AddTokenTransfer(token, receiver, 10))
	require.NoError(t, tx.AddTokenTransfer(token, receiver, -4))

	assert.Equal(t, map[entity.AccountID]hbar.Amount{receiver: hbar.New(3)}, tx.GetHbarTransfers())
	assert.Equal(t, int64(6), tx.GetTokenTransfers()[token][receiver])
	assert.Len(t, tx.data.Message("transfers").Messages("accountAmounts"), 1)
}

func TestScheduleTransaction(t *testing.T) {
	tx := NewTransferTransaction()
	require.NoError(t, tx.SetTransactionID(GenerateTransactionID(operatorID)))
	require.NoError(t, tx.SetTransactionMemo("scheduled"))
	require.NoError(t, tx.AddHbarTransfer(operatorID, hbar.New(-1)))
	require.NoError(t, tx.AddHbarTransfer(entity.NewAccountID(0, 0, 2002), hbar.New(1)))

	scheduled, err := tx.Schedule()
	require.NoError(t, err)
	body := scheduled.data.Message("scheduledTransactionBody")
	require.NotNil(t, body)
	assert.Equal(t, "scheduled", body.GetString("memo"))
	assert.Equal(t, uint64(transferKind.DefaultMaxFee.Tinybars()), body.Uint("transactionFee"))
	assert.NotNil(t, body.Message("cryptoTransfer"))

	id, ok := scheduled.TransactionID()
	require.True(t, ok)
	assert.True(t, id.AccountID.Equal(operatorID))

	frozen := newFrozenTransfer(t, node3)
	_, err = frozen.Schedule()
	assertStatus(t, err, status.ClientStatus, status.IllegalState)

	withNodes := NewTransferTransaction()
	require.NoError(t, withNodes.SetNodeAccountIDs([]entity.AccountID{node3}))
	_, err = withNodes.Schedule()
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
}

func TestAccountCreateSetters(t *testing.T) {
	tx := NewAccountCreateTransaction()
	key := operatorKey(t).PublicKey()
	require.NoError(t, tx.SetKey(key))
	require.NoError(t, tx.SetInitialBalance(hbar.New(10)))
	assertStatus(t, tx.SetAlias([]byte{1, 2, 3}), status.ClientStatus, status.InvalidArgument)

	got, err := tx.GetKey()
	require.NoError(t, err)
	pub, ok := got.(keys.PublicKey)
	require.True(t, ok)
	assert.True(t, pub.Equal(key))
	assert.Equal(t, hbar.New(10), tx.GetInitialBalance())
}
