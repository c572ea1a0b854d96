/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
)

func TestTransactionReceiptBytes(t *testing.T) {
	accountID := entity.NewAccountID(0, 0, 3003)
	tokenID := entity.NewTokenID(0, 0, 4004)
	scheduled := NewTransactionIDWithValidStart(operatorID, time.Unix(1700000000, 5))
	receipt := TransactionReceipt{
		Status:                 rcode.Success,
		AccountID:              &accountID,
		TokenID:                &tokenID,
		TotalSupply:            1000,
		ScheduledTransactionID: &scheduled,
		SerialNumbers:          []int64{1, 2, 3},
	}

	decoded, err := TransactionReceiptFromBytes(receipt.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, rcode.Success, decoded.Status)
	require.NotNil(t, decoded.AccountID)
	assert.Equal(t, accountID, *decoded.AccountID)
	require.NotNil(t, decoded.TokenID)
	assert.Equal(t, tokenID, *decoded.TokenID)
	assert.Equal(t, uint64(1000), decoded.TotalSupply)
	require.NotNil(t, decoded.ScheduledTransactionID)
	assert.True(t, decoded.ScheduledTransactionID.Equal(scheduled))
	assert.Equal(t, []int64{1, 2, 3}, decoded.SerialNumbers)
	assert.Nil(t, decoded.FileID)
	assert.Nil(t, decoded.TopicID)

	_, err = TransactionReceiptFromBytes([]byte{0xff, 0xff})
	require.Error(t, err)
}

func TestTransactionReceiptValidateStatus(t *testing.T) {
	require.NoError(t, TransactionReceipt{Status: rcode.Success}.ValidateStatus())

	id := GenerateTransactionID(operatorID)
	err := TransactionReceipt{Status: rcode.InvalidSignature, TransactionID: &id}.ValidateStatus()
	var receiptErr *ReceiptError
	require.True(t, errors.As(err, &receiptErr))
	assert.Equal(t, rcode.InvalidSignature, receiptErr.Status)
	assert.True(t, receiptErr.TransactionID.Equal(id))
	require.NotNil(t, receiptErr.Receipt)
}

func TestReceiptPending(t *testing.T) {
	for _, code := range []rcode.Code{rcode.Busy, rcode.Unknown, rcode.ReceiptNotFound, rcode.RecordNotFound, rcode.PlatformNotActive} {
		assert.True(t, receiptPending(code), code.String())
	}
	for _, code := range []rcode.Code{rcode.OK, rcode.Success, rcode.InvalidSignature} {
		assert.False(t, receiptPending(code), code.String())
	}
}

func TestTransactionRecordBytes(t *testing.T) {
	id := NewTransactionIDWithValidStart(operatorID, time.Unix(1700000000, 42))
	schedule := entity.NewScheduleID(0, 0, 6006)
	consensus := time.Unix(1700000003, 999)
	record := TransactionRecord{
		Receipt:            TransactionReceipt{Status: rcode.Success},
		TransactionHash:    []byte{1, 2, 3},
		ConsensusTimestamp: consensus,
		TransactionID:      id,
		TransactionMemo:    "memo",
		TransactionFee:     hbar.FromTinybars(8000),
		Transfers: []Transfer{
			{AccountID: operatorID, Amount: hbar.FromTinybars(-100)},
			{AccountID: node3, Amount: hbar.FromTinybars(100)},
		},
		TokenTransfers: []TokenTransfers{{
			TokenID: testToken,
			Transfers: []TokenTransfer{
				{AccountID: operatorID, Amount: -5, IsApproved: true},
				{AccountID: node4, Amount: 5},
			},
		}},
		ScheduleRef: &schedule,
	}

	decoded, err := TransactionRecordFromBytes(record.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, rcode.Success, decoded.Receipt.Status)
	assert.Equal(t, []byte{1, 2, 3}, decoded.TransactionHash)
	assert.True(t, consensus.Equal(decoded.ConsensusTimestamp))
	assert.True(t, decoded.TransactionID.Equal(id))
	assert.Equal(t, "memo", decoded.TransactionMemo)
	assert.Equal(t, int64(8000), decoded.TransactionFee.Tinybars())
	assert.Equal(t, record.Transfers, decoded.Transfers)
	assert.Equal(t, record.TokenTransfers, decoded.TokenTransfers)
	require.NotNil(t, decoded.ScheduleRef)
	assert.Equal(t, schedule, *decoded.ScheduleRef)
}

func TestAccountInfoBytes(t *testing.T) {
	info := AccountInfo{
		AccountID:           operatorID,
		Key:                 operatorKey(t).PublicKey(),
		Balance:             hbar.New(10),
		ReceiverSigRequired: true,
		ExpirationTime:      time.Unix(1800000000, 0),
		AutoRenewPeriod:     90 * 24 * time.Hour,
		AccountMemo:         "account",
		LedgerID:            entity.LedgerTestnet,
	}

	decoded, err := AccountInfoFromBytes(info.ToBytes())
	require.NoError(t, err)
	assert.True(t, decoded.AccountID.Equal(operatorID))
	assert.Equal(t, hbar.New(10), decoded.Balance)
	assert.True(t, decoded.ReceiverSigRequired)
	assert.True(t, info.ExpirationTime.Equal(decoded.ExpirationTime))
	assert.Equal(t, 90*24*time.Hour, decoded.AutoRenewPeriod)
	assert.Equal(t, "account", decoded.AccountMemo)
	assert.Equal(t, entity.LedgerTestnet.Bytes(), decoded.LedgerID.Bytes())

	key, ok := decoded.Key.(keys.PublicKey)
	require.True(t, ok)
	assert.True(t, key.Equal(operatorKey(t).PublicKey()))

	_, err = AccountInfoFromRecord(nil)
	require.Error(t, err)
}

func TestTokenInfoBytes(t *testing.T) {
	autoRenew := entity.NewAccountID(0, 0, 7007)
	info := TokenInfo{
		TokenID:             testToken,
		Name:                "test token",
		Symbol:              "TT",
		Decimals:            2,
		TotalSupply:         500,
		Treasury:            operatorID,
		AdminKey:            operatorKey(t).PublicKey(),
		SupplyKey:           keys.NewKeyList(operatorKey(t).PublicKey()),
		DefaultFreezeStatus: TokenStatusOff,
		AutoRenewAccount:    &autoRenew,
		AutoRenewPeriod:     time.Hour,
		TokenMemo:           "token",
		MaxSupply:           1000,
	}

	decoded, err := TokenInfoFromBytes(info.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, testToken, decoded.TokenID)
	assert.Equal(t, "test token", decoded.Name)
	assert.Equal(t, uint32(2), decoded.Decimals)
	assert.Equal(t, uint64(500), decoded.TotalSupply)
	assert.Equal(t, TokenStatusOff, decoded.DefaultFreezeStatus)
	require.NotNil(t, decoded.AutoRenewAccount)
	assert.Equal(t, autoRenew, *decoded.AutoRenewAccount)
	assert.Equal(t, time.Hour, decoded.AutoRenewPeriod)
	assert.Equal(t, int64(1000), decoded.MaxSupply)

	require.NotNil(t, decoded.AdminKey)
	supply, ok := decoded.SupplyKey.(*keys.KeyList)
	require.True(t, ok)
	assert.Len(t, supply.Keys(), 1)
	assert.Nil(t, decoded.WipeKey)
	assert.Nil(t, decoded.PauseKey)
}
