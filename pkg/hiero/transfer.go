/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

var transferKind = registerKind(&TransactionKind{
	Name:          "TransferTransaction",
	DataCase:      "cryptoTransfer",
	Method:        hapi.CryptoTransfer,
	Schema:        hapi.CryptoTransferTransactionBody,
	DefaultMaxFee: hbar.New(2),
})

// TransferTransaction moves hbar and fungible tokens between accounts. The
// amounts of each currency must sum to zero. Transfers of the same account
// are merged.
type TransferTransaction struct {
	*Transaction
}

// NewTransferTransaction returns an empty transfer
func NewTransferTransaction() *TransferTransaction {
	return &TransferTransaction{newTransaction(transferKind)}
}

// AddHbarTransfer adds amount to account; negative amounts debit it
func (t *TransferTransaction) AddHbarTransfer(accountID entity.AccountID, amount hbar.Amount) error {
	return t.addHbarTransfer(accountID, amount, false)
}

// AddApprovedHbarTransfer debits an account through an allowance granted to
// the payer
func (t *TransferTransaction) AddApprovedHbarTransfer(accountID entity.AccountID, amount hbar.Amount) error {
	return t.addHbarTransfer(accountID, amount, true)
}

func (t *TransferTransaction) addHbarTransfer(accountID entity.AccountID, amount hbar.Amount, approved bool) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	list := t.data.Message("transfers")
	if list == nil {
		list = hapi.TransferList.New()
		t.data.Set("transfers", list)
	}
	addAccountAmount(list, "accountAmounts", accountID, amount.Tinybars(), approved)
	t.entityIDs["transfers"] = append(t.entityIDs["transfers"], accountID)
	return nil
}

// AddTokenTransfer adds amount of a fungible token to account; negative
// amounts debit it
func (t *TransferTransaction) AddTokenTransfer(tokenID entity.TokenID, accountID entity.AccountID, amount int64) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	var list *wire.Record
	for _, tl := range t.data.Messages("tokenTransfers") {
		if entity.TokenIDFromRecord(tl.Message("token")).Equal(tokenID) {
			list = tl
			break
		}
	}
	if list == nil {
		list = hapi.TokenTransferList.New().Set("token", tokenID.ToRecord())
		t.data.Append("tokenTransfers", list)
	}
	addAccountAmount(list, "transfers", accountID, amount, false)
	t.entityIDs["tokenTransfers"] = append(t.entityIDs["tokenTransfers"], tokenID, accountID)
	return nil
}

func addAccountAmount(list *wire.Record, field string, accountID entity.AccountID, amount int64, approved bool) {
	for _, aa := range list.Messages(field) {
		if entity.AccountIDFromRecord(aa.Message("accountID")).Equal(accountID) && aa.Bool("is_approval") == approved {
			aa.Set("amount", aa.Int("amount")+amount)
			return
		}
	}
	aa := hapi.AccountAmount.New().
		Set("accountID", accountID.ToRecord()).
		Set("amount", amount)
	if approved {
		aa.Set("is_approval", true)
	}
	list.Append(field, aa)
}

// GetHbarTransfers returns the hbar transfers by account
func (t *TransferTransaction) GetHbarTransfers() map[entity.AccountID]hbar.Amount {
	transfers := make(map[entity.AccountID]hbar.Amount)
	if list := t.data.Message("transfers"); list != nil {
		for _, aa := range list.Messages("accountAmounts") {
			id := entity.AccountIDFromRecord(aa.Message("accountID"))
			transfers[id] = hbar.FromTinybars(transfers[id].Tinybars() + aa.Int("amount"))
		}
	}
	return transfers
}

// GetTokenTransfers returns the token transfers by token and account
func (t *TransferTransaction) GetTokenTransfers() map[entity.TokenID]map[entity.AccountID]int64 {
	transfers := make(map[entity.TokenID]map[entity.AccountID]int64)
	for _, tl := range t.data.Messages("tokenTransfers") {
		tokenID := entity.TokenIDFromRecord(tl.Message("token"))
		if transfers[tokenID] == nil {
			transfers[tokenID] = make(map[entity.AccountID]int64)
		}
		for _, aa := range tl.Messages("transfers") {
			transfers[tokenID][entity.AccountIDFromRecord(aa.Message("accountID"))] += aa.Int("amount")
		}
	}
	return transfers
}
