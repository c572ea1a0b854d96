/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// ToBytes encodes the frozen transaction as a TransactionList holding the
// signed transaction of every node
func (t *Transaction) ToBytes() ([]byte, error) {
	if !t.frozen {
		return nil, status.Errorf(status.IllegalState, "transaction must be frozen before it is converted to bytes")
	}
	list := hapi.TransactionList.New()
	for i := range t.bodies {
		list.Append("transaction_list", t.nodeTransaction(i))
	}
	return list.Marshal(), nil
}

// TransactionFromBytes decodes a TransactionList or a single Transaction,
// as produced by ToBytes, into a frozen transaction. The bytes of a bare
// TransactionBody decode into an unfrozen transaction.
func TransactionFromBytes(b []byte) (*Transaction, error) {
	// A body is tried first: list and envelope bytes never decode to a
	// TransactionBody holding data.
	if body, err := wire.Unmarshal(hapi.TransactionBody, b); err == nil && body.WhichOneof(hapi.DataCase) != "" {
		kind, err := kindForDataCase(body.WhichOneof(hapi.DataCase))
		if err != nil {
			return nil, err
		}
		return transactionFromBody(body, kind)
	}
	if txs, ok := decodeTransactionList(b); ok {
		return transactionFromList(txs)
	}
	if tx, err := wire.Unmarshal(hapi.Transaction, b); err == nil && isTransaction(tx) {
		return transactionFromList([]*wire.Record{tx})
	}
	return nil, status.Errorf(status.InvalidArgument, "bytes are not a transaction")
}

func decodeTransactionList(b []byte) ([]*wire.Record, bool) {
	list, err := wire.Unmarshal(hapi.TransactionList, b)
	if err != nil {
		return nil, false
	}
	txs := list.Messages("transaction_list")
	if len(txs) == 0 {
		return nil, false
	}
	for _, tx := range txs {
		if !isTransaction(tx) {
			return nil, false
		}
	}
	return txs, true
}

func isTransaction(tx *wire.Record) bool {
	return tx.Has("signedTransactionBytes") || tx.Has("bodyBytes")
}

// transactionFromList rebuilds a frozen transaction from one signed
// Transaction per node. All of them must share the transaction ID.
func transactionFromList(txs []*wire.Record) (*Transaction, error) {
	var t *Transaction
	for _, tx := range txs {
		signed, err := signedTransaction(tx)
		if err != nil {
			return nil, err
		}
		bodyBytes := signed.GetBytes("bodyBytes")
		body, err := wire.Unmarshal(hapi.TransactionBody, bodyBytes)
		if err != nil {
			return nil, status.Errorf(status.InvalidArgument, "invalid transaction body: %s", err)
		}

		if t == nil {
			kind, err := kindForDataCase(body.WhichOneof(hapi.DataCase))
			if err != nil {
				return nil, err
			}
			if t, err = transactionFromBody(body, kind); err != nil {
				return nil, err
			}
			if t.transactionID == nil {
				return nil, status.Errorf(status.InvalidArgument, "transaction has no transaction ID")
			}
			t.nodeAccountIDs = nil
		} else if id := TransactionIDFromRecord(body.Message("transactionID")); !id.Equal(*t.transactionID) {
			return nil, status.Errorf(status.InvalidArgument, "transaction list mixes transaction IDs %s and %s", t.transactionID, id)
		}

		t.nodeAccountIDs = append(t.nodeAccountIDs, entity.AccountIDFromRecord(body.Message("nodeAccountID")))
		t.bodies = append(t.bodies, bodyBytes)
		var pairs []*wire.Record
		if sigMap := signed.Message("sigMap"); sigMap != nil {
			pairs = sigMap.Messages("sigPair")
		}
		t.sigPairs = append(t.sigPairs, pairs)
	}
	t.frozen = true
	return t, nil
}

// transactionFromBody returns an unfrozen transaction of kind holding the
// fields of body
func transactionFromBody(body *wire.Record, kind *TransactionKind) (*Transaction, error) {
	data := body.Message(kind.DataCase)
	if data == nil {
		return nil, status.Errorf(status.InvalidArgument, "transaction body has no %s data", kind.DataCase)
	}

	t := newTransaction(kind)
	t.data = data.Clone()
	if r := body.Message("transactionID"); r != nil {
		id := TransactionIDFromRecord(r)
		t.transactionID = &id
	}
	if r := body.Message("nodeAccountID"); r != nil {
		t.nodeAccountIDs = []entity.AccountID{entity.AccountIDFromRecord(r)}
	}
	if body.Has("transactionFee") {
		fee := hbar.FromTinybars(int64(body.Uint("transactionFee")))
		t.maxTransactionFee = &fee
	}
	if r := body.Message("transactionValidDuration"); r != nil {
		t.validDuration = durationFromRecord(r)
	}
	t.memo = body.GetString("memo")
	return t, nil
}
