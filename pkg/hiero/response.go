/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
)

// TransactionResponse tells which node accepted a transaction. The outcome
// is known once the receipt is available.
type TransactionResponse struct {
	NodeID        entity.AccountID
	TransactionID TransactionID
	Hash          []byte

	validateStatus bool
}

// SetValidateStatus sets whether GetReceipt and GetRecord fail with a
// ReceiptError when the transaction did not succeed. It is on by default.
func (r *TransactionResponse) SetValidateStatus(validate bool) *TransactionResponse {
	r.validateStatus = validate
	return r
}

// GetReceiptQuery returns the query for the receipt of the transaction,
// sent to the node that accepted it
func (r *TransactionResponse) GetReceiptQuery() *TransactionReceiptQuery {
	q := NewTransactionReceiptQuery().
		SetTransactionID(r.TransactionID).
		SetValidateStatus(r.validateStatus)
	q.nodeAccountIDs = []entity.AccountID{r.NodeID}
	return q
}

// GetRecordQuery returns the query for the record of the transaction, sent
// to the node that accepted it
func (r *TransactionResponse) GetRecordQuery() *TransactionRecordQuery {
	q := NewTransactionRecordQuery().
		SetTransactionID(r.TransactionID).
		SetValidateStatus(r.validateStatus)
	q.nodeAccountIDs = []entity.AccountID{r.NodeID}
	return q
}

// GetReceipt waits for the receipt of the transaction
func (r *TransactionResponse) GetReceipt(ctx context.Context, client *Client) (*TransactionReceipt, error) {
	return r.GetReceiptQuery().Execute(ctx, client)
}

// GetRecord waits for the receipt, then gets the record of the transaction
func (r *TransactionResponse) GetRecord(ctx context.Context, client *Client) (*TransactionRecord, error) {
	if _, err := r.GetReceipt(ctx, client); err != nil {
		return nil, err
	}
	return r.GetRecordQuery().Execute(ctx, client)
}

func (r *TransactionResponse) String() string {
	return fmt.Sprintf("TransactionResponse{node: %s, transactionID: %s, hash: %s}",
		r.NodeID, r.TransactionID, hex.EncodeToString(r.Hash))
}
