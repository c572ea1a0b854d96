/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

var accountBalanceKind = &queryKind{
	Name:      "AccountBalanceQuery",
	QueryCase: "cryptogetAccountBalance",
	Method:    hapi.CryptoGetBalance,
	Schema:    hapi.CryptoGetAccountBalanceQuery,
	Free:      true,
}

var accountInfoKind = &queryKind{
	Name:      "AccountInfoQuery",
	QueryCase: "cryptoGetInfo",
	Method:    hapi.CryptoGetAccountInfo,
	Schema:    hapi.CryptoGetInfoQuery,
}

var tokenInfoKind = &queryKind{
	Name:      "TokenInfoQuery",
	QueryCase: "tokenGetInfo",
	Method:    hapi.TokenGetInfo,
	Schema:    hapi.TokenGetInfoQuery,
}

var transactionReceiptKind = &queryKind{
	Name:        "TransactionReceiptQuery",
	QueryCase:   "transactionGetReceipt",
	Method:      hapi.CryptoGetReceipt,
	Schema:      hapi.TransactionGetReceiptQuery,
	Free:        true,
	retry:       receiptRetry("receipt"),
	statusError: receiptStatusError("receipt"),
}

var transactionRecordKind = &queryKind{
	Name:        "TransactionRecordQuery",
	QueryCase:   "transactionGetRecord",
	Method:      hapi.CryptoGetRecord,
	Schema:      hapi.TransactionGetRecordQuery,
	retry:       receiptRetry("transactionRecord", "receipt"),
	statusError: receiptStatusError("transactionRecord", "receipt"),
}

// receiptOf follows path from a response down to its receipt
func receiptOf(response *wire.Record, path ...string) *wire.Record {
	r := response
	for _, field := range path {
		if r == nil {
			return nil
		}
		r = r.Message(field)
	}
	return r
}

// receiptRetry keeps asking while the network has not decided on the
// transaction, both as precheck code and as receipt status
func receiptRetry(path ...string) func(*Query, rcode.Code, *wire.Record) (executionState, bool) {
	return func(q *Query, code rcode.Code, response *wire.Record) (executionState, bool) {
		if receiptPending(code) {
			return executionRetry, true
		}
		if code != rcode.OK {
			return executionRequestError, true
		}
		if q.getCost {
			return executionFinished, true
		}
		if receipt := receiptOf(response, path...); receipt != nil && receiptPending(rcode.Code(receipt.Int("status"))) {
			return executionRetry, true
		}
		return executionFinished, true
	}
}

func receiptStatusError(path ...string) func(*Query, rcode.Code, *wire.Record) error {
	return func(q *Query, code rcode.Code, response *wire.Record) error {
		receipt := receiptOf(response, path...)
		if code != rcode.OK || receipt == nil {
			return nil
		}
		r := TransactionReceiptFromRecord(receipt)
		err := &ReceiptError{Status: r.Status, Receipt: &r}
		if id := q.data.Message("transactionID"); id != nil {
			err.TransactionID = TransactionIDFromRecord(id)
		}
		return err
	}
}

// AccountBalanceQuery gets the balance of an account or contract. It is
// free of charge.
type AccountBalanceQuery struct {
	*Query
}

// NewAccountBalanceQuery returns an empty balance query
func NewAccountBalanceQuery() *AccountBalanceQuery {
	return &AccountBalanceQuery{newQuery(accountBalanceKind)}
}

// SetAccountID sets the account; it replaces a contract ID
func (q *AccountBalanceQuery) SetAccountID(id entity.AccountID) *AccountBalanceQuery {
	delete(q.entityIDs, "contractID")
	q.setEntities("accountID", id.ToRecord(), id)
	return q
}

// SetContractID sets the contract; it replaces an account ID
func (q *AccountBalanceQuery) SetContractID(id entity.ContractID) *AccountBalanceQuery {
	delete(q.entityIDs, "accountID")
	q.setEntities("contractID", id.ToRecord(), id)
	return q
}

// Execute gets the balance
func (q *AccountBalanceQuery) Execute(ctx context.Context, client *Client) (*AccountBalance, error) {
	resp, err := q.execute(ctx, client)
	if err != nil {
		return nil, err
	}
	balance := accountBalanceFromRecord(resp)
	return &balance, nil
}

// AccountInfoQuery gets the info of an account
type AccountInfoQuery struct {
	*Query
}

// NewAccountInfoQuery returns an empty account info query
func NewAccountInfoQuery() *AccountInfoQuery {
	return &AccountInfoQuery{newQuery(accountInfoKind)}
}

// SetAccountID sets the account
func (q *AccountInfoQuery) SetAccountID(id entity.AccountID) *AccountInfoQuery {
	q.setEntities("accountID", id.ToRecord(), id)
	return q
}

// Execute gets the account info
func (q *AccountInfoQuery) Execute(ctx context.Context, client *Client) (*AccountInfo, error) {
	resp, err := q.execute(ctx, client)
	if err != nil {
		return nil, err
	}
	info, err := AccountInfoFromRecord(resp.Message("accountInfo"))
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// TokenInfoQuery gets the info of a token
type TokenInfoQuery struct {
	*Query
}

// NewTokenInfoQuery returns an empty token info query
func NewTokenInfoQuery() *TokenInfoQuery {
	return &TokenInfoQuery{newQuery(tokenInfoKind)}
}

// SetTokenID sets the token
func (q *TokenInfoQuery) SetTokenID(id entity.TokenID) *TokenInfoQuery {
	q.setEntities("token", id.ToRecord(), id)
	return q
}

// Execute gets the token info
func (q *TokenInfoQuery) Execute(ctx context.Context, client *Client) (*TokenInfo, error) {
	resp, err := q.execute(ctx, client)
	if err != nil {
		return nil, err
	}
	info, err := TokenInfoFromRecord(resp.Message("tokenInfo"))
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// TransactionReceiptQuery gets the receipt of a transaction. It is free of
// charge and keeps asking until the transaction reached consensus.
type TransactionReceiptQuery struct {
	*Query
	validateStatus bool
}

// NewTransactionReceiptQuery returns an empty receipt query
func NewTransactionReceiptQuery() *TransactionReceiptQuery {
	return &TransactionReceiptQuery{Query: newQuery(transactionReceiptKind)}
}

// SetTransactionID sets the transaction
func (q *TransactionReceiptQuery) SetTransactionID(id TransactionID) *TransactionReceiptQuery {
	q.setEntities("transactionID", id.ToRecord(), id.AccountID)
	return q
}

// SetIncludeChildren asks for the receipts of child transactions
func (q *TransactionReceiptQuery) SetIncludeChildren(include bool) *TransactionReceiptQuery {
	q.data.Set("include_child_receipts", include)
	return q
}

// SetIncludeDuplicates asks for the receipts of duplicate submissions
func (q *TransactionReceiptQuery) SetIncludeDuplicates(include bool) *TransactionReceiptQuery {
	q.data.Set("includeDuplicates", include)
	return q
}

// SetValidateStatus makes Execute fail with a ReceiptError when the
// receipt status is not SUCCESS
func (q *TransactionReceiptQuery) SetValidateStatus(validate bool) *TransactionReceiptQuery {
	q.validateStatus = validate
	return q
}

// Execute gets the receipt
func (q *TransactionReceiptQuery) Execute(ctx context.Context, client *Client) (*TransactionReceipt, error) {
	resp, err := q.execute(ctx, client)
	if err != nil {
		return nil, err
	}
	receipt := TransactionReceiptFromRecord(resp.Message("receipt"))
	id := TransactionIDFromRecord(q.data.Message("transactionID"))
	receipt.TransactionID = &id
	receipt.Duplicates = receiptsFromRecords(resp.Messages("duplicateTransactionReceipts"))
	receipt.Children = receiptsFromRecords(resp.Messages("child_transaction_receipts"))
	if q.validateStatus {
		if err := receipt.ValidateStatus(); err != nil {
			return nil, err
		}
	}
	return &receipt, nil
}

// TransactionRecordQuery gets the record of a transaction
type TransactionRecordQuery struct {
	*Query
	validateStatus bool
}

// NewTransactionRecordQuery returns an empty record query
func NewTransactionRecordQuery() *TransactionRecordQuery {
	return &TransactionRecordQuery{Query: newQuery(transactionRecordKind)}
}

// SetTransactionID sets the transaction
func (q *TransactionRecordQuery) SetTransactionID(id TransactionID) *TransactionRecordQuery {
	q.setEntities("transactionID", id.ToRecord(), id.AccountID)
	return q
}

// SetIncludeDuplicates asks for the records of duplicate submissions
func (q *TransactionRecordQuery) SetIncludeDuplicates(include bool) *TransactionRecordQuery {
	q.data.Set("includeDuplicates", include)
	return q
}

// SetValidateStatus makes Execute fail with a ReceiptError when the
// receipt status of the record is not SUCCESS
func (q *TransactionRecordQuery) SetValidateStatus(validate bool) *TransactionRecordQuery {
	q.validateStatus = validate
	return q
}

// Execute gets the record
func (q *TransactionRecordQuery) Execute(ctx context.Context, client *Client) (*TransactionRecord, error) {
	resp, err := q.execute(ctx, client)
	if err != nil {
		return nil, err
	}
	record := TransactionRecordFromRecord(resp.Message("transactionRecord"))
	if record.TransactionID.IsZero() {
		record.TransactionID = TransactionIDFromRecord(q.data.Message("transactionID"))
	}
	if q.validateStatus {
		id := record.TransactionID
		record.Receipt.TransactionID = &id
		if err := record.Receipt.ValidateStatus(); err != nil {
			return nil, err
		}
	}
	return &record, nil
}
