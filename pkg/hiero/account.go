/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
)

// DefaultAutoRenewPeriod is the auto renew period of new accounts, topics
// and tokens, about three months
const DefaultAutoRenewPeriod = 7890000 * time.Second

var accountCreateKind = registerKind(&TransactionKind{
	Name:          "AccountCreateTransaction",
	DataCase:      "cryptoCreateAccount",
	Method:        hapi.CryptoCreateAccount,
	Schema:        hapi.CryptoCreateTransactionBody,
	DefaultMaxFee: hbar.New(5),
	Required:      []string{"key"},
})

var accountDeleteKind = registerKind(&TransactionKind{
	Name:          "AccountDeleteTransaction",
	DataCase:      "cryptoDelete",
	Method:        hapi.CryptoDelete,
	Schema:        hapi.CryptoDeleteTransactionBody,
	DefaultMaxFee: hbar.New(2),
	Required:      []string{"deleteAccountID", "transferAccountID"},
})

// AccountCreateTransaction creates an account controlled by a key
type AccountCreateTransaction struct {
	*Transaction
}

// NewAccountCreateTransaction returns an account create transaction with
// the default auto renew period
func NewAccountCreateTransaction() *AccountCreateTransaction {
	t := &AccountCreateTransaction{newTransaction(accountCreateKind)}
	t.data.Set("autoRenewPeriod", durationToRecord(DefaultAutoRenewPeriod))
	return t
}

// SetKey sets the key that must sign for the account
func (t *AccountCreateTransaction) SetKey(key keys.Key) error {
	return t.set("key", key.ToRecord())
}

// GetKey returns the key of the account
func (t *AccountCreateTransaction) GetKey() (keys.Key, error) {
	r := t.data.Message("key")
	if r == nil {
		return nil, status.Errorf(status.IllegalState, "key is not set")
	}
	return keys.KeyFromRecord(r)
}

// SetInitialBalance sets the hbar moved from the payer to the new account
func (t *AccountCreateTransaction) SetInitialBalance(balance hbar.Amount) error {
	if balance.IsNegative() {
		return status.Errorf(status.InvalidArgument, "initial balance must not be negative: %s", balance)
	}
	return t.set("initialBalance", uint64(balance.Tinybars()))
}

// GetInitialBalance returns the initial balance of the account
func (t *AccountCreateTransaction) GetInitialBalance() hbar.Amount {
	return hbar.FromTinybars(int64(t.data.Uint("initialBalance")))
}

// SetReceiverSignatureRequired requires the account key to sign transfers
// into the account
func (t *AccountCreateTransaction) SetReceiverSignatureRequired(required bool) error {
	return t.set("receiverSigRequired", required)
}

// GetReceiverSignatureRequired reports whether transfers in need signing
func (t *AccountCreateTransaction) GetReceiverSignatureRequired() bool {
	return t.data.Bool("receiverSigRequired")
}

// SetAutoRenewPeriod sets how often the account is charged for renewal
func (t *AccountCreateTransaction) SetAutoRenewPeriod(period time.Duration) error {
	return t.set("autoRenewPeriod", durationToRecord(period))
}

// GetAutoRenewPeriod returns the auto renew period
func (t *AccountCreateTransaction) GetAutoRenewPeriod() time.Duration {
	return durationFromRecord(t.data.Message("autoRenewPeriod"))
}

// SetAccountMemo sets the memo of the account
func (t *AccountCreateTransaction) SetAccountMemo(memo string) error {
	return t.set("memo", memo)
}

// GetAccountMemo returns the memo of the account
func (t *AccountCreateTransaction) GetAccountMemo() string {
	return t.data.GetString("memo")
}

// SetMaxAutomaticTokenAssociations sets how many tokens the account is
// associated with on first receipt
func (t *AccountCreateTransaction) SetMaxAutomaticTokenAssociations(max int32) error {
	return t.set("max_automatic_token_associations", max)
}

// GetMaxAutomaticTokenAssociations returns the automatic association limit
func (t *AccountCreateTransaction) GetMaxAutomaticTokenAssociations() int32 {
	return int32(t.data.Int("max_automatic_token_associations"))
}

// SetAlias sets the EVM address alias of the account
func (t *AccountCreateTransaction) SetAlias(evmAddress []byte) error {
	if len(evmAddress) != 20 {
		return status.Errorf(status.InvalidArgument, "alias must be a 20 byte EVM address, got %d bytes", len(evmAddress))
	}
	return t.set("alias", evmAddress)
}

// GetAlias returns the EVM address alias of the account
func (t *AccountCreateTransaction) GetAlias() []byte {
	return t.data.GetBytes("alias")
}

// AccountDeleteTransaction deletes an account and moves its remaining hbar
// to another account
type AccountDeleteTransaction struct {
	*Transaction
}

// NewAccountDeleteTransaction returns an empty account delete transaction
func NewAccountDeleteTransaction() *AccountDeleteTransaction {
	return &AccountDeleteTransaction{newTransaction(accountDeleteKind)}
}

// SetAccountID sets the account to delete
func (t *AccountDeleteTransaction) SetAccountID(id entity.AccountID) error {
	return t.setEntities("deleteAccountID", id.ToRecord(), id)
}

// GetAccountID returns the account to delete
func (t *AccountDeleteTransaction) GetAccountID() entity.AccountID {
	return entity.AccountIDFromRecord(t.data.Message("deleteAccountID"))
}

// SetTransferAccountID sets the account receiving the remaining hbar
func (t *AccountDeleteTransaction) SetTransferAccountID(id entity.AccountID) error {
	return t.setEntities("transferAccountID", id.ToRecord(), id)
}

// GetTransferAccountID returns the account receiving the remaining hbar
func (t *AccountDeleteTransaction) GetTransferAccountID() entity.AccountID {
	return entity.AccountIDFromRecord(t.data.Message("transferAccountID"))
}
