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
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// TokenType tells fungible tokens from NFTs
type TokenType int32

// Token types
const (
	TokenTypeFungibleCommon TokenType = iota
	TokenTypeNonFungibleUnique
)

// TokenSupplyType tells whether the supply of a token is capped
type TokenSupplyType int32

// Token supply types
const (
	TokenSupplyTypeInfinite TokenSupplyType = iota
	TokenSupplyTypeFinite
)

var tokenCreateKind = registerKind(&TransactionKind{
	Name:          "TokenCreateTransaction",
	DataCase:      "tokenCreation",
	Method:        hapi.TokenCreate,
	Schema:        hapi.TokenCreateTransactionBody,
	DefaultMaxFee: hbar.New(40),
	Required:      []string{"treasury"},
})

var tokenDeleteKind = registerKind(&TransactionKind{
	Name:          "TokenDeleteTransaction",
	DataCase:      "tokenDeletion",
	Method:        hapi.TokenDelete,
	Schema:        hapi.TokenDeleteTransactionBody,
	DefaultMaxFee: hbar.New(30),
	Required:      []string{"token"},
})

var tokenMintKind = registerKind(&TransactionKind{
	Name:          "TokenMintTransaction",
	DataCase:      "tokenMint",
	Method:        hapi.TokenMint,
	Schema:        hapi.TokenMintTransactionBody,
	DefaultMaxFee: hbar.New(30),
	Required:      []string{"token"},
})

var tokenBurnKind = registerKind(&TransactionKind{
	Name:          "TokenBurnTransaction",
	DataCase:      "tokenBurn",
	Method:        hapi.TokenBurn,
	Schema:        hapi.TokenBurnTransactionBody,
	DefaultMaxFee: hbar.New(30),
	Required:      []string{"token"},
})

var tokenAssociateKind = registerKind(&TransactionKind{
	Name:          "TokenAssociateTransaction",
	DataCase:      "tokenAssociate",
	Method:        hapi.TokenAssociate,
	Schema:        hapi.TokenAssociateTransactionBody,
	DefaultMaxFee: hbar.New(5),
	Required:      []string{"account"},
})

var tokenDissociateKind = registerKind(&TransactionKind{
	Name:          "TokenDissociateTransaction",
	DataCase:      "tokenDissociate",
	Method:        hapi.TokenDissociate,
	Schema:        hapi.TokenDissociateTransactionBody,
	DefaultMaxFee: hbar.New(5),
	Required:      []string{"account"},
})

var tokenPauseKind = registerKind(&TransactionKind{
	Name:          "TokenPauseTransaction",
	DataCase:      "token_pause",
	Method:        hapi.TokenPause,
	Schema:        hapi.TokenPauseTransactionBody,
	DefaultMaxFee: hbar.New(30),
	Required:      []string{"token"},
})

var tokenUnpauseKind = registerKind(&TransactionKind{
	Name:          "TokenUnpauseTransaction",
	DataCase:      "token_unpause",
	Method:        hapi.TokenUnpause,
	Schema:        hapi.TokenUnpauseTransactionBody,
	DefaultMaxFee: hbar.New(30),
	Required:      []string{"token"},
})

// TokenCreateTransaction creates a fungible token or an NFT collection
type TokenCreateTransaction struct {
	*Transaction
}

// NewTokenCreateTransaction returns a token create transaction with the
// default auto renew period
func NewTokenCreateTransaction() *TokenCreateTransaction {
	t := &TokenCreateTransaction{newTransaction(tokenCreateKind)}
	t.data.Set("autoRenewPeriod", durationToRecord(DefaultAutoRenewPeriod))
	return t
}

// SetTokenName sets the name of the token
func (t *TokenCreateTransaction) SetTokenName(name string) error {
	return t.set("name", name)
}

// GetTokenName returns the name of the token
func (t *TokenCreateTransaction) GetTokenName() string {
	return t.data.GetString("name")
}

// SetTokenSymbol sets the symbol of the token
func (t *TokenCreateTransaction) SetTokenSymbol(symbol string) error {
	return t.set("symbol", symbol)
}

// GetTokenSymbol returns the symbol of the token
func (t *TokenCreateTransaction) GetTokenSymbol() string {
	return t.data.GetString("symbol")
}

// SetDecimals sets the decimals of a fungible token
func (t *TokenCreateTransaction) SetDecimals(decimals uint32) error {
	return t.set("decimals", decimals)
}

// GetDecimals returns the decimals of the token
func (t *TokenCreateTransaction) GetDecimals() uint32 {
	return uint32(t.data.Uint("decimals"))
}

// SetInitialSupply sets the supply credited to the treasury
func (t *TokenCreateTransaction) SetInitialSupply(supply uint64) error {
	return t.set("initialSupply", supply)
}

// GetInitialSupply returns the initial supply of the token
func (t *TokenCreateTransaction) GetInitialSupply() uint64 {
	return t.data.Uint("initialSupply")
}

// SetTreasuryAccountID sets the account holding the initial supply
func (t *TokenCreateTransaction) SetTreasuryAccountID(id entity.AccountID) error {
	return t.setEntities("treasury", id.ToRecord(), id)
}

// GetTreasuryAccountID returns the treasury of the token
func (t *TokenCreateTransaction) GetTreasuryAccountID() entity.AccountID {
	return entity.AccountIDFromRecord(t.data.Message("treasury"))
}

// SetAdminKey sets the key that may update or delete the token
func (t *TokenCreateTransaction) SetAdminKey(key keys.Key) error {
	return t.set("adminKey", key.ToRecord())
}

// SetKycKey sets the key that grants KYC to accounts
func (t *TokenCreateTransaction) SetKycKey(key keys.Key) error {
	return t.set("kycKey", key.ToRecord())
}

// SetFreezeKey sets the key that may freeze accounts
func (t *TokenCreateTransaction) SetFreezeKey(key keys.Key) error {
	return t.set("freezeKey", key.ToRecord())
}

// SetWipeKey sets the key that may wipe balances
func (t *TokenCreateTransaction) SetWipeKey(key keys.Key) error {
	return t.set("wipeKey", key.ToRecord())
}

// SetSupplyKey sets the key that may mint and burn
func (t *TokenCreateTransaction) SetSupplyKey(key keys.Key) error {
	return t.set("supplyKey", key.ToRecord())
}

// SetPauseKey sets the key that may pause the token
func (t *TokenCreateTransaction) SetPauseKey(key keys.Key) error {
	return t.set("pause_key", key.ToRecord())
}

// GetAdminKey returns the admin key of the token
func (t *TokenCreateTransaction) GetAdminKey() (keys.Key, error) {
	return keys.KeyFromRecord(t.data.Message("adminKey"))
}

// SetFreezeDefault freezes new holders of the token
func (t *TokenCreateTransaction) SetFreezeDefault(freeze bool) error {
	return t.set("freezeDefault", freeze)
}

// SetExpirationTime sets when the token expires
func (t *TokenCreateTransaction) SetExpirationTime(expiry time.Time) error {
	return t.set("expiry", timeToRecord(expiry))
}

// SetAutoRenewAccount sets the account paying for the renewal of the token
func (t *TokenCreateTransaction) SetAutoRenewAccount(id entity.AccountID) error {
	return t.setEntities("autoRenewAccount", id.ToRecord(), id)
}

// SetAutoRenewPeriod sets how often the token is renewed
func (t *TokenCreateTransaction) SetAutoRenewPeriod(period time.Duration) error {
	return t.set("autoRenewPeriod", durationToRecord(period))
}

// GetAutoRenewPeriod returns the auto renew period
func (t *TokenCreateTransaction) GetAutoRenewPeriod() time.Duration {
	return durationFromRecord(t.data.Message("autoRenewPeriod"))
}

// SetTokenMemo sets the memo of the token
func (t *TokenCreateTransaction) SetTokenMemo(memo string) error {
	return t.set("memo", memo)
}

// SetTokenType sets whether the token is fungible
func (t *TokenCreateTransaction) SetTokenType(tokenType TokenType) error {
	return t.set("tokenType", int32(tokenType))
}

// GetTokenType returns the type of the token
func (t *TokenCreateTransaction) GetTokenType() TokenType {
	return TokenType(t.data.Int("tokenType"))
}

// SetSupplyType sets whether the supply is capped by MaxSupply
func (t *TokenCreateTransaction) SetSupplyType(supplyType TokenSupplyType) error {
	return t.set("supplyType", int32(supplyType))
}

// SetMaxSupply sets the supply cap of a finite token
func (t *TokenCreateTransaction) SetMaxSupply(max int64) error {
	if max < 0 {
		return status.Errorf(status.InvalidArgument, "max supply must not be negative: %d", max)
	}
	return t.set("maxSupply", max)
}

// GetMaxSupply returns the supply cap of the token
func (t *TokenCreateTransaction) GetMaxSupply() int64 {
	return t.data.Int("maxSupply")
}

// tokenTransaction is a transaction on a single token
type tokenTransaction struct {
	*Transaction
}

// SetTokenID sets the token
func (t tokenTransaction) SetTokenID(id entity.TokenID) error {
	return t.setEntities("token", id.ToRecord(), id)
}

// GetTokenID returns the token
func (t tokenTransaction) GetTokenID() entity.TokenID {
	return entity.TokenIDFromRecord(t.data.Message("token"))
}

// TokenDeleteTransaction deletes a token. It must be signed by the admin
// key of the token.
type TokenDeleteTransaction struct {
	tokenTransaction
}

// NewTokenDeleteTransaction returns an empty token delete transaction
func NewTokenDeleteTransaction() *TokenDeleteTransaction {
	return &TokenDeleteTransaction{tokenTransaction{newTransaction(tokenDeleteKind)}}
}

// NewTokenDeleteTransactionFromBody returns an unfrozen token delete
// transaction holding the fields of a TransactionBody. It fails when the
// body has no token deletion.
func NewTokenDeleteTransactionFromBody(body *wire.Record) (*TokenDeleteTransaction, error) {
	t, err := transactionFromBody(body, tokenDeleteKind)
	if err != nil {
		return nil, err
	}
	return &TokenDeleteTransaction{tokenTransaction{t}}, nil
}

// TokenPauseTransaction pauses all operations on a token
type TokenPauseTransaction struct {
	tokenTransaction
}

// NewTokenPauseTransaction returns an empty token pause transaction
func NewTokenPauseTransaction() *TokenPauseTransaction {
	return &TokenPauseTransaction{tokenTransaction{newTransaction(tokenPauseKind)}}
}

// TokenUnpauseTransaction resumes a paused token
type TokenUnpauseTransaction struct {
	tokenTransaction
}

// NewTokenUnpauseTransaction returns an empty token unpause transaction
func NewTokenUnpauseTransaction() *TokenUnpauseTransaction {
	return &TokenUnpauseTransaction{tokenTransaction{newTransaction(tokenUnpauseKind)}}
}

// TokenMintTransaction mints an amount of a fungible token or NFTs carrying
// metadata
type TokenMintTransaction struct {
	tokenTransaction
}

// NewTokenMintTransaction returns an empty token mint transaction
func NewTokenMintTransaction() *TokenMintTransaction {
	return &TokenMintTransaction{tokenTransaction{newTransaction(tokenMintKind)}}
}

// SetAmount sets the amount of a fungible token to mint
func (t *TokenMintTransaction) SetAmount(amount uint64) error {
	return t.set("amount", amount)
}

// GetAmount returns the amount to mint
func (t *TokenMintTransaction) GetAmount() uint64 {
	return t.data.Uint("amount")
}

// AddMetadata adds one NFT to mint
func (t *TokenMintTransaction) AddMetadata(metadata []byte) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	t.data.Append("metadata", metadata)
	return nil
}

// GetMetadatas returns the metadata of the NFTs to mint
func (t *TokenMintTransaction) GetMetadatas() [][]byte {
	var metadatas [][]byte
	for _, m := range t.data.List("metadata") {
		metadatas = append(metadatas, m.([]byte))
	}
	return metadatas
}

// TokenBurnTransaction burns an amount of a fungible token or NFT serials
type TokenBurnTransaction struct {
	tokenTransaction
}

// NewTokenBurnTransaction returns an empty token burn transaction
func NewTokenBurnTransaction() *TokenBurnTransaction {
	return &TokenBurnTransaction{tokenTransaction{newTransaction(tokenBurnKind)}}
}

// SetAmount sets the amount of a fungible token to burn
func (t *TokenBurnTransaction) SetAmount(amount uint64) error {
	return t.set("amount", amount)
}

// GetAmount returns the amount to burn
func (t *TokenBurnTransaction) GetAmount() uint64 {
	return t.data.Uint("amount")
}

// SetSerialNumbers sets the NFT serials to burn
func (t *TokenBurnTransaction) SetSerialNumbers(serials []int64) error {
	return t.set("serialNumbers", serials)
}

// GetSerialNumbers returns the NFT serials to burn
func (t *TokenBurnTransaction) GetSerialNumbers() []int64 {
	var serials []int64
	for _, s := range t.data.List("serialNumbers") {
		serials = append(serials, s.(int64))
	}
	return serials
}

// tokenRelationTransaction relates an account to tokens
type tokenRelationTransaction struct {
	*Transaction
}

// SetAccountID sets the account
func (t tokenRelationTransaction) SetAccountID(id entity.AccountID) error {
	return t.setEntities("account", id.ToRecord(), id)
}

// GetAccountID returns the account
func (t tokenRelationTransaction) GetAccountID() entity.AccountID {
	return entity.AccountIDFromRecord(t.data.Message("account"))
}

// SetTokenIDs sets the tokens
func (t tokenRelationTransaction) SetTokenIDs(ids ...entity.TokenID) error {
	records := make([]*wire.Record, 0, len(ids))
	checked := make([]checksummed, 0, len(ids))
	for _, id := range ids {
		records = append(records, id.ToRecord())
		checked = append(checked, id)
	}
	return t.setEntities("tokens", records, checked...)
}

// GetTokenIDs returns the tokens
func (t tokenRelationTransaction) GetTokenIDs() []entity.TokenID {
	var ids []entity.TokenID
	for _, r := range t.data.Messages("tokens") {
		ids = append(ids, entity.TokenIDFromRecord(r))
	}
	return ids
}

// TokenAssociateTransaction associates an account with tokens so it can
// hold them
type TokenAssociateTransaction struct {
	tokenRelationTransaction
}

// NewTokenAssociateTransaction returns an empty token associate transaction
func NewTokenAssociateTransaction() *TokenAssociateTransaction {
	return &TokenAssociateTransaction{tokenRelationTransaction{newTransaction(tokenAssociateKind)}}
}

// TokenDissociateTransaction dissociates an account from tokens
type TokenDissociateTransaction struct {
	tokenRelationTransaction
}

// NewTokenDissociateTransaction returns an empty token dissociate transaction
func NewTokenDissociateTransaction() *TokenDissociateTransaction {
	return &TokenDissociateTransaction{tokenRelationTransaction{newTransaction(tokenDissociateKind)}}
}
