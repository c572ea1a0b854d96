/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"time"

	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// AccountBalance is the hbar and token balance of an account
type AccountBalance struct {
	Hbars    hbar.Amount
	Tokens   map[entity.TokenID]uint64
	Decimals map[entity.TokenID]uint32
}

func accountBalanceFromRecord(r *wire.Record) AccountBalance {
	balance := AccountBalance{
		Hbars:    hbar.FromTinybars(int64(r.Uint("balance"))),
		Tokens:   make(map[entity.TokenID]uint64),
		Decimals: make(map[entity.TokenID]uint32),
	}
	for _, tb := range r.Messages("tokenBalances") {
		id := entity.TokenIDFromRecord(tb.Message("tokenId"))
		balance.Tokens[id] = tb.Uint("balance")
		balance.Decimals[id] = uint32(tb.Uint("decimals"))
	}
	return balance
}

// AccountInfo describes an account as known by the network
type AccountInfo struct {
	AccountID                     entity.AccountID
	ContractAccountID             string
	IsDeleted                     bool
	Key                           keys.Key
	Balance                       hbar.Amount
	ReceiverSigRequired           bool
	ExpirationTime                time.Time
	AutoRenewPeriod               time.Duration
	AccountMemo                   string
	OwnedNfts                     int64
	MaxAutomaticTokenAssociations int32
	LedgerID                      entity.LedgerID
}

// AccountInfoFromRecord decodes a hapi.AccountInfo
func AccountInfoFromRecord(r *wire.Record) (AccountInfo, error) {
	if r == nil {
		return AccountInfo{}, status.Errorf(status.InvalidArgument, "account info is missing")
	}
	key, err := keys.KeyFromRecord(r.Message("key"))
	if err != nil {
		return AccountInfo{}, errors.WithMessage(err, "invalid account key")
	}
	return AccountInfo{
		AccountID:                     entity.AccountIDFromRecord(r.Message("accountID")),
		ContractAccountID:             r.GetString("contractAccountID"),
		IsDeleted:                     r.Bool("deleted"),
		Key:                           key,
		Balance:                       hbar.FromTinybars(int64(r.Uint("balance"))),
		ReceiverSigRequired:           r.Bool("receiverSigRequired"),
		ExpirationTime:                timeFromRecord(r.Message("expirationTime")),
		AutoRenewPeriod:               durationFromRecord(r.Message("autoRenewPeriod")),
		AccountMemo:                   r.GetString("memo"),
		OwnedNfts:                     r.Int("ownedNfts"),
		MaxAutomaticTokenAssociations: int32(r.Int("max_automatic_token_associations")),
		LedgerID:                      entity.NewLedgerID(r.GetBytes("ledger_id")),
	}, nil
}

// AccountInfoFromBytes decodes the protobuf encoding of an account info
func AccountInfoFromBytes(b []byte) (AccountInfo, error) {
	r, err := wire.Unmarshal(hapi.AccountInfo, b)
	if err != nil {
		return AccountInfo{}, status.Errorf(status.InvalidArgument, "invalid account info: %s", err)
	}
	return AccountInfoFromRecord(r)
}

// ToRecord encodes the info as a hapi.AccountInfo
func (info AccountInfo) ToRecord() *wire.Record {
	r := hapi.AccountInfo.New().
		Set("accountID", info.AccountID.ToRecord()).
		Set("deleted", info.IsDeleted).
		Set("balance", uint64(info.Balance.Tinybars())).
		Set("receiverSigRequired", info.ReceiverSigRequired).
		Set("autoRenewPeriod", durationToRecord(info.AutoRenewPeriod)).
		Set("ownedNfts", info.OwnedNfts).
		Set("max_automatic_token_associations", info.MaxAutomaticTokenAssociations)
	if info.ContractAccountID != "" {
		r.Set("contractAccountID", info.ContractAccountID)
	}
	if info.Key != nil {
		r.Set("key", info.Key.ToRecord())
	}
	if !info.ExpirationTime.IsZero() {
		r.Set("expirationTime", timeToRecord(info.ExpirationTime))
	}
	if info.AccountMemo != "" {
		r.Set("memo", info.AccountMemo)
	}
	if !info.LedgerID.IsEmpty() {
		r.Set("ledger_id", info.LedgerID.Bytes())
	}
	return r
}

// ToBytes returns the protobuf encoding of the info
func (info AccountInfo) ToBytes() []byte {
	return info.ToRecord().Marshal()
}

// TokenFreezeStatus is the default freeze or KYC state of new token
// relationships
type TokenFreezeStatus int32

// Token relationship default states
const (
	TokenStatusNotApplicable TokenFreezeStatus = iota
	TokenStatusOn
	TokenStatusOff
)

// TokenInfo describes a token as known by the network
type TokenInfo struct {
	TokenID             entity.TokenID
	Name                string
	Symbol              string
	Decimals            uint32
	TotalSupply         uint64
	Treasury            entity.AccountID
	AdminKey            keys.Key
	KycKey              keys.Key
	FreezeKey           keys.Key
	WipeKey             keys.Key
	SupplyKey           keys.Key
	FeeScheduleKey      keys.Key
	PauseKey            keys.Key
	DefaultFreezeStatus TokenFreezeStatus
	DefaultKycStatus    TokenFreezeStatus
	PauseStatus         TokenFreezeStatus
	Deleted             bool
	AutoRenewAccount    *entity.AccountID
	AutoRenewPeriod     time.Duration
	ExpirationTime      time.Time
	TokenMemo           string
	TokenType           TokenType
	SupplyType          TokenSupplyType
	MaxSupply           int64
	LedgerID            entity.LedgerID
}

var tokenInfoKeys = []struct {
	field string
	key   func(*TokenInfo) *keys.Key
}{
	{"adminKey", func(i *TokenInfo) *keys.Key { return &i.AdminKey }},
	{"kycKey", func(i *TokenInfo) *keys.Key { return &i.KycKey }},
	{"freezeKey", func(i *TokenInfo) *keys.Key { return &i.FreezeKey }},
	{"wipeKey", func(i *TokenInfo) *keys.Key { return &i.WipeKey }},
	{"supplyKey", func(i *TokenInfo) *keys.Key { return &i.SupplyKey }},
	{"fee_schedule_key", func(i *TokenInfo) *keys.Key { return &i.FeeScheduleKey }},
	{"pause_key", func(i *TokenInfo) *keys.Key { return &i.PauseKey }},
}

// TokenInfoFromRecord decodes a hapi.TokenInfo
func TokenInfoFromRecord(r *wire.Record) (TokenInfo, error) {
	if r == nil {
		return TokenInfo{}, status.Errorf(status.InvalidArgument, "token info is missing")
	}
	info := TokenInfo{
		TokenID:             entity.TokenIDFromRecord(r.Message("tokenId")),
		Name:                r.GetString("name"),
		Symbol:              r.GetString("symbol"),
		Decimals:            uint32(r.Uint("decimals")),
		TotalSupply:         r.Uint("totalSupply"),
		Treasury:            entity.AccountIDFromRecord(r.Message("treasury")),
		DefaultFreezeStatus: TokenFreezeStatus(r.Int("defaultFreezeStatus")),
		DefaultKycStatus:    TokenFreezeStatus(r.Int("defaultKycStatus")),
		PauseStatus:         TokenFreezeStatus(r.Int("pause_status")),
		Deleted:             r.Bool("deleted"),
		AutoRenewPeriod:     durationFromRecord(r.Message("autoRenewPeriod")),
		ExpirationTime:      timeFromRecord(r.Message("expiry")),
		TokenMemo:           r.GetString("memo"),
		TokenType:           TokenType(r.Int("tokenType")),
		SupplyType:          TokenSupplyType(r.Int("supplyType")),
		MaxSupply:           r.Int("maxSupply"),
		LedgerID:            entity.NewLedgerID(r.GetBytes("ledger_id")),
	}
	if m := r.Message("autoRenewAccount"); m != nil {
		id := entity.AccountIDFromRecord(m)
		info.AutoRenewAccount = &id
	}
	for _, k := range tokenInfoKeys {
		m := r.Message(k.field)
		if m == nil {
			continue
		}
		key, err := keys.KeyFromRecord(m)
		if err != nil {
			return TokenInfo{}, errors.WithMessagef(err, "invalid token %s", k.field)
		}
		*k.key(&info) = key
	}
	return info, nil
}

// TokenInfoFromBytes decodes the protobuf encoding of a token info
func TokenInfoFromBytes(b []byte) (TokenInfo, error) {
	r, err := wire.Unmarshal(hapi.TokenInfo, b)
	if err != nil {
		return TokenInfo{}, status.Errorf(status.InvalidArgument, "invalid token info: %s", err)
	}
	return TokenInfoFromRecord(r)
}

// ToRecord encodes the info as a hapi.TokenInfo
func (info TokenInfo) ToRecord() *wire.Record {
	r := hapi.TokenInfo.New().
		Set("tokenId", info.TokenID.ToRecord()).
		Set("name", info.Name).
		Set("symbol", info.Symbol).
		Set("decimals", info.Decimals).
		Set("totalSupply", info.TotalSupply).
		Set("treasury", info.Treasury.ToRecord()).
		Set("defaultFreezeStatus", int32(info.DefaultFreezeStatus)).
		Set("defaultKycStatus", int32(info.DefaultKycStatus)).
		Set("pause_status", int32(info.PauseStatus)).
		Set("deleted", info.Deleted).
		Set("autoRenewPeriod", durationToRecord(info.AutoRenewPeriod)).
		Set("tokenType", int32(info.TokenType)).
		Set("supplyType", int32(info.SupplyType)).
		Set("maxSupply", info.MaxSupply)
	if info.AutoRenewAccount != nil {
		r.Set("autoRenewAccount", info.AutoRenewAccount.ToRecord())
	}
	if !info.ExpirationTime.IsZero() {
		r.Set("expiry", timeToRecord(info.ExpirationTime))
	}
	if info.TokenMemo != "" {
		r.Set("memo", info.TokenMemo)
	}
	for _, k := range tokenInfoKeys {
		if key := *k.key(&info); key != nil {
			r.Set(k.field, key.ToRecord())
		}
	}
	if !info.LedgerID.IsEmpty() {
		r.Set("ledger_id", info.LedgerID.Bytes())
	}
	return r
}

// ToBytes returns the protobuf encoding of the info
func (info TokenInfo) ToBytes() []byte {
	return info.ToRecord().Marshal()
}
