/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"encoding/hex"
	"strconv"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
	"github.com/pkg/errors"
)

// AccountID identifies an account either by number or by alias. An alias
// is a serialized hapi.Key or a 20 byte EVM address; it is kept as a string
// so that AccountID stays comparable and usable as a map key.
type AccountID struct {
	Shard uint64
	Realm uint64
	Num   uint64

	alias    string
	checksum string
}

// NewAccountID creates an AccountID without checksum
func NewAccountID(shard, realm, num uint64) AccountID {
	return AccountID{Shard: shard, Realm: realm, Num: num}
}

// NewAccountIDFromAlias creates an AccountID from a serialized key alias
// or an EVM address
func NewAccountIDFromAlias(shard, realm uint64, alias []byte) AccountID {
	return AccountID{Shard: shard, Realm: realm, alias: string(alias)}
}

// AccountIDFromString parses "shard.realm.num" with an optional checksum,
// "shard.realm.<hex alias>", or a bare EVM address
func AccountIDFromString(s string) (AccountID, error) {
	if b, err := decodeSolidityAddress(s); err == nil {
		return AccountIDFromEvmAddress(0, 0, b), nil
	}

	p, err := split("account ID", s)
	if err != nil {
		return AccountID{}, err
	}
	if num, err := parseNum(p.numStr); err == nil {
		return AccountID{Shard: p.shard, Realm: p.realm, Num: num, checksum: p.checksum}, nil
	}

	// not a number, so an alias
	if p.checksum != "" {
		return AccountID{}, status.Errorf(status.InvalidArgument, "invalid account ID [%s]: aliases can't have checksums", s)
	}
	alias, err := hex.DecodeString(p.numStr)
	if err != nil || len(alias) == 0 {
		return AccountID{}, status.Errorf(status.InvalidArgument, "invalid account ID [%s]: number or alias expected", s)
	}
	return NewAccountIDFromAlias(p.shard, p.realm, alias), nil
}

// AccountIDFromEvmAddress creates an EVM address aliased AccountID
func AccountIDFromEvmAddress(shard, realm uint64, address []byte) AccountID {
	return AccountID{Shard: shard, Realm: realm, alias: string(address)}
}

// AccountIDFromSolidityAddress decodes a solidity address. Long-zero
// addresses become numbered IDs, anything else an EVM address alias.
func AccountIDFromSolidityAddress(address string) (AccountID, error) {
	b, err := decodeSolidityAddress(address)
	if err != nil {
		return AccountID{}, err
	}
	if isLongZero(b) {
		shard, realm, num := fromSolidityBytes(b)
		return NewAccountID(shard, realm, num), nil
	}
	return AccountIDFromEvmAddress(0, 0, b), nil
}

// AccountIDFromRecord converts a hapi.AccountID record
func AccountIDFromRecord(r *wire.Record) AccountID {
	if r == nil {
		return AccountID{}
	}
	return AccountID{
		Shard: uint64(r.Int("shardNum")),
		Realm: uint64(r.Int("realmNum")),
		Num:   uint64(r.Int("accountNum")),
		alias: string(r.GetBytes("alias")),
	}
}

// AccountIDFromBytes decodes a serialized hapi.AccountID
func AccountIDFromBytes(b []byte) (AccountID, error) {
	r, err := wire.Unmarshal(hapi.AccountID, b)
	if err != nil {
		return AccountID{}, errors.WithMessage(err, "account ID decode failed")
	}
	return AccountIDFromRecord(r), nil
}

// Alias returns the alias bytes, or nil for numbered accounts
func (id AccountID) Alias() []byte {
	if id.alias == "" {
		return nil
	}
	return []byte(id.alias)
}

// IsEvmAddress reports whether the alias is an EVM address
func (id AccountID) IsEvmAddress() bool {
	return len(id.alias) == SolidityAddressLen
}

// IsZero reports whether the ID is unset
func (id AccountID) IsZero() bool {
	return id == AccountID{}
}

// String returns "shard.realm.num" or "shard.realm.<hex alias>"
func (id AccountID) String() string {
	if id.alias != "" {
		return strconv.FormatUint(id.Shard, 10) + "." + strconv.FormatUint(id.Realm, 10) + "." + hex.EncodeToString([]byte(id.alias))
	}
	return format(id.Shard, id.Realm, id.Num)
}

// Checksum returns the checksum the ID was parsed with, if any
func (id AccountID) Checksum() string {
	return id.checksum
}

// WithoutChecksum drops the parsed checksum
func (id AccountID) WithoutChecksum() AccountID {
	id.checksum = ""
	return id
}

// ToStringWithChecksum returns "shard.realm.num-checksum" for the ledger of p
func (id AccountID) ToStringWithChecksum(p LedgerIDProvider) (string, error) {
	if id.alias != "" {
		return "", status.Errorf(status.IllegalState, "account ID aliases can't have checksums")
	}
	return withChecksum(id.Shard, id.Realm, id.Num, p)
}

// ValidateChecksum checks the parsed checksum against the ledger of p
func (id AccountID) ValidateChecksum(p LedgerIDProvider) error {
	if id.alias != "" {
		return nil
	}
	return validateChecksum(id.Shard, id.Realm, id.Num, id.checksum, p)
}

// ToSolidityAddress returns the EVM address alias, or the long-zero address
func (id AccountID) ToSolidityAddress() (string, error) {
	if id.IsEvmAddress() {
		return hex.EncodeToString([]byte(id.alias)), nil
	}
	return toSolidityAddress(id.Shard, id.Realm, id.Num)
}

// Equal compares everything but the checksum
func (id AccountID) Equal(other AccountID) bool {
	return id.WithoutChecksum() == other.WithoutChecksum()
}

// ToRecord converts the ID to a hapi.AccountID record
func (id AccountID) ToRecord() *wire.Record {
	r := hapi.AccountID.New().
		Set("shardNum", id.Shard).
		Set("realmNum", id.Realm)
	if id.alias != "" {
		return r.Set("alias", []byte(id.alias))
	}
	return r.Set("accountNum", id.Num)
}

// ToBytes serializes the ID as a hapi.AccountID
func (id AccountID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}
