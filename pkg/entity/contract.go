/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"encoding/hex"
	"strconv"

	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
	"github.com/pkg/errors"
)

// ContractID identifies a smart contract by number or EVM address
type ContractID struct {
	Shard uint64
	Realm uint64
	Num   uint64

	evmAddress string
	checksum   string
}

// NewContractID creates a ContractID without checksum
func NewContractID(shard, realm, num uint64) ContractID {
	return ContractID{Shard: shard, Realm: realm, Num: num}
}

// ContractIDFromEvmAddress creates a ContractID from a 20 byte address
func ContractIDFromEvmAddress(shard, realm uint64, address []byte) ContractID {
	return ContractID{Shard: shard, Realm: realm, evmAddress: string(address)}
}

// ContractIDFromString parses "shard.realm.num[-checksum]" or
// "shard.realm.<evm address>"
func ContractIDFromString(s string) (ContractID, error) {
	p, err := split("contract ID", s)
	if err != nil {
		return ContractID{}, err
	}
	if num, err := parseNum(p.numStr); err == nil {
		return ContractID{Shard: p.shard, Realm: p.realm, Num: num, checksum: p.checksum}, nil
	}
	b, err := decodeSolidityAddress(p.numStr)
	if err != nil {
		return ContractID{}, err
	}
	return ContractIDFromEvmAddress(p.shard, p.realm, b), nil
}

// ContractIDFromRecord converts a hapi.ContractID record
func ContractIDFromRecord(r *wire.Record) ContractID {
	if r == nil {
		return ContractID{}
	}
	return ContractID{
		Shard:      uint64(r.Int("shardNum")),
		Realm:      uint64(r.Int("realmNum")),
		Num:        uint64(r.Int("contractNum")),
		evmAddress: string(r.GetBytes("evm_address")),
	}
}

// ContractIDFromBytes decodes a serialized hapi.ContractID
func ContractIDFromBytes(b []byte) (ContractID, error) {
	r, err := wire.Unmarshal(hapi.ContractID, b)
	if err != nil {
		return ContractID{}, errors.WithMessage(err, "contract ID decode failed")
	}
	return ContractIDFromRecord(r), nil
}

// EvmAddress returns the EVM address, or nil for numbered contracts
func (id ContractID) EvmAddress() []byte {
	if id.evmAddress == "" {
		return nil
	}
	return []byte(id.evmAddress)
}

// String returns "shard.realm.num" or "shard.realm.<hex address>"
func (id ContractID) String() string {
	if id.evmAddress != "" {
		return strconv.FormatUint(id.Shard, 10) + "." + strconv.FormatUint(id.Realm, 10) + "." + hex.EncodeToString([]byte(id.evmAddress))
	}
	return format(id.Shard, id.Realm, id.Num)
}

// Checksum returns the checksum the ID was parsed with, if any
func (id ContractID) Checksum() string {
	return id.checksum
}

// ToStringWithChecksum returns "shard.realm.num-checksum" for the ledger of p
func (id ContractID) ToStringWithChecksum(p LedgerIDProvider) (string, error) {
	return withChecksum(id.Shard, id.Realm, id.Num, p)
}

// ValidateChecksum checks the parsed checksum against the ledger of p
func (id ContractID) ValidateChecksum(p LedgerIDProvider) error {
	if id.evmAddress != "" {
		return nil
	}
	return validateChecksum(id.Shard, id.Realm, id.Num, id.checksum, p)
}

// ToSolidityAddress returns the EVM address, or the long-zero address
func (id ContractID) ToSolidityAddress() (string, error) {
	if id.evmAddress != "" {
		return hex.EncodeToString([]byte(id.evmAddress)), nil
	}
	return toSolidityAddress(id.Shard, id.Realm, id.Num)
}

// Equal compares everything but the checksum
func (id ContractID) Equal(other ContractID) bool {
	id.checksum, other.checksum = "", ""
	return id == other
}

// ToRecord converts the ID to a hapi.ContractID record
func (id ContractID) ToRecord() *wire.Record {
	r := hapi.ContractID.New().
		Set("shardNum", id.Shard).
		Set("realmNum", id.Realm)
	if id.evmAddress != "" {
		return r.Set("evm_address", []byte(id.evmAddress))
	}
	return r.Set("contractNum", id.Num)
}

// ToBytes serializes the ID as a hapi.ContractID
func (id ContractID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}
