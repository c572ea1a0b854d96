/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
	"github.com/pkg/errors"
)

// TokenID identifies a token
type TokenID struct {
	Shard uint64
	Realm uint64
	Num   uint64

	checksum string
}

// NewTokenID creates a TokenID without checksum
func NewTokenID(shard, realm, num uint64) TokenID {
	return TokenID{Shard: shard, Realm: realm, Num: num}
}

// TokenIDFromString parses "shard.realm.num" with an optional "-checksum" suffix
func TokenIDFromString(s string) (TokenID, error) {
	shard, realm, num, checksum, err := parseID("token ID", s)
	if err != nil {
		return TokenID{}, err
	}
	return TokenID{Shard: shard, Realm: realm, Num: num, checksum: checksum}, nil
}

// TokenIDFromSolidityAddress decodes a long-zero EVM address
func TokenIDFromSolidityAddress(address string) (TokenID, error) {
	b, err := decodeSolidityAddress(address)
	if err != nil {
		return TokenID{}, err
	}
	shard, realm, num := fromSolidityBytes(b)
	return NewTokenID(shard, realm, num), nil
}

// TokenIDFromRecord converts a hapi.TokenID record. A nil record yields 0.0.0.
func TokenIDFromRecord(r *wire.Record) TokenID {
	if r == nil {
		return TokenID{}
	}
	return TokenID{
		Shard: uint64(r.Int("shardNum")),
		Realm: uint64(r.Int("realmNum")),
		Num:   uint64(r.Int("tokenNum")),
	}
}

// TokenIDFromBytes decodes a serialized hapi.TokenID
func TokenIDFromBytes(b []byte) (TokenID, error) {
	r, err := wire.Unmarshal(hapi.TokenID, b)
	if err != nil {
		return TokenID{}, errors.WithMessage(err, "token ID decode failed")
	}
	return TokenIDFromRecord(r), nil
}

// String returns "shard.realm.num"
func (id TokenID) String() string {
	return format(id.Shard, id.Realm, id.Num)
}

// Checksum returns the checksum the ID was parsed with, if any
func (id TokenID) Checksum() string {
	return id.checksum
}

// ToStringWithChecksum returns "shard.realm.num-checksum" for the ledger of p
func (id TokenID) ToStringWithChecksum(p LedgerIDProvider) (string, error) {
	return withChecksum(id.Shard, id.Realm, id.Num, p)
}

// ValidateChecksum checks the parsed checksum against the ledger of p.
// IDs without checksum are always valid.
func (id TokenID) ValidateChecksum(p LedgerIDProvider) error {
	return validateChecksum(id.Shard, id.Realm, id.Num, id.checksum, p)
}

// ToSolidityAddress returns the long-zero EVM address of the ID
func (id TokenID) ToSolidityAddress() (string, error) {
	return toSolidityAddress(id.Shard, id.Realm, id.Num)
}

// Equal compares shard, realm and num
func (id TokenID) Equal(other TokenID) bool {
	return id.Shard == other.Shard && id.Realm == other.Realm && id.Num == other.Num
}

// ToRecord converts the ID to a hapi.TokenID record
func (id TokenID) ToRecord() *wire.Record {
	return hapi.TokenID.New().
		Set("shardNum", id.Shard).
		Set("realmNum", id.Realm).
		Set("tokenNum", id.Num)
}

// ToBytes serializes the ID as a hapi.TokenID
func (id TokenID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}

// TopicID identifies a consensus topic
type TopicID struct {
	Shard uint64
	Realm uint64
	Num   uint64

	checksum string
}

// NewTopicID creates a TopicID without checksum
func NewTopicID(shard, realm, num uint64) TopicID {
	return TopicID{Shard: shard, Realm: realm, Num: num}
}

// TopicIDFromString parses "shard.realm.num" with an optional "-checksum" suffix
func TopicIDFromString(s string) (TopicID, error) {
	shard, realm, num, checksum, err := parseID("topic ID", s)
	if err != nil {
		return TopicID{}, err
	}
	return TopicID{Shard: shard, Realm: realm, Num: num, checksum: checksum}, nil
}

// TopicIDFromSolidityAddress decodes a long-zero EVM address
func TopicIDFromSolidityAddress(address string) (TopicID, error) {
	b, err := decodeSolidityAddress(address)
	if err != nil {
		return TopicID{}, err
	}
	shard, realm, num := fromSolidityBytes(b)
	return NewTopicID(shard, realm, num), nil
}

// TopicIDFromRecord converts a hapi.TopicID record. A nil record yields 0.0.0.
func TopicIDFromRecord(r *wire.Record) TopicID {
	if r == nil {
		return TopicID{}
	}
	return TopicID{
		Shard: uint64(r.Int("shardNum")),
		Realm: uint64(r.Int("realmNum")),
		Num:   uint64(r.Int("topicNum")),
	}
}

// TopicIDFromBytes decodes a serialized hapi.TopicID
func TopicIDFromBytes(b []byte) (TopicID, error) {
	r, err := wire.Unmarshal(hapi.TopicID, b)
	if err != nil {
		return TopicID{}, errors.WithMessage(err, "topic ID decode failed")
	}
	return TopicIDFromRecord(r), nil
}

// String returns "shard.realm.num"
func (id TopicID) String() string {
	return format(id.Shard, id.Realm, id.Num)
}

// Checksum returns the checksum the ID was parsed with, if any
func (id TopicID) Checksum() string {
	return id.checksum
}

// ToStringWithChecksum returns "shard.realm.num-checksum" for the ledger of p
func (id TopicID) ToStringWithChecksum(p LedgerIDProvider) (string, error) {
	return withChecksum(id.Shard, id.Realm, id.Num, p)
}

// ValidateChecksum checks the parsed checksum against the ledger of p.
// IDs without checksum are always valid.
func (id TopicID) ValidateChecksum(p LedgerIDProvider) error {
	return validateChecksum(id.Shard, id.Realm, id.Num, id.checksum, p)
}

// ToSolidityAddress returns the long-zero EVM address of the ID
func (id TopicID) ToSolidityAddress() (string, error) {
	return toSolidityAddress(id.Shard, id.Realm, id.Num)
}

// Equal compares shard, realm and num
func (id TopicID) Equal(other TopicID) bool {
	return id.Shard == other.Shard && id.Realm == other.Realm && id.Num == other.Num
}

// ToRecord converts the ID to a hapi.TopicID record
func (id TopicID) ToRecord() *wire.Record {
	return hapi.TopicID.New().
		Set("shardNum", id.Shard).
		Set("realmNum", id.Realm).
		Set("topicNum", id.Num)
}

// ToBytes serializes the ID as a hapi.TopicID
func (id TopicID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}

// FileID identifies a file
type FileID struct {
	Shard uint64
	Realm uint64
	Num   uint64

	checksum string
}

// NewFileID creates a FileID without checksum
func NewFileID(shard, realm, num uint64) FileID {
	return FileID{Shard: shard, Realm: realm, Num: num}
}

// FileIDFromString parses "shard.realm.num" with an optional "-checksum" suffix
func FileIDFromString(s string) (FileID, error) {
	shard, realm, num, checksum, err := parseID("file ID", s)
	if err != nil {
		return FileID{}, err
	}
	return FileID{Shard: shard, Realm: realm, Num: num, checksum: checksum}, nil
}

// FileIDFromSolidityAddress decodes a long-zero EVM address
func FileIDFromSolidityAddress(address string) (FileID, error) {
	b, err := decodeSolidityAddress(address)
	if err != nil {
		return FileID{}, err
	}
	shard, realm, num := fromSolidityBytes(b)
	return NewFileID(shard, realm, num), nil
}

// FileIDFromRecord converts a hapi.FileID record. A nil record yields 0.0.0.
func FileIDFromRecord(r *wire.Record) FileID {
	if r == nil {
		return FileID{}
	}
	return FileID{
		Shard: uint64(r.Int("shardNum")),
		Realm: uint64(r.Int("realmNum")),
		Num:   uint64(r.Int("fileNum")),
	}
}

// FileIDFromBytes decodes a serialized hapi.FileID
func FileIDFromBytes(b []byte) (FileID, error) {
	r, err := wire.Unmarshal(hapi.FileID, b)
	if err != nil {
		return FileID{}, errors.WithMessage(err, "file ID decode failed")
	}
	return FileIDFromRecord(r), nil
}

// String returns "shard.realm.num"
func (id FileID) String() string {
	return format(id.Shard, id.Realm, id.Num)
}

// Checksum returns the checksum the ID was parsed with, if any
func (id FileID) Checksum() string {
	return id.checksum
}

// ToStringWithChecksum returns "shard.realm.num-checksum" for the ledger of p
func (id FileID) ToStringWithChecksum(p LedgerIDProvider) (string, error) {
	return withChecksum(id.Shard, id.Realm, id.Num, p)
}

// ValidateChecksum checks the parsed checksum against the ledger of p.
// IDs without checksum are always valid.
func (id FileID) ValidateChecksum(p LedgerIDProvider) error {
	return validateChecksum(id.Shard, id.Realm, id.Num, id.checksum, p)
}

// ToSolidityAddress returns the long-zero EVM address of the ID
func (id FileID) ToSolidityAddress() (string, error) {
	return toSolidityAddress(id.Shard, id.Realm, id.Num)
}

// Equal compares shard, realm and num
func (id FileID) Equal(other FileID) bool {
	return id.Shard == other.Shard && id.Realm == other.Realm && id.Num == other.Num
}

// ToRecord converts the ID to a hapi.FileID record
func (id FileID) ToRecord() *wire.Record {
	return hapi.FileID.New().
		Set("shardNum", id.Shard).
		Set("realmNum", id.Realm).
		Set("fileNum", id.Num)
}

// ToBytes serializes the ID as a hapi.FileID
func (id FileID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}

// ScheduleID identifies a scheduled transaction
type ScheduleID struct {
	Shard uint64
	Realm uint64
	Num   uint64

	checksum string
}

// NewScheduleID creates a ScheduleID without checksum
func NewScheduleID(shard, realm, num uint64) ScheduleID {
	return ScheduleID{Shard: shard, Realm: realm, Num: num}
}

// ScheduleIDFromString parses "shard.realm.num" with an optional "-checksum" suffix
func ScheduleIDFromString(s string) (ScheduleID, error) {
	shard, realm, num, checksum, err := parseID("schedule ID", s)
	if err != nil {
		return ScheduleID{}, err
	}
	return ScheduleID{Shard: shard, Realm: realm, Num: num, checksum: checksum}, nil
}

// ScheduleIDFromSolidityAddress decodes a long-zero EVM address
func ScheduleIDFromSolidityAddress(address string) (ScheduleID, error) {
	b, err := decodeSolidityAddress(address)
	if err != nil {
		return ScheduleID{}, err
	}
	shard, realm, num := fromSolidityBytes(b)
	return NewScheduleID(shard, realm, num), nil
}

// ScheduleIDFromRecord converts a hapi.ScheduleID record. A nil record yields 0.0.0.
func ScheduleIDFromRecord(r *wire.Record) ScheduleID {
	if r == nil {
		return ScheduleID{}
	}
	return ScheduleID{
		Shard: uint64(r.Int("shardNum")),
		Realm: uint64(r.Int("realmNum")),
		Num:   uint64(r.Int("scheduleNum")),
	}
}

// ScheduleIDFromBytes decodes a serialized hapi.ScheduleID
func ScheduleIDFromBytes(b []byte) (ScheduleID, error) {
	r, err := wire.Unmarshal(hapi.ScheduleID, b)
	if err != nil {
		return ScheduleID{}, errors.WithMessage(err, "schedule ID decode failed")
	}
	return ScheduleIDFromRecord(r), nil
}

// String returns "shard.realm.num"
func (id ScheduleID) String() string {
	return format(id.Shard, id.Realm, id.Num)
}

// Checksum returns the checksum the ID was parsed with, if any
func (id ScheduleID) Checksum() string {
	return id.checksum
}

// ToStringWithChecksum returns "shard.realm.num-checksum" for the ledger of p
func (id ScheduleID) ToStringWithChecksum(p LedgerIDProvider) (string, error) {
	return withChecksum(id.Shard, id.Realm, id.Num, p)
}

// ValidateChecksum checks the parsed checksum against the ledger of p.
// IDs without checksum are always valid.
func (id ScheduleID) ValidateChecksum(p LedgerIDProvider) error {
	return validateChecksum(id.Shard, id.Realm, id.Num, id.checksum, p)
}

// ToSolidityAddress returns the long-zero EVM address of the ID
func (id ScheduleID) ToSolidityAddress() (string, error) {
	return toSolidityAddress(id.Shard, id.Realm, id.Num)
}

// Equal compares shard, realm and num
func (id ScheduleID) Equal(other ScheduleID) bool {
	return id.Shard == other.Shard && id.Realm == other.Realm && id.Num == other.Num
}

// ToRecord converts the ID to a hapi.ScheduleID record
func (id ScheduleID) ToRecord() *wire.Record {
	return hapi.ScheduleID.New().
		Set("shardNum", id.Shard).
		Set("realmNum", id.Realm).
		Set("scheduleNum", id.Num)
}

// ToBytes serializes the ID as a hapi.ScheduleID
func (id ScheduleID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}
