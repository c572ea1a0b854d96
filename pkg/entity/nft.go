/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"strconv"
	"strings"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
	"github.com/pkg/errors"
)

// NftID identifies one serial of a non-fungible token
type NftID struct {
	TokenID TokenID
	Serial  int64
}

// NftIDFromString parses "shard.realm.num/serial" or "serial@shard.realm.num"
func NftIDFromString(s string) (NftID, error) {
	var tokenPart, serialPart string
	if i := strings.IndexByte(s, '/'); i >= 0 {
		tokenPart, serialPart = s[:i], s[i+1:]
	} else if i := strings.IndexByte(s, '@'); i >= 0 {
		serialPart, tokenPart = s[:i], s[i+1:]
	} else {
		return NftID{}, status.Errorf(status.InvalidArgument, "invalid NFT ID [%s]: expected token/serial", s)
	}
	token, err := TokenIDFromString(tokenPart)
	if err != nil {
		return NftID{}, err
	}
	serial, err := strconv.ParseInt(serialPart, 10, 64)
	if err != nil || serial < 0 {
		return NftID{}, status.Errorf(status.InvalidArgument, "invalid NFT ID [%s]: bad serial", s)
	}
	return NftID{TokenID: token, Serial: serial}, nil
}

// NftIDFromRecord converts a hapi.NftID record
func NftIDFromRecord(r *wire.Record) NftID {
	if r == nil {
		return NftID{}
	}
	return NftID{TokenID: TokenIDFromRecord(r.Message("token_ID")), Serial: r.Int("serial_number")}
}

// NftIDFromBytes decodes a serialized hapi.NftID
func NftIDFromBytes(b []byte) (NftID, error) {
	r, err := wire.Unmarshal(hapi.NftID, b)
	if err != nil {
		return NftID{}, errors.WithMessage(err, "NFT ID decode failed")
	}
	return NftIDFromRecord(r), nil
}

// String returns "shard.realm.num/serial"
func (id NftID) String() string {
	return id.TokenID.String() + "/" + strconv.FormatInt(id.Serial, 10)
}

// ValidateChecksum validates the token ID checksum
func (id NftID) ValidateChecksum(p LedgerIDProvider) error {
	return id.TokenID.ValidateChecksum(p)
}

// ToRecord converts the ID to a hapi.NftID record
func (id NftID) ToRecord() *wire.Record {
	return hapi.NftID.New().
		Set("token_ID", id.TokenID.ToRecord()).
		Set("serial_number", id.Serial)
}

// ToBytes serializes the ID as a hapi.NftID
func (id NftID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}
