/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

// SolidityAddressLen is the byte length of an EVM address
const SolidityAddressLen = 20

type parsed struct {
	shard, realm uint64
	numStr       string
	checksum     string
}

// split parses "shard.realm.num[-checksum]" leaving num unparsed so that
// callers can accept aliases in its place
func split(kind, s string) (parsed, error) {
	var p parsed
	body := s
	if dash := strings.LastIndexByte(s, '-'); dash >= 0 {
		body, p.checksum = s[:dash], s[dash+1:]
		if !isChecksum(p.checksum) {
			return parsed{}, status.Errorf(status.InvalidArgument, "invalid %s [%s]: malformed checksum", kind, s)
		}
	}
	parts := strings.Split(body, ".")
	if len(parts) != 3 {
		return parsed{}, status.Errorf(status.InvalidArgument, "invalid %s [%s]: expected shard.realm.num", kind, s)
	}
	var err error
	if p.shard, err = parseNum(parts[0]); err != nil {
		return parsed{}, status.Errorf(status.InvalidArgument, "invalid %s [%s]: bad shard", kind, s)
	}
	if p.realm, err = parseNum(parts[1]); err != nil {
		return parsed{}, status.Errorf(status.InvalidArgument, "invalid %s [%s]: bad realm", kind, s)
	}
	p.numStr = parts[2]
	return p, nil
}

func parseID(kind, s string) (shard, realm, num uint64, checksum string, err error) {
	p, err := split(kind, s)
	if err != nil {
		return 0, 0, 0, "", err
	}
	num, err = parseNum(p.numStr)
	if err != nil {
		return 0, 0, 0, "", status.Errorf(status.InvalidArgument, "invalid %s [%s]: bad number", kind, s)
	}
	return p.shard, p.realm, num, p.checksum, nil
}

func parseNum(s string) (uint64, error) {
	// reject signs and spaces that ParseUint would not, but keep the error uniform
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(s, 10, 64)
}

func isChecksum(s string) bool {
	if len(s) != checksumLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func format(shard, realm, num uint64) string {
	return strconv.FormatUint(shard, 10) + "." + strconv.FormatUint(realm, 10) + "." + strconv.FormatUint(num, 10)
}

// decodeSolidityAddress decodes a 40 hex character address with an
// optional 0x prefix
func decodeSolidityAddress(address string) ([]byte, error) {
	address = strings.TrimPrefix(address, "0x")
	if len(address) != 2*SolidityAddressLen {
		return nil, status.Errorf(status.InvalidArgument, "solidity address must be %d hex characters", 2*SolidityAddressLen)
	}
	b, err := hex.DecodeString(address)
	if err != nil {
		return nil, status.Errorf(status.InvalidArgument, "solidity address [%s] is not valid hex", address)
	}
	return b, nil
}

// isLongZero reports whether an EVM address encodes shard.realm.num
func isLongZero(b []byte) bool {
	for _, x := range b[:12] {
		if x != 0 {
			return false
		}
	}
	return true
}

func fromSolidityBytes(b []byte) (shard, realm, num uint64) {
	return uint64(binary.BigEndian.Uint32(b[0:4])), binary.BigEndian.Uint64(b[4:12]), binary.BigEndian.Uint64(b[12:20])
}

func toSolidityAddress(shard, realm, num uint64) (string, error) {
	if shard > 0xffffffff {
		return "", status.Errorf(status.InvalidArgument, "shard %d does not fit in 32 bits", shard)
	}
	b := make([]byte, SolidityAddressLen)
	binary.BigEndian.PutUint32(b[0:4], uint32(shard))
	binary.BigEndian.PutUint64(b[4:12], realm)
	binary.BigEndian.PutUint64(b[12:20], num)
	return hex.EncodeToString(b), nil
}
