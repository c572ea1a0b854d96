/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// LedgerID identifies a ledger. It is the input of entity ID checksums.
// The value holds the raw ledger ID bytes and is comparable.
type LedgerID string

// Well known ledgers
const (
	LedgerMainnet    LedgerID = "\x00"
	LedgerTestnet    LedgerID = "\x01"
	LedgerPreviewnet LedgerID = "\x02"
)

var ledgerNames = map[LedgerID]string{
	LedgerMainnet:    "mainnet",
	LedgerTestnet:    "testnet",
	LedgerPreviewnet: "previewnet",
}

// NewLedgerID creates a ledger ID from its bytes
func NewLedgerID(b []byte) LedgerID {
	return LedgerID(b)
}

// LedgerIDFromString accepts a network name (mainnet, testnet, previewnet)
// or the hex encoding of the ledger ID bytes
func LedgerIDFromString(s string) (LedgerID, error) {
	lower := strings.ToLower(s)
	for id, name := range ledgerNames {
		if name == lower {
			return id, nil
		}
	}
	b, err := hex.DecodeString(strings.TrimPrefix(lower, "0x"))
	if err != nil || len(b) == 0 {
		return "", errors.Errorf("invalid ledger ID [%s]", s)
	}
	return LedgerID(b), nil
}

// Bytes returns the ledger ID bytes
func (l LedgerID) Bytes() []byte {
	return []byte(l)
}

// IsEmpty reports whether no ledger is set
func (l LedgerID) IsEmpty() bool {
	return l == ""
}

// String returns the network name for well known ledgers, otherwise hex
func (l LedgerID) String() string {
	if name, ok := ledgerNames[l]; ok {
		return name
	}
	return hex.EncodeToString([]byte(l))
}

// LedgerIDProvider is implemented by clients that know which ledger they
// talk to
type LedgerIDProvider interface {
	GetLedgerID() LedgerID
}

// GetLedgerID lets a bare LedgerID act as a LedgerIDProvider
func (l LedgerID) GetLedgerID() LedgerID {
	return l
}
