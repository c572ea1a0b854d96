/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"fmt"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

const (
	checksumWeight     = 31
	checksumP3         = 26 * 26 * 26
	checksumP5         = 26 * 26 * 26 * 26 * 26
	checksumMultiplier = 1000003
	checksumLen        = 5
)

// Checksum computes the five letter checksum of an address
// ("shard.realm.num") on the given ledger
func Checksum(address string, ledger LedgerID) string {
	var evenSum, oddSum, digitSum uint64
	for i := 0; i < len(address); i++ {
		d := uint64(10)
		if address[i] != '.' {
			d = uint64(address[i] - '0')
		}
		digitSum = (digitSum*checksumWeight + d) % checksumP3
		if i%2 == 0 {
			evenSum += d
		} else {
			oddSum += d
		}
	}
	evenSum %= 11
	oddSum %= 11

	// ledger bytes followed by six zero bytes
	var ledgerSum uint64
	for _, b := range append(ledger.Bytes(), 0, 0, 0, 0, 0, 0) {
		ledgerSum = ledgerSum*checksumWeight + uint64(b)
	}
	ledgerSum %= checksumP5

	sum := ((((uint64(len(address))%5)*11+evenSum)*11+oddSum)*checksumP3 + digitSum + ledgerSum) % checksumP5
	sum = (sum * checksumMultiplier) % checksumP5

	out := make([]byte, checksumLen)
	for i := checksumLen - 1; i >= 0; i-- {
		out[i] = byte('a' + sum%26)
		sum /= 26
	}
	return string(out)
}

// BadEntityIDError is returned when the checksum of an entity ID does not
// match the ledger of the client
type BadEntityIDError struct {
	Shard            uint64
	Realm            uint64
	Num              uint64
	PresentChecksum  string
	ExpectedChecksum string
}

func (e *BadEntityIDError) Error() string {
	return fmt.Sprintf("network mismatch or misspelled entity ID: %d.%d.%d has checksum %s, expected %s",
		e.Shard, e.Realm, e.Num, e.PresentChecksum, e.ExpectedChecksum)
}

// ToStatus implements status.Provider
func (e *BadEntityIDError) ToStatus() *status.Status {
	return status.New(status.ClientStatus, status.BadEntityID.ToInt32(), e.Error(), nil)
}

func validateChecksum(shard, realm, num uint64, present string, p LedgerIDProvider) error {
	if present == "" {
		return nil
	}
	ledger := p.GetLedgerID()
	if ledger.IsEmpty() {
		return status.Errorf(status.IllegalState, "client has no ledger ID to validate checksums with")
	}
	expected := Checksum(format(shard, realm, num), ledger)
	if expected != present {
		return &BadEntityIDError{Shard: shard, Realm: realm, Num: num, PresentChecksum: present, ExpectedChecksum: expected}
	}
	return nil
}

func withChecksum(shard, realm, num uint64, p LedgerIDProvider) (string, error) {
	ledger := p.GetLedgerID()
	if ledger.IsEmpty() {
		return "", status.Errorf(status.IllegalState, "client has no ledger ID to compute checksums with")
	}
	address := format(shard, realm, num)
	return address + "-" + Checksum(address, ledger), nil
}
