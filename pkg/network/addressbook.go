/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"embed"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
)

//go:embed addressbook/*.yaml
var addressBooks embed.FS

// AddressBook lists the nodes and mirror nodes of a ledger
type AddressBook struct {
	LedgerID      entity.LedgerID
	Network       map[string]entity.AccountID
	MirrorNetwork []string
}

type addressBookYAML struct {
	LedgerID      string            `yaml:"ledgerId"`
	Network       map[string]string `yaml:"network"`
	MirrorNetwork []string          `yaml:"mirrorNetwork"`
}

// AddressBookFromYAML parses an address book:
//
//	ledgerId: testnet
//	network:
//	  "0.testnet.hedera.com:50211": 0.0.3
//	mirrorNetwork:
//	  - testnet.mirrornode.hedera.com:443
func AddressBookFromYAML(b []byte) (*AddressBook, error) {
	var raw addressBookYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrap(err, "address book unmarshal failed")
	}
	if len(raw.Network) == 0 {
		return nil, errors.New("address book has no nodes")
	}

	book := &AddressBook{
		Network:       make(map[string]entity.AccountID, len(raw.Network)),
		MirrorNetwork: raw.MirrorNetwork,
	}
	if raw.LedgerID != "" {
		ledgerID, err := entity.LedgerIDFromString(raw.LedgerID)
		if err != nil {
			return nil, err
		}
		book.LedgerID = ledgerID
	}
	for addr, id := range raw.Network {
		accountID, err := entity.AccountIDFromString(id)
		if err != nil {
			return nil, errors.WithMessagef(err, "address book entry %s", addr)
		}
		book.Network[addr] = accountID
	}
	return book, nil
}

// AddressBookFromFile reads an address book file
func AddressBookFromFile(path string) (*AddressBook, error) {
	b, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "reading address book %s failed", path)
	}
	return AddressBookFromYAML(b)
}

// AddressBookForLedger returns the built-in address book of mainnet,
// testnet or previewnet
func AddressBookForLedger(ledgerID entity.LedgerID) (*AddressBook, error) {
	switch ledgerID {
	case entity.LedgerMainnet, entity.LedgerTestnet, entity.LedgerPreviewnet:
	default:
		return nil, errors.Errorf("no address book for ledger %s", ledgerID)
	}
	b, err := addressBooks.ReadFile("addressbook/" + ledgerID.String() + ".yaml")
	if err != nil {
		return nil, errors.Wrapf(err, "address book of %s is missing", ledgerID)
	}
	return AddressBookFromYAML(b)
}

// ForLedger creates the network of a well known ledger
func ForLedger(ledgerID entity.LedgerID, opts ...Option) (*Network, *AddressBook, error) {
	book, err := AddressBookForLedger(ledgerID)
	if err != nil {
		return nil, nil, err
	}
	n, err := New(book.Network, append([]Option{WithLedgerID(ledgerID)}, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	return n, book, nil
}
