/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"fmt"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// TransactionKind describes one type of transaction: the member of the
// TransactionBody data oneof holding its payload, the gRPC method it is
// submitted with and the schema of the payload.
type TransactionKind struct {
	Name          string
	DataCase      string
	Method        string
	Schema        *wire.Schema
	DefaultMaxFee hbar.Amount
	// Required lists the payload fields that must be set before freezing
	Required []string
}

var kinds = make(map[string]*TransactionKind)

func registerKind(kind *TransactionKind) *TransactionKind {
	if _, ok := kinds[kind.DataCase]; ok {
		panic(fmt.Sprintf("transaction kind %s registered twice", kind.DataCase))
	}
	kinds[kind.DataCase] = kind
	return kind
}

// kindForDataCase returns the kind of a TransactionBody data case
func kindForDataCase(dataCase string) (*TransactionKind, error) {
	if dataCase == "" {
		return nil, status.Errorf(status.InvalidArgument, "transaction body has no data")
	}
	kind, ok := kinds[dataCase]
	if !ok {
		return nil, status.Errorf(status.InvalidArgument, "unsupported transaction data [%s]", dataCase)
	}
	return kind, nil
}

func (k *TransactionKind) validate(data *wire.Record) error {
	for _, field := range k.Required {
		if !data.Has(field) {
			return status.Errorf(status.InvalidArgument, "%s requires %s", k.Name, field)
		}
	}
	return nil
}

func (k *TransactionKind) String() string {
	return k.Name
}
