/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keys

import (
	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// KeyList is a composite key. Without threshold all keys must sign,
// otherwise at least threshold of them.
type KeyList struct {
	keys      []Key
	threshold int
}

// NewKeyList creates a list requiring every key
func NewKeyList(keys ...Key) *KeyList {
	return &KeyList{keys: keys}
}

// NewThresholdKey creates a list requiring threshold of the keys
func NewThresholdKey(threshold int, keys ...Key) *KeyList {
	return &KeyList{keys: keys, threshold: threshold}
}

// Add appends keys to the list
func (l *KeyList) Add(keys ...Key) *KeyList {
	l.keys = append(l.keys, keys...)
	return l
}

// Keys returns the keys of the list
func (l *KeyList) Keys() []Key {
	return l.keys
}

// Threshold returns the number of required signatures, 0 meaning all
func (l *KeyList) Threshold() int {
	return l.threshold
}

func (l *KeyList) listRecord() *wire.Record {
	list := hapi.KeyList.New()
	for _, k := range l.keys {
		list.Append("keys", k.ToRecord())
	}
	return list
}

// ToRecord encodes the list as a hapi.Key
func (l *KeyList) ToRecord() *wire.Record {
	if l.threshold > 0 {
		return hapi.Key.New().Set("thresholdKey", hapi.ThresholdKey.New().
			Set("threshold", l.threshold).
			Set("keys", l.listRecord()))
	}
	return hapi.Key.New().Set("keyList", l.listRecord())
}

// ContractKey is a key satisfied by a smart contract
type ContractKey struct {
	ContractID  entity.ContractID
	Delegatable bool
}

// ToRecord encodes the key as a hapi.Key
func (k ContractKey) ToRecord() *wire.Record {
	if k.Delegatable {
		return hapi.Key.New().Set("delegatable_contract_id", k.ContractID.ToRecord())
	}
	return hapi.Key.New().Set("contractID", k.ContractID.ToRecord())
}

// KeyFromRecord decodes a hapi.Key
func KeyFromRecord(r *wire.Record) (Key, error) {
	if r == nil {
		return nil, status.Errorf(status.InvalidArgument, "key is not set")
	}
	switch which := r.WhichOneof("key"); which {
	case "ed25519", "ECDSA_secp256k1":
		return PublicKeyFromRecord(r)
	case "contractID":
		return ContractKey{ContractID: entity.ContractIDFromRecord(r.Message(which))}, nil
	case "delegatable_contract_id":
		return ContractKey{ContractID: entity.ContractIDFromRecord(r.Message(which)), Delegatable: true}, nil
	case "keyList":
		return keyListFromRecord(r.Message(which), 0)
	case "thresholdKey":
		t := r.Message(which)
		return keyListFromRecord(t.Message("keys"), int(t.Uint("threshold")))
	default:
		return nil, status.Errorf(status.InvalidArgument, "unsupported key type [%s]", which)
	}
}

func keyListFromRecord(r *wire.Record, threshold int) (*KeyList, error) {
	l := &KeyList{threshold: threshold}
	if r == nil {
		return l, nil
	}
	for i, kr := range r.Messages("keys") {
		k, err := KeyFromRecord(kr)
		if err != nil {
			return nil, errors.WithMessagef(err, "key %d of list", i)
		}
		l.keys = append(l.keys, k)
	}
	return l, nil
}

// KeyFromBytes decodes a serialized hapi.Key
func KeyFromBytes(b []byte) (Key, error) {
	r, err := wire.Unmarshal(hapi.Key, b)
	if err != nil {
		return nil, errors.WithMessage(err, "key decode failed")
	}
	return KeyFromRecord(r)
}
