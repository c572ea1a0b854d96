/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// StringToAccountIDHookFunc decodes "shard.realm.num" config values into
// AccountID, e.g. the values of the network address book
func StringToAccountIDHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(AccountID{}) {
			return data, nil
		}
		return AccountIDFromString(data.(string))
	}
}

// StringToLedgerIDHookFunc decodes network names or hex into LedgerID
func StringToLedgerIDHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(LedgerID("")) {
			return data, nil
		}
		return LedgerIDFromString(data.(string))
	}
}
