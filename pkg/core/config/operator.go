/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var logger = logging.NewLogger("hiero/common")

const (
	// OperatorIDEnv holds the operator account ID, e.g. "0.0.1234"
	OperatorIDEnv = "OPERATOR_ID"
	// OperatorKeyEnv holds the operator private key as a DER or raw hex string
	OperatorKeyEnv = "OPERATOR_KEY"
	// NetworkEnv optionally names the network: mainnet, testnet, previewnet
	NetworkEnv = "HIERO_NETWORK"
)

// Operator is the account paying for transactions and queries
type Operator struct {
	AccountID  string `mapstructure:"accountId"`
	PrivateKey string `mapstructure:"privateKey"`
}

// OperatorFromEnv reads the operator from OPERATOR_ID and OPERATOR_KEY.
// Both must be set.
func OperatorFromEnv() (Operator, error) {
	v := viper.New()
	for _, env := range []string{OperatorIDEnv, OperatorKeyEnv} {
		if err := v.BindEnv(env); err != nil {
			return Operator{}, errors.Wrapf(err, "binding %s failed", env)
		}
	}

	op := Operator{
		AccountID:  v.GetString(OperatorIDEnv),
		PrivateKey: v.GetString(OperatorKeyEnv),
	}
	if op.AccountID == "" {
		return Operator{}, errors.Errorf("%s is not set", OperatorIDEnv)
	}
	if op.PrivateKey == "" {
		return Operator{}, errors.Errorf("%s is not set", OperatorKeyEnv)
	}
	logger.Debugf("operator %s loaded from environment", op.AccountID)
	return op, nil
}

// NetworkFromEnv returns the network named by HIERO_NETWORK, or def when unset
func NetworkFromEnv(def string) string {
	v := viper.New()
	if err := v.BindEnv(NetworkEnv); err != nil {
		return def
	}
	v.SetDefault(NetworkEnv, def)
	return v.GetString(NetworkEnv)
}
