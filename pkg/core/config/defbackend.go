/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/providers/core"
)

// viperBackend serves lookups from a private viper instance, so the
// global viper of an application is never touched
type viperBackend struct {
	v *viper.Viper
}

func newBackend(envPrefix string) *viperBackend {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return &viperBackend{v: v}
}

// Lookup returns the value of key. With core.WithUnmarshalType the value
// is decoded into the given type, which is then returned.
func (b *viperBackend) Lookup(key string, opts ...core.LookupOption) (interface{}, bool) {
	lookupOpts := &core.LookupOpts{}
	for _, option := range opts {
		option(lookupOpts)
	}

	if lookupOpts.UnmarshalType == nil {
		value := b.v.Get(key)
		return value, value != nil
	}

	if !b.v.IsSet(key) {
		return nil, false
	}
	if err := b.v.UnmarshalKey(key, lookupOpts.UnmarshalType); err != nil {
		logger.Debugf("unmarshal of config key [%s] failed: %s", key, err)
		return nil, false
	}
	return lookupOpts.UnmarshalType, true
}

// loadTemplate reads the defaults found in path, if any
func (b *viperBackend) loadTemplate(path string) error {
	if path == "" {
		return nil
	}
	b.v.AddConfigPath(os.ExpandEnv(path))
	return errors.Wrap(b.v.ReadInConfig(), "loading config template failed")
}
