/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package lookup reads typed values from a chain of config backends. The
// first backend that has a key wins.
package lookup

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/providers/core"
)

// ConfigLookup reads keys from its backends in order
type ConfigLookup struct {
	backends []core.ConfigBackend
}

// New returns a lookup over backends. nil backends are skipped.
func New(backends ...core.ConfigBackend) *ConfigLookup {
	return &ConfigLookup{backends: backends}
}

// Lookup returns the raw value of key
func (c *ConfigLookup) Lookup(key string) (interface{}, bool) {
	for _, backend := range c.backends {
		if backend == nil {
			continue
		}
		if val, ok := backend.Lookup(key); ok {
			return val, true
		}
	}
	return nil, false
}

// As converts the value of key with conv, e.g. cast.ToDurationE. found is
// false for a missing key; err is set when the value does not convert.
func As[T any](c *ConfigLookup, key string, conv func(interface{}) (T, error)) (value T, found bool, err error) {
	raw, ok := c.Lookup(key)
	if !ok {
		return value, false, nil
	}
	value, err = conv(raw)
	if err != nil {
		return value, true, errors.Wrapf(err, "invalid value for %s", key)
	}
	return value, true, nil
}

// lenient returns the zero value for missing and malformed keys
func lenient[T any](c *ConfigLookup, key string, conv func(interface{}) (T, error)) T {
	value, _, err := As(c, key, conv)
	if err != nil {
		var zero T
		return zero
	}
	return value
}

// GetBool returns the bool value of key, false when missing or malformed
func (c *ConfigLookup) GetBool(key string) bool {
	return lenient(c, key, cast.ToBoolE)
}

// GetString returns the string value of key
func (c *ConfigLookup) GetString(key string) string {
	return lenient(c, key, cast.ToStringE)
}

// GetInt returns the int value of key
func (c *ConfigLookup) GetInt(key string) int {
	return lenient(c, key, cast.ToIntE)
}

// GetDuration returns the duration value of key. Strings use the
// time.ParseDuration format; bare numbers are nanoseconds.
func (c *ConfigLookup) GetDuration(key string) time.Duration {
	return lenient(c, key, cast.ToDurationE)
}

// UnmarshalOption adds to the decode hooks of UnmarshalKey
type UnmarshalOption func(hooks []mapstructure.DecodeHookFunc) []mapstructure.DecodeHookFunc

// WithUnmarshalHookFunction decodes with hookFunction in addition to the
// duration and comma separated slice hooks
func WithUnmarshalHookFunction(hookFunction mapstructure.DecodeHookFunc) UnmarshalOption {
	return func(hooks []mapstructure.DecodeHookFunc) []mapstructure.DecodeHookFunc {
		return append(hooks, hookFunction)
	}
}

// UnmarshalKey decodes the value of key into rawVal. A missing key leaves
// rawVal untouched.
func (c *ConfigLookup) UnmarshalKey(key string, rawVal interface{}, opts ...UnmarshalOption) error {
	value, ok := c.Lookup(key)
	if !ok {
		return nil
	}

	hooks := []mapstructure.DecodeHookFunc{
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	}
	for _, opt := range opts {
		hooks = opt(hooks)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(hooks...),
		Result:     rawVal,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(value)
}
