/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config loads client configuration files with viper. Every key
// can be overridden from the environment: client.maxAttempts is read from
// HIERO_SDK_CLIENT_MAXATTEMPTS unless another prefix is configured.
//
// Loading a configuration also applies its client.logging section:
//
//	client:
//	  logging:
//	    level: info
//	    modules:
//	      hiero/network: debug
package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/providers/core"
)

// DefaultEnvPrefix is the prefix of environment overrides
const DefaultEnvPrefix = "HIERO_SDK"

// rootLogModule is the parent of all SDK logger modules
const rootLogModule = "hiero"

type options struct {
	envPrefix    string
	templatePath string
}

// Option configures how a configuration is loaded
type Option func(opts *options) error

// WithEnvPrefix replaces DefaultEnvPrefix. See viper SetEnvPrefix.
func WithEnvPrefix(prefix string) Option {
	return func(opts *options) error {
		opts.envPrefix = prefix
		return nil
	}
}

// WithTemplatePath loads default values from the config file found in
// path. The actual configuration is merged on top.
func WithTemplatePath(path string) Option {
	return func(opts *options) error {
		if path == "" {
			return errors.New("template path is empty")
		}
		opts.templatePath = path
		return nil
	}
}

// FromFile loads the named file. The format follows the file extension.
func FromFile(name string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		if name == "" {
			return nil, errors.New("filename is required")
		}
		return load(opts, func(v *viper.Viper) error {
			v.SetConfigFile(name)
			return errors.Wrapf(v.MergeInConfig(), "loading config file %s failed", name)
		})
	}
}

// FromReader loads configuration from in. configType is "json" or "yaml".
func FromReader(in io.Reader, configType string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		if configType == "" {
			return nil, errors.New("empty config type")
		}
		return load(opts, func(v *viper.Viper) error {
			v.SetConfigType(configType)
			return errors.Wrapf(v.MergeConfig(in), "reading %s config failed", configType)
		})
	}
}

// FromRaw loads configuration from configBytes
func FromRaw(configBytes []byte, configType string, opts ...Option) core.ConfigProvider {
	return FromReader(bytes.NewReader(configBytes), configType, opts...)
}

func load(opts []Option, merge func(v *viper.Viper) error) ([]core.ConfigBackend, error) {
	o := options{envPrefix: DefaultEnvPrefix}
	for _, option := range opts {
		if err := option(&o); err != nil {
			return nil, errors.WithMessage(err, "invalid config option")
		}
	}

	backend := newBackend(o.envPrefix)
	if err := backend.loadTemplate(o.templatePath); err != nil {
		return nil, err
	}
	if err := merge(backend.v); err != nil {
		return nil, err
	}
	if err := applyLogging(backend); err != nil {
		return nil, err
	}
	return []core.ConfigBackend{backend}, nil
}

// loggingConfig is the client.logging section
type loggingConfig struct {
	Level   string            `mapstructure:"level"`
	Modules map[string]string `mapstructure:"modules"`
}

// applyLogging sets the level of the whole SDK, then the module overrides
func applyLogging(backend *viperBackend) error {
	var cfg loggingConfig
	if _, ok := backend.Lookup("client.logging", core.WithUnmarshalType(&cfg)); !ok {
		return nil
	}
	// an environment override is not part of the unmarshalled section
	if level, ok := backend.Lookup("client.logging.level"); ok {
		cfg.Level, _ = level.(string)
	}

	if cfg.Level != "" {
		level, err := logging.LogLevel(cfg.Level)
		if err != nil {
			return errors.WithMessage(err, "invalid client.logging.level")
		}
		logging.SetLevel(rootLogModule, level)
	}
	for module, name := range cfg.Modules {
		level, err := logging.LogLevel(name)
		if err != nil {
			return errors.WithMessagef(err, "invalid client.logging.modules level of %s", module)
		}
		logging.SetLevel(strings.ToLower(module), level)
	}
	return nil
}
