/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/providers/core"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/config"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/config/lookup"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
)

// ClientFromConfig creates a client from a JSON or YAML configuration.
// The network is either the name of a well known ledger or a map of
// "host:port" to node account ID:
//
//	network:
//	  "127.0.0.1:50211": "0.0.3"
//	operator:
//	  accountId: "0.0.1001"
//	  privateKey: "302e..."
//	client:
//	  maxAttempts: 5
//	  maxTransactionFee: "2 ℏ"
//
// Values may be overridden by HIERO_SDK_ prefixed environment variables.
func ClientFromConfig(configBytes []byte, configType string, opts ...ClientOption) (*Client, error) {
	return ClientFromConfigProvider(config.FromRaw(configBytes, configType), opts...)
}

// ClientFromConfigFile creates a client from a configuration file
func ClientFromConfigFile(path string, opts ...ClientOption) (*Client, error) {
	return ClientFromConfigProvider(config.FromFile(path), opts...)
}

// ClientFromConfigProvider creates a client from the backends of provider
func ClientFromConfigProvider(provider core.ConfigProvider, opts ...ClientOption) (*Client, error) {
	backends, err := provider()
	if err != nil {
		return nil, errors.WithMessage(err, "loading client config failed")
	}
	l := lookup.New(backends...)

	client, err := clientForConfigNetwork(l, opts)
	if err != nil {
		return nil, err
	}
	if err := applyConfig(client, l); err != nil {
		client.Close() //nolint:errcheck
		return nil, err
	}
	return client, nil
}

func clientForConfigNetwork(l *lookup.ConfigLookup, opts []ClientOption) (*Client, error) {
	value, ok := l.Lookup("network")
	if !ok {
		return nil, status.Errorf(status.InvalidArgument, "client config has no network")
	}
	if name, isName := value.(string); isName {
		return ForName(name, opts...)
	}

	var book map[string]entity.AccountID
	if err := l.UnmarshalKey("network", &book, lookup.WithUnmarshalHookFunction(entity.StringToAccountIDHookFunc())); err != nil {
		return nil, status.Errorf(status.InvalidArgument, "invalid network in client config: %s", err)
	}
	client, err := ForNetwork(book, opts...)
	if err != nil {
		return nil, err
	}
	if mirrors, ok := l.Lookup("mirrorNetwork"); ok {
		client.SetMirrorNetwork(cast.ToStringSlice(mirrors))
	}
	return client, nil
}

// configSetting applies one config key to the client when present
type configSetting struct {
	key   string
	apply func(c *Client, l *lookup.ConfigLookup, key string) error
}

var configSettings = []configSetting{
	{"ledgerId", func(c *Client, l *lookup.ConfigLookup, key string) error {
		var ledgerID entity.LedgerID
		if err := l.UnmarshalKey(key, &ledgerID, lookup.WithUnmarshalHookFunction(entity.StringToLedgerIDHookFunc())); err != nil {
			return err
		}
		c.SetLedgerID(ledgerID)
		return nil
	}},
	{"operator", func(c *Client, l *lookup.ConfigLookup, key string) error {
		var op config.Operator
		if err := l.UnmarshalKey(key, &op); err != nil {
			return err
		}
		accountID, err := entity.AccountIDFromString(op.AccountID)
		if err != nil {
			return err
		}
		privateKey, err := keys.PrivateKeyFromString(op.PrivateKey)
		if err != nil {
			return err
		}
		c.SetOperator(accountID, privateKey)
		return nil
	}},
	{"client.tls.enabled", func(c *Client, l *lookup.ConfigLookup, key string) error {
		enabled, _, err := lookup.As(l, key, cast.ToBoolE)
		c.SetTransportSecurity(enabled)
		return err
	}},
	{"client.maxAttempts", func(c *Client, l *lookup.ConfigLookup, key string) error {
		attempts, _, err := lookup.As(l, key, cast.ToIntE)
		if err != nil {
			return err
		}
		return c.SetMaxAttempts(attempts)
	}},
	{"client.maxBackoff", func(c *Client, l *lookup.ConfigLookup, key string) error {
		d, _, err := lookup.As(l, key, cast.ToDurationE)
		if err != nil {
			return err
		}
		return c.SetMaxBackoff(d)
	}},
	{"client.minBackoff", func(c *Client, l *lookup.ConfigLookup, key string) error {
		d, _, err := lookup.As(l, key, cast.ToDurationE)
		if err != nil {
			return err
		}
		return c.SetMinBackoff(d)
	}},
	{"client.grpcDeadline", func(c *Client, l *lookup.ConfigLookup, key string) error {
		d, _, err := lookup.As(l, key, cast.ToDurationE)
		if err != nil {
			return err
		}
		return c.SetGrpcDeadline(d)
	}},
	{"client.requestTimeout", func(c *Client, l *lookup.ConfigLookup, key string) error {
		d, _, err := lookup.As(l, key, cast.ToDurationE)
		if err != nil {
			return err
		}
		return c.SetRequestTimeout(d)
	}},
	{"client.maxTransactionFee", func(c *Client, l *lookup.ConfigLookup, key string) error {
		fee, err := hbar.FromString(l.GetString(key))
		if err != nil {
			return err
		}
		return c.SetDefaultMaxTransactionFee(fee)
	}},
	{"client.maxQueryPayment", func(c *Client, l *lookup.ConfigLookup, key string) error {
		payment, err := hbar.FromString(l.GetString(key))
		if err != nil {
			return err
		}
		return c.SetDefaultMaxQueryPayment(payment)
	}},
	{"client.autoValidateChecksums", func(c *Client, l *lookup.ConfigLookup, key string) error {
		validate, _, err := lookup.As(l, key, cast.ToBoolE)
		c.SetAutoValidateChecksums(validate)
		return err
	}},
	{"client.maxNodesPerRequest", func(c *Client, l *lookup.ConfigLookup, key string) error {
		limit, _, err := lookup.As(l, key, cast.ToIntE)
		if err != nil {
			return err
		}
		return c.SetMaxNodesPerRequest(limit)
	}},
	{"client.metrics.enabled", func(c *Client, l *lookup.ConfigLookup, key string) error {
		if !l.GetBool(key) {
			return nil
		}
		return c.EnableMetrics(nil)
	}},
}

func applyConfig(c *Client, l *lookup.ConfigLookup) error {
	for _, s := range configSettings {
		if _, ok := l.Lookup(s.key); !ok {
			continue
		}
		if err := s.apply(c, l, s.key); err != nil {
			return errors.WithMessagef(err, "invalid client config %s", s.key)
		}
	}
	return nil
}
