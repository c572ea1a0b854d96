/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"strings"

	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/api"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// level names as written in config files, indexed by api.Level
var levelNames = []string{
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFO",
	"DEBUG",
}

// ParseLevel returns the log level from a string representation.
// logrus level names ("warn", "fatal") are accepted as well.
func ParseLevel(level string) (api.Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return api.Level(i), nil
		}
	}
	if l, err := logrus.ParseLevel(level); err == nil {
		return FromLogrus(l), nil
	}
	return api.ERROR, errors.Errorf("logger: invalid log level [%s]", level)
}

// FromLogrus maps a logrus level onto the closest SDK level
func FromLogrus(level logrus.Level) api.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return api.CRITICAL
	case logrus.ErrorLevel:
		return api.ERROR
	case logrus.WarnLevel:
		return api.WARNING
	case logrus.InfoLevel:
		return api.INFO
	default:
		return api.DEBUG
	}
}
