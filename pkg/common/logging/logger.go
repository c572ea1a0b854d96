/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging is the logging facade used by every SDK package.
//
// Each package owns one module logger, e.g. "hiero/client" or
// "hiero/network". Output goes to the logrus backend of modlog unless an
// application installs its own provider with Initialize before the first
// entry is written. Levels are set per module, either with SetLevel or
// from the client.logging section of a client config file.
package logging

import (
	"sync"

	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/api"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/metadata"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/modlog"
)

// Level is the severity of a log entry
type Level = api.Level

// Log levels.
const (
	CRITICAL = api.CRITICAL
	ERROR    = api.ERROR
	WARNING  = api.WARNING
	INFO     = api.INFO
	DEBUG    = api.DEBUG
)

// Fields are structured key/value pairs attached to log entries
type Fields = api.Fields

const loggerModule = "hiero/common"

// provider singleton, access only via loggerProvider()
var loggerProviderInstance api.LoggerProvider
var loggerProviderOnce sync.Once

func loggerProvider() api.LoggerProvider {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = modlog.LoggerProvider()
		loggerProviderInstance.GetLogger(loggerModule).Debug("using the default logger provider")
	})
	return loggerProviderInstance
}

// Initialize installs the provider that takes over all SDK logging. It has
// no effect once anything was logged through the default provider.
func Initialize(l api.LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = l
		loggerProviderInstance.GetLogger(loggerModule).Debug("logger provider initialized")
	})
}

// SetLevel sets the level of a module
func SetLevel(module string, level Level) {
	modlog.SetLevel(module, level)
}

// GetLevel returns the level of a module
func GetLevel(module string) Level {
	return modlog.GetLevel(module)
}

// IsEnabledFor reports whether entries at level are written for module
func IsEnabledFor(module string, level Level) bool {
	return modlog.IsEnabledFor(module, level)
}

// LogLevel parses a level name. Both "WARNING" and the logrus style
// "warn" are accepted.
func LogLevel(level string) (Level, error) {
	return metadata.ParseLevel(level)
}

// Logger is a module logger whose backing logger is created on first use
type Logger struct {
	module string
	fields Fields
	once   sync.Once
	inst   api.Logger
}

// NewLogger returns the logger of a module
func NewLogger(module string) *Logger {
	return &Logger{module: module}
}

// WithFields returns a logger of the same module that attaches fields to
// every entry. Callers typically bind a node or transaction ID once and
// log through the result for the rest of a request.
func (l *Logger) WithFields(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{module: l.module, fields: merged}
}

func (l *Logger) Debug(args ...interface{}) { l.logger().Debug(args...) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.logger().Debugf(format, args...) }

func (l *Logger) Info(args ...interface{}) { l.logger().Info(args...) }

func (l *Logger) Infof(format string, args ...interface{}) { l.logger().Infof(format, args...) }

func (l *Logger) Warn(args ...interface{}) { l.logger().Warn(args...) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.logger().Warnf(format, args...) }

func (l *Logger) Error(args ...interface{}) { l.logger().Error(args...) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.logger().Errorf(format, args...) }

func (l *Logger) logger() api.Logger {
	l.once.Do(func() {
		l.inst = modlog.WithFields(loggerProvider().GetLogger(l.module), l.fields)
	})
	return l.inst
}
