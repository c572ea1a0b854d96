/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package api

// Level is the severity of a log entry. Lower is more severe.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

// Fields are key/value pairs attached to a log entry, such as the node
// account ID or transaction ID a request is bound to.
type Fields map[string]interface{}

// Logger is the logging interface of the SDK. The SDK never terminates
// the process, so there is no Fatal variant.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// FieldLogger is implemented by loggers that render structured fields.
// Loggers without it get the fields appended to the message text.
type FieldLogger interface {
	Logger
	WithFields(fields Fields) Logger
}

// LoggerProvider is a factory for module loggers
type LoggerProvider interface {
	GetLogger(module string) Logger
}

// LoggingType is the per-module entry of the client.logging config section
type LoggingType struct {
	Level string `mapstructure:"level"`
}
