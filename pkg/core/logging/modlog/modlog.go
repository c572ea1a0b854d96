/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog is the default logging provider of the SDK. Output is
// rendered by logrus; levels are kept per module so that, for example,
// "hiero/network" can log at DEBUG while everything else stays at INFO.
package modlog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/api"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/metadata"
	"github.com/sirupsen/logrus"
)

const moduleField = "module"

var rwmutex = &sync.RWMutex{}
var moduleLevels = &metadata.ModuleLevels{}
var useCustomLogger int32

// custom logger factory singleton
var loggerProviderInstance api.LoggerProvider
var loggerProviderOnce sync.Once

// all module loggers share one logrus backend
var backend = newBackend()

func newBackend() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	// module levels do the filtering
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})
	return l
}

// Provider hands out module loggers backed by logrus
type Provider struct {
}

//GetLogger returns the logger of a module
func (p *Provider) GetLogger(module string) api.Logger {
	return &Log{module: module}
}

//LoggerProvider returns the default provider
func LoggerProvider() api.LoggerProvider {
	return &Provider{}
}

//InitLogger routes all module loggers to a custom provider. Module levels
//still apply. Only the first call has an effect.
func InitLogger(l api.LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = l
		atomic.StoreInt32(&useCustomLogger, 1)
	})
}

// SetOutput redirects the output of the default backend
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

// SetFormatter replaces the logrus formatter of the default backend,
// e.g. with &logrus.JSONFormatter{}
func SetFormatter(f logrus.Formatter) {
	backend.SetFormatter(f)
}

//SetLevel - setting log level for given module
func SetLevel(module string, level api.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()
	moduleLevels.SetLevel(module, level)
}

//GetLevel - getting log level for given module
func GetLevel(module string) api.Level {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.GetLevel(module)
}

//IsEnabledFor - Check if given log level is enabled for given module
func IsEnabledFor(module string, level api.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.IsEnabledFor(module, level)
}

// Log is a module logger. The sink it writes to is resolved on first use,
// so a custom provider installed after the logger was created still wins.
type Log struct {
	module string
	fields api.Fields
	once   sync.Once
	sink   api.Logger
}

// WithFields returns a logger of the same module that attaches fields to
// every entry
func (l *Log) WithFields(fields api.Fields) api.Logger {
	merged := make(api.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Log{module: l.module, fields: merged}
}

// Debug logs at DEBUG
func (l *Log) Debug(args ...interface{}) {
	if IsEnabledFor(l.module, api.DEBUG) {
		l.logger().Debug(args...)
	}
}

// Debugf logs at DEBUG
func (l *Log) Debugf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.DEBUG) {
		l.logger().Debugf(format, args...)
	}
}

// Info logs at INFO
func (l *Log) Info(args ...interface{}) {
	if IsEnabledFor(l.module, api.INFO) {
		l.logger().Info(args...)
	}
}

// Infof logs at INFO
func (l *Log) Infof(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.INFO) {
		l.logger().Infof(format, args...)
	}
}

// Warn logs at WARNING
func (l *Log) Warn(args ...interface{}) {
	if IsEnabledFor(l.module, api.WARNING) {
		l.logger().Warn(args...)
	}
}

// Warnf logs at WARNING
func (l *Log) Warnf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.WARNING) {
		l.logger().Warnf(format, args...)
	}
}

// Error logs at ERROR
func (l *Log) Error(args ...interface{}) {
	if IsEnabledFor(l.module, api.ERROR) {
		l.logger().Error(args...)
	}
}

// Errorf logs at ERROR
func (l *Log) Errorf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.ERROR) {
		l.logger().Errorf(format, args...)
	}
}

func (l *Log) logger() api.Logger {
	l.once.Do(func() {
		var base api.Logger
		if atomic.LoadInt32(&useCustomLogger) > 0 {
			base = loggerProviderInstance.GetLogger(l.module)
		} else {
			base = backend.WithField(moduleField, l.module)
		}
		l.sink = WithFields(base, l.fields)
	})
	return l.sink
}

// WithFields binds fields to any logger. logrus entries and FieldLoggers
// carry them natively; other loggers get them appended to the message.
func WithFields(base api.Logger, fields api.Fields) api.Logger {
	if len(fields) == 0 {
		return base
	}
	switch b := base.(type) {
	case *logrus.Entry:
		return b.WithFields(logrus.Fields(fields))
	case api.FieldLogger:
		return b.WithFields(fields)
	}
	return &suffixLogger{base: base, suffix: formatFields(fields)}
}

// formatFields renders fields as " k1=v1 k2=v2" in key order
func formatFields(fields api.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// suffixLogger appends rendered fields to loggers that cannot carry them
type suffixLogger struct {
	base   api.Logger
	suffix string
}

func (s *suffixLogger) Debug(args ...interface{}) { s.base.Debug(fmt.Sprint(args...) + s.suffix) }
func (s *suffixLogger) Info(args ...interface{}) { s.base.Info(fmt.Sprint(args...) + s.suffix) }
func (s *suffixLogger) Warn(args ...interface{}) { s.base.Warn(fmt.Sprint(args...) + s.suffix) }
func (s *suffixLogger) Error(args ...interface{}) { s.base.Error(fmt.Sprint(args...) + s.suffix) }

func (s *suffixLogger) Debugf(format string, args ...interface{}) {
	s.base.Debug(fmt.Sprintf(format, args...) + s.suffix)
}

func (s *suffixLogger) Infof(format string, args ...interface{}) {
	s.base.Info(fmt.Sprintf(format, args...) + s.suffix)
}

func (s *suffixLogger) Warnf(format string, args ...interface{}) {
	s.base.Warn(fmt.Sprintf(format, args...) + s.suffix)
}

func (s *suffixLogger) Errorf(format string, args ...interface{}) {
	s.base.Error(fmt.Sprintf(format, args...) + s.suffix)
}
