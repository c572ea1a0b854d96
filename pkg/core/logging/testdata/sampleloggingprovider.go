/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testdata

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hiero-ledger/hiero-client-go/pkg/core/logging/api"
)

// CustomOutput marks every line written by a SampleLogger
const CustomOutput = "CUSTOM LOG OUTPUT"

//GetSampleLoggingProvider returns a provider whose loggers write
//"[module] LEVEL CUSTOM LOG OUTPUT: message" lines into output
func GetSampleLoggingProvider(output *bytes.Buffer) api.LoggerProvider {
	return &sampleLoggingProvider{buf: output}
}

type sampleLoggingProvider struct {
	mutex sync.Mutex
	buf   *bytes.Buffer
}

func (p *sampleLoggingProvider) GetLogger(module string) api.Logger {
	return &SampleLogger{provider: p, module: module}
}

//SampleLogger is a plain Logger without structured field support
type SampleLogger struct {
	provider *sampleLoggingProvider
	module   string
}

func (l *SampleLogger) write(level, msg string) {
	l.provider.mutex.Lock()
	defer l.provider.mutex.Unlock()
	fmt.Fprintf(l.provider.buf, "[%s] %s %s: %s\n", l.module, level, CustomOutput, msg)
}

//Debug logging
func (l *SampleLogger) Debug(args ...interface{}) { l.write("DEBUG", fmt.Sprint(args...)) }

//Debugf logging
func (l *SampleLogger) Debugf(format string, args ...interface{}) {
	l.write("DEBUG", fmt.Sprintf(format, args...))
}

//Info logging
func (l *SampleLogger) Info(args ...interface{}) { l.write("INFO", fmt.Sprint(args...)) }

//Infof logging
func (l *SampleLogger) Infof(format string, args ...interface{}) {
	l.write("INFO", fmt.Sprintf(format, args...))
}

//Warn logging
func (l *SampleLogger) Warn(args ...interface{}) { l.write("WARNING", fmt.Sprint(args...)) }

//Warnf logging
func (l *SampleLogger) Warnf(format string, args ...interface{}) {
	l.write("WARNING", fmt.Sprintf(format, args...))
}

//Error logging
func (l *SampleLogger) Error(args ...interface{}) { l.write("ERROR", fmt.Sprint(args...)) }

//Errorf logging
func (l *SampleLogger) Errorf(format string, args ...interface{}) {
	l.write("ERROR", fmt.Sprintf(format, args...))
}
