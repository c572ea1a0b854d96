/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metrics counts and times the requests a client executes.
package metrics

import (
	"fmt"
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/multi"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

const namespace = "hiero"

var (
	requestsReceived = CounterOpts{
		Namespace:  namespace,
		Subsystem:  "client",
		Name:       "requests_received",
		Help:       "The number of transactions and queries executed.",
		LabelNames: []string{"type", "kind"},
	}
	requestsFailed = CounterOpts{
		Namespace:  namespace,
		Subsystem:  "client",
		Name:       "requests_failed",
		Help:       "The number of transactions and queries that failed (timeouts excluded).",
		LabelNames: []string{"type", "kind", "fail"},
	}
	requestTimeouts = CounterOpts{
		Namespace:  namespace,
		Subsystem:  "client",
		Name:       "request_timeouts",
		Help:       "The number of transactions and queries that timed out.",
		LabelNames: []string{"type", "kind"},
	}
	requestDuration = HistogramOpts{
		Namespace:  namespace,
		Subsystem:  "client",
		Name:       "request_duration",
		Help:       "The time in seconds to complete a transaction or query.",
		LabelNames: []string{"type", "kind"},
	}
	nodeAttempts = CounterOpts{
		Namespace:  namespace,
		Subsystem:  "client",
		Name:       "node_attempts",
		Help:       "The number of gRPC calls made to a node, by outcome.",
		LabelNames: []string{"node", "outcome"},
	}
)

// Request types
const (
	TypeTransaction = "transaction"
	TypeQuery       = "query"
)

// ClientMetrics contains the metrics of a client
type ClientMetrics struct {
	RequestsReceived kitmetrics.Counter
	RequestsFailed   kitmetrics.Counter
	RequestTimeouts  kitmetrics.Counter
	RequestDuration  kitmetrics.Histogram
	NodeAttempts     kitmetrics.Counter
}

// NewClientMetrics builds a new instance of ClientMetrics
func NewClientMetrics(p Provider) (*ClientMetrics, error) {
	m := &ClientMetrics{}
	var errs error
	var err error
	m.RequestsReceived, err = p.NewCounter(requestsReceived)
	errs = multi.Append(errs, err)
	m.RequestsFailed, err = p.NewCounter(requestsFailed)
	errs = multi.Append(errs, err)
	m.RequestTimeouts, err = p.NewCounter(requestTimeouts)
	errs = multi.Append(errs, err)
	m.RequestDuration, err = p.NewHistogram(requestDuration)
	errs = multi.Append(errs, err)
	m.NodeAttempts, err = p.NewCounter(nodeAttempts)
	errs = multi.Append(errs, err)
	if errs != nil {
		return nil, errs
	}
	return m, nil
}

// NewDisabledClientMetrics returns metrics that record nothing
func NewDisabledClientMetrics() *ClientMetrics {
	m, _ := NewClientMetrics(DisabledProvider{}) // nolint: errcheck
	return m
}

// Request records the outcome of one execution started at start
func (m *ClientMetrics) Request(requestType, kind string, start time.Time, err error) {
	labels := []string{"type", requestType, "kind", kind}
	m.RequestsReceived.With(labels...).Add(1)
	if err != nil {
		if s, ok := status.FromError(err); ok {
			if s.Group == status.ClientStatus && s.Code == status.Timeout.ToInt32() {
				m.RequestTimeouts.With(labels...).Add(1)
				return
			}
			m.RequestsFailed.With(append(labels, "fail", fmt.Sprintf("%s:%d", s.Group, s.Code))...).Add(1)
			return
		}
		m.RequestsFailed.With(append(labels, "fail", "generic")...).Add(1)
		return
	}
	m.RequestDuration.With(labels...).Observe(time.Since(start).Seconds())
}

// Attempt records one gRPC call to a node
func (m *ClientMetrics) Attempt(node, outcome string) {
	m.NodeAttempts.With("node", node, "outcome", outcome).Add(1)
}
