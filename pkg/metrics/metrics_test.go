/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

func gather(t *testing.T, r *prometheus.Registry) map[string]*dto.MetricFamily {
	families, err := r.Gather()
	require.NoError(t, err)
	m := map[string]*dto.MetricFamily{}
	for _, f := range families {
		m[f.GetName()] = f
	}
	return m
}

func counterTotal(f *dto.MetricFamily) float64 {
	if f == nil {
		return 0
	}
	var total float64
	for _, m := range f.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	return total
}

func TestClientMetrics(t *testing.T) {
	r := prometheus.NewRegistry()
	m, err := NewClientMetrics(NewPrometheusProvider(r))
	require.NoError(t, err)

	start := time.Now()
	m.Request(TypeTransaction, "TokenDeleteTransaction", start, nil)
	m.Request(TypeQuery, "AccountBalanceQuery", start, status.Errorf(status.Timeout, "deadline"))
	m.Request(TypeQuery, "AccountBalanceQuery", start, status.Errorf(status.IllegalState, "frozen"))
	m.Request(TypeQuery, "AccountBalanceQuery", start, errors.New("boom"))
	m.Attempt("0.0.3", "ok")

	families := gather(t, r)
	assert.Equal(t, float64(4), counterTotal(families["hiero_client_requests_received"]))
	assert.Equal(t, float64(2), counterTotal(families["hiero_client_requests_failed"]))
	assert.Equal(t, float64(1), counterTotal(families["hiero_client_request_timeouts"]))
	assert.Equal(t, float64(1), counterTotal(families["hiero_client_node_attempts"]))

	duration := families["hiero_client_request_duration"]
	require.NotNil(t, duration)
	require.Len(t, duration.GetMetric(), 1)
	assert.Equal(t, uint64(1), duration.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestSharedRegistry(t *testing.T) {
	r := prometheus.NewRegistry()
	m1, err := NewClientMetrics(NewPrometheusProvider(r))
	require.NoError(t, err)
	m2, err := NewClientMetrics(NewPrometheusProvider(r))
	require.NoError(t, err)

	m1.Attempt("0.0.3", "ok")
	m2.Attempt("0.0.3", "ok")
	assert.Equal(t, float64(2), counterTotal(gather(t, r)["hiero_client_node_attempts"]))
}

func TestConflictingRegistration(t *testing.T) {
	r := prometheus.NewRegistry()
	r.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Subsystem: "client", Name: "node_attempts"}))

	_, err := NewClientMetrics(NewPrometheusProvider(r))
	assert.Error(t, err)
}

func TestDisabledMetrics(t *testing.T) {
	m := NewDisabledClientMetrics()
	require.NotNil(t, m)
	assert.NotPanics(t, func() {
		m.Request(TypeTransaction, "TransferTransaction", time.Now(), errors.New("boom"))
		m.Attempt("0.0.3", "busy")
	})
}
