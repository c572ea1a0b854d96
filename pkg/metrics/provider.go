/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// CounterOpts describes a counter
type CounterOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
}

// HistogramOpts describes a histogram. Buckets default to the prometheus
// default buckets.
type HistogramOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	Buckets    []float64
	LabelNames []string
}

// Provider creates metrics
type Provider interface {
	NewCounter(CounterOpts) (kitmetrics.Counter, error)
	NewHistogram(HistogramOpts) (kitmetrics.Histogram, error)
}

// PrometheusProvider registers metrics with a prometheus registerer
type PrometheusProvider struct {
	Registerer prometheus.Registerer
}

// NewPrometheusProvider returns a provider backed by the given registerer,
// or by the default prometheus registerer when nil
func NewPrometheusProvider(r prometheus.Registerer) *PrometheusProvider {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}
	return &PrometheusProvider{Registerer: r}
}

// NewCounter registers a counter vector
func (p *PrometheusProvider) NewCounter(o CounterOpts) (kitmetrics.Counter, error) {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
	}, o.LabelNames)
	if err := p.Registerer.Register(cv); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, errors.Wrapf(err, "registering counter %s failed", o.Name)
		}
		// several clients share one registry
		cv, ok = are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, errors.Errorf("collector %s is not a counter", o.Name)
		}
	}
	return kitprometheus.NewCounter(cv), nil
}

// NewHistogram registers a histogram vector
func (p *PrometheusProvider) NewHistogram(o HistogramOpts) (kitmetrics.Histogram, error) {
	hv := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
		Buckets:   o.Buckets,
	}, o.LabelNames)
	if err := p.Registerer.Register(hv); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, errors.Wrapf(err, "registering histogram %s failed", o.Name)
		}
		hv, ok = are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, errors.Errorf("collector %s is not a histogram", o.Name)
		}
	}
	return kitprometheus.NewHistogram(hv), nil
}

// DisabledProvider creates metrics that record nothing
type DisabledProvider struct{}

// NewCounter returns a no-op counter
func (DisabledProvider) NewCounter(CounterOpts) (kitmetrics.Counter, error) {
	return discard.NewCounter(), nil
}

// NewHistogram returns a no-op histogram
func (DisabledProvider) NewHistogram(HistogramOpts) (kitmetrics.Histogram, error) {
	return discard.NewHistogram(), nil
}
