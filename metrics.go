// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package japandict

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors for a Dictionary.
type metrics struct {
	searches       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	searchResults  prometheus.Histogram
	indexBuild     prometheus.Histogram
}

// newMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered. Collectors already registered by another
// Dictionary are shared.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "japandict",
				Name:      "searches_total",
				Help:      "Total searches by candidate source (none, index, scan).",
			},
			[]string{"source"},
		),
		searchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "japandict",
				Name:      "search_duration_seconds",
				Help:      "Search latency in seconds.",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
		),
		searchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "japandict",
				Name:      "search_results",
				Help:      "Number of results returned per search.",
				Buckets:   []float64{0, 1, 5, 10, 25, 50},
			},
		),
		indexBuild: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "japandict",
				Name:      "index_build_seconds",
				Help:      "Time taken to build the indices in seconds.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
	}

	if reg != nil {
		m.searches = register(reg, m.searches)
		m.searchDuration = register(reg, m.searchDuration)
		m.searchResults = register(reg, m.searchResults)
		m.indexBuild = register(reg, m.indexBuild)
	}
	return m
}

// register registers c with reg and returns it, or returns the equivalent
// collector that is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
