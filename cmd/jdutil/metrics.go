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


package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

// metricsKey is the app metadata key holding the *prometheus.Registry
// created when --metrics is set.
const metricsKey = "metrics"

func registry(c *cli.Context) *prometheus.Registry {
	reg, _ := c.App.Metadata[metricsKey].(*prometheus.Registry)
	return reg
}

// registerer returns the registerer passed to the dictionary or nil if
// metrics are disabled.
func registerer(c *cli.Context) prometheus.Registerer {
	if reg := registry(c); reg != nil {
		return reg
	}
	return nil
}

// printMetrics writes the collected dictionary metrics to the app's error
// writer. Histograms are printed as their sample count and sum.
func printMetrics(c *cli.Context) error {
	reg := registry(c)
	if reg == nil {
		return nil
	}

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("%w: gathering metrics: %w", ErrJdutil, err)
	}

	tbl := table.New("Metric", "Labels", "Value").WithWriter(c.App.ErrWriter)
	for _, mf := range mfs {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				tbl.AddRow(name, labels, formatFloat(m.GetCounter().GetValue()))
			case dto.MetricType_GAUGE:
				tbl.AddRow(name, labels, formatFloat(m.GetGauge().GetValue()))
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				tbl.AddRow(name+"_count", labels, strconv.FormatUint(h.GetSampleCount(), 10))
				tbl.AddRow(name+"_sum", labels, formatFloat(h.GetSampleSum()))
			default:
				// Only counters, gauges and histograms are registered.
			}
		}
	}
	tbl.Print()
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	s := make([]string, 0, len(pairs))
	for _, p := range pairs {
		s = append(s, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(s, ",")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
