/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	prefix = "workload_inspection_runtime"
)

var (
	Resolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_resolutions_total",
			Help: "Total number of pod resolutions per workload kind",
		},
		[]string{"kind"},
	)
	ResolutionErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_resolution_errors_total",
			Help: "Total number of failed pod resolutions per workload kind",
		},
		[]string{"kind"},
	)
	Reads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_reads_total",
			Help: "Kubernetes API server reads per kind and verb",
		},
		[]string{"kind", "verb"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		Resolutions,
		ResolutionErrors,
		Reads,
	)
}
