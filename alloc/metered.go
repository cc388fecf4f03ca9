// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package alloc

import (
	"github.com/creachadair/jlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the "class" label of the Metered counters.
const (
	classBytes  = "bytes"
	classValues = "values"
)

// Metered is a jlite.Allocator that delegates to another allocator and
// exports Prometheus counters for the calls made through it.
type Metered struct {
	base jlite.Allocator

	allocs    *prometheus.CounterVec
	releases  *prometheus.CounterVec
	requested *prometheus.CounterVec
}

// NewMetered constructs a Metered allocator that delegates to base (or
// jlite.Heap, if base == nil) and registers its counters with reg. If reg is
// nil, the counters are created but not registered.
func NewMetered(base jlite.Allocator, reg prometheus.Registerer) *Metered {
	if base == nil {
		base = jlite.Heap
	}
	f := promauto.With(reg)
	return &Metered{
		base: base,
		allocs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jlite",
			Name:      "alloc_total",
			Help:      "Total number of allocation and reallocation calls.",
		}, []string{"class"}),
		releases: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jlite",
			Name:      "release_total",
			Help:      "Total number of release calls.",
		}, []string{"class"}),
		requested: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jlite",
			Name:      "requested_elements_total",
			Help:      "Total number of elements requested by allocation calls.",
		}, []string{"class"}),
	}
}

// Realloc implements part of jlite.Allocator.
func (m *Metered) Realloc(old []byte, n int) []byte {
	m.allocs.WithLabelValues(classBytes).Inc()
	m.requested.WithLabelValues(classBytes).Add(float64(n))
	return m.base.Realloc(old, n)
}

// ReallocValues implements part of jlite.Allocator.
func (m *Metered) ReallocValues(old []jlite.Value, n int) []jlite.Value {
	m.allocs.WithLabelValues(classValues).Inc()
	m.requested.WithLabelValues(classValues).Add(float64(n))
	return m.base.ReallocValues(old, n)
}

// Release implements part of jlite.Allocator.
func (m *Metered) Release(buf []byte) {
	m.releases.WithLabelValues(classBytes).Inc()
	m.base.Release(buf)
}

// ReleaseValues implements part of jlite.Allocator.
func (m *Metered) ReleaseValues(buf []jlite.Value) {
	m.releases.WithLabelValues(classValues).Inc()
	m.base.ReleaseValues(buf)
}
