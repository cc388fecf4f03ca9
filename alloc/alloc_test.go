// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package alloc_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jlite"
	"github.com/creachadair/jlite/alloc"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testInput = `{"foo": "bar", "baz": 42, "qux": [1, 2, 3]}`

func mustParse(t *testing.T, a jlite.Allocator) jlite.Value {
	t.Helper()
	v, err := jlite.ParseString(a, testInput)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return v
}

func TestCounter(t *testing.T) {
	c := alloc.NewCounter(nil)
	v := mustParse(t, c)

	if diff := cmp.Diff(alloc.Stats{Allocs: 4}, c.Bytes()); diff != "" {
		t.Errorf("Byte stats (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(alloc.Stats{Allocs: 2, Grows: 5}, c.Values()); diff != "" {
		t.Errorf("Vector stats (-want, +got):\n%s", diff)
	}
	if got := c.Outstanding(); got != 6 {
		t.Errorf("Outstanding: got %d, want 6", got)
	}

	jlite.Release(c, v)
	if got := c.Outstanding(); got != 0 {
		t.Errorf("Outstanding after release: got %d, want 0", got)
	}

	// Releasing storage the counter never handed out is invalid.
	c.Release(make([]byte, 3))
	c.Release(nil)
	c.ReleaseValues(make([]jlite.Value, 1))
	if got := c.Bytes().Invalid; got != 2 {
		t.Errorf("Invalid byte releases: got %d, want 2", got)
	}
	if got := c.Values().Invalid; got != 1 {
		t.Errorf("Invalid vector releases: got %d, want 1", got)
	}
	if got, want := c.Values().String(), "allocs=2 grows=5 releases=2 live=0 invalid=1"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestPool(t *testing.T) {
	var p alloc.Pool

	buf := p.Realloc(nil, 10)
	if len(buf) != 10 || cap(buf) != 64 {
		t.Errorf("Realloc(nil, 10): len %d cap %d, want 10, 64", len(buf), cap(buf))
	}
	copy(buf, "abcdefghij")
	buf = p.Realloc(buf, 100)
	if len(buf) != 100 || cap(buf) != 256 || string(buf[:10]) != "abcdefghij" {
		t.Errorf("Realloc(buf, 100): len %d cap %d prefix %q", len(buf), cap(buf), buf[:10])
	}
	if got := p.Realloc(buf, 50); len(got) != 50 || &got[0] != &buf[0] {
		t.Error("Realloc within capacity moved the buffer")
	}
	p.Release(buf)

	big := p.Realloc(nil, 10000)
	if len(big) != 10000 {
		t.Errorf("Realloc(nil, 10000): len %d", len(big))
	}
	p.Release(big) // not pooled, but harmless

	vals := p.ReallocValues(nil, 1)
	vals[0] = jlite.Raise(jlite.NotAKey)
	vals = p.ReallocValues(vals, 2)
	if len(vals) != 2 || cap(vals) != 2 || vals[0].ErrorKind() != jlite.NotAKey {
		t.Errorf("ReallocValues: len %d cap %d first %v", len(vals), cap(vals), vals[0])
	}
	p.ReleaseValues(vals)
	if k := vals[:2][0].Kind(); k != jlite.Null {
		t.Errorf("Released vector was not cleared: first element is %v", k)
	}
	p.ReleaseValues(p.ReallocValues(nil, 5000))
}

func TestMetered(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := alloc.NewMetered(nil, reg)
	v := mustParse(t, m)
	jlite.Release(m, v)

	if n, err := testutil.GatherAndCount(reg); err != nil {
		t.Fatalf("Gather: %v", err)
	} else if n != 6 {
		t.Errorf("Gathered %d series, want 6", n)
	}
	const want = `
# HELP jlite_alloc_total Total number of allocation and reallocation calls.
# TYPE jlite_alloc_total counter
jlite_alloc_total{class="bytes"} 4
jlite_alloc_total{class="values"} 7
# HELP jlite_release_total Total number of release calls.
# TYPE jlite_release_total counter
jlite_release_total{class="bytes"} 4
jlite_release_total{class="values"} 2
# HELP jlite_requested_elements_total Total number of elements requested by allocation calls.
# TYPE jlite_requested_elements_total counter
jlite_requested_elements_total{class="bytes"} 16
jlite_requested_elements_total{class="values"} 22
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want)); err != nil {
		t.Errorf("Metrics: %v", err)
	}

}

func TestLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := alloc.NewLogged(nil, zap.New(core))
	v := mustParse(t, l)
	jlite.Release(l, v)

	var reallocs, releases int
	for _, e := range logs.All() {
		if e.LoggerName != "alloc" {
			t.Errorf("Entry %q has logger name %q", e.Message, e.LoggerName)
		}
		switch e.Message {
		case "realloc":
			reallocs++
		case "release":
			releases++
		default:
			t.Errorf("Unexpected entry %q", e.Message)
		}
	}
	if reallocs != 11 || releases != 6 {
		t.Errorf("Logged %d reallocs and %d releases, want 11 and 6", reallocs, releases)
	}

	// A nil logger discards output.
	n := alloc.NewLogged(nil, nil)
	jlite.Release(n, mustParse(t, n))
}
