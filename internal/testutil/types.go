// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/jlite"
	"github.com/creachadair/jlite/alloc"
)

// MustParse parses s with storage from a, and fails t if parsing reports an
// error. The result is released when t ends.
func MustParse(t testing.TB, a jlite.Allocator, s string) jlite.Value {
	t.Helper()
	v, err := jlite.ParseString(a, s)
	if err != nil {
		t.Fatalf("Parse %#q: %v", s, err)
	}
	t.Cleanup(func() { jlite.Release(a, v) })
	return v
}

// NewCounter returns a counting allocator over jlite.Heap that fails t at the
// end of the test if any block remains live or any release was invalid.
// Cleanups run in last-added-first-called order, so register the counter
// before any MustParse calls that use it.
func NewCounter(t testing.TB) *alloc.Counter {
	t.Helper()
	c := alloc.NewCounter(nil)
	t.Cleanup(func() { CheckCounter(t, c) })
	return c
}

// CheckCounter fails t if c has any live blocks or invalid releases.
func CheckCounter(t testing.TB, c *alloc.Counter) {
	t.Helper()
	if b := c.Bytes(); b.Live() != 0 || b.Invalid != 0 {
		t.Errorf("Byte storage: %v", b)
	}
	if v := c.Values(); v.Live() != 0 || v.Invalid != 0 {
		t.Errorf("Vector storage: %v", v)
	}
}
