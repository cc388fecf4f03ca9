// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package alloc provides implementations of the jlite.Allocator interface.
//
// The Counter, Metered, and Logged types wrap another allocator and observe
// the calls made through them. Pool is a standalone allocator that recycles
// storage in size classes.
package alloc

import (
	"fmt"
	"sync"

	"github.com/creachadair/jlite"
)

// Stats record the calls made for one storage class of an allocator.
type Stats struct {
	Allocs   int64 // new blocks allocated
	Grows    int64 // existing blocks reallocated
	Releases int64 // blocks released
	Invalid  int64 // releases of blocks that were not live
}

// Live reports the number of blocks allocated and not yet released.
func (s Stats) Live() int64 { return s.Allocs - s.Releases }

func (s Stats) String() string {
	return fmt.Sprintf("allocs=%d grows=%d releases=%d live=%d invalid=%d",
		s.Allocs, s.Grows, s.Releases, s.Live(), s.Invalid)
}

// A Counter is a jlite.Allocator that delegates to another allocator and
// tracks which blocks are live. A release of a block the counter did not hand
// out, or one already released, is counted as Invalid and is not forwarded.
// A Counter is safe for concurrent use.
type Counter struct {
	base jlite.Allocator

	μ      sync.Mutex
	bytes  Stats
	values Stats
	live   map[any]struct{} // *byte or *jlite.Value
}

// NewCounter constructs a Counter that delegates to base. If base == nil,
// jlite.Heap is used.
func NewCounter(base jlite.Allocator) *Counter {
	if base == nil {
		base = jlite.Heap
	}
	return &Counter{base: base, live: make(map[any]struct{})}
}

// Bytes reports the statistics for byte storage.
func (c *Counter) Bytes() Stats { c.μ.Lock(); defer c.μ.Unlock(); return c.bytes }

// Values reports the statistics for vector storage.
func (c *Counter) Values() Stats { c.μ.Lock(); defer c.μ.Unlock(); return c.values }

// Outstanding reports the total number of live blocks of either class.
func (c *Counter) Outstanding() int64 {
	c.μ.Lock()
	defer c.μ.Unlock()
	return c.bytes.Live() + c.values.Live()
}

// Realloc implements part of jlite.Allocator.
func (c *Counter) Realloc(old []byte, n int) []byte {
	buf := c.base.Realloc(old, n)
	c.μ.Lock()
	defer c.μ.Unlock()
	c.moved(&c.bytes, bytesKey(old), bytesKey(buf))
	return buf
}

// ReallocValues implements part of jlite.Allocator.
func (c *Counter) ReallocValues(old []jlite.Value, n int) []jlite.Value {
	buf := c.base.ReallocValues(old, n)
	c.μ.Lock()
	defer c.μ.Unlock()
	c.moved(&c.values, valuesKey(old), valuesKey(buf))
	return buf
}

// Release implements part of jlite.Allocator.
func (c *Counter) Release(buf []byte) {
	if c.released(&c.bytes, bytesKey(buf)) {
		c.base.Release(buf)
	}
}

// ReleaseValues implements part of jlite.Allocator.
func (c *Counter) ReleaseValues(buf []jlite.Value) {
	if c.released(&c.values, valuesKey(buf)) {
		c.base.ReleaseValues(buf)
	}
}

func (c *Counter) moved(s *Stats, old, cur any) {
	if old == nil {
		s.Allocs++
	} else {
		s.Grows++
		delete(c.live, old)
	}
	if cur != nil {
		c.live[cur] = struct{}{}
	}
}

func (c *Counter) released(s *Stats, key any) bool {
	c.μ.Lock()
	defer c.μ.Unlock()
	if _, ok := c.live[key]; !ok || key == nil {
		s.Invalid++
		return false
	}
	delete(c.live, key)
	s.Releases++
	return true
}

// bytesKey and valuesKey return the identity of a block for bookkeeping, or
// nil for an empty block. Keys are typed pointers, so a block of bytes and a
// block of values never compare equal.
func bytesKey(buf []byte) any {
	if cap(buf) == 0 {
		return nil
	}
	return &buf[:1][0]
}

func valuesKey(buf []jlite.Value) any {
	if cap(buf) == 0 {
		return nil
	}
	return &buf[:1][0]
}
