// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package alloc

import (
	"sync"

	"github.com/creachadair/jlite"
)

// Size classes for pooled storage. Byte requests larger than the last class
// and vector requests longer than maxPooledValues bypass the pool.
var byteClasses = [...]int{64, 256, 1024, 4096}

const (
	maxValueBits    = 10
	maxPooledValues = 1 << maxValueBits
)

// A Pool is a jlite.Allocator that recycles released storage. Byte buffers
// are pooled in a few fixed size classes; value vectors are pooled by their
// power-of-two capacity, matching the growth of jlite.Vec.
//
// A Pool is safe for concurrent use. The zero Pool is ready for use.
type Pool struct {
	bytes  [len(byteClasses)]sync.Pool
	values [maxValueBits + 1]sync.Pool
}

// Realloc implements part of jlite.Allocator.
func (p *Pool) Realloc(old []byte, n int) []byte {
	if n <= cap(old) {
		return old[:n]
	}
	var buf []byte
	if i := byteClass(n); i < 0 {
		buf = make([]byte, n)
	} else if v, ok := p.bytes[i].Get().(*[]byte); ok {
		buf = (*v)[:n]
	} else {
		buf = make([]byte, n, byteClasses[i])
	}
	copy(buf, old)
	if old != nil {
		p.Release(old)
	}
	return buf
}

// Release implements part of jlite.Allocator.
func (p *Pool) Release(buf []byte) {
	for i, c := range byteClasses {
		if cap(buf) == c {
			buf = buf[:c]
			p.bytes[i].Put(&buf)
			return
		}
	}
}

// ReallocValues implements part of jlite.Allocator.
func (p *Pool) ReallocValues(old []jlite.Value, n int) []jlite.Value {
	if n <= cap(old) {
		return old[:n]
	}
	var buf []jlite.Value
	if n > maxPooledValues {
		buf = make([]jlite.Value, n)
	} else {
		i := bitsFor(n)
		if v, ok := p.values[i].Get().(*[]jlite.Value); ok {
			buf = (*v)[:n]
		} else {
			buf = make([]jlite.Value, n, 1<<i)
		}
	}
	copy(buf, old)
	if old != nil {
		p.ReleaseValues(old)
	}
	return buf
}

// ReleaseValues implements part of jlite.Allocator.
func (p *Pool) ReleaseValues(buf []jlite.Value) {
	c := cap(buf)
	if c == 0 || c > maxPooledValues || c&(c-1) != 0 {
		return
	}
	buf = buf[:c]
	clear(buf) // drop references to released storage
	p.values[bitsFor(c)].Put(&buf)
}

func byteClass(n int) int {
	for i, c := range byteClasses {
		if n <= c {
			return i
		}
	}
	return -1
}

// bitsFor returns the smallest k such that 1<<k >= n.
func bitsFor(n int) int {
	k := 0
	for 1<<k < n {
		k++
	}
	return k
}
