// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

import (
	"fmt"
	"iter"
)

// A Vec is an append-only list of values. The zero Vec is empty and ready
// for use. Storage is obtained from an Allocator, and capacity doubles each
// time it is exhausted (0, 1, 2, 4, ...).
type Vec struct {
	buf []Value // len(buf) is the capacity
	n   int
}

// Append adds v to the end of the vector, growing its storage through a if
// necessary.
func (v *Vec) Append(a Allocator, x Value) {
	if v.n == len(v.buf) {
		c := 1
		if len(v.buf) != 0 {
			c = len(v.buf) << 1
		}
		v.buf = a.ReallocValues(v.buf, c)
	}
	v.buf[v.n] = x
	v.n++
}

// Len reports the number of values in v.
func (v Vec) Len() int { return v.n }

// Cap reports the capacity of the storage of v.
func (v Vec) Cap() int { return len(v.buf) }

// At returns the value at offset i of v. It panics if i is out of range.
func (v Vec) At(i int) Value {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("index %d out of range (n=%d)", i, v.n))
	}
	return v.buf[i]
}

// All returns an iterator over the offsets and values of v, in order.
func (v Vec) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := range v.n {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// release releases the children of v and then its storage.
func (v *Vec) release(a Allocator) {
	for i := range v.n {
		Release(a, v.buf[i])
	}
	if v.buf != nil {
		a.ReleaseValues(v.buf)
	}
	*v = Vec{}
}
