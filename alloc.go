// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

// An Allocator supplies all the owned storage of a Value tree.
//
// The Realloc methods allocate (when old is nil) or grow storage, returning a
// slice of length n whose prefix holds the contents of old. Once a Realloc
// method returns, old belongs to the allocator again and must not be used.
// The Release methods return storage obtained from the matching Realloc.
//
// Behavior is undefined if an allocator returns a slice shorter than n.
type Allocator interface {
	Realloc(old []byte, n int) []byte
	ReallocValues(old []Value, n int) []Value
	Release(buf []byte)
	ReleaseValues(buf []Value)
}

// Heap is an Allocator backed by the Go runtime. Its release methods do
// nothing and leave the storage to the garbage collector.
var Heap Allocator = heap{}

type heap struct{}

func (heap) Realloc(old []byte, n int) []byte {
	if n <= cap(old) {
		return old[:n]
	}
	buf := make([]byte, n)
	copy(buf, old)
	return buf
}

func (heap) ReallocValues(old []Value, n int) []Value {
	if n <= cap(old) {
		return old[:n]
	}
	buf := make([]Value, n)
	copy(buf, old)
	return buf
}

func (heap) Release([]byte)        {}
func (heap) ReleaseValues([]Value) {}

func orHeap(a Allocator) Allocator {
	if a == nil {
		return Heap
	}
	return a
}
