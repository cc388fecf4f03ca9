// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

// Release returns the storage owned by v, and recursively by its children, to
// a (or Heap, if a == nil). The allocator must be the one v was parsed with.
//
// Release must be called exactly once for each Value returned by a successful
// parse, and v and every value reached through it must not be used after.
// Values obtained from Get, Index, or iteration share storage with their
// container and are released along with it. Null, Bool, Number, and Error
// values own nothing, and releasing them has no effect.
func Release(a Allocator, v Value) {
	a = orHeap(a)
	switch v.kind {
	case Array, Object:
		v.vec.release(a)
	case String, Key:
		if v.str != nil {
			a.Release(v.str)
		}
	}
}
