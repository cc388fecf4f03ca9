// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

import "go4.org/mem"

// Get returns the value of the first member of v whose key begins with key.
// Note that this is a prefix match: if v has a member "foobar", Get(v, "foo")
// finds it. Use GetExact to require the whole key to match.
//
// Get returns an Error value if v is not an Object (NotAnObject), if v holds a
// member slot that is not a Key (NotAKey), or if no key matches
// (KeyNotFound). The result shares storage with v.
func (v Value) Get(key string) Value { return v.find(mem.S(key), mem.HasPrefix) }

// GetExact returns the value of the first member of v whose key is exactly
// equal to key. It reports errors as Get does.
func (v Value) GetExact(key string) Value {
	return v.find(mem.S(key), func(k, want mem.RO) bool { return k.Equal(want) })
}

func (v Value) find(key mem.RO, match func(k, want mem.RO) bool) Value {
	if v.kind != Object {
		return Raise(NotAnObject)
	}
	for i := 0; i+1 < v.vec.Len(); i += 2 {
		k := v.vec.At(i)
		if k.kind != Key {
			return Raise(NotAKey)
		}
		if match(mem.B(k.Bytes()), key) {
			return v.vec.At(i + 1)
		}
	}
	return Raise(KeyNotFound)
}
