// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jlite implements a small JSON parser whose storage is supplied by
// the caller.
//
// # Parsing
//
// Construct a Reader over the input and a Parser over the reader, and call
// Parse to obtain a single Value from the front of the input:
//
//	p := jlite.NewParser(jlite.NewStringReader(`{"foo": "bar"}`))
//	v := p.Parse()
//	if v.IsError() {
//	   log.Fatalf("Parse failed: %v", v.Err())
//	}
//	defer jlite.Release(p.Allocator(), v)
//
// The grammar is a subset of JSON: objects, arrays, strings without escape
// processing, unsigned integers, true, false, and null. Input following the
// first value is not examined.
//
// # Values
//
// A Value is a tagged variant whose Kind is one of Null, Bool, Number,
// String, Key, Array, Object, or Error. Failures are reported as values of
// kind Error carrying an ErrorKind, both by Parse and by the lookup methods
// Get and GetExact:
//
//	name := v.Get("foo")
//	if err := name.Err(); err != nil {
//	   log.Printf("Lookup failed: %v", err)
//	}
//
// Objects store their members as one flattened list alternating Key and
// value. Get matches keys by prefix; GetExact requires equality.
//
// # Storage
//
// All strings and vectors of a tree are obtained from an Allocator, which
// defaults to Heap. Use Parser.UseAllocator to supply another. A tree is
// owned by its root: call Release on the root exactly once, with the same
// allocator, when the tree is no longer needed.
package jlite
