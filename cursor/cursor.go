// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a jlite.Value.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jlite"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method. This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path(v jlite.Value, path ...any) (jlite.Value, error) {
	c := New(v).Down(path...)
	return c.Value(), c.Err()
}

// A Cursor is a pointer that navigates into the structure of a jlite.Value.
// The values reached by a cursor share storage with its origin.
type Cursor struct {
	org   jlite.Value
	stk   []jlite.Value
	err   error
	exact bool
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin jlite.Value) *Cursor { return &Cursor{org: origin} }

// MatchExact configures c to resolve object keys by exact match (true) or by
// prefix match (false), as jlite.Value.Get does. The default is false.
func (c *Cursor) MatchExact(ok bool) *Cursor { c.exact = ok; return c }

// Origin returns the origin value of c.
func (c *Cursor) Origin() jlite.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() jlite.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []jlite.Value {
	return append([]jlite.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are strings (denoting object keys),
// integers (denoting offsets into arrays or objects), or functions (see
// below). If the path cannot be completely consumed, traversal stops at the
// last value reached and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the value of the first member whose key matches.
// A failed lookup records an error that wraps the jlite.ErrorKind reported
// by the lookup.
//
// If a path element is an integer, the corresponding value must be an array or
// object, and the integer selects an element of the array or the value of a
// member of the object. Negative indices count backward from the end (-1 is
// last, -2 second last). An error is reported if the index is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(jlite.Value) (jlite.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			next := c.lookup(cur, t)
			if next.IsError() {
				return c.setErrorf("key %q: %w", t, next.Err())
			}
			cur = c.push(next)

		case int:
			switch cur.Kind() {
			case jlite.Array, jlite.Object:
				i, ok := fixArrayBound(cur.Len(), t)
				if !ok {
					return c.setErrorf("%v index %d out of bounds (n=%d)", cur.Kind(), t, cur.Len())
				}
				cur = c.push(cur.Index(i))
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), elt)
			}

		case func(jlite.Value) (jlite.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) lookup(v jlite.Value, key string) jlite.Value {
	if c.exact {
		return v.GetExact(key)
	}
	return v.Get(key)
}

func (c *Cursor) push(v jlite.Value) jlite.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// Split parses a dotted path string like "items.0.name" into path elements
// suitable for Down. Components that parse as decimal integers (optionally
// negative) become ints; all others become strings. An empty string yields
// an empty path.
func Split(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]any, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			out[i] = n
		} else {
			out[i] = p
		}
	}
	return out
}
