// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Kind is the type tag of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Null   Kind = iota // the constant null
	Bool               // true or false
	Number             // unsigned integer
	String             // quoted string
	Key                // quoted string in the key slot of an object
	Array              // [ ... ]
	Object             // { ... }
	Error              // a parse or lookup failure
)

var kindStr = [...]string{
	Null:   "null",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Key:    "key",
	Array:  "array",
	Object: "object",
	Error:  "error",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// ErrorKind is the failure code carried by a Value of kind Error.
// ErrorKind implements the error interface.
type ErrorKind uint64

// Constants defining the valid ErrorKind values.
const (
	KeyNotFound     ErrorKind = iota // no member of the object has the key
	MissingColon                     // object key not followed by ":"
	MissingQuote                     // string without an opening or closing quote
	MissingRBrace                    // reserved; not reported by the parser
	MissingLBrace                    // object without its closing "}"
	MissingRBracket                  // reserved; not reported by the parser
	MissingLBracket                  // array without its closing "]"
	NotAKey                          // object member slot does not hold a key
	NotAnObject                      // lookup on a value that is not an object
	Unimplemented                    // input not recognized by the grammar

	// The names MissingLBrace and MissingLBracket are historical. They are
	// reported for a missing closing delimiter.
)

var errorStr = [...]string{
	KeyNotFound:     "key not found",
	MissingColon:    `missing ":"`,
	MissingQuote:    "missing quotation mark",
	MissingRBrace:   "missing brace (reserved)",
	MissingLBrace:   `missing "}"`,
	MissingRBracket: "missing bracket (reserved)",
	MissingLBracket: `missing "]"`,
	NotAKey:         "not a key",
	NotAnObject:     "not an object",
	Unimplemented:   "unsupported input",
}

// Error satisfies the error interface.
func (e ErrorKind) Error() string {
	if e >= ErrorKind(len(errorStr)) {
		return fmt.Sprintf("unknown error %d", uint64(e))
	}
	return errorStr[e]
}

// A Value is a node of a parsed tree, or an error. Exactly one payload is
// meaningful for each Kind:
//
//	Kind            | Payload
//	--------------- | -------------------------------------------------
//	Null            | none
//	Bool, Number    | num (0 or 1 for Bool)
//	String, Key     | str, owned; the text plus a NUL terminator
//	Array           | vec, owned; the elements in order
//	Object          | vec, owned; alternating Key and value, even length
//	Error           | num holds the ErrorKind
//
// A Value that owns storage must be passed to Release exactly once when it
// is no longer needed. The zero Value is Null.
type Value struct {
	kind Kind
	num  uint64
	str  []byte
	vec  Vec
}

// Raise returns a Value of kind Error carrying e.
func Raise(e ErrorKind) Value { return Value{kind: Error, num: uint64(e)} }

// Kind reports the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsError reports whether v has kind Error.
func (v Value) IsError() bool { return v.kind == Error }

// ErrorKind returns the failure code of an Error value. It panics if v does
// not have kind Error.
func (v Value) ErrorKind() ErrorKind {
	v.mustBe(Error)
	return ErrorKind(v.num)
}

// Err returns the ErrorKind of v as an error if v has kind Error, or nil.
func (v Value) Err() error {
	if v.kind != Error {
		return nil
	}
	return ErrorKind(v.num)
}

// Bool returns the truth value of a Bool. It panics for other kinds.
func (v Value) Bool() bool {
	v.mustBe(Bool)
	return v.num != 0
}

// Uint64 returns the value of a Number. It panics for other kinds.
func (v Value) Uint64() uint64 {
	v.mustBe(Number)
	return v.num
}

// Bytes returns the text of a String or Key, without the terminator.
// The slice shares storage with v and is valid until v is released.
// Bytes returns nil for other kinds.
func (v Value) Bytes() []byte {
	if v.kind != String && v.kind != Key || len(v.str) == 0 {
		return nil
	}
	return v.str[:len(v.str)-1]
}

// Text returns a copy of the text of a String or Key, or "".
func (v Value) Text() string { return string(v.Bytes()) }

// Len reports the number of elements of an Array, the number of members of
// an Object, or the length in bytes of a String or Key. It returns 0 for
// other kinds.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return v.vec.Len()
	case Object:
		return v.vec.Len() / 2
	case String, Key:
		return len(v.Bytes())
	}
	return 0
}

// Index returns the ith element of an Array, or the value of the ith member
// of an Object. It panics if v is not a container or i is out of range.
func (v Value) Index(i int) Value {
	switch v.kind {
	case Array:
		return v.vec.At(i)
	case Object:
		if i < 0 || i >= v.Len() {
			panic(fmt.Sprintf("index %d out of range (n=%d)", i, v.Len()))
		}
		return v.vec.At(2*i + 1)
	}
	panic(fmt.Sprintf("cannot index %v", v.kind))
}

// Elems returns an iterator over the elements of an Array. It yields nothing
// for other kinds.
func (v Value) Elems() iter.Seq2[int, Value] {
	if v.kind != Array {
		return func(func(int, Value) bool) {}
	}
	return v.vec.All()
}

// Members returns an iterator over the key-value pairs of an Object, in
// input order. It yields nothing for other kinds.
func (v Value) Members() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		if v.kind != Object {
			return
		}
		for i := 0; i+1 < v.vec.Len(); i += 2 {
			if !yield(v.vec.At(i), v.vec.At(i+1)) {
				return
			}
		}
	}
}

// JSON renders v as text in the grammar accepted by the parser. String
// contents are written verbatim, so the result parses to an equivalent
// tree. An Error value renders as a placeholder that does not parse.
func (v Value) JSON() string {
	var sb strings.Builder
	v.writeJSON(&sb)
	return sb.String()
}

func (v Value) writeJSON(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.num != 0))
	case Number:
		sb.WriteString(strconv.FormatUint(v.num, 10))
	case String, Key:
		sb.WriteByte('"')
		sb.Write(v.Bytes())
		sb.WriteByte('"')
	case Array:
		sb.WriteByte('[')
		for i, elt := range v.vec.All() {
			if i > 0 {
				sb.WriteByte(',')
			}
			elt.writeJSON(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, elt := range v.vec.All() {
			if i%2 == 0 {
				if i > 0 {
					sb.WriteByte(',')
				}
				elt.writeJSON(sb)
				sb.WriteByte(':')
			} else {
				elt.writeJSON(sb)
			}
		}
		sb.WriteByte('}')
	case Error:
		fmt.Fprintf(sb, "<error: %v>", ErrorKind(v.num))
	}
}

// String renders v for human consumption. Strings and keys are rendered as
// their unquoted text; other kinds are rendered as JSON.
func (v Value) String() string {
	if v.kind == String || v.kind == Key {
		return v.Text()
	}
	return v.JSON()
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value is %v, not %v", v.kind, k))
	}
}
