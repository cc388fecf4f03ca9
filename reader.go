// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

import "go4.org/mem"

// A Reader is a cursor over an immutable input buffer. It never moves
// backward, and looks ahead at most one byte or one literal.
type Reader struct {
	buf mem.RO
	pos int
}

// NewReader constructs a Reader positioned at the start of data. The caller
// must not modify data while the reader is in use.
func NewReader(data []byte) *Reader { return &Reader{buf: mem.B(data)} }

// NewStringReader constructs a Reader positioned at the start of s.
func NewStringReader(s string) *Reader { return &Reader{buf: mem.S(s)} }

// Len reports the total length of the input in bytes.
func (r *Reader) Len() int { return r.buf.Len() }

// Pos reports the current offset of r, 0-based.
func (r *Reader) Pos() int { return r.pos }

// EOF reports whether r has consumed its entire input.
func (r *Reader) EOF() bool { return r.pos >= r.buf.Len() }

// Peek returns the byte at the current offset without consuming it. At the
// end of input Peek returns 0.
func (r *Reader) Peek() byte {
	if r.EOF() {
		return 0
	}
	return r.buf.At(r.pos)
}

// SkipSpace advances r past any ASCII whitespace.
func (r *Reader) SkipSpace() {
	for !r.EOF() && isSpace(r.Peek()) {
		r.pos++
	}
}

// Skip consumes one byte and reports true if the next byte is c.
// Otherwise r is unchanged and Skip reports false.
func (r *Reader) Skip(c byte) bool {
	if !r.EOF() && r.Peek() == c {
		r.pos++
		return true
	}
	return false
}

// SkipLiteral consumes lit and reports true if the remaining input begins
// with lit exactly. Otherwise r is unchanged and SkipLiteral reports false.
func (r *Reader) SkipLiteral(lit string) bool {
	if !mem.HasPrefix(r.buf.SliceFrom(r.pos), mem.S(lit)) {
		return false
	}
	r.pos += len(lit)
	return true
}

// span returns a view of the input from offset pos to the current offset.
func (r *Reader) span(pos int) mem.RO { return r.buf.Slice(pos, r.pos) }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
