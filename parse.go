// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

import (
	"fmt"

	"go4.org/mem"
)

// A Parser constructs Value trees from the input of a Reader.
type Parser struct {
	r     *Reader
	alloc Allocator
}

// NewParser constructs a Parser that consumes input from r and allocates
// from Heap.
func NewParser(r *Reader) *Parser { return &Parser{r: r, alloc: Heap} }

// UseAllocator configures p to obtain storage from a. If a == nil, p uses
// Heap.
func (p *Parser) UseAllocator(a Allocator) { p.alloc = orHeap(a) }

// Allocator returns the allocator used by p.
func (p *Parser) Allocator() Allocator { return p.alloc }

// Parse parses a single value from the front of the input. Whitespace before
// the value is skipped; input after the value is not examined.
//
// If the input is malformed, Parse returns a Value of kind Error, and any
// storage allocated for the partial result has already been released.
// Otherwise the caller owns the result and must Release it.
func (p *Parser) Parse() Value {
	p.r.SkipSpace()
	switch c := p.r.Peek(); {
	case c == '{':
		return p.parseObject()
	case c == '"':
		return p.parseString()
	case c == '[':
		return p.parseArray()
	case p.r.SkipLiteral("true"):
		return Value{kind: Bool, num: 1}
	case p.r.SkipLiteral("false"):
		return Value{kind: Bool, num: 0}
	case p.r.SkipLiteral("null"):
		return Value{kind: Null}
	case isDigit(c):
		return p.parseNumber()
	}
	return Raise(Unimplemented)
}

func (p *Parser) parseString() Value {
	if !p.r.Skip('"') {
		return Raise(MissingQuote)
	}
	start := p.r.Pos()
	for !p.r.EOF() && p.r.Peek() != '"' {
		p.r.pos++
	}
	if p.r.EOF() {
		return Raise(MissingQuote)
	}
	text := p.r.span(start)
	p.r.pos++ // closing quote
	return p.newString(text)
}

// newString copies text into storage from the allocator, with a trailing
// NUL for the benefit of hosts that expect one.
func (p *Parser) newString(text mem.RO) Value {
	buf := p.alloc.Realloc(nil, text.Len()+1)
	n := text.Copy(buf)
	buf[n] = 0
	return Value{kind: String, str: buf[:n+1]}
}

func (p *Parser) parseNumber() Value {
	var z uint64
	for !p.r.EOF() && isDigit(p.r.Peek()) {
		z = z*10 + uint64(p.r.Peek()-'0') // wraps on overflow
		p.r.pos++
	}
	return Value{kind: Number, num: z}
}

func (p *Parser) parseObject() Value {
	var obj Vec
	p.r.Skip('{')

	for !p.r.EOF() {
		p.r.SkipSpace()
		if p.r.Peek() == '}' {
			break
		}

		key := p.parseString()
		if key.IsError() {
			return p.fail(&obj, key)
		}
		key.kind = Key

		p.r.SkipSpace()
		if !p.r.Skip(':') {
			Release(p.alloc, key)
			return p.fail(&obj, Raise(MissingColon))
		}

		val := p.Parse()
		if val.IsError() {
			Release(p.alloc, key)
			return p.fail(&obj, val)
		}
		obj.Append(p.alloc, key)
		obj.Append(p.alloc, val)

		p.r.SkipSpace()
		if !p.r.Skip(',') {
			break
		}
	}

	if !p.r.Skip('}') {
		return p.fail(&obj, Raise(MissingLBrace))
	}
	return Value{kind: Object, vec: obj}
}

func (p *Parser) parseArray() Value {
	var arr Vec
	p.r.Skip('[')

	for !p.r.EOF() {
		p.r.SkipSpace()
		if p.r.Peek() == ']' {
			break
		}

		val := p.Parse()
		if val.IsError() {
			return p.fail(&arr, val)
		}
		arr.Append(p.alloc, val)

		p.r.SkipSpace()
		if !p.r.Skip(',') {
			break
		}
	}

	if !p.r.Skip(']') {
		return p.fail(&arr, Raise(MissingLBracket))
	}
	return Value{kind: Array, vec: arr}
}

// fail releases the partial contents of v and returns err.
func (p *Parser) fail(v *Vec, err Value) Value {
	v.release(p.alloc)
	return err
}

// A SyntaxError reports a failed parse and the input offset at which the
// failure was detected.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int
	Location LineCol // the line and column of Offset
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", s.Kind.Error(), s.Offset)
}

// Unwrap returns the ErrorKind of s, so that errors.Is can match it.
func (s *SyntaxError) Unwrap() error { return s.Kind }

// ParseBytes parses a single value from the front of data using storage from
// a (or Heap, if a == nil). If parsing fails, the error has concrete type
// *SyntaxError and the returned Value is the Error value.
func ParseBytes(a Allocator, data []byte) (Value, error) { return parseFrom(a, NewReader(data)) }

// ParseString is as ParseBytes, but reads its input from a string.
func ParseString(a Allocator, s string) (Value, error) { return parseFrom(a, NewStringReader(s)) }

func parseFrom(a Allocator, r *Reader) (Value, error) {
	p := NewParser(r)
	p.UseAllocator(a)
	v := p.Parse()
	if v.IsError() {
		return v, &SyntaxError{Kind: v.ErrorKind(), Offset: r.Pos(), Location: r.LineCol(r.Pos())}
	}
	return v, nil
}
