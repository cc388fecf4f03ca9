// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite_test

import (
	"testing"

	"github.com/creachadair/jlite"
)

func TestReader(t *testing.T) {
	r := jlite.NewReader([]byte("  \t\n{true fals"))
	check := func(label string, pos int, peek byte) {
		t.Helper()
		if got := r.Pos(); got != pos {
			t.Errorf("%s: Pos() = %d, want %d", label, got, pos)
		}
		if got := r.Peek(); got != peek {
			t.Errorf("%s: Peek() = %q, want %q", label, got, peek)
		}
	}

	check("Start", 0, ' ')
	if r.Len() != 14 {
		t.Errorf("Len() = %d, want 14", r.Len())
	}
	r.SkipSpace()
	check("SkipSpace", 4, '{')
	r.SkipSpace() // no whitespace to skip
	check("SkipSpace again", 4, '{')

	if r.Skip('[') {
		t.Error("Skip([) reported true at {")
	}
	check("Skip mismatch", 4, '{')
	if !r.Skip('{') {
		t.Error("Skip({) reported false at {")
	}
	check("Skip match", 5, 't')

	if r.SkipLiteral("false") {
		t.Error("SkipLiteral(false) reported true at true")
	}
	check("SkipLiteral mismatch", 5, 't')
	if !r.SkipLiteral("true") {
		t.Error("SkipLiteral(true) reported false at true")
	}
	check("SkipLiteral match", 9, ' ')

	r.SkipSpace()
	if r.SkipLiteral("false") {
		t.Error("SkipLiteral(false) reported true for truncated input")
	}
	check("SkipLiteral short", 10, 'f')
	if !r.SkipLiteral("fals") {
		t.Error("SkipLiteral(fals) reported false")
	}

	if !r.EOF() {
		t.Error("EOF() = false at end of input")
	}
	check("End", 14, 0)
	if r.Skip(0) {
		t.Error("Skip(0) reported true at end of input")
	}
	r.SkipSpace()
	check("End", 14, 0)
}

func TestStringReader(t *testing.T) {
	r := jlite.NewStringReader("")
	if !r.EOF() || r.Peek() != 0 || r.Len() != 0 {
		t.Errorf("Empty reader: EOF=%v Peek=%q Len=%d", r.EOF(), r.Peek(), r.Len())
	}
	if !r.SkipLiteral("") {
		t.Error("SkipLiteral of empty string reported false")
	}
}

func TestLineCol(t *testing.T) {
	r := jlite.NewStringReader("ab\ncde\n\nf")
	tests := []struct {
		pos  int
		want jlite.LineCol
	}{
		{0, jlite.LineCol{Line: 1, Column: 0}},
		{2, jlite.LineCol{Line: 1, Column: 2}},
		{3, jlite.LineCol{Line: 2, Column: 0}},
		{5, jlite.LineCol{Line: 2, Column: 2}},
		{7, jlite.LineCol{Line: 3, Column: 0}},
		{8, jlite.LineCol{Line: 4, Column: 0}},
		{9, jlite.LineCol{Line: 4, Column: 1}},
		{100, jlite.LineCol{Line: 4, Column: 1}},
		{-1, jlite.LineCol{Line: 1, Column: 0}},
	}
	for _, tc := range tests {
		if got := r.LineCol(tc.pos); got != tc.want {
			t.Errorf("LineCol(%d): got %+v, want %+v", tc.pos, got, tc.want)
		}
	}
}
