// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jlite

import "go4.org/mem"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

// LineCol reports the line and column of offset pos in the input of r.
// Offsets past the end of the input are clamped to the end.
func (r *Reader) LineCol(pos int) LineCol {
	pos = min(max(pos, 0), r.buf.Len())
	head := r.buf.SliceTo(pos)
	lc := LineCol{Line: 1, Column: pos}
	for {
		i := mem.IndexByte(head, '\n')
		if i < 0 {
			break
		}
		lc.Line++
		head = head.SliceFrom(i + 1)
		lc.Column = head.Len()
	}
	return lc
}
