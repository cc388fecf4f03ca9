// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package alloc

import (
	"github.com/creachadair/jlite"
	"go.uber.org/zap"
)

// Logged is a jlite.Allocator that delegates to another allocator and logs
// each call at debug level.
type Logged struct {
	base jlite.Allocator
	log  *zap.Logger
}

// NewLogged constructs a Logged allocator that delegates to base (or
// jlite.Heap, if base == nil) and writes to log. If log == nil, nothing is
// logged.
func NewLogged(base jlite.Allocator, log *zap.Logger) *Logged {
	if base == nil {
		base = jlite.Heap
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Logged{base: base, log: log.Named("alloc")}
}

// Realloc implements part of jlite.Allocator.
func (l *Logged) Realloc(old []byte, n int) []byte {
	buf := l.base.Realloc(old, n)
	l.log.Debug("realloc", zap.String("class", classBytes),
		zap.Int("old", len(old)), zap.Int("new", n))
	return buf
}

// ReallocValues implements part of jlite.Allocator.
func (l *Logged) ReallocValues(old []jlite.Value, n int) []jlite.Value {
	buf := l.base.ReallocValues(old, n)
	l.log.Debug("realloc", zap.String("class", classValues),
		zap.Int("old", len(old)), zap.Int("new", n))
	return buf
}

// Release implements part of jlite.Allocator.
func (l *Logged) Release(buf []byte) {
	l.log.Debug("release", zap.String("class", classBytes), zap.Int("size", len(buf)))
	l.base.Release(buf)
}

// ReleaseValues implements part of jlite.Allocator.
func (l *Logged) ReleaseValues(buf []jlite.Value) {
	l.log.Debug("release", zap.String("class", classValues), zap.Int("size", len(buf)))
	l.base.ReleaseValues(buf)
}
