// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"errors"

	"github.com/dacapoday/itext"
)

// Forward is a multi-pass decoding cursor.
//
// It tracks the span of units behind the current code point. Positions of
// a multi-pass sequence are stable, so copies made with Clone advance
// independently and compare by the start of their spans.
type Forward[S any, U itext.Unit, P comparable] struct {
	holder[S, U, P]
	span  Span[P]
	value rune
	ok    bool
	err   error
}

var _ Cursor[int] = (*Forward[struct{}, byte, int])(nil)

// NewForward creates a cursor at first and decodes the first code point.
func NewForward[S any, U itext.Unit, P comparable](dec itext.Decoder[S, U], seq itext.Forward[U, P], state S, first P) *Forward[S, U, P] {
	c := new(Forward[S, U, P])
	c.init(dec, seq, state, first)
	return c
}

func (c *Forward[S, U, P]) init(dec itext.Decoder[S, U], seq itext.Sequence[U, P], state S, first P) {
	c.load(dec, seq, state)
	first = normalize(seq, first)
	c.span = Span[P]{first, first}
	c.Next()
}

// Tier returns itext.TierForward.
func (c *Forward[S, U, P]) Tier() itext.Tier {
	return itext.TierForward
}

// Valid returns true if the last decode attempt produced a code point.
func (c *Forward[S, U, P]) Valid() bool {
	return c.ok
}

// Rune returns the last decoded code point.
// Behavior is undefined if Valid() returns false.
func (c *Forward[S, U, P]) Rune() rune {
	assertValid("cursor.Forward.Rune", c.ok)
	return c.value
}

// Err returns the last malformed-input error met by the most recent move,
// or nil.
func (c *Forward[S, U, P]) Err() error {
	return c.err
}

// Pos returns the start of the current code point.
func (c *Forward[S, U, P]) Pos() P {
	return c.span.First
}

// Span returns the units behind the current code point.
func (c *Forward[S, U, P]) Span() Span[P] {
	return c.span
}

// Next decodes the code point after the current span.
// Returns false once the sequence is exhausted.
func (c *Forward[S, U, P]) Next() bool {
	c.ok, c.err = false, nil
	c.span.First = c.span.Last
	end := c.seq.End()
	r := reader[U, P]{seq: c.seq, pos: c.span.Last, end: end}
	for r.pos != end {
		r.begin()
		value, n, err := c.dec.Decode(&c.state, &r)
		assertConsumed("cursor.Forward.Next", n, r.consumed())
		c.span.Last = r.pos
		if r.consumed() == 0 {
			c.err = ErrNoProgress
			break
		}
		if err == nil {
			c.value, c.ok = value, true
			break
		}
		if !errors.Is(err, ErrSkip) {
			c.err = err
		}
		c.span.First = c.span.Last
	}
	return c.ok
}

// PostNext returns a copy at the current position and advances c.
func (c *Forward[S, U, P]) PostNext() *Forward[S, U, P] {
	old := c.Clone()
	c.Next()
	return old
}

// Clone creates an independent copy at the current position.
func (c *Forward[S, U, P]) Clone() *Forward[S, U, P] {
	clone := *c
	return &clone
}

// Equal reports whether both cursors start at the same position.
func (c *Forward[S, U, P]) Equal(other *Forward[S, U, P]) bool {
	return c.span.First == other.span.First
}

// AtEnd reports whether the current span starts at the end of the
// sequence.
func (c *Forward[S, U, P]) AtEnd(s Sentinel[P]) bool {
	return c.span.First == s.end
}
