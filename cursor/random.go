// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import "github.com/dacapoday/itext"

// RandomAccess is a Bidirectional cursor that jumps by code point counts.
//
// Jumps move by MaxUnits units per code point and let the following decode
// attempt resynchronize, so for variable width encodings Advance and
// Distance are estimates. They are exact when every code point is MaxUnits
// wide.
type RandomAccess[S any, U itext.Unit, P comparable] struct {
	Bidirectional[S, U, P]
	rseq  itext.RandomAccess[U, P]
	width int
}

var _ Cursor[int] = (*RandomAccess[struct{}, byte, int])(nil)

// NewRandomAccess creates a cursor at first and decodes the first code
// point.
func NewRandomAccess[S any, U itext.Unit, P comparable](dec itext.RandomDecoder[S, U], seq itext.RandomAccess[U, P], state S, first P) *RandomAccess[S, U, P] {
	c := new(RandomAccess[S, U, P])
	c.rdec, c.bseq = dec, seq
	c.rseq, c.width = seq, dec.MaxUnits()
	c.init(dec, seq, state, first)
	return c
}

// Tier returns itext.TierRandomAccess.
func (c *RandomAccess[S, U, P]) Tier() itext.Tier {
	return itext.TierRandomAccess
}

// Advance moves n code points forward, or -n back when n is negative.
// Returns Valid(); Advance(0) changes nothing.
func (c *RandomAccess[S, U, P]) Advance(n int) bool {
	if n < 0 {
		c.span.First = c.rseq.Jump(c.span.First, (n+1)*c.width)
		return c.Prev()
	} else if n > 0 {
		c.span.Last = c.rseq.Jump(c.span.Last, (n-1)*c.width)
		return c.Next()
	}
	return c.ok
}

// Distance estimates how many code points other is ahead of c.
func (c *RandomAccess[S, U, P]) Distance(other *RandomAccess[S, U, P]) int {
	return c.rseq.Distance(c.span.First, other.span.First) / c.width
}

// PostNext returns a copy at the current position and advances c.
func (c *RandomAccess[S, U, P]) PostNext() *RandomAccess[S, U, P] {
	old := c.Clone()
	c.Next()
	return old
}

// PostPrev returns a copy at the current position and steps c back.
func (c *RandomAccess[S, U, P]) PostPrev() *RandomAccess[S, U, P] {
	old := c.Clone()
	c.Prev()
	return old
}

// Clone creates an independent copy at the current position.
func (c *RandomAccess[S, U, P]) Clone() *RandomAccess[S, U, P] {
	clone := *c
	return &clone
}

// Equal reports whether both cursors start at the same position.
func (c *RandomAccess[S, U, P]) Equal(other *RandomAccess[S, U, P]) bool {
	return c.Forward.Equal(&other.Forward)
}
