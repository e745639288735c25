// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"errors"

	"github.com/dacapoday/itext"
)

// Bidirectional is a Forward cursor that can also step back.
type Bidirectional[S any, U itext.Unit, P comparable] struct {
	Forward[S, U, P]
	rdec itext.ReverseDecoder[S, U]
	bseq itext.Bidirectional[U, P]
}

var _ Cursor[int] = (*Bidirectional[struct{}, byte, int])(nil)

// NewBidirectional creates a cursor at first and decodes the first code
// point.
func NewBidirectional[S any, U itext.Unit, P comparable](dec itext.ReverseDecoder[S, U], seq itext.Bidirectional[U, P], state S, first P) *Bidirectional[S, U, P] {
	c := new(Bidirectional[S, U, P])
	c.rdec, c.bseq = dec, seq
	c.init(dec, seq, state, first)
	return c
}

// Tier returns itext.TierBidirectional.
func (c *Bidirectional[S, U, P]) Tier() itext.Tier {
	return itext.TierBidirectional
}

// Prev decodes the code point that ends where the current span starts.
// Returns false once the beginning is reached.
func (c *Bidirectional[S, U, P]) Prev() bool {
	c.ok, c.err = false, nil
	c.span.Last = c.span.First
	begin := c.bseq.Begin()
	r := backReader[U, P]{seq: c.bseq, pos: c.span.First, start: begin}
	for r.pos != begin {
		r.begin()
		value, n, err := c.rdec.DecodeLast(&c.state, &r)
		assertConsumed("cursor.Bidirectional.Prev", n, r.consumed())
		c.span.First = r.pos
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
		c.span.Last = c.span.First
	}
	return c.ok
}

// PostNext returns a copy at the current position and advances c.
func (c *Bidirectional[S, U, P]) PostNext() *Bidirectional[S, U, P] {
	old := c.Clone()
	c.Next()
	return old
}

// PostPrev returns a copy at the current position and steps c back.
func (c *Bidirectional[S, U, P]) PostPrev() *Bidirectional[S, U, P] {
	old := c.Clone()
	c.Prev()
	return old
}

// Clone creates an independent copy at the current position.
func (c *Bidirectional[S, U, P]) Clone() *Bidirectional[S, U, P] {
	clone := *c
	return &clone
}

// Equal reports whether both cursors start at the same position.
func (c *Bidirectional[S, U, P]) Equal(other *Bidirectional[S, U, P]) bool {
	return c.Forward.Equal(&other.Forward)
}
