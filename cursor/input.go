// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"errors"

	"github.com/dacapoday/itext"
)

// Input is a single-pass decoding cursor.
//
// Its position is the next unread unit of the sequence. Input supports
// only Next; a sequence that cannot be restarted gives no way back.
//
// Usage:
//
//	for c := cursor.NewInput(dec, seq, state, first); c.Valid(); c.Next() {
//	    r := c.Rune()
//	    // process r
//	}
//	if err := c.Err(); err != nil {
//	    // malformed input was skipped
//	}
type Input[S any, U itext.Unit, P comparable] struct {
	holder[S, U, P]
	pos   P
	value rune
	ok    bool
	err   error
}

var _ Cursor[int] = (*Input[struct{}, byte, int])(nil)

// NewInput creates a cursor at first and decodes the first code point.
func NewInput[S any, U itext.Unit, P comparable](dec itext.Decoder[S, U], seq itext.Sequence[U, P], state S, first P) *Input[S, U, P] {
	c := new(Input[S, U, P])
	c.load(dec, seq, state)
	c.pos = normalize(seq, first)
	c.Next()
	return c
}

// Tier returns itext.TierInput.
func (c *Input[S, U, P]) Tier() itext.Tier {
	return itext.TierInput
}

// Valid returns true if the last decode attempt produced a code point.
//
// A cursor is not valid past the end, or when the attempt ran into
// malformed input it could not recover from before the end.
func (c *Input[S, U, P]) Valid() bool {
	return c.ok
}

// Rune returns the last decoded code point.
// Behavior is undefined if Valid() returns false.
func (c *Input[S, U, P]) Rune() rune {
	assertValid("cursor.Input.Rune", c.ok)
	return c.value
}

// Err returns the last malformed-input error met by the most recent Next,
// or nil if it only ran into the end.
func (c *Input[S, U, P]) Err() error {
	return c.err
}

// Pos returns the raw position: the next unit to be read.
func (c *Input[S, U, P]) Pos() P {
	return c.pos
}

// Next decodes the next code point, skipping units that decode to nothing.
// Returns false once the sequence is exhausted.
func (c *Input[S, U, P]) Next() bool {
	c.ok, c.err = false, nil
	end := c.seq.End()
	r := reader[U, P]{seq: c.seq, pos: c.pos, end: end}
	for r.pos != end {
		r.begin()
		value, n, err := c.dec.Decode(&c.state, &r)
		assertConsumed("cursor.Input.Next", n, r.consumed())
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
	}
	c.pos = r.pos
	return c.ok
}

// PostNext returns the current value and advances. The returned Proxy is
// detached from the cursor.
func (c *Input[S, U, P]) PostNext() Proxy {
	assertValid("cursor.Input.PostNext", c.ok)
	p := Proxy{c.value}
	c.Next()
	return p
}

// Clone creates a copy at the current position. Both copies share the
// underlying sequence, so only one of them may keep reading.
func (c *Input[S, U, P]) Clone() *Input[S, U, P] {
	clone := *c
	return &clone
}

// Equal reports whether c and other are at the same place.
//
// The raw position is the next unread unit, so after the last code point
// is consumed it already matches the end while the cursor is still valid.
// Positions are therefore only compared while both cursors are valid; two
// cursors that both failed to decode are equal.
func (c *Input[S, U, P]) Equal(other *Input[S, U, P]) bool {
	return c.ok == other.ok && (!c.ok || c.pos == other.pos)
}

// AtEnd reports whether c has run off the end of the sequence.
//
// A cursor left invalid by malformed input at the very end also matches;
// use Err to tell the two apart.
func (c *Input[S, U, P]) AtEnd(s Sentinel[P]) bool {
	return c.pos == s.end && !c.ok
}
