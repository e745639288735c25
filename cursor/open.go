// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package cursor decodes code unit sequences lazily, one code point per
// step.
//
// There is one cursor type per traversal tier, each a strict superset of
// the one below:
//
//   - [Input]: Next only; equality needs the validity flag.
//   - [Forward]: Next on a multi-pass sequence; equality by position.
//   - [Bidirectional]: adds Prev.
//   - [RandomAccess]: adds Advance and Distance.
//
// Operations a tier cannot support are absent from its type. [Open] picks
// the strongest tier a decoder and sequence support and returns it behind
// the [Cursor] interface; use a type switch to reach tier operations.
package cursor

import "github.com/dacapoday/itext"

// Cursor is the part of every tier's API that needs no knowledge of the
// tier.
type Cursor[P comparable] interface {
	Tier() itext.Tier

	// Valid returns true if positioned at a decoded code point.
	// Returns false at the end or after malformed input; check Err() to
	// distinguish the cause.
	Valid() bool

	// Rune returns the current code point.
	// Behavior is undefined if Valid() returns false.
	Rune() rune

	// Err returns the last malformed-input error of the most recent move.
	// Returns nil when the move only ran into the end.
	Err() error

	// Next decodes the following code point. Returns Valid().
	Next() bool

	// Pos returns the position the current code point starts at, or for
	// single-pass cursors the next unread position.
	Pos() P

	// AtEnd reports whether the cursor has reached s.
	AtEnd(s Sentinel[P]) bool
}

// Open creates the strongest cursor dec and seq both support, positioned
// at first, and decodes the first code point.
func Open[S any, U itext.Unit, P comparable](dec itext.Decoder[S, U], seq itext.Sequence[U, P], state S, first P) Cursor[P] {
	switch itext.Classify(dec, seq) {
	case itext.TierRandomAccess:
		return NewRandomAccess(dec.(itext.RandomDecoder[S, U]), seq.(itext.RandomAccess[U, P]), state, first)
	case itext.TierBidirectional:
		return NewBidirectional(dec.(itext.ReverseDecoder[S, U]), seq.(itext.Bidirectional[U, P]), state, first)
	case itext.TierForward:
		return NewForward(dec, seq.(itext.Forward[U, P]), state, first)
	default:
		return NewInput(dec, seq, state, first)
	}
}
