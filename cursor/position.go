// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import "github.com/dacapoday/itext"

// Span is the half-open range [First, Last) of units consumed for the
// current code point. First <= Last holds in sequence order.
type Span[P comparable] struct {
	First P
	Last  P
}

// Empty reports whether no units are covered.
func (s Span[P]) Empty() bool {
	return s.First == s.Last
}

// normalizer is implemented by sequences that learn where they end only
// when a position is reached, such as a stream at its last unit.
type normalizer[P comparable] interface {
	Normalize(p P) P
}

// normalize maps a starting position onto the end when seq says so.
func normalize[U itext.Unit, P comparable](seq itext.Sequence[U, P], p P) P {
	if n, ok := seq.(normalizer[P]); ok {
		return n.Normalize(p)
	}
	return p
}

// reader feeds one forward decode step from pos up to end.
// hist records every position read from so the decoder can back up.
type reader[U itext.Unit, P comparable] struct {
	seq  itext.Sequence[U, P]
	pos  P
	end  P
	hist []P
}

var _ itext.Reader[byte] = (*reader[byte, int])(nil)

func (r *reader[U, P]) ReadUnit() (u U, ok bool) {
	if r.pos == r.end {
		return
	}
	r.hist = append(r.hist, r.pos)
	u, r.pos = r.seq.Step(r.pos)
	return u, true
}

func (r *reader[U, P]) UnreadUnit() {
	n := len(r.hist)
	assertUnread("cursor.reader.UnreadUnit", n)
	if n == 0 {
		return
	}
	r.pos = r.hist[n-1]
	r.hist = r.hist[:n-1]
}

// begin starts a new step at the current position.
func (r *reader[U, P]) begin() {
	r.hist = r.hist[:0]
}

func (r *reader[U, P]) consumed() int {
	return len(r.hist)
}

// backReader feeds one reverse decode step from pos down to begin.
type backReader[U itext.Unit, P comparable] struct {
	seq   itext.Bidirectional[U, P]
	pos   P
	start P
	hist  []P
}

var _ itext.Reader[byte] = (*backReader[byte, int])(nil)

func (r *backReader[U, P]) ReadUnit() (u U, ok bool) {
	if r.pos == r.start {
		return
	}
	r.hist = append(r.hist, r.pos)
	u, r.pos = r.seq.StepBack(r.pos)
	return u, true
}

func (r *backReader[U, P]) UnreadUnit() {
	n := len(r.hist)
	assertUnread("cursor.backReader.UnreadUnit", n)
	if n == 0 {
		return
	}
	r.pos = r.hist[n-1]
	r.hist = r.hist[:n-1]
}

func (r *backReader[U, P]) begin() {
	r.hist = r.hist[:0]
}

func (r *backReader[U, P]) consumed() int {
	return len(r.hist)
}
