// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package itext defines the contracts for lazily decoding code unit
// sequences into code points.
//
// An encoding is a [Decoder] whose decode step consumes code units from a
// [Reader] and yields at most one rune per call. A sequence is addressed by
// comparable positions and comes in four strengths: [Sequence] (single
// pass), [Forward], [Bidirectional] and [RandomAccess]. The cursor package
// pairs the two and picks the traversal [Tier] they both support.
package itext

import "golang.org/x/exp/constraints"

// Unit is a code unit: one storage element of an encoded sequence.
type Unit interface {
	constraints.Unsigned
}

// Reader hands code units to a decode step.
//
// A forward step reads in sequence order, a reverse step reads toward the
// beginning. ReadUnit reports ok=false at the boundary (end or beginning).
//
// UnreadUnit backs up the most recent ReadUnit. It may be called repeatedly
// to back up further, but never past the position the step started at.
type Reader[U Unit] interface {
	ReadUnit() (u U, ok bool)
	UnreadUnit()
}

// Decoder decodes one code point per call.
//
// Decode consumes units from in and reports how many it consumed:
//
//   - err == nil: r is a decoded code point, n > 0.
//   - errors.Is(err, ErrSkip): n > 0 units were consumed without producing a
//     value, e.g. a shift sequence that only changed state.
//   - any other err with n > 0: malformed input; the units are skipped.
//   - n == 0: nothing was consumed. At the end this is exhaustion,
//     otherwise it is a broken decoder.
//
// state belongs to the caller and is only ever produced by this decoder.
type Decoder[S any, U Unit] interface {
	Decode(state *S, in Reader[U]) (r rune, n int, err error)
}

// ReverseDecoder also decodes the code point that ends where in starts,
// reading units backward.
type ReverseDecoder[S any, U Unit] interface {
	Decoder[S, U]
	DecodeLast(state *S, in Reader[U]) (r rune, n int, err error)
}

// RandomDecoder declares the widest code point in units. Its decode steps
// resynchronize when started in the middle of a code point.
type RandomDecoder[S any, U Unit] interface {
	ReverseDecoder[S, U]
	MaxUnits() int
}

// Sequence is a single-pass code unit sequence.
//
// Step returns the unit at p and the position after it. p must not be End.
// Stepping may invalidate positions obtained before p.
type Sequence[U Unit, P comparable] interface {
	End() P
	Step(p P) (u U, next P)
}

// Forward is a multi-pass Sequence: positions stay valid and Step is pure.
type Forward[U Unit, P comparable] interface {
	Sequence[U, P]
	Begin() P
}

// Bidirectional can also step toward Begin.
//
// StepBack returns the unit before p and its position. p must not be Begin.
type Bidirectional[U Unit, P comparable] interface {
	Forward[U, P]
	StepBack(p P) (u U, prev P)
}

// RandomAccess moves by arbitrary unit counts in constant time.
//
// Jump moves p by n units, clamped to [Begin, End].
// Distance returns the number of units from one position to another.
type RandomAccess[U Unit, P comparable] interface {
	Bidirectional[U, P]
	Jump(p P, n int) P
	Distance(from, to P) int
}
