// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package view pairs a code unit sequence with an encoding and iterates the
// decoded code points.
//
//	v := view.New(encoding.UTF8{}, seq.Bytes("héllo"), encoding.Stateless{})
//	for r := range v.All() {
//	    // process r
//	}
//
// Malformed input is skipped. Runes collects what was skipped into its
// error; WithLogger reports it as it happens.
package view

import (
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/dacapoday/itext"
	"github.com/dacapoday/itext/cursor"
)

// View is a lazily decoded sequence. It is a small value; copies share the
// underlying sequence.
type View[S any, U itext.Unit, P comparable] struct {
	dec   itext.Decoder[S, U]
	seq   itext.Sequence[U, P]
	state S
	first P
	pos   func() P
	log   *zap.Logger
}

// New creates a view of seq decoded by dec, starting from state.
//
// Decoding starts at the beginning of a multi-pass sequence. A single-pass
// sequence that reports its position with Pos, such as seq.Stream, is
// decoded from wherever it is when a cursor is created.
func New[S any, U itext.Unit, P comparable](dec itext.Decoder[S, U], seq itext.Sequence[U, P], state S, opts ...Option) View[S, U, P] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := View[S, U, P]{
		dec:   dec,
		seq:   seq,
		state: state,
		log:   o.log,
	}
	switch s := seq.(type) {
	case itext.Forward[U, P]:
		v.first = s.Begin()
	case interface{ Pos() P }:
		v.pos = s.Pos
	}
	return v
}

// From returns a copy of v that starts decoding at p.
func (v View[S, U, P]) From(p P) View[S, U, P] {
	v.first, v.pos = p, nil
	return v
}

// Tier returns the tier of the cursors Begin creates.
func (v View[S, U, P]) Tier() itext.Tier {
	return itext.Classify(v.dec, v.seq)
}

// Begin returns a cursor at the first code point.
func (v View[S, U, P]) Begin() cursor.Cursor[P] {
	first := v.first
	if v.pos != nil {
		first = v.pos()
	}
	return cursor.Open(v.dec, v.seq, v.state, first)
}

// End returns the sentinel of the underlying sequence.
func (v View[S, U, P]) End() cursor.Sentinel[P] {
	return cursor.EndOf(v.seq)
}

// All iterates the decoded code points in order.
func (v View[S, U, P]) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		c := v.Begin()
		for ; c.Valid(); c.Next() {
			v.report(c)
			if !yield(c.Rune()) {
				return
			}
		}
		v.report(c)
	}
}

// Backward iterates the decoded code points from the end. It needs a
// bidirectional sequence and decoder.
func (v View[S, U, P]) Backward() (iter.Seq[rune], error) {
	dec, ok := v.dec.(itext.ReverseDecoder[S, U])
	if !ok {
		return nil, fmt.Errorf("%w: %T cannot decode backward", itext.ErrUnsupported, v.dec)
	}
	seq, ok := v.seq.(itext.Bidirectional[U, P])
	if !ok {
		return nil, fmt.Errorf("%w: %T cannot step backward", itext.ErrUnsupported, v.seq)
	}
	return func(yield func(rune) bool) {
		c := cursor.NewBidirectional(dec, seq, v.state, seq.End())
		for c.Prev() {
			v.report(c)
			if !yield(c.Rune()) {
				return
			}
		}
		v.report(c)
	}, nil
}

// Runes decodes everything. Malformed input is skipped and returned as a
// joined error next to the decoded runes.
func (v View[S, U, P]) Runes() ([]rune, error) {
	var runes []rune
	var errs []error
	c := v.Begin()
	for ; c.Valid(); c.Next() {
		if err := c.Err(); err != nil {
			errs = append(errs, err)
		}
		runes = append(runes, c.Rune())
	}
	if err := c.Err(); err != nil {
		errs = append(errs, err)
	}
	return runes, errors.Join(errs...)
}

// String decodes everything into a string, dropping malformed input.
func (v View[S, U, P]) String() string {
	runes, _ := v.Runes()
	return string(runes)
}

func (v View[S, U, P]) report(c cursor.Cursor[P]) {
	if err := c.Err(); err != nil {
		v.log.Debug("skipped malformed input",
			zap.Stringer("tier", c.Tier()),
			zap.Any("pos", c.Pos()),
			zap.Error(err),
		)
	}
}
