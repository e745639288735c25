// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/dacapoday/itext"

// ForwardOnly hides every capability of s beyond forward traversal.
func ForwardOnly[U itext.Unit, P comparable](s itext.Forward[U, P]) itext.Forward[U, P] {
	return forward[U, P]{s}
}

// BidirectionalOnly hides random access capabilities of s.
func BidirectionalOnly[U itext.Unit, P comparable](s itext.Bidirectional[U, P]) itext.Bidirectional[U, P] {
	return bidirectional[U, P]{s}
}

// SinglePass hides every capability of s beyond single-pass traversal.
func SinglePass[U itext.Unit, P comparable](s itext.Sequence[U, P]) itext.Sequence[U, P] {
	return single[U, P]{s}
}

type single[U itext.Unit, P comparable] struct {
	s itext.Sequence[U, P]
}

func (w single[U, P]) End() P          { return w.s.End() }
func (w single[U, P]) Step(p P) (U, P) { return w.s.Step(p) }

type forward[U itext.Unit, P comparable] struct {
	s itext.Forward[U, P]
}

func (w forward[U, P]) Begin() P        { return w.s.Begin() }
func (w forward[U, P]) End() P          { return w.s.End() }
func (w forward[U, P]) Step(p P) (U, P) { return w.s.Step(p) }

type bidirectional[U itext.Unit, P comparable] struct {
	s itext.Bidirectional[U, P]
}

func (w bidirectional[U, P]) Begin() P            { return w.s.Begin() }
func (w bidirectional[U, P]) End() P              { return w.s.End() }
func (w bidirectional[U, P]) Step(p P) (U, P)     { return w.s.Step(p) }
func (w bidirectional[U, P]) StepBack(p P) (U, P) { return w.s.StepBack(p) }
