// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import "github.com/dacapoday/itext"

// Sentinel marks the end of a sequence. It is compared against cursors,
// never iterated.
type Sentinel[P comparable] struct {
	end P
}

// NewSentinel wraps the end position of a sequence.
func NewSentinel[P comparable](end P) Sentinel[P] {
	return Sentinel[P]{end}
}

// EndOf returns the sentinel for seq.
func EndOf[U itext.Unit, P comparable](seq itext.Sequence[U, P]) Sentinel[P] {
	return Sentinel[P]{seq.End()}
}

// End returns the wrapped end position.
func (s Sentinel[P]) End() P {
	return s.end
}

// Equal always reports true: sentinels carry no traversal state.
func (Sentinel[P]) Equal(Sentinel[P]) bool {
	return true
}
