// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import "github.com/dacapoday/itext"

// holder carries the decode state by value together with the decoder that
// owns its type and a borrowed reference to the sequence being decoded.
// Copying a holder copies the state; the sequence stays shared.
type holder[S any, U itext.Unit, P comparable] struct {
	state S
	dec   itext.Decoder[S, U]
	seq   itext.Sequence[U, P]
}

func (h *holder[S, U, P]) load(dec itext.Decoder[S, U], seq itext.Sequence[U, P], state S) {
	h.dec, h.seq, h.state = dec, seq, state
}

// State returns a copy of the current decode state.
func (h *holder[S, U, P]) State() S {
	return h.state
}

// Sequence returns the underlying sequence. The cursor does not own it.
func (h *holder[S, U, P]) Sequence() itext.Sequence[U, P] {
	return h.seq
}
