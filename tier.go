// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package itext

// Tier is the traversal capability of a cursor: the weaker of what the
// sequence and the decoder support.
type Tier uint8

const (
	TierInput Tier = iota
	TierForward
	TierBidirectional
	TierRandomAccess
)

func (t Tier) String() string {
	switch t {
	case TierInput:
		return "input"
	case TierForward:
		return "forward"
	case TierBidirectional:
		return "bidirectional"
	case TierRandomAccess:
		return "random-access"
	}
	return "unknown"
}

// Classify returns the strongest tier dec and seq both support.
func Classify[S any, U Unit, P comparable](dec Decoder[S, U], seq Sequence[U, P]) Tier {
	return min(SequenceTier(seq), DecoderTier(dec))
}

// SequenceTier reports the traversal power of seq.
func SequenceTier[U Unit, P comparable](seq Sequence[U, P]) Tier {
	switch seq.(type) {
	case RandomAccess[U, P]:
		return TierRandomAccess
	case Bidirectional[U, P]:
		return TierBidirectional
	case Forward[U, P]:
		return TierForward
	}
	return TierInput
}

// DecoderTier reports the decoding power of dec. Every decoder can decode
// forward over a multi-pass sequence.
func DecoderTier[S any, U Unit](dec Decoder[S, U]) Tier {
	switch dec.(type) {
	case RandomDecoder[S, U]:
		return TierRandomAccess
	case ReverseDecoder[S, U]:
		return TierBidirectional
	}
	return TierForward
}
