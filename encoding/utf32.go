// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dacapoday/itext"
)

// UTF32 decodes UTF-32 code units. Surrogates and values above U+10FFFF
// are malformed.
type UTF32 struct{}

var _ itext.RandomDecoder[Stateless, uint32] = UTF32{}

func (UTF32) MaxUnits() int { return 1 }

func (UTF32) Decode(_ *Stateless, in itext.Reader[uint32]) (rune, int, error) {
	return decodeUTF32(in)
}

func (UTF32) DecodeLast(_ *Stateless, in itext.Reader[uint32]) (rune, int, error) {
	return decodeUTF32(in)
}

func decodeUTF32(in itext.Reader[uint32]) (rune, int, error) {
	u, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	if u > utf8.MaxRune || !utf8.ValidRune(rune(u)) {
		return utf8.RuneError, 1, fmt.Errorf("%w: %08X", ErrInvalid, u)
	}
	return rune(u), 1, nil
}
