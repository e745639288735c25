// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dacapoday/itext"
)

// UTF16 decodes UTF-16 code units. Byte order is a property of the
// sequence, see seq.NewStream.
//
// A surrogate without its partner is malformed and skipped alone.
type UTF16 struct{}

var _ itext.RandomDecoder[Stateless, uint16] = UTF16{}

func (UTF16) MaxUnits() int { return 2 }

func (UTF16) Decode(_ *Stateless, in itext.Reader[uint16]) (rune, int, error) {
	u, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	switch {
	case !utf16.IsSurrogate(rune(u)):
		return rune(u), 1, nil
	case isLowSurrogate(u):
		return utf8.RuneError, 1, fmt.Errorf("%w: unpaired surrogate %04X", ErrInvalid, u)
	}
	low, ok := in.ReadUnit()
	if !ok {
		return utf8.RuneError, 1, fmt.Errorf("%w: surrogate %04X at end", ErrIncomplete, u)
	}
	if !isLowSurrogate(low) {
		in.UnreadUnit()
		return utf8.RuneError, 1, fmt.Errorf("%w: unpaired surrogate %04X", ErrInvalid, u)
	}
	return utf16.DecodeRune(rune(u), rune(low)), 2, nil
}

func (UTF16) DecodeLast(_ *Stateless, in itext.Reader[uint16]) (rune, int, error) {
	u, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	switch {
	case !utf16.IsSurrogate(rune(u)):
		return rune(u), 1, nil
	case !isLowSurrogate(u):
		return utf8.RuneError, 1, fmt.Errorf("%w: unpaired surrogate %04X", ErrInvalid, u)
	}
	high, ok := in.ReadUnit()
	if !ok || !utf16.IsSurrogate(rune(high)) || isLowSurrogate(high) {
		if ok {
			in.UnreadUnit()
		}
		return utf8.RuneError, 1, fmt.Errorf("%w: unpaired surrogate %04X", ErrInvalid, u)
	}
	return utf16.DecodeRune(rune(high), rune(u)), 2, nil
}

func isLowSurrogate(u uint16) bool {
	return u >= 0xDC00 && u < 0xE000
}
