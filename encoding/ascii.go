// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dacapoday/itext"
)

// ASCII decodes 7-bit ASCII. Bytes with the high bit set are malformed.
type ASCII struct{}

var _ itext.RandomDecoder[Stateless, byte] = ASCII{}

func (ASCII) MaxUnits() int { return 1 }

func (ASCII) Decode(_ *Stateless, in itext.Reader[byte]) (rune, int, error) {
	return decodeASCII(in)
}

func (ASCII) DecodeLast(_ *Stateless, in itext.Reader[byte]) (rune, int, error) {
	return decodeASCII(in)
}

func decodeASCII(in itext.Reader[byte]) (rune, int, error) {
	b, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	if b >= utf8.RuneSelf {
		return utf8.RuneError, 1, fmt.Errorf("%w: %02X", ErrInvalid, b)
	}
	return rune(b), 1, nil
}
