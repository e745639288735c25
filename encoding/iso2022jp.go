// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/dacapoday/itext"
)

const esc = 0x1B

// ISO2022JP decodes ISO-2022-JP (RFC 1468) with half-width katakana.
//
// The state holds the character set selected by the last escape sequence.
// An escape sequence consumes three bytes and yields nothing. JIS X 0208
// pairs are mapped through the EUC-JP table of golang.org/x/text.
type ISO2022JP struct{}

// ISO2022JPState is the shift state of ISO2022JP. The zero value selects
// ASCII.
type ISO2022JPState struct {
	Set Charset
}

// Charset is an ISO-2022-JP character set.
type Charset uint8

const (
	CharsetASCII Charset = iota
	CharsetRoman
	CharsetKatakana
	CharsetJIS0208
)

var designations = map[[2]byte]Charset{
	{'(', 'B'}: CharsetASCII,
	{'(', 'J'}: CharsetRoman,
	{'(', 'I'}: CharsetKatakana,
	{'$', '@'}: CharsetJIS0208,
	{'$', 'B'}: CharsetJIS0208,
}

var _ itext.Decoder[ISO2022JPState, byte] = ISO2022JP{}

func (ISO2022JP) Decode(state *ISO2022JPState, in itext.Reader[byte]) (rune, int, error) {
	b, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	if b == esc {
		return designate(state, in)
	}
	if b >= utf8.RuneSelf {
		return utf8.RuneError, 1, fmt.Errorf("%w: %02X", ErrInvalid, b)
	}
	// controls pass through in every set
	if b < 0x21 || b == 0x7F {
		return rune(b), 1, nil
	}
	switch state.Set {
	case CharsetRoman:
		switch b {
		case 0x5C:
			return '¥', 1, nil
		case 0x7E:
			return '‾', 1, nil
		}
	case CharsetKatakana:
		if b > 0x5F {
			return utf8.RuneError, 1, fmt.Errorf("%w: katakana %02X", ErrInvalid, b)
		}
		return 0xFF61 + rune(b-0x21), 1, nil
	case CharsetJIS0208:
		return decodeJIS0208(b, in)
	}
	return rune(b), 1, nil
}

func designate(state *ISO2022JPState, in itext.Reader[byte]) (rune, int, error) {
	var seq [2]byte
	for i := range seq {
		b, ok := in.ReadUnit()
		if !ok {
			return utf8.RuneError, 1 + i, fmt.Errorf("%w: escape sequence at end", ErrIncomplete)
		}
		seq[i] = b
	}
	set, ok := designations[seq]
	if !ok {
		in.UnreadUnit()
		in.UnreadUnit()
		return utf8.RuneError, 1, fmt.Errorf("%w: escape sequence ESC %q", ErrInvalid, seq[:])
	}
	state.Set = set
	return 0, 3, ErrSkip
}

func decodeJIS0208(b1 byte, in itext.Reader[byte]) (rune, int, error) {
	b2, ok := in.ReadUnit()
	if !ok {
		return utf8.RuneError, 1, fmt.Errorf("%w: JIS X 0208 lead %02X at end", ErrIncomplete, b1)
	}
	if b2 < 0x21 || b2 > 0x7E {
		in.UnreadUnit()
		return utf8.RuneError, 1, fmt.Errorf("%w: JIS X 0208 %02X %02X", ErrInvalid, b1, b2)
	}
	r := jis0208()[int(b1-0x21)*94+int(b2-0x21)]
	if r == utf8.RuneError {
		return r, 2, fmt.Errorf("%w: JIS X 0208 %02X %02X unmapped", ErrInvalid, b1, b2)
	}
	return r, 2, nil
}

// jis0208 is the 94x94 JIS X 0208 block in row order from 0x2121, built
// once from the EUC-JP table. Unmapped cells hold utf8.RuneError.
var jis0208 = sync.OnceValue(func() *[94 * 94]rune {
	table := new([94 * 94]rune)
	dec := japanese.EUCJP.NewDecoder()
	var src [2]byte
	var dst [utf8.UTFMax]byte
	for i := range table {
		table[i] = utf8.RuneError
		src[0], src[1] = byte(0xA1+i/94), byte(0xA1+i%94)
		dec.Reset()
		n, _, err := dec.Transform(dst[:], src[:], true)
		if err == nil && n > 0 {
			table[i], _ = utf8.DecodeRune(dst[:n])
		}
	}
	return table
})
