// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dacapoday/itext"
)

// UTF8 decodes UTF-8.
//
// Malformed input is skipped one maximal subpart at a time: the longest
// prefix of a well-formed sequence, or a single byte. Overlong forms,
// surrogates and values above U+10FFFF are malformed.
type UTF8 struct{}

var _ itext.RandomDecoder[Stateless, byte] = UTF8{}

func (UTF8) MaxUnits() int { return utf8.UTFMax }

func (UTF8) Decode(_ *Stateless, in itext.Reader[byte]) (rune, int, error) {
	var buf [utf8.UTFMax]byte
	b, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	if b < utf8.RuneSelf {
		return rune(b), 1, nil
	}
	buf[0] = b
	n := 1
	for !utf8.FullRune(buf[:n]) {
		if b, ok = in.ReadUnit(); !ok {
			return utf8.RuneError, n, fmt.Errorf("%w: % X at end", ErrIncomplete, buf[:n])
		}
		buf[n] = b
		n++
	}
	r, size := utf8.DecodeRune(buf[:n])
	if size == n && !(r == utf8.RuneError && size == 1) {
		return r, n, nil
	}
	if size < n {
		// the last byte broke a valid prefix and starts the next step
		in.UnreadUnit()
		n--
	}
	return utf8.RuneError, n, fmt.Errorf("%w: % X", ErrInvalid, buf[:n])
}

func (UTF8) DecodeLast(_ *Stateless, in itext.Reader[byte]) (rune, int, error) {
	var buf [utf8.UTFMax]byte
	b, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	if b < utf8.RuneSelf {
		return rune(b), 1, nil
	}
	// buf fills from the back
	buf[utf8.UTFMax-1] = b
	n := 1
	for n < utf8.UTFMax && !utf8.RuneStart(buf[utf8.UTFMax-n]) {
		if b, ok = in.ReadUnit(); !ok {
			break
		}
		if b < utf8.RuneSelf {
			in.UnreadUnit()
			break
		}
		n++
		buf[utf8.UTFMax-n] = b
	}
	seq := buf[utf8.UTFMax-n:]
	r, size := utf8.DecodeRune(seq)
	if size == n && !(r == utf8.RuneError && size == 1) {
		return r, n, nil
	}
	for ; n > 1; n-- {
		in.UnreadUnit()
	}
	return utf8.RuneError, 1, fmt.Errorf("%w: % X", ErrInvalid, seq[len(seq)-1:])
}
