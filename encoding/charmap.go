// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/dacapoday/itext"
)

// Charmap decodes a single-byte encoding such as Windows-1252 or KOI8-R.
// Bytes the charmap leaves undefined are malformed.
type Charmap struct {
	cm *charmap.Charmap
}

var _ itext.RandomDecoder[Stateless, byte] = Charmap{}

// NewCharmap wraps cm.
func NewCharmap(cm *charmap.Charmap) Charmap {
	return Charmap{cm}
}

// Name returns the charmap's name.
func (c Charmap) Name() string {
	return c.cm.String()
}

func (Charmap) MaxUnits() int { return 1 }

func (c Charmap) Decode(_ *Stateless, in itext.Reader[byte]) (rune, int, error) {
	return c.decode(in)
}

func (c Charmap) DecodeLast(_ *Stateless, in itext.Reader[byte]) (rune, int, error) {
	return c.decode(in)
}

func (c Charmap) decode(in itext.Reader[byte]) (rune, int, error) {
	b, ok := in.ReadUnit()
	if !ok {
		return 0, 0, io.EOF
	}
	r := c.cm.DecodeByte(b)
	if r == utf8.RuneError {
		return r, 1, fmt.Errorf("%w: %02X undefined in %s", ErrInvalid, b, c.cm)
	}
	return r, 1, nil
}
