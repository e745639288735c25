// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// Canonical names returned by Lookup for the encodings of this package.
const (
	NameUTF8      = "utf-8"
	NameUTF16LE   = "utf-16le"
	NameUTF16BE   = "utf-16be"
	NameISO2022JP = "iso-2022-jp"
)

// Lookup resolves a WHATWG encoding label such as "latin1" or "UTF8" to
// its canonical name.
func Lookup(label string) (string, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrUnknownEncoding, label, err)
	}
	return name, nil
}

// LookupCharmap returns the single-byte decoder for label.
func LookupCharmap(label string) (Charmap, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return Charmap{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return Charmap{}, fmt.Errorf("%w: %q is not a single-byte encoding", ErrUnsupported, label)
	}
	return NewCharmap(cm), nil
}

// Detect guesses the encoding of a document from its first bytes.
//
// A byte order mark is authoritative; its length is returned so callers
// can skip it. Without one, HTML meta declarations are honored and the
// fallback is windows-1252, as browsers do. certain is false for guesses.
func Detect(prefix []byte) (name string, bom int, certain bool) {
	_, name, certain = charset.DetermineEncoding(prefix, "")
	switch {
	case bytes.HasPrefix(prefix, []byte{0xEF, 0xBB, 0xBF}):
		return NameUTF8, 3, true
	case bytes.HasPrefix(prefix, []byte{0xFF, 0xFE}):
		return NameUTF16LE, 2, true
	case bytes.HasPrefix(prefix, []byte{0xFE, 0xFF}):
		return NameUTF16BE, 2, true
	}
	return name, 0, certain
}
