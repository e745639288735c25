// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package encoding provides decoders for the cursor package.
//
// # Unicode
//
//   - [UTF8] - bytes, up to 4 per code point
//   - [UTF16] - 16-bit units, surrogate pairs
//   - [UTF32] - 32-bit units
//   - [ASCII] - 7-bit bytes
//
// All of them decode in both directions and resynchronize after a jump,
// so they reach the random access tier.
//
// # Legacy encodings
//
//   - [Charmap] - any single-byte charmap from golang.org/x/text
//   - [ISO2022JP] - stateful; escape sequences switch the character set
//
// ISO-2022-JP cannot be decoded backward: the meaning of a byte depends on
// the last escape sequence before it. Cursors over it stop at the forward
// tier.
//
// # Names
//
// [Lookup] resolves WHATWG encoding labels, [Detect] inspects the start of
// a document for a byte order mark or a meta charset declaration.
package encoding

// Stateless is the decode state of encodings that carry none.
type Stateless struct{}
