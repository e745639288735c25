// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

// Proxy is the result of a single-pass post increment. It keeps a copy of
// the value read before the cursor advanced and nothing else, so it cannot
// alias the live cursor.
type Proxy struct {
	value rune
}

// Rune returns the value read before the increment.
func (p Proxy) Rune() rune {
	return p.value
}
