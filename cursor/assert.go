//go:build debug

// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import "fmt"

// assertValid panics if the cursor holds no decoded value.
// Only enabled with -tags debug.
func assertValid(method string, ok bool) {
	if !ok {
		panic(fmt.Sprintf("%s: cursor is not valid", method))
	}
}

// assertConsumed panics if a decoder misreports how many units it read.
// Only enabled with -tags debug.
func assertConsumed(method string, reported, read int) {
	if reported != read {
		panic(fmt.Sprintf("%s: decoder reported %d units, read %d", method, reported, read))
	}
}

// assertUnread panics if a decoder backs up past the start of its step.
// Only enabled with -tags debug.
func assertUnread(method string, read int) {
	if read == 0 {
		panic(fmt.Sprintf("%s: unread past start of step", method))
	}
}
