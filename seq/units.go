// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"github.com/dacapoday/itext"
)

// Units is a random access sequence over a slice. Positions are indexes.
type Units[U itext.Unit] []U

var _ itext.RandomAccess[byte, int] = Units[byte](nil)

// Bytes returns the bytes of s as a sequence.
func Bytes(s string) Units[byte] {
	return Units[byte](s)
}

func (u Units[U]) Begin() int { return 0 }
func (u Units[U]) End() int   { return len(u) }

func (u Units[U]) Step(p int) (U, int) {
	return u[p], p + 1
}

func (u Units[U]) StepBack(p int) (U, int) {
	return u[p-1], p - 1
}

// Jump moves p by n units, clamped to [0, len(u)].
func (u Units[U]) Jump(p int, n int) int {
	return max(0, min(len(u), p+n))
}

func (u Units[U]) Distance(from, to int) int {
	return to - from
}
