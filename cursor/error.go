// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import "github.com/dacapoday/itext"

var (
	ErrSkip       = itext.ErrSkip
	ErrNoProgress = itext.ErrNoProgress
)
