// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/dacapoday/itext"

var (
	ErrStaleStream = itext.ErrStaleStream
	ErrUnsupported = itext.ErrUnsupported
	ErrPastEnd     = itext.ErrPastEnd
)
