// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package encoding

import "github.com/dacapoday/itext"

var (
	ErrSkip            = itext.ErrSkip
	ErrInvalid         = itext.ErrInvalid
	ErrIncomplete      = itext.ErrIncomplete
	ErrUnknownEncoding = itext.ErrUnknownEncoding
	ErrUnsupported     = itext.ErrUnsupported
)
