// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package itext

import "errors"

var (
	ErrSkip            = errors.New("no code point")
	ErrInvalid         = errors.New("invalid code unit sequence")
	ErrIncomplete      = errors.New("incomplete code unit sequence")
	ErrNoProgress      = errors.New("decode made no progress")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrUnsupported     = errors.New("unsupported")
	ErrStaleStream     = errors.New("stale stream position")
	ErrPastEnd         = errors.New("read past end of sequence")
)
