// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package seq provides code unit sequences for the cursor package.
//
//   - [Units]: a slice, random access, positions are indexes.
//   - [Buffer]: segmented in-memory bytes, bidirectional.
//   - [Stream]: an io.Reader read once, single pass.
//
// [ForwardOnly] and [BidirectionalOnly] hide capabilities of a stronger
// sequence, which is useful to pin a cursor to a lower tier.
package seq
