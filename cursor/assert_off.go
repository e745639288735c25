//go:build !debug

// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

// assertValid is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertValid(string, bool) {}

// assertConsumed is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertConsumed(string, int, int) {}

// assertUnread is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertUnread(string, int) {}
