// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package view

import "go.uber.org/zap"

// Option configures a View.
type Option func(*options)

type options struct {
	log *zap.Logger
}

func defaultOptions() options {
	return options{
		log: zap.NewNop(),
	}
}

// WithLogger reports skipped malformed input to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
