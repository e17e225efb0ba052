// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package bst

import "github.com/rs/zerolog"

type options struct {
	log zerolog.Logger
}

// Option configures a tree created by New.
type Option func(*options)

// WithLogger sets the logger used for structural events. Events are emitted
// at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func defaultOptions() options {
	return options{log: zerolog.Nop()}
}
