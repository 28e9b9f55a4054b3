// SPDX-License-Identifier: MIT
// Package: appgen
//
// options.go — functional options for Build.
//
// Contract (as everywhere in this module): option constructors validate and
// panic on programmer error; generation itself never panics.

package appgen

// Option customizes a Build call.
type Option func(*buildOptions)

type buildOptions struct {
	// target is the explicit output directory; empty means "fresh temp dir".
	target string
}

func resolveOptions(opts ...Option) buildOptions {
	var bo buildOptions
	for _, opt := range opts {
		opt(&bo)
	}
	return bo
}

// WithTarget directs generation into dir (created if absent). The caller owns
// the directory; App.Close will not remove it. Panics on an empty path.
func WithTarget(dir string) Option {
	if dir == "" {
		panic(`appgen: WithTarget("")`)
	}
	return func(bo *buildOptions) {
		bo.target = dir
	}
}
