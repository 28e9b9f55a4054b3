// SPDX-License-Identifier: MIT
// Package: appgen/render
//
// errors.go — sentinel errors for content rendering.

package render

import "errors"

// ErrPathDerivation indicates that a relative import path between two modules
// could not be computed. Every generated module lives under the single src/
// root, so this is unreachable for a well-formed shape; hitting it means a
// tree-shape invariant was violated and must be treated as a defect, not a
// recoverable condition.
// Usage: if errors.Is(err, render.ErrPathDerivation) { /* report defect */ }.
var ErrPathDerivation = errors.New("render: cannot derive relative import path")
