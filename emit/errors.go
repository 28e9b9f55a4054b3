// SPDX-License-Identifier: MIT
// Package: appgen/emit
//
// errors.go — sentinel errors for file materialization.

package emit

import "errors"

// ErrCreateDir indicates that the target directory or a nested subdirectory
// could not be created.
// Usage: if errors.Is(err, emit.ErrCreateDir) { /* check target perms */ }.
var ErrCreateDir = errors.New("emit: cannot create directory")

// ErrWriteFile indicates that an artifact's content could not be written.
// The wrapping error carries the logical artifact name for diagnostics.
// Usage: if errors.Is(err, emit.ErrWriteFile) { /* check disk/perms */ }.
var ErrWriteFile = errors.New("emit: cannot write file")
