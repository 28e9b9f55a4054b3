// SPDX-License-Identifier: MIT
// Package: appgen/tree
//
// errors.go — sentinel errors for shape construction.
//
// Error policy (matching the rest of the module):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w; sentinels stay bare.

package tree

import "errors"

// ErrModuleCount indicates that Params.ModuleCount is zero. The root module
// is always created, so a budget below one module is unsatisfiable.
// Usage: if errors.Is(err, tree.ErrModuleCount) { /* reject config */ }.
var ErrModuleCount = errors.New("tree: module count must be at least 1")
