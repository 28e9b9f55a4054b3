// SPDX-License-Identifier: MIT
// Package: appgen/tree
//
// Package tree computes the shape of a synthetic module tree: which module is
// a leaf, which is a container, where subdirectories nest, and which child
// references load lazily. It is the pure half of generation — no file system,
// no side effects — so the writing pass can be replayed, inspected, or (in a
// future port) parallelized against a fixed shape.
//
// Design contract (strict):
//   - Build is deterministic: identical Params ⇒ identical Shape, every run.
//   - Discovery is breadth-first from a fixed root (src/triangle.jsx); the
//     node arena preserves discovery order.
//   - Containers have exactly three children; leaves have none.
//   - All budget spending flows through budget.State; counters never wrap.
//   - Validation errors are sentinels (errors.Is); Build never panics.
package tree
