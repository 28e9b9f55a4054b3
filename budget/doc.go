// SPDX-License-Identifier: MIT
// Package: appgen/budget
//
// Package budget holds the mutable resource counters of one generation pass
// and the pure decision policy that spends them.
//
// Design contract (strict):
//   - State has a single logical owner (the tree builder) and is passed by
//     pointer; no globals, no locks — generation is single-threaded.
//   - Decide / DecideEarly are pure and total over non-negative inputs; the
//     zero-urgency corner of DecideEarly resolves to false (never panic).
//   - Counters only move downward. A caller that receives true from a
//     decision MUST decrement the matching counter immediately; the Spend*
//     helpers fuse both steps and are the preferred entry points.
//   - Determinism: same inputs ⇒ same answers, across runs and platforms.
package budget
