// SPDX-License-Identifier: MIT
// Package: appgen/budget
//
// decide.go — the pure placement policy.
//
// Both functions answer one question: given `remaining` units of a resource
// and at least `minRemainingDecisions` future opportunities to place one,
// should the resource be placed NOW?
//
// Contract:
//   - remaining == 0 → false (nothing left to place).
//   - minRemainingDecisions <= remaining → true (opportunities are about to
//     run out relative to the budget; forced placement guarantees the budget
//     is exhausted before the opportunities are).
//   - otherwise a deterministic modulus test spreads placements across the
//     surplus of opportunities. The multiplier is a fixed odd constant chosen
//     only to scatter the pattern; it carries no cryptographic weight.
//
// Determinism:
//   - Pure integer arithmetic, no state, no RNG; identical answers for
//     identical inputs on every run.
//
// Complexity: O(1) time, O(1) space per call.

package budget

// spreadMultiplier scatters the modulus test so placements do not clump on
// round divisors. 385 = 11·7·5.
const spreadMultiplier = 385

// Decide reports whether a resource should be placed at the current
// opportunity. Placement is spread roughly evenly across the remaining
// opportunities.
func Decide(remaining, minRemainingDecisions uint) bool {
	if remaining == 0 {
		return false
	}
	if minRemainingDecisions <= remaining {
		return true
	}
	// minRemainingDecisions > remaining ≥ 1 here, so urgency ≥ 1.
	urgency := minRemainingDecisions / remaining
	return (minRemainingDecisions*spreadMultiplier)%urgency == 0
}

// DecideEarly is Decide with a squared denominator: when opportunities exceed
// the budget by a wide margin it still fires densely near the start, skewing
// placement toward the root of the tree.
//
// The squared division can reach zero (minRemainingDecisions < remaining²
// while minRemainingDecisions > remaining); that corner resolves to false —
// the budget is still force-placed later, once opportunities thin out and the
// minRemainingDecisions <= remaining branch takes over.
func DecideEarly(remaining, minRemainingDecisions uint) bool {
	if remaining == 0 {
		return false
	}
	if minRemainingDecisions <= remaining {
		return true
	}
	urgency := minRemainingDecisions / remaining / remaining
	if urgency == 0 {
		return false
	}
	return (minRemainingDecisions*spreadMultiplier)%urgency == 0
}
