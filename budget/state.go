// SPDX-License-Identifier: MIT
// Package: appgen/budget
//
// state.go — the three spendable counters of a generation pass.
//
// Contract:
//   - One State per pass, owned by the tree builder, passed by pointer.
//   - Counters are only ever decremented. ConsumeModules saturates at zero;
//     the other two are decremented solely through their Spend* helper, which
//     couples the decision to the decrement so the two can never drift apart.

package budget

// modulesPerExpansion is the fan-out of a container node: every expansion
// costs exactly three modules.
const modulesPerExpansion = 3

// State tracks how much of each budget is still unspent.
type State struct {
	// RemainingModules counts tree modules still to be created
	// (the root is pre-counted by the builder).
	RemainingModules uint
	// RemainingDirectories counts nested subdirectories still allowed.
	RemainingDirectories uint
	// RemainingDynamicImports counts lazy child references still allowed.
	RemainingDynamicImports uint
}

// SpendDirectory decides whether the current container should nest its
// children one directory deeper, and on true consumes one directory unit.
// opportunities is the number of container expansions still possible
// (remaining modules / 3).
func (s *State) SpendDirectory(opportunities uint) bool {
	if !Decide(s.RemainingDirectories, opportunities) {
		return false
	}
	s.RemainingDirectories--
	return true
}

// SpendDynamicImport decides whether the current child reference should be a
// lazy import, and on true consumes one dynamic-import unit. Placement skews
// early: callers pass a per-child opportunity count that favors earlier
// children.
func (s *State) SpendDynamicImport(opportunities uint) bool {
	if !DecideEarly(s.RemainingDynamicImports, opportunities) {
		return false
	}
	s.RemainingDynamicImports--
	return true
}

// ConsumeModules charges one container expansion (three children) against the
// module budget, saturating at zero. Saturation is the documented rounding
// slack: the final expansion may overshoot the budget by up to two modules.
func (s *State) ConsumeModules() {
	if s.RemainingModules < modulesPerExpansion {
		s.RemainingModules = 0
		return
	}
	s.RemainingModules -= modulesPerExpansion
}
