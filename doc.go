// Package appgen deterministically generates synthetic web applications —
// a ternary tree of UI component modules plus the fixed bootstrap files that
// make the tree a runnable fixture — for benchmarking module bundlers.
//
// 🚀 What does appgen build?
//
//	Given four scalar budgets (modules, directories, dynamic imports,
//	flatness) it lays out a module tree whose shape, nesting, and
//	lazy-import placement exhaust the budgets as precisely as integer
//	arithmetic allows, then writes it to a target directory:
//		• src/triangle.jsx — the tree root, always
//		• src/…            — the remaining tree, breadth-first
//		• src/detector.jsx — instrumentation component
//		• entries, HTML hosts, dev-server script, optional package.json
//
// ✨ Guarantees
//
//   - Deterministic — identical Config ⇒ byte-identical output trees;
//     there is no randomness anywhere, by requirement
//   - Budget-exact — directory and dynamic-import budgets are never
//     overdrawn; the module budget overshoots by at most 2 (saturating
//     final expansion)
//   - Single hydration marker — exactly one container carries the
//     hydration flag for the instrumentation component
//
// Under the hood, the work is split across four subpackages:
//
//	budget/ — spendable counters + the pure placement policy
//	tree/   — breadth-first shape computation (pure, no I/O)
//	render/ — node → content templates and the fixed bootstrap templates
//	emit/   — the only package that writes to disk
//
// Quick example:
//
//	app, err := appgen.Build(appgen.Config{
//		ModuleCount:    1000,
//		DirectoryCount: 50,
//		Flatness:       5,
//	})
//	if err != nil { … }
//	defer app.Close() // removes the directory only if appgen created it
//
// The env subpackage is an unrelated process-environment accessor that
// shares this source tree; the generator does not depend on it.
package appgen
