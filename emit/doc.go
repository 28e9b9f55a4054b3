// SPDX-License-Identifier: MIT
// Package: appgen/emit
//
// Package emit materializes a computed tree shape on disk and writes the
// fixed bootstrap files around it. It is the only package in the module that
// touches the file system.
//
// Error policy:
//   - The first error aborts the pass; nothing already written is rolled
//     back. A partially populated output directory is invalid and disposable.
//   - Every error names the logical artifact and wraps both the package
//     sentinel and the underlying OS cause, so callers can branch with
//     errors.Is and still surface the full chain verbatim.
package emit
