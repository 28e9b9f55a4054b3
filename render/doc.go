// SPDX-License-Identifier: MIT
// Package: appgen/render
//
// Package render turns computed tree nodes into file content. Every function
// is pure — node data in, bytes out — so content generation is replayable and
// trivially testable without touching the file system. Which template applies
// (leaf vs container, static vs lazy child reference) is data on the node,
// decided during shape construction, never here.
//
// The package also carries the fixed bootstrap templates that wrap a
// generated tree into a runnable fixture (entries, HTML hosts, dev-server
// script, manifest).
package render
