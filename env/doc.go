// Package env provides composable process-environment accessors: the plain
// process environment, dotenv files layered over a prior source, and prefix
// filtering. It shares this source tree with the fixture generator but is
// otherwise unrelated to it — nothing in the generator depends on env.
//
// The contract is a single method, ReadAll, returning the full variable map;
// single-key lookup (Read) delegates to ReadAll. Dotenv files are parsed at
// most once per content change: a small per-process LRU memoizes parse
// results keyed by path, size, and mtime.
package env
