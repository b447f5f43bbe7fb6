// Package unionfind is your in-memory toolkit for partitioning a universe of
// elements into disjoint sets — with user-defined, mergeable metadata riding
// along on every union.
//
// 🚀 What is unionfind?
//
//	A modern, generic union-find (disjoint-set) library that brings together:
//		• Raw core: path compression + balanced union over a dense index arena
//		• Cardinality: O(1) live-set count and per-set size queries
//		• Tags: attach any mergeable payload to a set; payloads combine on union
//		• Iteration: walk all sets, or all elements of one set, lazily
//		• Escape hatch: bypass the tag layer entirely when you only need identity
//
// ✨ Why choose unionfind?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Amortized near-constant find/unite – inverse-Ackermann bounds preserved
//   - Pure Go – no cgo, no hidden deps, generics instead of reflection
//   - Extensible – implement one Merge method and your type is a set tag
//
// Under the hood, everything is organized under two subpackages:
//
//	dsu/    — raw disjoint-set core: identifiers, union, cardinality
//	tagged/ — mergeable-tag layer, iterable member tracking & set views
//
// Quick ASCII example:
//
//	    {A}  {B}  {C}      Unite(A,B)      {A,B}  {C}
//	     •    •    •      ──────────►       •──•    •
//
//	three singleton sets merge pairwise until one remains.
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/unionfind
package unionfind
