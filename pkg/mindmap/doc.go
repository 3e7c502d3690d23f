// Package mindmap builds a colored node-and-edge graph from a document tree.
//
// # Overview
//
// A mind map is a tree of labeled nodes radiating from a single root. Each
// top-level branch gets its own base color from a fixed palette, and every
// mapping level below it fades that color one step toward white, so depth is
// visible at a glance.
//
// # Usage
//
// Load a document, build the graph, then convert it to DOT for rendering:
//
//	doc, err := document.Load("mindmap.yaml")
//	g, err := mindmap.Build(doc, mindmap.DefaultOptions())
//	dot := mindmap.ToDOT(g)
//
// # Node identity
//
// Node IDs concatenate the ancestor path with underscores, with spaces
// replaced by underscores. IDs are deterministic for a given document, which
// keeps DOT output stable across runs. Paths that collide after the space
// substitution collapse into a single node; the input format cannot express
// cycles, so the walk always terminates.
package mindmap
