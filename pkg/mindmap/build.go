package mindmap

import (
	"fmt"

	"github.com/jhartweg/mindweave/pkg/document"
)

// DefaultPalette holds the base colors assigned to top-level branches, in
// assignment order. The palette cycles: the eighth branch reuses the first
// color.
var DefaultPalette = []string{
	"#ff6b6b", // red
	"#4dabf7", // blue
	"#51cf66", // green
	"#ffa94d", // orange
	"#845ef7", // purple
	"#f06595", // pink
	"#20c997", // teal
}

// Default root node identity, matching the stock mind-map layout.
const (
	DefaultRootID    = "Life_Systems"
	DefaultRootLabel = "Life Systems Master Map"
	DefaultRootColor = "#f0f8ff"
)

// Options controls the root node and palette used by [Build].
type Options struct {
	RootID    string
	RootLabel string
	RootColor string
	Palette   []string
}

// DefaultOptions returns the stock root identity and palette.
func DefaultOptions() Options {
	return Options{
		RootID:    DefaultRootID,
		RootLabel: DefaultRootLabel,
		RootColor: DefaultRootColor,
		Palette:   DefaultPalette,
	}
}

// Build assembles the full mind-map graph for a document. The root node is
// drawn as a box; each top-level key gets the next palette color and its
// subtree is walked with that color as the branch base.
//
// The document's top level must be a mapping; anything else fails with
// [document.ErrSchema].
func Build(doc *document.Value, opts Options) (*Graph, error) {
	if doc == nil || doc.Kind != document.KindMapping {
		return nil, document.ErrSchema
	}
	if len(opts.Palette) == 0 {
		return nil, fmt.Errorf("palette must not be empty")
	}

	g := NewGraph()
	g.AddNode(Node{ID: opts.RootID, Label: opts.RootLabel, FillColor: opts.RootColor, Shape: "box"})

	for i, p := range doc.Pairs {
		branchColor := opts.Palette[i%len(opts.Palette)]
		id := sanitizeID(opts.RootID + "_" + p.Key)

		g.AddNode(Node{ID: id, Label: p.Key, FillColor: branchColor})
		g.AddEdge(opts.RootID, id)

		if err := AddNodes(g, id, p.Value, branchColor); err != nil {
			return nil, fmt.Errorf("branch %s: %w", p.Key, err)
		}
	}

	return g, nil
}
