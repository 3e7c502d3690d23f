package mindmap

import (
	"strings"

	"github.com/jhartweg/mindweave/pkg/color"
	"github.com/jhartweg/mindweave/pkg/document"
)

// childFactor is how far each mapping level fades toward white.
const childFactor = 0.35

// AddNodes recursively adds the subtree rooted at value to the graph,
// attached under parentID. Each mapping level gets one lightening step from
// its parent's color; sequences pass the parent's color through unchanged,
// so list siblings and nested containers stay on the same shade.
func AddNodes(g *Graph, parentID string, value *document.Value, parentColor string) error {
	childColor, err := color.Lighten(parentColor, childFactor)
	if err != nil {
		return err
	}

	switch value.Kind {
	case document.KindMapping:
		for _, p := range value.Pairs {
			id := sanitizeID(parentID + "_" + p.Key)
			g.AddNode(Node{ID: id, Label: p.Key, FillColor: childColor})
			g.AddEdge(parentID, id)
			if err := AddNodes(g, id, p.Value, childColor); err != nil {
				return err
			}
		}

	case document.KindSequence:
		for _, item := range value.Items {
			if item.IsContainer() {
				// Containers inside a list hang off the same parent and do
				// not consume a color step.
				if err := AddNodes(g, parentID, item, parentColor); err != nil {
					return err
				}
				continue
			}
			id := sanitizeID(parentID + "_" + item.Scalar)
			g.AddNode(Node{ID: id, Label: item.Scalar, FillColor: childColor})
			g.AddEdge(parentID, id)
		}

	default: // scalar leaf
		id := sanitizeID(parentID + "_" + value.Scalar)
		g.AddNode(Node{ID: id, Label: value.Scalar, FillColor: childColor})
		g.AddEdge(parentID, id)
	}

	return nil
}

// sanitizeID makes a path-derived string usable as a node ID by replacing
// spaces with underscores. Nothing else is escaped; distinct paths that
// collide after this substitution collapse into one node (a known
// limitation of path-concatenated IDs).
func sanitizeID(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
