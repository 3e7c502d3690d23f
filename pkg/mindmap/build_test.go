package mindmap

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jhartweg/mindweave/pkg/document"
)

func TestBuildRootNode(t *testing.T) {
	doc := mustParse(t, "Health: ok\n")

	g, err := Build(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	root := g.Node(DefaultRootID)
	if root == nil {
		t.Fatal("root node missing")
	}
	if root.Label != DefaultRootLabel {
		t.Errorf("root label = %q, want %q", root.Label, DefaultRootLabel)
	}
	if root.Shape != "box" {
		t.Errorf("root shape = %q, want box", root.Shape)
	}
	if root.FillColor != DefaultRootColor {
		t.Errorf("root fill = %q, want %q", root.FillColor, DefaultRootColor)
	}
}

func TestBuildPaletteAssignment(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&sb, "Topic%d: x\n", i)
	}
	doc := mustParse(t, sb.String())

	opts := DefaultOptions()
	opts.RootID = "root"
	g, err := Build(doc, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for i := 0; i < 9; i++ {
		id := fmt.Sprintf("root_Topic%d", i)
		want := DefaultPalette[i%len(DefaultPalette)]
		n := g.Node(id)
		if n == nil {
			t.Fatalf("missing branch node %s", id)
		}
		if n.FillColor != want {
			t.Errorf("branch %d fill = %s, want %s", i, n.FillColor, want)
		}
	}

	// The 8th branch wraps around to the 1st color.
	if g.Node("root_Topic7").FillColor != g.Node("root_Topic0").FillColor {
		t.Error("palette should cycle after 7 branches")
	}
}

func TestBuildBranchOrder(t *testing.T) {
	doc := mustParse(t, "Zebra: 1\nApple: 2\n")

	opts := DefaultOptions()
	opts.RootID = "root"
	g, err := Build(doc, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Document order drives both node order and palette assignment.
	if g.Node("root_Zebra").FillColor != DefaultPalette[0] {
		t.Errorf("first branch fill = %s, want %s", g.Node("root_Zebra").FillColor, DefaultPalette[0])
	}
	if g.Node("root_Apple").FillColor != DefaultPalette[1] {
		t.Errorf("second branch fill = %s, want %s", g.Node("root_Apple").FillColor, DefaultPalette[1])
	}
}

func TestBuildFullDocument(t *testing.T) {
	doc := mustParse(t, `
Health:
  Exercise:
    - Running
    - Swimming
Work:
  Projects: mindmap
`)

	opts := DefaultOptions()
	opts.RootID = "root"
	opts.RootLabel = "root"
	g, err := Build(doc, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantNodes := []string{
		"root",
		"root_Health", "root_Health_Exercise",
		"root_Health_Exercise_Running", "root_Health_Exercise_Swimming",
		"root_Work", "root_Work_Projects", "root_Work_Projects_mindmap",
	}
	if diff := cmp.Diff(wantNodes, nodeIDs(g)); diff != "" {
		t.Errorf("node mismatch (-want +got):\n%s", diff)
	}

	wantEdges := []string{
		"root->root_Health",
		"root_Health->root_Health_Exercise",
		"root_Health_Exercise->root_Health_Exercise_Running",
		"root_Health_Exercise->root_Health_Exercise_Swimming",
		"root->root_Work",
		"root_Work->root_Work_Projects",
		"root_Work_Projects->root_Work_Projects_mindmap",
	}
	if diff := cmp.Diff(wantEdges, edgeSet(g)); diff != "" {
		t.Errorf("edge mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSpacesInKeys(t *testing.T) {
	doc := mustParse(t, "Daily Habits:\n  Morning Routine: coffee\n")

	opts := DefaultOptions()
	opts.RootID = "root"
	g, err := Build(doc, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	n := g.Node("root_Daily_Habits_Morning_Routine")
	if n == nil {
		t.Fatalf("sanitized node missing, have %v", nodeIDs(g))
	}
	if n.Label != "Morning Routine" {
		t.Errorf("label = %q, should keep the original spaces", n.Label)
	}
}

func TestBuildSchemaError(t *testing.T) {
	tests := []struct {
		name string
		doc  *document.Value
	}{
		{"nil document", nil},
		{"sequence", &document.Value{Kind: document.KindSequence}},
		{"scalar", &document.Value{Kind: document.KindScalar, Scalar: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.doc, DefaultOptions()); !errors.Is(err, document.ErrSchema) {
				t.Errorf("Build error = %v, want ErrSchema", err)
			}
		})
	}
}

func TestBuildEmptyPalette(t *testing.T) {
	doc := mustParse(t, "A: b\n")

	opts := DefaultOptions()
	opts.Palette = nil
	if _, err := Build(doc, opts); err == nil {
		t.Error("Build with empty palette should fail")
	}
}
