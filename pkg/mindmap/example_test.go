package mindmap_test

import (
	"fmt"

	"github.com/jhartweg/mindweave/pkg/document"
	"github.com/jhartweg/mindweave/pkg/mindmap"
)

func ExampleBuild() {
	doc, err := document.Parse([]byte("Garden:\n  - Roses\n  - Tulips\n"))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	opts := mindmap.DefaultOptions()
	opts.RootID = "map"
	opts.RootLabel = "My Map"

	g, err := mindmap.Build(doc, opts)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	// Output:
	// map -> map_Garden
	// map_Garden -> map_Garden_Roses
	// map_Garden -> map_Garden_Tulips
}

func ExampleToDOT() {
	g := mindmap.NewGraph()
	g.AddNode(mindmap.Node{ID: "map", Label: "Map", FillColor: "#f0f8ff", Shape: "box"})
	g.AddNode(mindmap.Node{ID: "map_Idea", Label: "Idea", FillColor: "#ff6b6b"})
	g.AddEdge("map", "map_Idea")

	fmt.Print(mindmap.ToDOT(g))
	// Output:
	// digraph MindMap {
	//   rankdir=LR;
	//   fontsize=12;
	//   fontname="Helvetica";
	//   node [fontname="Helvetica"];
	//
	//   "map" [label="Map", style=filled, fillcolor="#f0f8ff", shape=box];
	//   "map_Idea" [label="Idea", style=filled, fillcolor="#ff6b6b"];
	//
	//   "map" -> "map_Idea";
	// }
}
