package mindmap

// Node is a single labeled vertex of the mind map. Shape is a Graphviz shape
// name; empty means the renderer's default (ellipse). Every node is drawn
// filled with FillColor.
type Node struct {
	ID        string // unique, synthesized from the ancestor path
	Label     string // display text
	FillColor string // "#rrggbb"
	Shape     string // "box" for the root, empty otherwise
}

// Edge is a directed parent→child connection.
type Edge struct {
	From string
	To   string
}

// Graph accumulates nodes and edges during the document walk. It is owned by
// the build driver for the duration of a run and mutated by nothing else.
//
// Nodes are deduplicated by ID (first insert wins) and kept in insertion
// order so DOT output is deterministic. The zero value is not usable; use
// [NewGraph].
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts a node. Inserting an ID that already exists is a no-op,
// which makes repeated insertion of an identical node harmless.
func (g *Graph) AddNode(n Node) {
	if _, ok := g.nodes[n.ID]; ok {
		return
	}
	g.nodes[n.ID] = &n
	g.order = append(g.order, n.ID)
}

// AddEdge appends a directed edge. Endpoints are not checked; the walker
// only ever connects nodes it has just inserted.
func (g *Graph) AddEdge(from, to string) {
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
