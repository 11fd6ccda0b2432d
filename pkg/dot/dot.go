package dot

// Walker is the traversal contract: it enumerates the nodes and edges of a
// caller-owned graph structure and maps each edge to its endpoints.
//
// Slices may be built eagerly or returned from internal storage; the renderer
// reads them once per call and preserves their order in the output. No
// uniqueness is enforced - duplicate nodes or edges are emitted as given.
type Walker[N, E any] interface {
	// Nodes returns all nodes in the graph.
	Nodes() []N
	// Edges returns all edges in the graph.
	Edges() []E
	// Source returns the node the edge starts at.
	Source(e E) N
	// Target returns the node the edge points to.
	Target(e E) N
}

// Labeler is the naming contract: it supplies DOT identifiers for the graph
// itself and for each node. Identifiers may be arbitrary text; the renderer
// quotes and escapes them as needed (see [EscapeID]).
type Labeler[N any] interface {
	// GraphID names the emitted graph.
	GraphID() string
	// NodeID returns an identifier for n, unique with respect to the graph.
	NodeID(n N) string
}

// Graph combines the two contracts required by [Render]. Styling hooks are
// discovered separately via the optional capability interfaces below.
type Graph[N, E any] interface {
	Walker[N, E]
	Labeler[N]
}

// NodeLabeler overrides the display text for nodes. Without it, each node is
// labelled with its [Labeler.NodeID].
type NodeLabeler[N any] interface {
	NodeLabel(n N) Text
}

// NodeShaper selects a Graphviz shape name per node. A zero [Text] means no
// shape attribute for that node.
type NodeShaper[N any] interface {
	NodeShape(n N) Text
}

// NodeColorer selects a Graphviz color name per node. A zero [Text] means no
// color attribute for that node.
type NodeColorer[N any] interface {
	NodeColor(n N) Text
}

// NodeStyler selects a draw style per node. [StyleNone] emits no attribute.
type NodeStyler[N any] interface {
	NodeStyle(n N) Style
}

// NodeAttrer supplies free-form attribute pairs per node, emitted verbatim
// in sorted key order after the recognized attributes.
type NodeAttrer[N any] interface {
	NodeAttrs(n N) map[string]string
}

// EdgeLabeler overrides the display text for edges. Without it, edge labels
// are empty.
type EdgeLabeler[E any] interface {
	EdgeLabel(e E) Text
}

// EdgeStyler selects a draw style per edge. [StyleNone] emits no attribute.
type EdgeStyler[E any] interface {
	EdgeStyle(e E) Style
}

// EdgeColorer selects a Graphviz color name per edge. A zero [Text] means no
// color attribute for that edge.
type EdgeColorer[E any] interface {
	EdgeColor(e E) Text
}

// EdgeAttrer supplies free-form attribute pairs per edge, emitted verbatim
// in sorted key order after the recognized attributes.
type EdgeAttrer[E any] interface {
	EdgeAttrs(e E) map[string]string
}

// EdgeArrower customizes the arrows drawn at either end of an edge. Default
// arrows (see [Arrow.IsDefault]) emit no attribute; a non-default start
// arrow implies dir="both".
type EdgeArrower[E any] interface {
	EdgeStartArrow(e E) Arrow
	EdgeEndArrow(e E) Arrow
}

// EdgePorter attaches ports and compass points to edge endpoints. Zero
// [Port] values leave the endpoint bare.
type EdgePorter[E any] interface {
	EdgeStartPort(e E) Port
	EdgeEndPort(e E) Port
}

// Kinder selects between directed and undirected output. Graphs that do not
// implement it render as digraphs.
type Kinder interface {
	Kind() Kind
}

// RankDirer sets an explicit rank direction for directed graphs.
// [RankDirNone] falls back to the Graphviz default.
type RankDirer interface {
	RankDir() RankDir
}

// GraphAttrer supplies graph-level attribute pairs, emitted verbatim in
// sorted key order right after the header.
type GraphAttrer interface {
	GraphAttrs() map[string]string
}

// Cluster describes one subgraph to draw before the node statements.
// Prefix ID with "cluster_" to have Graphviz draw it as a distinct box.
// Zero-valued fields are omitted, except Label which always renders
// (an empty label renders as label="").
type Cluster[N any] struct {
	ID    string
	Label Text
	Style Style
	Color Text
	Shape Text
	Attrs map[string]string
	Nodes []N
}

// Clusterer groups nodes into subgraphs. Clusters are emitted in the given
// order, each listing its member nodes by their [Labeler.NodeID].
type Clusterer[N any] interface {
	Clusters() []Cluster[N]
}
