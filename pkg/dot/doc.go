// Package dot renders arbitrary in-memory graph structures as Graphviz DOT
// documents.
//
// # Overview
//
// Rather than imposing a particular graph data structure, the package exposes
// two small capability contracts that callers implement on their own types:
// [Walker] enumerates nodes and edges and resolves each edge to its source
// and target, and [Labeler] supplies DOT identifiers for the graph and its
// nodes. [Render] walks both enumerations exactly once and writes a
// syntactically valid DOT document to any io.Writer. Layout, rasterization,
// and everything else visual is delegated to Graphviz itself.
//
// # Basic Usage
//
// Implement [Walker] and [Labeler] on a type of your own and hand it to
// [Render]:
//
//	type deps struct{ edges [][2]string }
//
//	func (d *deps) Nodes() []string        { ... }
//	func (d *deps) Edges() [][2]string     { return d.edges }
//	func (d *deps) Source(e [2]string) string { return e[0] }
//	func (d *deps) Target(e [2]string) string { return e[1] }
//	func (d *deps) GraphID() string        { return "deps" }
//	func (d *deps) NodeID(n string) string { return n }
//
//	var buf bytes.Buffer
//	err := dot.Render[string, [2]string](&d, &buf)
//
// # Optional Capabilities
//
// Styling is opt-in. The renderer probes the graph value for additional
// interfaces and emits the corresponding attributes only when they are
// present: [NodeLabeler], [NodeShaper], [NodeColorer], [NodeStyler],
// [EdgeLabeler], [EdgeStyler], [EdgeColorer], [EdgeArrower], [EdgePorter],
// [Kinder], [RankDirer], [GraphAttrer], [Clusterer], and the free-form
// [NodeAttrer] and [EdgeAttrer]. A graph that implements none of them still
// renders; node labels default to the node ID and edge labels to the empty
// string.
//
// # Identifiers and Escaping
//
// Identifiers returned by [Labeler] may be arbitrary text. [EscapeID] leaves
// safe DOT identifiers untouched and quotes everything else, escaping
// embedded quotes, backslashes, and newlines, so the emitted document is
// valid regardless of input content. Label text is carried as a [Text] value,
// which selects between the plain and escString quoting strategies (see
// [Label] and [Esc]).
//
// # Guarantees
//
// Rendering is a single read-only pass: node statements are emitted before
// edge statements, both in the exact order produced by the walk, and two
// renders of the same snapshot are byte-identical. The only error condition
// is a write failure on the sink, which aborts the render and is returned to
// the caller unchanged.
package dot
