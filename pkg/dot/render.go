package dot

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Options tunes what [RenderOptions] emits. The zero value renders
// everything with default styling.
type Options struct {
	// NoNodeLabels suppresses label attributes on nodes and clusters.
	NoNodeLabels bool
	// NoEdgeLabels suppresses label attributes on edges.
	NoEdgeLabels bool
	// NoNodeStyles suppresses style attributes on nodes and clusters.
	NoNodeStyles bool
	// NoNodeColors suppresses color attributes on nodes and clusters.
	NoNodeColors bool
	// NoEdgeStyles suppresses style attributes on edges.
	NoEdgeStyles bool
	// NoEdgeColors suppresses color attributes on edges.
	NoEdgeColors bool
	// NoArrows suppresses arrowhead and arrowtail attributes.
	NoArrows bool

	// FontName sets an explicit font on the graph, its nodes, and its edges.
	FontName string
	// DarkTheme renders white-on-black.
	DarkTheme bool
}

// Render writes g to w as a DOT document with default options.
//
// The type parameters name the caller's node and edge types and are usually
// spelled explicitly at the call site:
//
//	err := dot.Render[myNode, myEdge](g, w)
func Render[N, E any](g Graph[N, E], w io.Writer) error {
	return RenderOptions(g, w, Options{})
}

// RenderOptions writes g to w as a DOT document.
//
// The document is produced in one pass: header, rank direction, graph
// attributes, clusters, one statement per node, one statement per edge,
// closing brace. Node and edge statements appear in the exact order the
// walk yields them. The first write error aborts the render and is returned
// unchanged; there are no other failure modes.
func RenderOptions[N, E any](g Graph[N, E], w io.Writer, opts Options) error {
	ew := &errWriter{w: w}

	kind := Directed
	if k, ok := g.(Kinder); ok {
		kind = k.Kind()
	}
	ew.printf("%s %s {\n", kind.Keyword(), EscapeID(g.GraphID()))

	if kind == Directed {
		if rd, ok := g.(RankDirer); ok {
			if d := rd.RankDir(); d != RankDirNone {
				ew.printf("    rankdir=%q;\n", d)
			}
		}
	}

	if ga, ok := g.(GraphAttrer); ok {
		attrs := ga.GraphAttrs()
		for _, k := range slices.Sorted(maps.Keys(attrs)) {
			ew.printf("    %s=%s;\n", k, attrs[k])
		}
	}

	renderTheme(ew, opts)
	renderClusters(ew, g, opts)
	renderNodes(ew, g, opts)
	renderEdges(ew, g, kind, opts)

	ew.printf("}\n")
	return ew.err
}

// renderTheme emits graph-wide attribute blocks driven by Options rather
// than by the graph's own hooks.
func renderTheme(ew *errWriter, opts Options) {
	var graphAttrs, contentAttrs []string
	if opts.FontName != "" {
		font := fmt.Sprintf("fontname=%q", opts.FontName)
		graphAttrs = append(graphAttrs, font)
		contentAttrs = append(contentAttrs, font)
	}
	if opts.DarkTheme {
		graphAttrs = append(graphAttrs, `bgcolor="black"`, `fontcolor="white"`)
		contentAttrs = append(contentAttrs, `color="white"`, `fontcolor="white"`)
	}
	if len(graphAttrs) == 0 && len(contentAttrs) == 0 {
		return
	}
	ew.printf("    graph[%s];\n", strings.Join(graphAttrs, " "))
	content := strings.Join(contentAttrs, " ")
	ew.printf("    node[%s];\n", content)
	ew.printf("    edge[%s];\n", content)
}

func renderClusters[N, E any](ew *errWriter, g Graph[N, E], opts Options) {
	cl, ok := g.(Clusterer[N])
	if !ok {
		return
	}
	for _, c := range cl.Clusters() {
		ew.printf("subgraph")
		if c.ID != "" {
			ew.printf(" %s", EscapeID(c.ID))
		}
		ew.printf(" {\n")

		if !opts.NoNodeLabels {
			ew.printf("    label=%s;\n", c.Label.Quoted())
		}
		if !opts.NoNodeStyles && c.Style != StyleNone {
			ew.printf("    style=%q;\n", c.Style)
		}
		if !opts.NoNodeColors && !c.Color.isZero() {
			ew.printf("    color=%s;\n", c.Color.Quoted())
		}
		if !c.Shape.isZero() {
			ew.printf("    shape=%s;\n", c.Shape.Quoted())
		}
		for _, k := range slices.Sorted(maps.Keys(c.Attrs)) {
			ew.printf("    %s=%s;\n", k, c.Attrs[k])
		}
		for _, n := range c.Nodes {
			ew.printf("    %s;\n", EscapeID(g.NodeID(n)))
		}

		ew.printf("}\n")
	}
}

func renderNodes[N, E any](ew *errWriter, g Graph[N, E], opts Options) {
	labeler, hasLabels := g.(NodeLabeler[N])
	styler, hasStyles := g.(NodeStyler[N])
	colorer, hasColors := g.(NodeColorer[N])
	shaper, hasShapes := g.(NodeShaper[N])
	attrer, hasAttrs := g.(NodeAttrer[N])

	for _, n := range g.Nodes() {
		id := g.NodeID(n)
		ew.printf("    %s", EscapeID(id))

		if !opts.NoNodeLabels {
			label := Label(id)
			if hasLabels {
				label = labeler.NodeLabel(n)
			}
			ew.printf("[label=%s]", label.Quoted())
		}
		if hasStyles && !opts.NoNodeStyles {
			if s := styler.NodeStyle(n); s != StyleNone {
				ew.printf("[style=%q]", s)
			}
		}
		if hasColors && !opts.NoNodeColors {
			if c := colorer.NodeColor(n); !c.isZero() {
				ew.printf("[color=%s]", c.Quoted())
			}
		}
		if hasShapes {
			if s := shaper.NodeShape(n); !s.isZero() {
				ew.printf("[shape=%s]", s.Quoted())
			}
		}
		if hasAttrs {
			attrs := attrer.NodeAttrs(n)
			for _, k := range slices.Sorted(maps.Keys(attrs)) {
				ew.printf("[%s=%s]", k, attrs[k])
			}
		}

		ew.printf(";\n")
	}
}

func renderEdges[N, E any](ew *errWriter, g Graph[N, E], kind Kind, opts Options) {
	labeler, hasLabels := g.(EdgeLabeler[E])
	styler, hasStyles := g.(EdgeStyler[E])
	colorer, hasColors := g.(EdgeColorer[E])
	attrer, hasAttrs := g.(EdgeAttrer[E])
	arrower, hasArrows := g.(EdgeArrower[E])
	porter, hasPorts := g.(EdgePorter[E])

	for _, e := range g.Edges() {
		var start, end Port
		if hasPorts {
			start, end = porter.EdgeStartPort(e), porter.EdgeEndPort(e)
		}

		ew.printf("    %s%s %s %s%s",
			EscapeID(g.NodeID(g.Source(e))), portSuffix(start),
			kind.EdgeOp(),
			EscapeID(g.NodeID(g.Target(e))), portSuffix(end))

		if !opts.NoEdgeLabels {
			label := Label("")
			if hasLabels {
				label = labeler.EdgeLabel(e)
			}
			ew.printf("[label=%s]", label.Quoted())
		}
		if hasStyles && !opts.NoEdgeStyles {
			if s := styler.EdgeStyle(e); s != StyleNone {
				ew.printf("[style=%q]", s)
			}
		}
		if hasColors && !opts.NoEdgeColors {
			if c := colorer.EdgeColor(e); !c.isZero() {
				ew.printf("[color=%s]", c.Quoted())
			}
		}
		if hasArrows && !opts.NoArrows {
			renderArrows(ew, arrower.EdgeStartArrow(e), arrower.EdgeEndArrow(e))
		}
		if hasAttrs {
			attrs := attrer.EdgeAttrs(e)
			for _, k := range slices.Sorted(maps.Keys(attrs)) {
				ew.printf("[%s=%s]", k, attrs[k])
			}
		}

		ew.printf(";\n")
	}
}

// renderArrows emits the arrowhead/arrowtail block. A customized tail
// forces dir="both" so Graphviz draws it at all.
func renderArrows(ew *errWriter, start, end Arrow) {
	if start.IsDefault() && end.IsDefault() {
		return
	}
	ew.printf("[")
	if !end.IsDefault() {
		ew.printf("arrowhead=%q", end.DotString())
		if !start.IsDefault() {
			ew.printf(" ")
		}
	}
	if !start.IsDefault() {
		ew.printf(`dir="both" arrowtail=%q`, start.DotString())
	}
	ew.printf("]")
}

func portSuffix(p Port) string {
	if p.IsZero() {
		return ""
	}
	var b strings.Builder
	if p.ID != "" {
		b.WriteByte(':')
		b.WriteString(EscapeID(p.ID))
	}
	if p.Compass != CompassNone {
		b.WriteByte(':')
		b.WriteString(p.Compass.String())
	}
	return b.String()
}

// errWriter remembers the first write error and turns every subsequent
// write into a no-op, so the render loop stays free of error plumbing and
// the sink error reaches the caller unwrapped.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
