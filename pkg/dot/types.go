package dot

import (
	"fmt"
	"strings"
)

// Kind determines whether the graph is emitted with the digraph or graph
// keyword, which in turn selects the edge operator.
type Kind int

const (
	// Directed graphs use "digraph" and "->".
	Directed Kind = iota
	// Undirected graphs use "graph" and "--".
	Undirected
)

// Keyword returns the declaration keyword introducing the graph.
func (k Kind) Keyword() string {
	if k == Undirected {
		return "graph"
	}
	return "digraph"
}

// EdgeOp returns the edge operator for this graph kind.
func (k Kind) EdgeOp() string {
	if k == Undirected {
		return "--"
	}
	return "->"
}

// ParseKind converts a graph declaration keyword ("digraph" or "graph",
// case insensitive) to a Kind. The empty string parses to Directed.
func ParseKind(s string) (Kind, error) {
	switch {
	case s == "" || strings.EqualFold(s, "digraph"):
		return Directed, nil
	case strings.EqualFold(s, "graph"):
		return Undirected, nil
	}
	return Directed, fmt.Errorf("unknown graph kind %q", s)
}

// RankDir is the direction Graphviz lays out ranks in a directed graph.
// See https://graphviz.org/docs/attr-types/rankdir/ for descriptions.
type RankDir int

const (
	// RankDirNone leaves the rankdir attribute unset.
	RankDirNone RankDir = iota
	// RankTB lays ranks out top to bottom (the Graphviz default).
	RankTB
	// RankLR lays ranks out left to right.
	RankLR
	// RankBT lays ranks out bottom to top.
	RankBT
	// RankRL lays ranks out right to left.
	RankRL
)

var rankDirNames = map[RankDir]string{
	RankTB: "TB",
	RankLR: "LR",
	RankBT: "BT",
	RankRL: "RL",
}

// String returns the Graphviz rankdir value, or "" for RankDirNone.
func (d RankDir) String() string { return rankDirNames[d] }

// ParseRankDir converts a rankdir value ("TB", "LR", "BT", "RL", case
// insensitive) to a RankDir. The empty string parses to RankDirNone.
func ParseRankDir(s string) (RankDir, error) {
	if s == "" {
		return RankDirNone, nil
	}
	for d, name := range rankDirNames {
		if strings.EqualFold(s, name) {
			return d, nil
		}
	}
	return RankDirNone, fmt.Errorf("unknown rank direction %q", s)
}

// Style is a node, edge, or cluster draw style.
// See https://www.graphviz.org/docs/attr-types/style/ for descriptions;
// note that some styles are not valid for edges.
type Style int

const (
	StyleNone Style = iota
	StyleSolid
	StyleDashed
	StyleDotted
	StyleBold
	StyleRounded
	StyleDiagonals
	StyleFilled
	StyleStriped
	StyleWedged
)

var styleNames = map[Style]string{
	StyleSolid:     "solid",
	StyleDashed:    "dashed",
	StyleDotted:    "dotted",
	StyleBold:      "bold",
	StyleRounded:   "rounded",
	StyleDiagonals: "diagonals",
	StyleFilled:    "filled",
	StyleStriped:   "striped",
	StyleWedged:    "wedged",
}

// String returns the Graphviz style name, or "" for StyleNone.
func (s Style) String() string { return styleNames[s] }

// ParseStyle converts a style name to a Style. The empty string parses to
// StyleNone.
func ParseStyle(name string) (Style, error) {
	if name == "" {
		return StyleNone, nil
	}
	for s, n := range styleNames {
		if strings.EqualFold(name, n) {
			return s, nil
		}
	}
	return StyleNone, fmt.Errorf("unknown style %q", name)
}

// ArrowShape is the base shape of one arrowhead vertex.
// See https://graphviz.org/doc/info/arrows.html for the shape catalog.
type ArrowShape int

const (
	// ArrowNone draws no arrowhead.
	ArrowNone ArrowShape = iota
	// ArrowNormal is the standard filled triangle.
	ArrowNormal
	// ArrowBox is a small square.
	ArrowBox
	// ArrowCrow is the three-branched crow's foot.
	ArrowCrow
	// ArrowCurve is an arc bending toward the node.
	ArrowCurve
	// ArrowICurve is an arc bending away from the node.
	ArrowICurve
	// ArrowDiamond is a rhombus.
	ArrowDiamond
	// ArrowDot is a circle.
	ArrowDot
	// ArrowInv is an inverted triangle.
	ArrowInv
	// ArrowTee is a perpendicular bar.
	ArrowTee
	// ArrowVee is an open V.
	ArrowVee
)

var arrowShapeNames = map[ArrowShape]string{
	ArrowNone:    "none",
	ArrowNormal:  "normal",
	ArrowBox:     "box",
	ArrowCrow:    "crow",
	ArrowCurve:   "curve",
	ArrowICurve:  "icurve",
	ArrowDiamond: "diamond",
	ArrowDot:     "dot",
	ArrowInv:     "inv",
	ArrowTee:     "tee",
	ArrowVee:     "vee",
}

// Fill determines whether an arrowhead shape is drawn filled or as an
// outline.
type Fill int

const (
	// FillSolid draws the shape filled (the default, no modifier letter).
	FillSolid Fill = iota
	// FillOpen draws only the outline ("o" modifier).
	FillOpen
)

// Side clips an arrowhead shape to one side of the edge line.
type Side int

const (
	// SideBoth leaves the shape unclipped (no modifier letter).
	SideBoth Side = iota
	// SideLeft keeps only the left half ("l" modifier).
	SideLeft
	// SideRight keeps only the right half ("r" modifier).
	SideRight
)

// ArrowVertex is a single arrowhead shape with its fill and clipping
// modifiers. The zero value renders as "none".
type ArrowVertex struct {
	Shape ArrowShape
	Fill  Fill
	Side  Side
}

// DotString renders the vertex in arrowType notation, e.g. "olbox" for an
// open, left-clipped box. Modifiers that a shape does not support are
// dropped: crow, curve, tee, and vee have no fill, dot has no side, and
// none takes neither.
func (v ArrowVertex) DotString() string {
	var b strings.Builder
	switch v.Shape {
	case ArrowBox, ArrowICurve, ArrowDiamond, ArrowInv, ArrowNormal:
		if v.Fill == FillOpen {
			b.WriteByte('o')
		}
		writeSide(&b, v.Side)
	case ArrowDot:
		if v.Fill == FillOpen {
			b.WriteByte('o')
		}
	case ArrowCrow, ArrowCurve, ArrowTee, ArrowVee:
		writeSide(&b, v.Side)
	}
	b.WriteString(arrowShapeNames[v.Shape])
	return b.String()
}

func writeSide(b *strings.Builder, s Side) {
	switch s {
	case SideLeft:
		b.WriteByte('l')
	case SideRight:
		b.WriteByte('r')
	}
}

// Arrow is the full decoration at one end of an edge: a sequence of up to
// four arrowhead vertices, innermost last. The zero value is the default
// arrow, which emits no attribute.
type Arrow []ArrowVertex

// IsDefault reports whether the arrow is the renderer default.
func (a Arrow) IsDefault() bool { return len(a) == 0 }

// DotString concatenates the vertices into one arrowType value.
func (a Arrow) DotString() string {
	var b strings.Builder
	for _, v := range a {
		b.WriteString(v.DotString())
	}
	return b.String()
}

// NoArrow returns an arrow that explicitly suppresses the arrowhead.
func NoArrow() Arrow { return Arrow{{Shape: ArrowNone}} }

// NormalArrow returns the standard filled triangle arrowhead.
func NormalArrow() Arrow { return Arrow{{Shape: ArrowNormal}} }

// CompassPoint anchors an edge endpoint to one side of its node.
// See https://graphviz.org/docs/attr-types/portPos/.
type CompassPoint int

const (
	// CompassNone leaves the endpoint unanchored.
	CompassNone CompassPoint = iota
	CompassN
	CompassNE
	CompassE
	CompassSE
	CompassS
	CompassSW
	CompassW
	CompassNW
	CompassC
)

var compassNames = map[CompassPoint]string{
	CompassN:  "n",
	CompassNE: "ne",
	CompassE:  "e",
	CompassSE: "se",
	CompassS:  "s",
	CompassSW: "sw",
	CompassW:  "w",
	CompassNW: "nw",
	CompassC:  "c",
}

// String returns the compass point name, or "" for CompassNone.
func (c CompassPoint) String() string { return compassNames[c] }

// Port attaches an edge endpoint to a named port and/or compass point of
// its node. The zero value attaches to the node itself.
type Port struct {
	ID      string
	Compass CompassPoint
}

// IsZero reports whether the port leaves the endpoint bare.
func (p Port) IsZero() bool { return p.ID == "" && p.Compass == CompassNone }
