// Package graphio reads and writes the JSON graph document format consumed
// by the dotwalk CLI, and adapts loaded documents to the pkg/dot rendering
// contracts.
//
// A document looks like:
//
//	{
//	  "name": "deps",
//	  "rankdir": "LR",
//	  "nodes": [{"id": "app", "label": "Application", "shape": "box"}],
//	  "edges": [{"from": "app", "to": "lib", "label": "imports"}]
//	}
//
// All styling fields are optional. [Read] validates referential integrity
// (edges must name known nodes) and the enum-valued fields, so a document
// that loads cleanly always renders cleanly.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

var (
	// ErrMissingNodeID is returned by [Read] when a node entry has no id.
	ErrMissingNodeID = errors.New("node is missing an id")

	// ErrDuplicateNodeID is returned by [Read] when two node entries share
	// an id.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrUnknownEndpoint is returned by [Read] when an edge names a node
	// that does not appear in the node list.
	ErrUnknownEndpoint = errors.New("edge references an unknown node")
)

// Node is one vertex of a graph document. Only ID is required; Label falls
// back to the ID and the styling fields are omitted when empty.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Shape string `json:"shape,omitempty"`
	Color string `json:"color,omitempty"`
	Style string `json:"style,omitempty"`
}

// Edge is one directed connection between two nodes, referenced by id.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
	Style string `json:"style,omitempty"`
	Color string `json:"color,omitempty"`
}

// Document is a complete graph description. Kind is "digraph" (default) or
// "graph"; RankDir is one of "", "TB", "LR", "BT", "RL".
type Document struct {
	Name    string `json:"name,omitempty"`
	Kind    string `json:"kind,omitempty"`
	RankDir string `json:"rankdir,omitempty"`
	Nodes   []Node `json:"nodes"`
	Edges   []Edge `json:"edges,omitempty"`
}

// Read decodes a JSON graph document from r and validates it.
// Unnamed documents are given a generated identifier so the emitted graph
// always has one.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = "graph_" + uuid.NewString()[:8]
	}
	return &doc, nil
}

// ReadFile decodes and validates the JSON graph document at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes the document as indented JSON to w, suitable for reading
// back with [Read].
func Write(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes the document to a JSON file at path.
func WriteFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}

// Validate checks referential integrity and the enum-valued fields.
// It does not inspect identifier text: anything renders safely once escaped.
func (d *Document) Validate() error {
	if _, err := dot.ParseKind(d.Kind); err != nil {
		return err
	}
	if _, err := dot.ParseRankDir(d.RankDir); err != nil {
		return err
	}
	known := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d: %w", i, ErrMissingNodeID)
		}
		if known[n.ID] {
			return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNodeID)
		}
		known[n.ID] = true
		if _, err := dot.ParseStyle(n.Style); err != nil {
			return fmt.Errorf("node %q: %w", n.ID, err)
		}
	}
	for _, e := range d.Edges {
		if !known[e.From] {
			return fmt.Errorf("edge %s -> %s: %q: %w", e.From, e.To, e.From, ErrUnknownEndpoint)
		}
		if !known[e.To] {
			return fmt.Errorf("edge %s -> %s: %q: %w", e.From, e.To, e.To, ErrUnknownEndpoint)
		}
		if _, err := dot.ParseStyle(e.Style); err != nil {
			return fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
	}
	return nil
}

// Graph adapts the document to the pkg/dot contracts. The adapter reads
// through to the document; mutating the document between renders is fine,
// mutating it during one is not.
func (d *Document) Graph() *Graph {
	return &Graph{doc: d}
}

// Render writes the document as DOT to w.
func (d *Document) Render(w io.Writer, opts dot.Options) error {
	return dot.RenderOptions[Node, Edge](d.Graph(), w, opts)
}

// Graph implements the pkg/dot walk, label, and styling contracts on top of
// a [Document].
type Graph struct {
	doc *Document
}

func (g *Graph) GraphID() string { return g.doc.Name }
func (g *Graph) Nodes() []Node { return g.doc.Nodes }
func (g *Graph) Edges() []Edge { return g.doc.Edges }
func (g *Graph) NodeID(n Node) string { return n.ID }

// Source resolves an edge endpoint to a node value. Since rendering only
// needs the endpoint's identifier, no lookup into the node list is required.
func (g *Graph) Source(e Edge) Node { return Node{ID: e.From} }

// Target is the counterpart of [Graph.Source].
func (g *Graph) Target(e Edge) Node { return Node{ID: e.To} }

func (g *Graph) NodeLabel(n Node) dot.Text {
	if n.Label == "" {
		return dot.Label(n.ID)
	}
	return dot.Label(n.Label)
}

func (g *Graph) NodeShape(n Node) dot.Text { return dot.Label(n.Shape) }
func (g *Graph) NodeColor(n Node) dot.Text { return dot.Label(n.Color) }

func (g *Graph) NodeStyle(n Node) dot.Style {
	s, _ := dot.ParseStyle(n.Style)
	return s
}

func (g *Graph) EdgeLabel(e Edge) dot.Text { return dot.Label(e.Label) }
func (g *Graph) EdgeColor(e Edge) dot.Text { return dot.Label(e.Color) }

func (g *Graph) EdgeStyle(e Edge) dot.Style {
	s, _ := dot.ParseStyle(e.Style)
	return s
}

func (g *Graph) Kind() dot.Kind {
	k, _ := dot.ParseKind(g.doc.Kind)
	return k
}

func (g *Graph) RankDir() dot.RankDir {
	d, _ := dot.ParseRankDir(g.doc.RankDir)
	return d
}
