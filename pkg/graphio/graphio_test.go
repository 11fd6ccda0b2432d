package graphio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

const sampleJSON = `{
  "name": "deps",
  "rankdir": "LR",
  "nodes": [
    {"id": "app", "label": "Application", "shape": "box", "color": "steelblue", "style": "filled"},
    {"id": "lib"},
    {"id": "core"}
  ],
  "edges": [
    {"from": "app", "to": "lib", "label": "imports"},
    {"from": "lib", "to": "core", "style": "dashed", "color": "grey"}
  ]
}`

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.Name != "deps" {
		t.Errorf("Name = %q, want %q", doc.Name, "deps")
	}
	if len(doc.Nodes) != 3 || len(doc.Edges) != 2 {
		t.Errorf("got %d nodes / %d edges, want 3 / 2", len(doc.Nodes), len(doc.Edges))
	}
	if doc.Nodes[0].Label != "Application" {
		t.Errorf("Nodes[0].Label = %q, want %q", doc.Nodes[0].Label, "Application")
	}
}

func TestRead_GeneratesName(t *testing.T) {
	doc, err := Read(strings.NewReader(`{"nodes": [{"id": "a"}]}`))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !strings.HasPrefix(doc.Name, "graph_") {
		t.Errorf("Name = %q, want generated graph_ prefix", doc.Name)
	}
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			"missing node id",
			`{"nodes": [{"label": "x"}]}`,
			ErrMissingNodeID,
		},
		{
			"duplicate node id",
			`{"nodes": [{"id": "a"}, {"id": "a"}]}`,
			ErrDuplicateNodeID,
		},
		{
			"unknown edge source",
			`{"nodes": [{"id": "a"}], "edges": [{"from": "ghost", "to": "a"}]}`,
			ErrUnknownEndpoint,
		},
		{
			"unknown edge target",
			`{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "ghost"}]}`,
			ErrUnknownEndpoint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("Read() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRead_BadEnums(t *testing.T) {
	for name, in := range map[string]string{
		"bad kind":       `{"kind": "multigraph", "nodes": []}`,
		"bad rankdir":    `{"rankdir": "UP", "nodes": []}`,
		"bad node style": `{"nodes": [{"id": "a", "style": "wonky"}]}`,
		"bad edge style": `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "a", "style": "wonky"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(in)); err == nil {
				t.Error("Read() expected error, got nil")
			}
		})
	}
}

func TestRead_MalformedJSON(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); err == nil {
		t.Error("Read() expected decode error, got nil")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() after Write() error = %v", err)
	}

	if back.Name != doc.Name || len(back.Nodes) != len(doc.Nodes) || len(back.Edges) != len(doc.Edges) {
		t.Errorf("round trip changed document: %+v vs %+v", back, doc)
	}
	if back.Nodes[0] != doc.Nodes[0] {
		t.Errorf("round trip changed node: %+v vs %+v", back.Nodes[0], doc.Nodes[0])
	}
}

func TestDocumentRender(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf, dot.Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `digraph deps {
    rankdir="LR";
    app[label="Application"][style="filled"][color="steelblue"][shape="box"];
    lib[label="lib"];
    core[label="core"];
    app -> lib[label="imports"];
    lib -> core[label=""][style="dashed"][color="grey"];
}
`
	if got := buf.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDocumentRender_Undirected(t *testing.T) {
	doc := &Document{
		Name:  "net",
		Kind:  "graph",
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Edges: []Edge{{From: "a", To: "b"}},
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf, dot.Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "graph net {") {
		t.Errorf("Render() = %q, want undirected header", buf.String())
	}
	if !strings.Contains(buf.String(), "a -- b") {
		t.Errorf("Render() = %q, want undirected edge operator", buf.String())
	}
}

func TestGraph_EndpointsWithoutLookup(t *testing.T) {
	g := (&Document{
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Edges: []Edge{{From: "a", To: "b"}},
	}).Graph()

	e := g.Edges()[0]
	if id := g.NodeID(g.Source(e)); id != "a" {
		t.Errorf("Source id = %q, want %q", id, "a")
	}
	if id := g.NodeID(g.Target(e)); id != "b" {
		t.Errorf("Target id = %q, want %q", id, "b")
	}
}
