package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dotwalk/pkg/dot"
	"github.com/matzehuels/dotwalk/pkg/graphio"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeTheme(t, `
fontname = "Helvetica"
dark = true

[node]
shape = "box"
style = "filled"
color = "lightsteelblue"

[edge]
style = "dashed"
`)

	theme, err := loadTheme(path)
	if err != nil {
		t.Fatalf("loadTheme() error = %v", err)
	}
	if theme.FontName != "Helvetica" || !theme.Dark {
		t.Errorf("theme = %+v, want Helvetica / dark", theme)
	}
	if theme.Node.Shape != "box" || theme.Node.Style != "filled" {
		t.Errorf("node theme = %+v", theme.Node)
	}
	if theme.Edge.Style != "dashed" {
		t.Errorf("edge theme = %+v", theme.Edge)
	}
}

func TestLoadTheme_InvalidStyle(t *testing.T) {
	path := writeTheme(t, `
[node]
style = "wonky"
`)
	if _, err := loadTheme(path); err == nil {
		t.Error("loadTheme() expected error for unknown style, got nil")
	}
}

func TestLoadTheme_Missing(t *testing.T) {
	if _, err := loadTheme(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadTheme() expected error for missing file, got nil")
	}
}

func TestThemeApply(t *testing.T) {
	theme := &Theme{
		FontName: "Helvetica",
		Dark:     true,
		Node:     nodeTheme{Shape: "box", Style: "filled", Color: "white"},
		Edge:     edgeTheme{Style: "dashed", Color: "grey"},
	}
	doc := &graphio.Document{
		Nodes: []graphio.Node{
			{ID: "a", Shape: "ellipse"},
			{ID: "b"},
		},
		Edges: []graphio.Edge{
			{From: "a", To: "b", Color: "red"},
		},
	}

	opts := dot.Options{}
	theme.apply(doc, &opts)

	if opts.FontName != "Helvetica" || !opts.DarkTheme {
		t.Errorf("opts = %+v, want theme font and dark", opts)
	}
	// Explicit document values win over theme defaults.
	if doc.Nodes[0].Shape != "ellipse" {
		t.Errorf("Nodes[0].Shape = %q, want %q", doc.Nodes[0].Shape, "ellipse")
	}
	if doc.Nodes[1].Shape != "box" || doc.Nodes[1].Style != "filled" {
		t.Errorf("Nodes[1] = %+v, want theme defaults filled in", doc.Nodes[1])
	}
	if doc.Edges[0].Color != "red" || doc.Edges[0].Style != "dashed" {
		t.Errorf("Edges[0] = %+v, want explicit color kept and theme style", doc.Edges[0])
	}
}

func TestThemeApply_FlagWins(t *testing.T) {
	theme := &Theme{FontName: "Helvetica"}
	opts := dot.Options{FontName: "Courier"}

	theme.apply(&graphio.Document{}, &opts)

	if opts.FontName != "Courier" {
		t.Errorf("FontName = %q, want flag value kept", opts.FontName)
	}
}
