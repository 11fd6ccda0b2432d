package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotwalk/pkg/dot"
	"github.com/matzehuels/dotwalk/pkg/graphio"
)

// Theme is a reusable styling preset loaded from a TOML file. It supplies
// defaults for fields the graph document leaves blank; explicit document
// values always win.
//
// A theme file looks like:
//
//	fontname = "Helvetica"
//	dark = true
//
//	[node]
//	shape = "box"
//	style = "filled"
//	color = "lightsteelblue"
//
//	[edge]
//	style = "dashed"
//	color = "grey"
type Theme struct {
	FontName string    `toml:"fontname"`
	Dark     bool      `toml:"dark"`
	Node     nodeTheme `toml:"node"`
	Edge     edgeTheme `toml:"edge"`
}

type nodeTheme struct {
	Shape string `toml:"shape"`
	Style string `toml:"style"`
	Color string `toml:"color"`
}

type edgeTheme struct {
	Style string `toml:"style"`
	Color string `toml:"color"`
}

// loadTheme reads and validates a theme file. Styles must be names Graphviz
// understands; shapes and colors are passed through as-is.
func loadTheme(path string) (*Theme, error) {
	var t Theme
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	if _, err := dot.ParseStyle(t.Node.Style); err != nil {
		return nil, fmt.Errorf("theme %s: node: %w", path, err)
	}
	if _, err := dot.ParseStyle(t.Edge.Style); err != nil {
		return nil, fmt.Errorf("theme %s: edge: %w", path, err)
	}
	return &t, nil
}

// apply fills the document's blank styling fields with the theme's defaults
// and folds the theme's font and dark settings into the render options.
// Options already set by flags are left alone.
func (t *Theme) apply(d *graphio.Document, opts *dot.Options) {
	if opts.FontName == "" {
		opts.FontName = t.FontName
	}
	if t.Dark {
		opts.DarkTheme = true
	}

	for i := range d.Nodes {
		n := &d.Nodes[i]
		if n.Shape == "" {
			n.Shape = t.Node.Shape
		}
		if n.Style == "" {
			n.Style = t.Node.Style
		}
		if n.Color == "" {
			n.Color = t.Node.Color
		}
	}
	for i := range d.Edges {
		e := &d.Edges[i]
		if e.Style == "" {
			e.Style = t.Edge.Style
		}
		if e.Color == "" {
			e.Color = t.Edge.Color
		}
	}
}
