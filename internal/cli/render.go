package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; derived from the input when empty
	format string // output format: "svg", "png", or "jpg"
	theme  string // TOML theme file path
	font   string
	dark   bool
}

// formats maps the --format flag values to Graphviz output formats.
var formats = map[string]graphviz.Format{
	"svg": graphviz.SVG,
	"png": graphviz.PNG,
	"jpg": graphviz.JPG,
}

// newRenderCmd creates the render command for rasterizing a graph document
// to an image via the embedded Graphviz engine.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph document to SVG, PNG, or JPG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := formats[opts.format]; !ok {
				return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'jpg')", opts.format)
			}
			return runRenderCmd(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, jpg")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file with styling defaults")
	cmd.Flags().StringVar(&opts.font, "font", "", "font name for the whole graph")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "render white-on-black")

	return cmd
}

func runRenderCmd(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, ropts, err := loadDocument(path, opts.theme, emitOpts{font: opts.font, dark: opts.dark}.renderOptions())
	if err != nil {
		return err
	}

	var dotText bytes.Buffer
	if err := doc.Render(&dotText, ropts); err != nil {
		return fmt.Errorf("emit %s: %w", doc.Name, err)
	}
	logger.Debugf("emitted %d bytes of DOT for %q", dotText.Len(), doc.Name)

	img, err := rasterize(ctx, dotText.Bytes(), formats[opts.format])
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = outputPath(path, opts.format)
	}
	if err := os.WriteFile(output, img, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Rendered %q to %s", doc.Name, output))
	return nil
}

// rasterize runs the embedded Graphviz engine over DOT text.
func rasterize(ctx context.Context, dotText []byte, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dotText)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// outputPath swaps the input file's extension for the output format's.
func outputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
