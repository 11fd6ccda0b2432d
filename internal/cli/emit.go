package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/pkg/dot"
	"github.com/matzehuels/dotwalk/pkg/graphio"
)

// emitOpts holds the command-line flags for the emit command.
type emitOpts struct {
	output string // output file path; stdout when empty
	theme  string // TOML theme file path

	noNodeLabels bool
	noEdgeLabels bool
	noNodeStyles bool
	noNodeColors bool
	noEdgeStyles bool
	noEdgeColors bool
	noArrows     bool
	font         string
	dark         bool
}

// renderOptions converts the flag values into render options. Theme settings
// are folded in afterwards and never override an explicit flag.
func (o emitOpts) renderOptions() dot.Options {
	return dot.Options{
		NoNodeLabels: o.noNodeLabels,
		NoEdgeLabels: o.noEdgeLabels,
		NoNodeStyles: o.noNodeStyles,
		NoNodeColors: o.noNodeColors,
		NoEdgeStyles: o.noEdgeStyles,
		NoEdgeColors: o.noEdgeColors,
		NoArrows:     o.noArrows,
		FontName:     o.font,
		DarkTheme:    o.dark,
	}
}

// newEmitCmd creates the emit command for writing a graph document as DOT.
func newEmitCmd() *cobra.Command {
	var opts emitOpts

	cmd := &cobra.Command{
		Use:   "emit [file]",
		Short: "Emit a graph document as DOT text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file with styling defaults")
	cmd.Flags().BoolVar(&opts.noNodeLabels, "no-node-labels", false, "omit node labels")
	cmd.Flags().BoolVar(&opts.noEdgeLabels, "no-edge-labels", false, "omit edge labels")
	cmd.Flags().BoolVar(&opts.noNodeStyles, "no-node-styles", false, "omit node styles")
	cmd.Flags().BoolVar(&opts.noNodeColors, "no-node-colors", false, "omit node colors")
	cmd.Flags().BoolVar(&opts.noEdgeStyles, "no-edge-styles", false, "omit edge styles")
	cmd.Flags().BoolVar(&opts.noEdgeColors, "no-edge-colors", false, "omit edge colors")
	cmd.Flags().BoolVar(&opts.noArrows, "no-arrows", false, "omit custom arrowheads")
	cmd.Flags().StringVar(&opts.font, "font", "", "font name for the whole graph")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "render white-on-black")

	return cmd
}

func runEmit(ctx context.Context, path string, opts *emitOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, ropts, err := loadDocument(path, opts.theme, opts.renderOptions())
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d nodes and %d edges from %s", len(doc.Nodes), len(doc.Edges), path)

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.output, err)
		}
		defer f.Close()
		out = f
	}

	if err := doc.Render(out, ropts); err != nil {
		return fmt.Errorf("emit %s: %w", doc.Name, err)
	}
	prog.done(fmt.Sprintf("Emitted %q (%d nodes, %d edges)", doc.Name, len(doc.Nodes), len(doc.Edges)))
	return nil
}

// loadDocument reads a graph document and, when themePath is set, folds the
// theme's defaults into the document and the render options.
func loadDocument(path, themePath string, ropts dot.Options) (*graphio.Document, dot.Options, error) {
	doc, err := graphio.ReadFile(path)
	if err != nil {
		return nil, ropts, err
	}
	if themePath != "" {
		theme, err := loadTheme(themePath)
		if err != nil {
			return nil, ropts, err
		}
		theme.apply(doc, &ropts)
	}
	return doc, ropts, nil
}
