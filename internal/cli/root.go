package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/pkg/buildinfo"
)

// Execute runs the dotwalk CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (emit, check,
// render), configures logging based on the --verbose flag, and executes the
// command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dotwalk",
		Short:        "dotwalk turns JSON graph documents into Graphviz DOT",
		Long:         `dotwalk is a CLI tool for emitting Graphviz DOT text from JSON graph documents and rendering them to SVG, PNG, or JPG images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEmitCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
