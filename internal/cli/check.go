package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/pkg/graphio"
)

// newCheckCmd creates the check command for validating a graph document
// without emitting anything.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0])
		},
	}
}

func runCheck(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	doc, err := graphio.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Infof("%s is valid: %q with %d nodes and %d edges", path, doc.Name, len(doc.Nodes), len(doc.Edges))
	return nil
}
