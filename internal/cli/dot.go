package cli

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
)

// dotCommand creates the dot command, which emits Graphviz DOT source
// instead of rendered images. Useful for piping into external Graphviz
// tooling or inspecting what the renderer is given.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		input      string
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the mind map as Graphviz DOT source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			_, dot, err := buildDOT(ctx, input, configPath)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(os.Stdout, dot)
				return nil
			}
			if err := renameio.WriteFile(output, []byte(dot), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Wrote DOT source")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", defaultInput, "input YAML outline")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+appName+".toml if present)")

	return cmd
}
