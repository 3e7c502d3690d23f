package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhartweg/mindweave/pkg/config"
	"github.com/jhartweg/mindweave/pkg/document"
	"github.com/jhartweg/mindweave/pkg/mindmap"
	"github.com/jhartweg/mindweave/pkg/render"
)

const (
	// defaultInput is the document the tool reads when -i is not given.
	defaultInput = "mindmap.yaml"
	// defaultOutput is the base name of the rendered image files.
	defaultOutput = "mindmap_output"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input      string // path to the YAML outline
	output     string // base path for the .png and .svg outputs
	configPath string // explicit config file, empty for the default lookup
}

// renderCommand creates the render command, the tool's main entry point.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		input:  defaultInput,
		output: defaultOutput,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a YAML outline to PNG and SVG mind maps",
		Long: `Render a YAML outline to PNG and SVG mind maps.

The input document must be a mapping at the top level. Each top-level key
becomes a branch with its own palette color; nested mappings fade that color
step by step toward white. Both a raster (PNG) and a vector (SVG) image are
written next to each other under the output base name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", opts.input, "input YAML outline")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base name (writes <base>.png and <base>.svg)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath+" if present)")

	return cmd
}

// runRender executes the whole pipeline: load config and document, build the
// graph, render both image formats.
func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, dot, err := buildDOT(ctx, opts.input, opts.configPath)
	if err != nil {
		return err
	}

	logger.Debugf("Generated DOT: %d bytes", len(dot))
	if err := render.Files(ctx, dot, opts.output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", opts.input))

	printSuccess("Mind map rendered")
	printStats(g.NodeCount(), g.EdgeCount())
	for _, f := range render.Formats {
		printFile(fmt.Sprintf("%s.%s", opts.output, f))
	}
	return nil
}

// buildDOT runs the shared front half of the pipeline: config, document,
// graph, DOT source. Both render and dot commands go through it.
func buildDOT(ctx context.Context, input, configPath string) (*mindmap.Graph, string, error) {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, "", err
	}

	doc, err := document.Load(input)
	if err != nil {
		return nil, "", err
	}
	logger.Debugf("Loaded %s: %d top-level branches", input, len(doc.Pairs))

	g, err := mindmap.Build(doc, cfg.Options())
	if err != nil {
		return nil, "", err
	}
	logger.Infof("Built graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	return g, mindmap.ToDOT(g), nil
}

// loadConfig resolves the effective configuration. An explicit path must
// exist; the default path is optional.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}
