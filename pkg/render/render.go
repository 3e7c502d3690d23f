// Package render turns DOT source into image files using Graphviz.
//
// Rendering runs in-process via [github.com/goccy/go-graphviz]; no system
// Graphviz installation is required. Layout and drawing are entirely the
// engine's business, this package only requests formats and writes files.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/google/renameio/v2"
)

// ErrRender is returned when the Graphviz engine fails to parse or render
// the graph. All render errors are fatal; there is no partial output.
var ErrRender = errors.New("graphviz render failed")

// Format is an output image encoding.
type Format string

const (
	// PNG is the raster output format.
	PNG Format = "png"
	// SVG is the vector output format.
	SVG Format = "svg"
)

// Formats lists the encodings written by [Files], in write order.
var Formats = []Format{PNG, SVG}

// Image renders DOT source to a single image format and returns the bytes.
func Image(ctx context.Context, dot string, format Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: init engine: %v", ErrRender, err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("%w: parse DOT: %v", ErrRender, err)
	}
	defer g.Close()

	var engineFormat graphviz.Format
	switch format {
	case PNG:
		engineFormat = graphviz.PNG
	case SVG:
		engineFormat = graphviz.SVG
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrRender, format)
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, engineFormat, &buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, format, err)
	}
	return buf.Bytes(), nil
}

// Files renders DOT source to base+".png" and base+".svg". Each file is
// written atomically, so a render failure never leaves a truncated image
// behind. No intermediate artifacts are kept on disk.
func Files(ctx context.Context, dot, base string) error {
	for _, f := range Formats {
		data, err := Image(ctx, dot, f)
		if err != nil {
			return err
		}
		path := fmt.Sprintf("%s.%s", base, f)
		if err := renameio.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
