package render

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDOT = `digraph G {
  "a" [label="A", style=filled, fillcolor="#ff6b6b"];
  "b" [label="B", style=filled, fillcolor="#ff9e9e"];
  "a" -> "b";
}
`

func TestImageSVG(t *testing.T) {
	data, err := Image(context.Background(), testDOT, SVG)
	if err != nil {
		t.Fatalf("Image(SVG): %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("SVG output missing <svg element")
	}
	if !strings.Contains(string(data), "#ff6b6b") {
		t.Error("SVG output missing node fill color")
	}
}

func TestImagePNG(t *testing.T) {
	data, err := Image(context.Background(), testDOT, PNG)
	if err != nil {
		t.Fatalf("Image(PNG): %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("PNG output missing magic header")
	}
}

func TestImageUnknownFormat(t *testing.T) {
	_, err := Image(context.Background(), testDOT, Format("gif"))
	if !errors.Is(err, ErrRender) {
		t.Errorf("unknown format: error = %v, want ErrRender", err)
	}
}

func TestImageBadDOT(t *testing.T) {
	_, err := Image(context.Background(), "this is not dot {{{", SVG)
	if !errors.Is(err, ErrRender) {
		t.Errorf("bad DOT: error = %v, want ErrRender", err)
	}
}

func TestFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "mindmap_output")

	if err := Files(context.Background(), testDOT, base); err != nil {
		t.Fatalf("Files: %v", err)
	}

	for _, f := range Formats {
		path := base + "." + string(f)
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected output %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestFilesBadDOTWritesNothing(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out")

	if err := Files(context.Background(), "nope {{{", base); err == nil {
		t.Fatal("Files with bad DOT should fail")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed render left artifacts: %v", entries)
	}
}
