package figure

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/san-kum/pipeflow/internal/pipe"
)

func smallScene(t *testing.T) *pipe.Scene {
	t.Helper()
	p := pipe.DefaultParams()
	p.LengthPoints, p.RadiusPoints = 40, 8
	s, err := pipe.Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return s
}

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 9*vg.Inch, 4*vg.Inch
	opts.DPI = 40
	return opts
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := New(smallScene(t), smallOptions()).WriteTo(&buf, "png"); err != nil {
		t.Fatalf("write png: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := New(smallScene(t), smallOptions()).WriteTo(&buf, "SVG"); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("output is not an SVG document")
	}
	for _, title := range []string{"Pipe with Pressure Flow", "Pipe with Velocity Field", "Pressure"} {
		if !strings.Contains(out, title) {
			t.Errorf("missing %q", title)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	f := New(smallScene(t), smallOptions())

	path := filepath.Join(dir, "out", "pipe.png")
	if err := f.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected non-empty file, stat err %v", err)
	}

	bad := filepath.Join(dir, "pipe.gif")
	if err := f.Save(bad); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Error("unsupported format should not create a file")
	}
}
