package ui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/kraitsura/folio/pkg/cssgen"
)

func TestStep_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	g := cssgen.NewBoxShadow()
	before := g.Declaration()
	step(g, "missing", 1)

	if g.Declaration() != before {
		t.Errorf("Expected declaration unchanged, got %q", g.Declaration())
	}
	if !strings.Contains(buf.String(), "playground: step failed") || !strings.Contains(buf.String(), "param=missing") {
		t.Errorf("Expected step failure logged, got %q", buf.String())
	}

	buf.Reset()
	step(g, "blur", 5)
	if g.Number("blur") != 20 {
		t.Errorf("Expected blur 20, got %d", g.Number("blur"))
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing logged on success, got %q", buf.String())
	}
}

func TestToViewer_DoublesRows(t *testing.T) {
	p := toViewer(7, 3)
	if p.X != 7 || p.Y != 6 {
		t.Errorf("Expected (7, 6), got (%g, %g)", p.X, p.Y)
	}
}
