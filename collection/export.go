package collection

import (
	"fmt"
	"strings"

	"github.com/go-malt/malt/matlab"
)

// Exporter renders a resolved matlab.Member tree as an indented outline,
// one member per line with its kind and declared members nested beneath.
// It mirrors the teacher's Emitter (inspector/golang/emitter.go), which
// walks a decl graph and renders each node's text; here the graph is the
// lazily-materialized entity tree and the rendered text is a doc outline
// rather than regenerated source.
type Exporter struct {
	// MaxDepth bounds recursion into nested members; zero means unlimited.
	MaxDepth int
}

// NewExporter returns an Exporter with no depth limit.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Emit renders name and m, followed by m's declared members indented
// beneath it, descending up to MaxDepth levels (0 = unlimited).
func (e *Exporter) Emit(name string, m matlab.Member) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("export: nil member %q", name)
	}
	b := &strings.Builder{}
	e.write(b, name, m, 0)
	return []byte(b.String()), nil
}

func (e *Exporter) write(b *strings.Builder, name string, m matlab.Member, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(fmt.Sprintf("%s (%s)", name, m.Kind()))
	if doc := firstLine(m.Docstring()); doc != "" {
		b.WriteString(" - ")
		b.WriteString(doc)
	}
	b.WriteString("\n")

	if e.MaxDepth > 0 && depth+1 > e.MaxDepth {
		return
	}
	for _, child := range m.AllMembers() {
		e.write(b, child.Name(), child, depth+1)
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
