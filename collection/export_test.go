package collection

import (
	"strings"
	"testing"

	"github.com/go-malt/malt/matlab"
)

func TestExporterEmitIncludesNestedMembers(t *testing.T) {
	folder := matlab.NewFolder("mypkg")
	fn := matlab.NewFunction("helper", "helper.m", "Helper does a thing.\nmore detail", 1, 3)
	folder.Members().Set(fn.Name(), fn)

	out, err := NewExporter().Emit("mypkg", folder)
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "mypkg (folder)") {
		t.Errorf("expected root line, got:\n%s", text)
	}
	if !strings.Contains(text, "  helper (function) - Helper does a thing.") {
		t.Errorf("expected indented child line with first docstring line only, got:\n%s", text)
	}
	if strings.Contains(text, "more detail") {
		t.Errorf("expected only the first docstring line, got:\n%s", text)
	}
}

func TestExporterEmitRespectsMaxDepth(t *testing.T) {
	root := matlab.NewFolder("root")
	child := matlab.NewFolder("child")
	grandchild := matlab.NewFunction("leaf", "leaf.m", "", 1, 1)
	child.Members().Set(grandchild.Name(), grandchild)
	root.Members().Set(child.Name(), child)

	e := &Exporter{MaxDepth: 1}
	out, err := e.Emit("root", root)
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "child (folder)") {
		t.Errorf("expected first-level child, got:\n%s", text)
	}
	if strings.Contains(text, "leaf") {
		t.Errorf("expected grandchild to be cut off by MaxDepth, got:\n%s", text)
	}
}
