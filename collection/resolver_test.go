package collection

import "testing"

func TestPathResolverNameForTopLevelFile(t *testing.T) {
	r := newPathResolver("/root/helper.m", entryFile, nil)
	if got := r.name(); got != "helper" {
		t.Errorf("name() = %q, want %q", got, "helper")
	}
}

func TestPathResolverNameForClassFolder(t *testing.T) {
	r := newPathResolver("/root/@Widget", entryClassFolder, nil)
	if got := r.name(); got != "Widget" {
		t.Errorf("name() = %q, want %q", got, "Widget")
	}
}

func TestPathResolverNameForFileInsideNamespace(t *testing.T) {
	r := newPathResolver("/root/+pkg/helper.m", entryFile, nil)
	if got := r.name(); got != "pkg.helper" {
		t.Errorf("name() = %q, want %q", got, "pkg.helper")
	}
}

func TestPathResolverNameForNestedNamespaces(t *testing.T) {
	r := newPathResolver("/root/+outer/+inner/Widget.m", entryFile, nil)
	if got := r.name(); got != "outer.inner.Widget" {
		t.Errorf("name() = %q, want %q", got, "outer.inner.Widget")
	}
}

func TestPathResolverNameForNamespaceItself(t *testing.T) {
	r := newPathResolver("/root/+outer/+inner", entryNamespace, nil)
	if got := r.name(); got != "+outer.inner" {
		t.Errorf("name() = %q, want %q", got, "+outer.inner")
	}
}

func TestPathResolverNameForClassFolderInsideNamespace(t *testing.T) {
	r := newPathResolver("/root/+pkg/@Widget", entryClassFolder, nil)
	if got := r.name(); got != "pkg.Widget" {
		t.Errorf("name() = %q, want %q", got, "pkg.Widget")
	}
}

func TestPathResolverIsInNamespace(t *testing.T) {
	inside := newPathResolver("/root/+pkg/helper.m", entryFile, nil)
	if !inside.isInNamespace() {
		t.Error("expected file directly under +pkg to report isInNamespace")
	}

	outside := newPathResolver("/root/helper.m", entryFile, nil)
	if outside.isInNamespace() {
		t.Error("expected file outside any namespace to report !isInNamespace")
	}
}
