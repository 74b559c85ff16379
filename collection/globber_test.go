package collection

import "testing"

func TestHasFolderPrefix(t *testing.T) {
	cases := map[string]bool{
		"+pkg":     true,
		"@Class":   true,
		"plain":    false,
		"":         false,
		"Contents": false,
	}
	for name, want := range cases {
		if got := hasFolderPrefix(name); got != want {
			t.Errorf("hasFolderPrefix(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"Foo.m":   "Foo",
		"+pkg":    "+pkg",
		"a.b.c.m": "a.b.c",
		"noext":   "noext",
	}
	for name, want := range cases {
		if got := stem(name); got != want {
			t.Errorf("stem(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"a/b/c.m":    "c.m",
		"a\\b\\c.m":  "c.m",
		"justname.m": "justname.m",
	}
	for path, want := range cases {
		if got := baseName(path); got != want {
			t.Errorf("baseName(%q) = %q, want %q", path, got, want)
		}
	}
}
