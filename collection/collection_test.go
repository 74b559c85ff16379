package collection

import "testing"

func TestIsSubdirectory(t *testing.T) {
	cases := []struct {
		child, parent string
		want          bool
	}{
		{"/root/+pkg/@Class", "/root", true},
		{"/root/+pkg", "/root/+pkg", false},
		{"/rootother", "/root", false},
		{"/root/a/b", "/root/a", true},
	}
	for _, c := range cases {
		if got := isSubdirectory(c.child, c.parent); got != c.want {
			t.Errorf("isSubdirectory(%q, %q) = %v, want %v", c.child, c.parent, got, c.want)
		}
	}
}

func TestIdentifierLeaf(t *testing.T) {
	cases := map[string]string{
		"pkg.sub.Class": "Class",
		"Class":         "Class",
		"a.b":           "b",
	}
	for id, want := range cases {
		if got := identifierLeaf(id); got != want {
			t.Errorf("identifierLeaf(%q) = %q, want %q", id, got, want)
		}
	}
}
