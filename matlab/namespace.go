package matlab

// Namespace is a `+pkg` folder. Its members are the functions, classes and
// sub-namespaces found directly inside it, and its Path is its dot-joined
// CanonicalPath with a leading "+", matching MATLAB's own +pkg.Class
// addressing and objects.py: Namespace.path.
type Namespace struct {
	Object
}

// NewNamespace constructs a Namespace entity for the directory "+name".
func NewNamespace(name string) *Namespace {
	o := NewObject(KindNamespace, name, 0, 0, "")
	return &Namespace{Object: o}
}

// IsSubnamespace reports whether this namespace is nested inside another
// namespace rather than sitting directly on a path root.
func (n *Namespace) IsSubnamespace() bool {
	return n.Parent() != nil && n.Parent().Kind() == KindNamespace
}

// Path returns the "+"-prefixed canonical path, e.g. "+outer.inner".
func (n *Namespace) Path() string {
	return "+" + n.CanonicalPath()
}
