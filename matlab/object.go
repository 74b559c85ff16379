package matlab

import (
	"strings"
)

// Member is satisfied by every concrete entity kind (Folder, Namespace,
// Class, Function, Script, Property, Enumeration) and by Alias, which
// implements it by lazily forwarding to whatever it resolves to. Code that
// walks the tree (parent chains, member maps, lookups) works against this
// interface rather than any one concrete type, the same role the Python
// original's duck typing played.
type Member interface {
	Name() string
	Kind() Kind
	Lineno() int
	Endlineno() int
	Docstring() string
	HasDocstring() bool
	Parent() Member
	SetParent(Member)
	Members() *Members
	AllMembers() []Member
	IsPublic() bool
	CanonicalPath() string
	FilePath() (string, error)
	Resolve(name string) (Member, error)
	IsHidden() bool
}

// Object is the common base embedded by every non-Alias entity kind. It
// mirrors the teacher's practice of a shared struct (inspector/graph/types.go:
// Type) carrying the fields every construct needs, plus the Python
// original's Object base (objects.py) for the domain-specific behavior:
// canonical dotted paths, scope-chain name resolution, and docstring
// presence.
type Object struct {
	name       string
	kind       Kind
	lineno     int
	endlineno  int
	docstring  string
	parent     Member
	members    *Members
	attributes map[string]struct{}
	aliases    []*Alias
	public     bool
	filepath   string

	lines  LinesProvider
	lookup MemberLookup
}

// NewObject constructs the common base for a concrete entity. The filepath
// is set separately through SetFilepath and may stay empty for objects
// whose file is only discovered through a parent.
func NewObject(kind Kind, name string, lineno, endlineno int, docstring string) Object {
	return Object{
		kind:       kind,
		name:       name,
		lineno:     lineno,
		endlineno:  endlineno,
		docstring:  docstring,
		members:    NewMembers(),
		attributes: map[string]struct{}{},
		public:     !strings.HasPrefix(name, "_"),
	}
}

func (o *Object) Name() string      { return o.name }
func (o *Object) Kind() Kind        { return o.kind }
func (o *Object) Lineno() int       { return o.lineno }
func (o *Object) Endlineno() int    { return o.endlineno }
func (o *Object) Docstring() string { return o.docstring }
func (o *Object) HasDocstring() bool {
	return strings.TrimSpace(o.docstring) != ""
}

// SetDocstring overwrites this object's docstring — used by the parser to
// apply a header-comment fallback when the construct itself had none.
func (o *Object) SetDocstring(s string) { o.docstring = s }
func (o *Object) Parent() Member       { return o.parent }
func (o *Object) SetParent(p Member)   { o.parent = p }
func (o *Object) Members() *Members    { return o.members }
func (o *Object) IsPublic() bool       { return o.public }
func (o *Object) SetPublic(pub bool)   { o.public = pub }
func (o *Object) SetFilepath(p string) { o.filepath = p }

// SetProviders wires the lines/lookup back-references; called once by
// whatever constructs the object (normally collection.PathResolver).
func (o *Object) SetProviders(lines LinesProvider, lookup MemberLookup) {
	o.lines = lines
	o.lookup = lookup
}

func (o *Object) Lines() LinesProvider  { return o.lines }
func (o *Object) Lookup() MemberLookup  { return o.lookup }

// SetAttribute records a MATLAB class/property/function attribute such as
// "Abstract" or "Access=protected".
func (o *Object) SetAttribute(a string) { o.attributes[a] = struct{}{} }

func (o *Object) HasAttribute(a string) bool {
	_, ok := o.attributes[a]
	return ok
}

func (o *Object) AttributeSet() map[string]struct{} { return o.attributes }

// AddAlias registers an Alias that points at this object, mirroring the
// Python original's Alias._update_target_aliases bookkeeping.
func (o *Object) AddAlias(a *Alias) { o.aliases = append(o.aliases, a) }

// Aliases returns every Alias currently pointing at this object.
func (o *Object) Aliases() []*Alias { return o.aliases }

// AllMembers returns declared members in insertion order. Class overrides
// this to additionally fold in inherited members (own members win).
func (o *Object) AllMembers() []Member { return o.members.Slice() }

// IsNamespace, IsFolder, IsClass, IsFunction, IsScript, IsProperty,
// IsEnumeration report whether this object's Kind matches, the Go analogue
// of the Python original's is_kind-derived boolean properties.
func (o *Object) IsNamespace() bool   { return o.kind == KindNamespace }
func (o *Object) IsFolder() bool      { return o.kind == KindFolder }
func (o *Object) IsClass() bool       { return o.kind == KindClass }
func (o *Object) IsFunction() bool    { return o.kind == KindFunction }
func (o *Object) IsScript() bool      { return o.kind == KindScript }
func (o *Object) IsProperty() bool    { return o.kind == KindProperty }
func (o *Object) IsEnumeration() bool { return o.kind == KindEnumeration }

// Namespace walks the parent chain and returns the nearest enclosing
// Namespace, or nil if the object is not nested in one.
func (o *Object) Namespace() Member {
	for p := o.parent; p != nil; p = p.Parent() {
		if p.Kind() == KindNamespace {
			return p
		}
	}
	return nil
}

// CanonicalPath dot-joins the name of every ancestor down to (but not
// including) the nearest Folder, matching objects.py: Object.canonical_path.
func (o *Object) CanonicalPath() string {
	parts := []string{o.name}
	for p := o.parent; p != nil && p.Kind() != KindFolder; p = p.Parent() {
		parts = append([]string{p.Name()}, parts...)
	}
	return strings.Join(parts, ".")
}

// FilePath returns this object's backing file, walking up the parent chain
// if the object itself (e.g. a Property or Function) has none of its own.
func (o *Object) FilePath() (string, error) {
	if o.filepath != "" {
		return o.filepath, nil
	}
	for p := o.parent; p != nil; p = p.Parent() {
		if fp, err := p.FilePath(); err == nil && fp != "" {
			return fp, nil
		}
	}
	return "", &FilePathError{Name: o.name}
}

// Source returns the dedented, newline-joined source text backing this
// object, read through the LinesProvider discovered from the nearest
// ancestor that has one.
func (o *Object) Source() (string, error) {
	lines, err := o.sourceLines()
	if err != nil {
		return "", err
	}
	return strings.Join(dedentLines(lines), "\n"), nil
}

type linesCarrier interface {
	Lines() LinesProvider
}

func (o *Object) sourceLines() ([]string, error) {
	lp := o.lines
	for p := o.parent; lp == nil && p != nil; p = p.Parent() {
		if lc, ok := p.(linesCarrier); ok {
			lp = lc.Lines()
		}
	}
	if lp == nil {
		return nil, &FilePathError{Name: o.name}
	}
	filepath, err := o.FilePath()
	if err != nil {
		return nil, err
	}
	all, err := lp.Lines(filepath)
	if err != nil {
		return nil, err
	}
	if o.kind == KindNamespace {
		return all, nil
	}
	start := o.lineno - 1
	end := o.endlineno
	if start < 0 {
		start = 0
	}
	if end > len(all) {
		end = len(all)
	}
	if start >= end {
		return nil, nil
	}
	return all[start:end], nil
}

// IsInternal reports whether this object's filepath runs through a
// "+internal" namespace segment, MATLAB's convention for implementation
// detail that tooling should treat as hidden.
func (o *Object) IsInternal() bool {
	fp, err := o.FilePath()
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepathToSlash(fp), "/") {
		if part == "+internal" {
			return true
		}
	}
	return false
}

// IsHidden reports whether this object should be treated as implementation
// detail: internal-namespace membership, by default. Function and Property
// override this to add their own Hidden attribute.
func (o *Object) IsHidden() bool { return o.IsInternal() }

// Resolve looks up name in this object's own members, then walks outward
// through enclosing namespaces/folders, raising NameResolutionError if the
// name cannot be found anywhere in scope. Mirrors objects.py: Object.resolve.
func (o *Object) Resolve(name string) (Member, error) {
	if v, ok := o.members.Get(name); ok {
		return v, nil
	}
	if o.parent == nil {
		return nil, &NameResolutionError{Name: name}
	}
	switch o.parent.Kind() {
	case KindNamespace, KindFolder:
		return o.parent.Resolve(name)
	default:
		return nil, &NameResolutionError{Name: name}
	}
}

// FilterMembers returns every declared-and-inherited member for which keep
// returns true, preserving AllMembers order.
func FilterMembers(obj Member, keep func(Member) bool) []Member {
	var out []Member
	for _, m := range obj.AllMembers() {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func byKind(obj Member, k Kind) []Member {
	return FilterMembers(obj, func(m Member) bool { return m.Kind() == k })
}

// Folders, Namespaces, Scripts, Classes, Functions, Properties return the
// subset of obj's members (declared + inherited) of the matching Kind, the
// Go equivalent of mixins.py: ObjectAliasMixin's derived view properties.
func Folders(obj Member) []Member    { return byKind(obj, KindFolder) }
func Namespaces(obj Member) []Member { return byKind(obj, KindNamespace) }
func Scripts(obj Member) []Member    { return byKind(obj, KindScript) }
func Classes(obj Member) []Member    { return byKind(obj, KindClass) }
func Functions(obj Member) []Member  { return byKind(obj, KindFunction) }
func Properties(obj Member) []Member { return byKind(obj, KindProperty) }

func dedentLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := len(l) - len(strings.TrimLeft(l, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= minIndent {
			out[i] = l[minIndent:]
		} else {
			out[i] = strings.TrimLeft(l, " \t")
		}
	}
	return out
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
