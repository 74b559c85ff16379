package matlab

import (
	"strings"

	"golang.org/x/sync/singleflight"
)

// Constructor lazily produces the Member an Alias points at — usually a
// closure over a collection.PathResolver that parses a file the first time
// it's needed. Mirrors the Python original's Alias accepting either a
// callable or an already-resolved target (objects.py: Alias.__init__).
type Constructor func() (Member, error)

// Alias stands in for an Object until something dereferences it. It is the
// Go translation of objects.py: Alias — same name/parent/target_path
// bookkeeping, same cyclic-target detection, same member re-rooting so that
// walking an alias's members still reports paths through the alias rather
// than through the target's own declaration site.
type Alias struct {
	name       string
	parent     Member
	public     bool
	inherited  bool
	deprecated bool
	targetPath string

	constructor Constructor
	group       singleflight.Group

	resolvedTarget Member
	resolvedErr    error
	resolved       bool
}

// NewAlias creates a lazy alias. targetPath is the canonical path the
// constructor is expected to eventually produce, used purely for cycle
// detection and diagnostics — it is never parsed itself.
func NewAlias(name string, targetPath string, construct Constructor) *Alias {
	return &Alias{name: name, targetPath: targetPath, constructor: construct, public: !strings.HasPrefix(name, "_")}
}

func (a *Alias) Name() string        { return a.name }
func (a *Alias) Kind() Kind          { return KindAlias }
func (a *Alias) Parent() Member      { return a.parent }
func (a *Alias) SetParent(p Member)  { a.parent = p }
func (a *Alias) IsPublic() bool      { return a.public }
func (a *Alias) SetInherited(v bool) { a.inherited = v }
func (a *Alias) IsInherited() bool   { return a.inherited }
func (a *Alias) TargetPath() string  { return a.targetPath }
func (a *Alias) IsDeprecated() bool  { return a.deprecated }
func (a *Alias) SetDeprecated(v bool) { a.deprecated = v }

// Target materializes and returns the object this alias ultimately points
// at, dereferencing any chain of nested aliases and failing with
// CyclicAliasError if the chain revisits a path already seen. Concurrent
// first calls collapse into a single constructor invocation via
// singleflight, matching spec.md §5's "concurrent first accesses resolve to
// a single parse call and the cached target is published atomically."
func (a *Alias) Target() (Member, error) {
	v, err, _ := a.group.Do(a.targetPath, func() (interface{}, error) {
		if a.resolved {
			return a.resolvedTarget, a.resolvedErr
		}
		target, err := a.constructor()
		if err != nil {
			a.resolved, a.resolvedErr = true, err
			return nil, err
		}
		actual, err := unwrapAliasChain(target, []string{a.targetPath})
		a.resolved = true
		a.resolvedTarget, a.resolvedErr = actual, err
		if actual != nil {
			if o, ok := actual.(interface{ AddAlias(*Alias) }); ok {
				o.AddAlias(a)
			}
		}
		return actual, err
	})
	if err != nil {
		return nil, err
	}
	m, _ := v.(Member)
	return m, nil
}

func unwrapAliasChain(m Member, seen []string) (Member, error) {
	for {
		al, ok := m.(*Alias)
		if !ok {
			return m, nil
		}
		for _, p := range seen {
			if p == al.targetPath {
				return nil, &CyclicAliasError{Chain: append(append([]string{}, seen...), al.targetPath)}
			}
		}
		seen = append(seen, al.targetPath)
		// Call the nested alias's constructor directly so the seen chain
		// carries through the whole unwrap instead of restarting in a
		// fresh Target call.
		next, err := al.constructor()
		if err != nil {
			return nil, err
		}
		m = next
	}
}

// actual is used internally by read-only accessors that the Member
// interface requires to be total: it returns nil when Target fails, and
// callers that need the error (PathsCollection lookups, MRO, tests) call
// Target directly.
func (a *Alias) actual() Member {
	m, err := a.Target()
	if err != nil {
		return nil
	}
	return m
}

func (a *Alias) Lineno() int {
	if t := a.actual(); t != nil {
		return t.Lineno()
	}
	return 0
}

func (a *Alias) Endlineno() int {
	if t := a.actual(); t != nil {
		return t.Endlineno()
	}
	return 0
}

func (a *Alias) Docstring() string {
	if t := a.actual(); t != nil {
		return t.Docstring()
	}
	return ""
}

func (a *Alias) HasDocstring() bool {
	if t := a.actual(); t != nil {
		return t.HasDocstring()
	}
	return false
}

func (a *Alias) FilePath() (string, error) {
	t, err := a.Target()
	if err != nil {
		return "", err
	}
	return t.FilePath()
}

func (a *Alias) IsHidden() bool {
	if t := a.actual(); t != nil {
		return t.IsHidden()
	}
	return false
}

// CanonicalPath reports the alias's own position in the tree (its parent
// chain), not the target's declaration site — the whole point of an alias
// is that it can be reached from a different path than where it's defined.
func (a *Alias) CanonicalPath() string {
	parts := []string{a.name}
	for p := a.parent; p != nil && p.Kind() != KindFolder; p = p.Parent() {
		parts = append([]string{p.Name()}, parts...)
	}
	return strings.Join(parts, ".")
}

func (a *Alias) Resolve(name string) (Member, error) {
	t, err := a.Target()
	if err != nil {
		return nil, err
	}
	return t.Resolve(name)
}

// Members re-creates the target's member map with each entry wrapped in a
// fresh Alias rooted at this alias's own position, so a.Members()[x]'s
// CanonicalPath reads through a, not through the target. Mirrors
// objects.py: Alias.members.
func (a *Alias) Members() *Members {
	t := a.actual()
	out := NewMembers()
	if t == nil {
		return out
	}
	t.Members().Each(func(name string, v Member) {
		target := v
		alias := NewAlias(name, aliasChildPath(a, name), func() (Member, error) { return target, nil })
		alias.SetParent(a)
		out.Set(name, alias)
	})
	return out
}

func (a *Alias) AllMembers() []Member {
	t := a.actual()
	if t == nil {
		return nil
	}
	out := make([]Member, 0)
	for _, v := range t.AllMembers() {
		target := v
		alias := NewAlias(v.Name(), aliasChildPath(a, v.Name()), func() (Member, error) { return target, nil })
		alias.SetParent(a)
		out = append(out, alias)
	}
	return out
}

func aliasChildPath(a *Alias, name string) string {
	return a.CanonicalPath() + "." + name
}
