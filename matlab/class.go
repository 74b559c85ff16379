package matlab

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Class is a classdef type: its declared bases, its own members (properties,
// methods, enumeration values), and the machinery to compute its C3
// linearized method resolution order and fold in inherited members. Mirrors
// objects.py: Class.
type Class struct {
	Object

	Bases    []string
	Abstract bool
	Hidden   bool
	Sealed   bool

	logger *zap.Logger
}

// NewClass constructs a Class entity. logger may be nil, in which case a
// no-op logger is used — ResolvedBases logs skipped bases at debug level
// through it, never raising for them (spec.md §7's one deliberate
// silent-skip exception).
func NewClass(name, filepath, docstring string, lineno, endlineno int, logger *zap.Logger) *Class {
	o := NewObject(KindClass, name, lineno, endlineno, docstring)
	o.SetFilepath(filepath)
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Class{Object: o, logger: logger}
}

// IsHidden overrides Object.IsHidden to add the class's own Hidden
// attribute on top of +internal namespace membership.
func (c *Class) IsHidden() bool {
	return c.Hidden || c.Object.IsInternal()
}

// ResolvedBases looks up each entry in Bases through the paths collection
// reachable from this class, unwraps any Alias, and keeps only the ones
// that resolve to a Class. A base that fails to resolve (missing, wrong
// kind, or cyclic) is logged at debug level and skipped rather than
// failing the whole lookup — mirroring objects.py: Class.resolved_bases,
// the only intentionally silent error path in the system (spec.md §7).
func (c *Class) ResolvedBases() []*Class {
	lookup := c.Lookup()
	if lookup == nil {
		return nil
	}
	var out []*Class
	for _, base := range c.Bases {
		m, err := lookup.GetMember(base)
		if err != nil {
			c.logger.Debug("unresolved base class, skipping", zap.String("class", c.CanonicalPath()), zap.String("base", base), zap.Error(err))
			continue
		}
		if al, ok := m.(*Alias); ok {
			m, err = al.Target()
			if err != nil {
				c.logger.Debug("cyclic or unresolved base class alias, skipping", zap.String("class", c.CanonicalPath()), zap.String("base", base), zap.Error(err))
				continue
			}
		}
		cls, ok := m.(*Class)
		if !ok {
			c.logger.Debug("base class resolved to non-class, skipping", zap.String("class", c.CanonicalPath()), zap.String("base", base), zap.String("kind", string(m.Kind())))
			continue
		}
		out = append(out, cls)
	}
	return out
}

// mro is the internal recursive step of C3 linearization: it appends this
// class's own path to seen, fails with InheritanceCycleError if any base's
// path is already present, and otherwise merges [self] with the linearized
// MRO of every resolved base plus the base list itself, in the classic C3
// order.
func (c *Class) mro(seen []string) ([]*Class, error) {
	path := c.CanonicalPath()
	for _, s := range seen {
		if s == path {
			chain := append(append([]string{}, seen...), path)
			return nil, &InheritanceCycleError{Chain: chain}
		}
	}
	seen = append(seen, path)

	bases := c.ResolvedBases()
	sequences := make([][]*Class, 0, len(bases)+1)
	for _, b := range bases {
		bm, err := b.mro(seen)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, bm)
	}
	sequences = append(sequences, bases)

	merged, err := c3Merge(sequences)
	if err != nil {
		return nil, err
	}
	return append([]*Class{c}, merged...), nil
}

// MRO returns this class's method resolution order, most-derived base
// first, not including the class itself — objects.py: Class.mro.
func (c *Class) MRO() ([]*Class, error) {
	full, err := c.mro(nil)
	if err != nil {
		return nil, err
	}
	return full[1:], nil
}

// c3Merge implements the C3 linearization merge step: repeatedly pick the
// first head of any list that does not appear in the tail of any other
// list, append it to the result, and remove it from every list, until all
// lists are empty. Fails if no such head can be found (inconsistent
// hierarchy), mirroring objects.py: c3linear_merge.
func c3Merge(sequences [][]*Class) ([]*Class, error) {
	seqs := make([][]*Class, 0, len(sequences))
	for _, s := range sequences {
		if len(s) > 0 {
			seqs = append(seqs, append([]*Class{}, s...))
		}
	}
	var result []*Class
	for len(seqs) > 0 {
		var candidate *Class
		for _, s := range seqs {
			head := s[0]
			if !inAnyTail(head, seqs) {
				candidate = head
				break
			}
		}
		if candidate == nil {
			return nil, fmt.Errorf("inconsistent class hierarchy while linearizing %s", describe(seqs))
		}
		result = append(result, candidate)
		for i := range seqs {
			seqs[i] = removeFirst(seqs[i], candidate)
		}
		filtered := seqs[:0]
		for _, s := range seqs {
			if len(s) > 0 {
				filtered = append(filtered, s)
			}
		}
		seqs = filtered
	}
	return result, nil
}

func inAnyTail(candidate *Class, seqs [][]*Class) bool {
	for _, s := range seqs {
		for _, c := range s[1:] {
			if c == candidate {
				return true
			}
		}
	}
	return false
}

func removeFirst(s []*Class, c *Class) []*Class {
	out := s[:0:0]
	for _, v := range s {
		if v == c {
			continue
		}
		out = append(out, v)
	}
	return out
}

func describe(seqs [][]*Class) string {
	var parts []string
	for _, s := range seqs {
		var names []string
		for _, c := range s {
			names = append(names, c.Name())
		}
		parts = append(parts, "["+strings.Join(names, ", ")+"]")
	}
	return strings.Join(parts, ", ")
}

// InheritedMembers returns every member found on a base class, through the
// full MRO, that this class does not itself redeclare, each wrapped as an
// inherited Alias rooted at this class (so its CanonicalPath still reads
// through the subclass). Iterates the MRO most-base-first so the
// most-derived ancestor's member wins when names collide across the
// hierarchy. Mirrors objects.py: Class.inherited_members.
func (c *Class) InheritedMembers() (map[string]Member, error) {
	mro, err := c.MRO()
	if err != nil {
		return nil, err
	}
	result := map[string]Member{}
	for i := len(mro) - 1; i >= 0; i-- {
		base := mro[i]
		for _, m := range base.AllMembers() {
			if _, ownMember := c.Members().Get(m.Name()); ownMember {
				continue
			}
			target := m
			alias := NewAlias(m.Name(), c.CanonicalPath()+"."+m.Name(), func() (Member, error) { return target, nil })
			alias.SetParent(c)
			alias.SetInherited(true)
			result[m.Name()] = alias
		}
	}
	return result, nil
}

// AllMembers overrides Object.AllMembers to fold in inherited members
// beneath this class's own declared ones, own members taking precedence.
func (c *Class) AllMembers() []Member {
	own := c.Object.AllMembers()
	inherited, err := c.InheritedMembers()
	if err != nil || len(inherited) == 0 {
		return own
	}
	seen := map[string]struct{}{}
	out := make([]Member, 0, len(own)+len(inherited))
	for _, m := range own {
		seen[m.Name()] = struct{}{}
		out = append(out, m)
	}
	for name, m := range inherited {
		if _, ok := seen[name]; ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Constructor returns the method whose name equals this class's own name,
// found by walking the MRO, or nil if the class declares no constructor of
// its own and inherits none. Mirrors objects.py: Class.constructor.
func (c *Class) Constructor() *Function {
	if m, ok := c.Members().Get(c.Name()); ok {
		if fn, ok := m.(*Function); ok {
			return fn
		}
	}
	mro, err := c.MRO()
	if err != nil {
		return nil
	}
	for _, base := range mro {
		if m, ok := base.Members().Get(c.Name()); ok {
			if fn, ok := m.(*Function); ok {
				return fn
			}
		}
	}
	return nil
}

// Arguments proxies the constructor's declared Arguments, or an empty set
// if this class has no constructor. Mirrors objects.py: Class.arguments.
func (c *Class) Arguments() *Arguments {
	if ctor := c.Constructor(); ctor != nil {
		return ctor.Arguments
	}
	return NewArguments()
}
