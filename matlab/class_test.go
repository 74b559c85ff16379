package matlab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-malt/malt/matlab"
)

// fakeLookup resolves base-class names from a plain map, standing in for a
// collection.PathsCollection in tests that only exercise Class's MRO logic.
type fakeLookup map[string]matlab.Member

func (f fakeLookup) GetMember(identifier string) (matlab.Member, error) {
	m, ok := f[identifier]
	if !ok {
		return nil, &matlab.NameResolutionError{Name: identifier}
	}
	return m, nil
}

func newClass(t *testing.T, name string, bases ...string) *matlab.Class {
	t.Helper()
	c := matlab.NewClass(name, name+".m", "", 1, 10, nil)
	c.Bases = bases
	return c
}

func wire(lookup fakeLookup, classes ...*matlab.Class) {
	for _, c := range classes {
		c.SetProviders(nil, lookup)
	}
}

func TestClassMRODiamond(t *testing.T) {
	// classic diamond: D(B, C), B(A), C(A), A()
	a := newClass(t, "A")
	b := newClass(t, "B", "A")
	c := newClass(t, "C", "A")
	d := newClass(t, "D", "B", "C")

	lookup := fakeLookup{"A": a, "B": b, "C": c, "D": d}
	wire(lookup, a, b, c, d)

	mro, err := d.MRO()
	require.NoError(t, err)

	var names []string
	for _, cls := range mro {
		names = append(names, cls.Name())
	}
	assert.Equal(t, []string{"B", "C", "A"}, names)
}

func TestClassMROCycleDetected(t *testing.T) {
	a := newClass(t, "A", "B")
	b := newClass(t, "B", "A")
	lookup := fakeLookup{"A": a, "B": b}
	wire(lookup, a, b)

	_, err := a.MRO()
	require.Error(t, err)
	var cycleErr *matlab.InheritanceCycleError
	require.ErrorAs(t, err, &cycleErr)
}

func TestResolvedBasesSkipsUnresolved(t *testing.T) {
	b := newClass(t, "B", "Missing")
	lookup := fakeLookup{"B": b}
	wire(lookup, b)

	assert.Empty(t, b.ResolvedBases())
}

func TestInheritedMembersDoNotShadowOwnMembers(t *testing.T) {
	a := newClass(t, "A")
	greet := matlab.NewFunction("greet", "A.m", "", 2, 3)
	a.Members().Set("greet", greet)

	b := newClass(t, "B", "A")
	ownGreet := matlab.NewFunction("greet", "B.m", "overridden", 2, 3)
	b.Members().Set("greet", ownGreet)

	lookup := fakeLookup{"A": a, "B": b}
	wire(lookup, a, b)

	member, ok := b.Members().Get("greet")
	require.True(t, ok)
	assert.Equal(t, "overridden", member.Docstring())

	all := b.AllMembers()
	var found int
	for _, m := range all {
		if m.Name() == "greet" {
			found++
		}
	}
	assert.Equal(t, 1, found, "own member must not be duplicated by inherited alias")
}

func TestConstructorFoundOnOwnClass(t *testing.T) {
	a := newClass(t, "A")
	ctor := matlab.NewFunction("A", "A.m", "", 2, 4)
	a.Members().Set("A", ctor)

	got := a.Constructor()
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Name())
}

// A base class's own constructor (named after the base) is not a B
// constructor: the MRO walk looks for *B's own name* in every ancestor's
// members, not for whatever each ancestor happens to call its constructor.
func TestConstructorNotInheritedFromDifferentlyNamedBase(t *testing.T) {
	a := newClass(t, "A")
	ctor := matlab.NewFunction("A", "A.m", "", 2, 4)
	a.Members().Set("A", ctor)

	b := newClass(t, "B", "A")
	lookup := fakeLookup{"A": a, "B": b}
	wire(lookup, a, b)

	assert.Nil(t, b.Constructor())
}

// If an ancestor happens to declare a member whose name matches the
// subclass's own name, it is picked up as the inherited constructor.
func TestConstructorFoundThroughMRO(t *testing.T) {
	a := newClass(t, "A")
	inherited := matlab.NewFunction("B", "A.m", "", 2, 4)
	a.Members().Set("B", inherited)

	b := newClass(t, "B", "A")
	lookup := fakeLookup{"A": a, "B": b}
	wire(lookup, a, b)

	got := b.Constructor()
	require.NotNil(t, got)
	assert.Equal(t, "B", got.Name())
}
