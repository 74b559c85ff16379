package matlab

// Property is a classdef property block entry. Mirrors objects.py:
// Property, which — unlike the other kinds — is also a Validatable (it
// carries the same Type/Dimensions/Validators/Default shape an Argument
// does), represented here as embedded fields rather than a second base
// type since Go has no multiple inheritance.
type Property struct {
	Object

	Type       *Expr
	Dimensions *Expr
	Validators []Expr
	Default    *Expr

	Access    AccessKind
	GetAccess AccessKind
	SetAccess AccessKind

	AbortSet      bool
	Abstract      bool
	Constant      bool
	Dependent     bool
	GetObservable bool
	Hidden        bool
	NonCopyable   bool
	SetObservable bool
	Transient     bool
	WeakHandle    bool

	Getter *Function
	Setter *Function
}

// NewProperty constructs a Property entity with public access defaults.
func NewProperty(name, filepath, docstring string, lineno, endlineno int) *Property {
	o := NewObject(KindProperty, name, lineno, endlineno, docstring)
	o.SetFilepath(filepath)
	return &Property{
		Object:    o,
		Access:    AccessPublic,
		GetAccess: AccessPublic,
		SetAccess: AccessPublic,
	}
}

// IsPrivate reports whether either Access or GetAccess restricts visibility.
func (p *Property) IsPrivate() bool {
	return p.Access != AccessPublic || p.GetAccess != AccessPublic
}

// IsHidden overrides Object.IsHidden: a property is hidden if marked
// Hidden, or it lives under a +internal namespace segment.
func (p *Property) IsHidden() bool {
	return p.Hidden || p.Object.IsInternal()
}

// Attributes returns the set of classdef property-block attribute tokens.
func (p *Property) Attributes() map[string]struct{} {
	set := map[string]struct{}{}
	add := func(name string, v bool) {
		if v {
			set[name] = struct{}{}
		}
	}
	add("AbortSet", p.AbortSet)
	add("Abstract", p.Abstract)
	add("Constant", p.Constant)
	add("Dependent", p.Dependent)
	add("GetObservable", p.GetObservable)
	add("Hidden", p.Hidden)
	add("NonCopyable", p.NonCopyable)
	add("SetObservable", p.SetObservable)
	add("Transient", p.Transient)
	add("WeakHandle", p.WeakHandle)
	if p.Access != AccessPublic {
		set["Access="+string(p.Access)] = struct{}{}
	}
	if p.GetAccess != AccessPublic {
		set["GetAccess="+string(p.GetAccess)] = struct{}{}
	}
	if p.SetAccess != AccessPublic {
		set["SetAccess="+string(p.SetAccess)] = struct{}{}
	}
	return set
}
