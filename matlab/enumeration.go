package matlab

// Enumeration is one member of a classdef enumeration block: a name plus an
// optional constructor-argument expression, e.g. `Red (1,0,0)`.
type Enumeration struct {
	Object

	Value *Expr
}

// NewEnumeration constructs an Enumeration entity.
func NewEnumeration(name, filepath, docstring string, lineno, endlineno int) *Enumeration {
	o := NewObject(KindEnumeration, name, lineno, endlineno, docstring)
	o.SetFilepath(filepath)
	return &Enumeration{Object: o}
}
