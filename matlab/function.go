package matlab

// Function is a MATLAB function or class method. Mirrors objects.py:
// Function, with the implicit instance argument already stripped for
// non-static, non-constructor methods by the parser before construction.
type Function struct {
	Object

	Arguments *Arguments
	Returns   *Arguments

	Access   AccessKind
	Static   bool
	Abstract bool
	Sealed   bool
	Hidden   bool

	IsSetter bool
	IsGetter bool
}

// NewFunction constructs a Function entity.
func NewFunction(name, filepath, docstring string, lineno, endlineno int) *Function {
	o := NewObject(KindFunction, name, lineno, endlineno, docstring)
	o.SetFilepath(filepath)
	return &Function{
		Object:    o,
		Arguments: NewArguments(),
		Returns:   NewArguments(),
		Access:    AccessPublic,
	}
}

// IsMethod reports whether this function is declared as a class member.
func (f *Function) IsMethod() bool {
	return f.Parent() != nil && f.Parent().Kind() == KindClass
}

// IsConstructorMethod reports whether this function is its class's
// constructor: a method whose name equals the class's own name.
func (f *Function) IsConstructorMethod() bool {
	return f.IsMethod() && f.Name() == f.Parent().Name()
}

// IsPrivate reports whether this function's Access attribute restricts it
// to its declaring class/namespace.
func (f *Function) IsPrivate() bool {
	return f.Access != AccessPublic && f.Access != AccessImmutable
}

// IsHidden overrides Object.IsHidden: a function is hidden if marked
// Hidden, or it lives under a +internal namespace segment.
func (f *Function) IsHidden() bool {
	return f.Hidden || f.Object.IsInternal()
}

// Attributes returns the set of MATLAB method-block attribute tokens this
// function carries, e.g. {"Abstract", "Static", "Access=protected"}.
func (f *Function) Attributes() map[string]struct{} {
	set := map[string]struct{}{}
	if f.Abstract {
		set["Abstract"] = struct{}{}
	}
	if f.Static {
		set["Static"] = struct{}{}
	}
	if f.Sealed {
		set["Sealed"] = struct{}{}
	}
	if f.Hidden {
		set["Hidden"] = struct{}{}
	}
	if f.Access != AccessPublic {
		set["Access="+string(f.Access)] = struct{}{}
	}
	return set
}
