package matlab

// Script is a standalone `.m` file with no function or classdef wrapper:
// top-level statements plus an optional leading comment-block docstring.
type Script struct {
	Object
}

// NewScript constructs a Script entity backed by filepath.
func NewScript(name, filepath, docstring string, lineno, endlineno int) *Script {
	o := NewObject(KindScript, name, lineno, endlineno, docstring)
	o.SetFilepath(filepath)
	return &Script{Object: o}
}
