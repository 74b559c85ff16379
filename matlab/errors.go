package matlab

import (
	"fmt"
	"strings"
)

// FileNotFoundError is returned when a file registered by addpath can no
// longer be read at the time its alias is materialized.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// CyclicAliasError is returned when dereferencing an Alias's target would
// revisit a path already seen in the current resolution chain.
type CyclicAliasError struct {
	Chain []string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("cyclic alias: %s", strings.Join(e.Chain, " -> "))
}

// InheritanceCycleError is returned when C3 linearization of a class's bases
// would revisit a class already on the current MRO stack.
type InheritanceCycleError struct {
	Chain []string
}

func (e *InheritanceCycleError) Error() string {
	return fmt.Sprintf("inheritance cycle: %s", strings.Join(e.Chain, " -> "))
}

// FilePathError is returned when an object has no reachable filepath — it
// has no parent chain terminating at a PathMixin-backed object.
type FilePathError struct {
	Name string
}

func (e *FilePathError) Error() string {
	return fmt.Sprintf("no filepath for %s", e.Name)
}

// NameResolutionError is returned by Object.Resolve when a name cannot be
// found anywhere along the enclosing member/parent chain.
type NameResolutionError struct {
	Name string
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("could not resolve name %q", e.Name)
}

// ParseError reports a tree-sitter parse failure with enough context to
// locate the offending fragment in the source file.
type ParseError struct {
	File     string
	Line     int
	Col      int
	Fragment string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: parse error near %q: %v", e.File, e.Line, e.Col, e.Fragment, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// TypeError describes a value of the wrong Kind. No function in this module
// returns it: Class.ResolvedBases logs and skips a base that resolves to a
// non-class instead.
type TypeError struct {
	Expected Kind
	Got      Kind
	Name     string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Name, e.Expected, e.Got)
}
