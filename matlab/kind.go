// Package matlab defines the typed entity model produced by parsing and
// resolving a MATLAB source tree: folders, namespaces, classes, functions,
// properties, enumerations, scripts and the lazy aliases that stand in for
// them until something asks to materialize one.
package matlab

// Kind identifies the concrete type of an Object. It is a closed set —
// callers switch on it instead of type-asserting every concrete type.
type Kind string

const (
	KindFolder      Kind = "folder"
	KindNamespace   Kind = "namespace"
	KindClass       Kind = "class"
	KindFunction    Kind = "function"
	KindScript      Kind = "script"
	KindProperty    Kind = "property"
	KindEnumeration Kind = "enumeration"
	KindAlias       Kind = "alias"
)

// ArgumentKind classifies how a function/method argument may be supplied.
type ArgumentKind string

const (
	ArgumentPositionalOnly ArgumentKind = "positional_only"
	ArgumentOptional       ArgumentKind = "optional"
	ArgumentKeywordOnly    ArgumentKind = "keyword_only"
	ArgumentVarargin       ArgumentKind = "varargin"
)

// AccessKind is the MATLAB Access/GetAccess/SetAccess attribute value.
type AccessKind string

const (
	AccessPublic    AccessKind = "public"
	AccessProtected AccessKind = "protected"
	AccessPrivate   AccessKind = "private"
	AccessImmutable AccessKind = "immutable"
)
