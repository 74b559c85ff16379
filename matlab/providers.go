package matlab

// LinesProvider supplies the raw source lines backing a file path so that
// Object.Source can slice out [Lineno, Endlineno]. Implemented by
// collection.LinesCollection; declared here (rather than imported) so the
// matlab package never imports collection, which in turn imports matlab for
// the entity types it constructs.
type LinesProvider interface {
	Lines(path string) ([]string, error)
}

// MemberLookup resolves a dotted identifier (e.g. "pkg.sub.ClassName") to a
// Member anywhere in a paths collection. Implemented by
// collection.PathsCollection; used by Class.ResolvedBases to look up base
// classes that may live outside the class's own file.
type MemberLookup interface {
	GetMember(identifier string) (Member, error)
}
