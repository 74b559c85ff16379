package matlab

import (
	"strings"

	"github.com/go-malt/malt/internal/builtins"
)

// ExprNode is one decoded token of a type/validator expression — a bare
// identifier, a dotted member access, a size literal, and so on. Source
// text is kept verbatim; no semantic evaluation is performed.
type ExprNode struct {
	Text string
}

// Expr is a raw, unevaluated MATLAB expression captured from an argument's
// type, dimensions, validator list or default value. It is never executed —
// only stringified and, for a bare identifier, looked up in the builtins
// table.
type Expr struct {
	Nodes    []ExprNode
	Encoding string
}

// String renders the expression by concatenating its nodes with no
// separator, mirroring expressions.py: Expr.__str__ ("".join(...)).
func (e Expr) String() string {
	parts := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		parts[i] = n.Text
	}
	return strings.Join(parts, "")
}

// Iterate returns the decoded text of every node in order.
func (e Expr) Iterate() []string {
	out := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		out[i] = n.Text
	}
	return out
}

// Doc returns the MathWorks documentation URL for the first node in this
// expression that names a known MATLAB builtin type, e.g. "double" or
// "containers.Map". Mirrors expressions.py: Expr.doc, which scans every
// element rather than requiring the expression to be a single bare name.
func (e Expr) Doc() (string, bool) {
	for _, n := range e.Nodes {
		if url, ok := builtins.DocURL(n.Text); ok {
			return url, true
		}
	}
	return "", false
}
