package matlab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-malt/malt/matlab"
)

func TestExprStringConcatenatesNodesWithNoSeparator(t *testing.T) {
	e := matlab.Expr{Nodes: []matlab.ExprNode{{Text: "1"}, {Text: "x"}, {Text: ":"}}}
	assert.Equal(t, "1x:", e.String())
	assert.Equal(t, []string{"1", "x", ":"}, e.Iterate())
}

func TestExprDocForKnownBuiltin(t *testing.T) {
	e := matlab.Expr{Nodes: []matlab.ExprNode{{Text: "double"}}}
	url, ok := e.Doc()
	require := assert.New(t)
	require.True(ok)
	require.Contains(url, "mathworks.com")
}

func TestExprDocScansEveryNodeForABuiltin(t *testing.T) {
	e := matlab.Expr{Nodes: []matlab.ExprNode{{Text: "1"}, {Text: "double"}}}
	url, ok := e.Doc()
	require := assert.New(t)
	require.True(ok)
	require.Contains(url, "mathworks.com")

	unknown := matlab.Expr{Nodes: []matlab.ExprNode{{Text: "NotARealBuiltin"}, {Text: "AlsoNotReal"}}}
	_, ok = unknown.Doc()
	assert.False(t, ok)
}
