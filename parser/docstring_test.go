package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedentStripsCommonLeadingWhitespace(t *testing.T) {
	in := []string{"    first line", "    second line", "      indented more"}
	out := dedent(in)
	assert.Equal(t, []string{"first line", "second line", "  indented more"}, out)
}

func TestDedentIgnoresBlankLinesWhenComputingCommonIndent(t *testing.T) {
	in := []string{"  a", "", "  b"}
	out := dedent(in)
	assert.Equal(t, []string{"a", "", "b"}, out)
}

func TestDedentNoCommonIndentIsNoop(t *testing.T) {
	in := []string{"a", "  b"}
	assert.Equal(t, in, dedent(in))
}

func TestDedentEmptyInput(t *testing.T) {
	assert.Empty(t, dedent(nil))
}

func TestPragmaLinesCoversKnownMarkers(t *testing.T) {
	for _, p := range []string{"%#codegen", "%#eml", "%#external", "%#exclude", "%#function", "%#ok", "%#mex"} {
		_, ok := pragmaLines[p]
		assert.True(t, ok, "expected %q to be a recognized pragma", p)
	}
	_, ok := pragmaLines["%#notapragma"]
	assert.False(t, ok)
}
