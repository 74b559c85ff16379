package matlab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-malt/malt/matlab"
)

func TestArgumentRequiredReflectsDefault(t *testing.T) {
	required := matlab.Argument{Name: "x"}
	assert.True(t, required.Required())

	withDefault := matlab.Argument{Name: "y", Default: &matlab.Expr{Nodes: []matlab.ExprNode{{Text: "1"}}}}
	assert.False(t, withDefault.Required())
}

func TestArgumentsAddRejectsDuplicates(t *testing.T) {
	args := matlab.NewArguments()
	require.NoError(t, args.Add(matlab.Argument{Name: "x"}))
	assert.Error(t, args.Add(matlab.Argument{Name: "x"}))
}

func TestArgumentsRemoveReindexes(t *testing.T) {
	args := matlab.NewArguments()
	require.NoError(t, args.Add(matlab.Argument{Name: "a"}))
	require.NoError(t, args.Add(matlab.Argument{Name: "b"}))
	require.NoError(t, args.Add(matlab.Argument{Name: "c"}))

	args.Remove("b")

	assert.Equal(t, 2, args.Len())
	first, ok := args.At(0)
	require.True(t, ok)
	assert.Equal(t, "a", first.Name)
	second, ok := args.At(1)
	require.True(t, ok)
	assert.Equal(t, "c", second.Name)

	_, ok = args.ByName("b")
	assert.False(t, ok)
}

func TestArgumentsSetAddsWhenMissingReplacesWhenPresent(t *testing.T) {
	args := matlab.NewArguments()
	args.Set("x", matlab.Argument{Name: "x", Kind: matlab.ArgumentPositionalOnly})
	args.Set("x", matlab.Argument{Name: "x", Kind: matlab.ArgumentOptional})

	assert.Equal(t, 1, args.Len())
	got, ok := args.ByName("x")
	require.True(t, ok)
	assert.Equal(t, matlab.ArgumentOptional, got.Kind)
}
