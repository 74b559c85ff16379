package matlab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-malt/malt/matlab"
)

func TestMembersPreservesInsertionOrder(t *testing.T) {
	m := matlab.NewMembers()
	m.Set("c", matlab.NewScript("c", "c.m", "", 1, 1))
	m.Set("a", matlab.NewScript("a", "a.m", "", 1, 1))
	m.Set("b", matlab.NewScript("b", "b.m", "", 1, 1))

	assert.Equal(t, []string{"c", "a", "b"}, m.Names())
	assert.Equal(t, 3, m.Len())
}

func TestMembersSetReplacesInPlace(t *testing.T) {
	m := matlab.NewMembers()
	first := matlab.NewScript("x", "x.m", "first", 1, 1)
	second := matlab.NewScript("x", "x.m", "second", 1, 1)
	m.Set("x", first)
	m.Set("x", second)

	assert.Equal(t, []string{"x"}, m.Names())
	got, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, "second", got.Docstring())
}

func TestMembersDelete(t *testing.T) {
	m := matlab.NewMembers()
	m.Set("a", matlab.NewScript("a", "a.m", "", 1, 1))
	m.Set("b", matlab.NewScript("b", "b.m", "", 1, 1))
	m.Delete("a")

	assert.Equal(t, []string{"b"}, m.Names())
	_, ok := m.Get("a")
	assert.False(t, ok)
}
