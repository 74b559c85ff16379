package matlab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-malt/malt/matlab"
)

func TestCanonicalPathJoinsThroughNamespacesNotFolders(t *testing.T) {
	folder := matlab.NewFolder("toolbox")
	ns := matlab.NewNamespace("pkg")
	ns.SetParent(folder)
	cls := matlab.NewClass("Widget", "Widget.m", "", 1, 3, nil)
	cls.SetParent(ns)

	assert.Equal(t, "pkg.Widget", cls.CanonicalPath())
}

func TestFilePathWalksUpToNearestAncestorWithOne(t *testing.T) {
	ns := matlab.NewNamespace("pkg")
	ns.SetFilepath("+pkg")
	cls := matlab.NewClass("Widget", "", "", 1, 3, nil)
	cls.SetParent(ns)

	prop := matlab.NewProperty("value", "", "", 2, 2)
	prop.SetParent(cls)

	fp, err := prop.FilePath()
	require.NoError(t, err)
	assert.Equal(t, "+pkg", fp)
}

func TestFilePathErrorsWhenNoAncestorHasOne(t *testing.T) {
	prop := matlab.NewProperty("value", "", "", 2, 2)
	_, err := prop.FilePath()
	require.Error(t, err)
	var fpErr *matlab.FilePathError
	require.ErrorAs(t, err, &fpErr)
}

func TestIsInternalDetectsPlusInternalSegment(t *testing.T) {
	fn := matlab.NewFunction("helper", "+pkg/+internal/helper.m", "", 1, 2)
	assert.True(t, fn.IsInternal())

	fn2 := matlab.NewFunction("helper", "+pkg/helper.m", "", 1, 2)
	assert.False(t, fn2.IsInternal())
}

func TestResolveWalksOutThroughEnclosingNamespace(t *testing.T) {
	ns := matlab.NewNamespace("pkg")
	sibling := matlab.NewFunction("helper", "+pkg/helper.m", "", 1, 2)
	sibling.SetParent(ns)
	ns.Members().Set("helper", sibling)

	cls := matlab.NewClass("Widget", "+pkg/@Widget/Widget.m", "", 1, 3, nil)
	cls.SetParent(ns)

	resolved, err := cls.Resolve("helper")
	require.NoError(t, err)
	assert.Same(t, sibling, resolved)

	_, err = cls.Resolve("nope")
	require.Error(t, err)
}

func TestHasDocstring(t *testing.T) {
	withDoc := matlab.NewScript("s", "s.m", "does a thing", 1, 1)
	assert.True(t, withDoc.HasDocstring())

	withoutDoc := matlab.NewScript("s", "s.m", "", 1, 1)
	assert.False(t, withoutDoc.HasDocstring())
}
