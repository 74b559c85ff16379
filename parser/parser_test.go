package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStemNameStripsDirAndExtension(t *testing.T) {
	assert.Equal(t, "MyClass", stemName("+pkg/@MyClass/MyClass.m"))
	assert.Equal(t, "helper", stemName("helper.m"))
	assert.Equal(t, "helper", stemName("/a/b/c/helper.m"))
}

func TestContainsStr(t *testing.T) {
	assert.True(t, containsStr([]string{"Output", "Repeating"}, "Output"))
	assert.False(t, containsStr([]string{"Repeating"}, "Output"))
	assert.False(t, containsStr(nil, "Output"))
}
