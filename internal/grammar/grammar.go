// Package grammar is the single seam through which the rest of the module
// touches the MATLAB tree-sitter grammar binding. Nothing outside this
// package imports github.com/alexaandru/go-sitter-forest/matlab directly,
// the same way the teacher keeps each language's grammar import scoped to
// its own inspector package (inspector/golang, inspector/java, ...).
package grammar

import (
	matlabgrammar "github.com/alexaandru/go-sitter-forest/matlab"
	sitter "github.com/smacker/go-tree-sitter"
)

// Language returns the tree-sitter Language for MATLAB source.
func Language() *sitter.Language {
	return matlabgrammar.GetLanguage()
}
