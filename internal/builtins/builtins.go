// Package builtins embeds a small table mapping well-known MATLAB builtin
// function names to their MathWorks documentation URL, used by
// matlab.Expr.Doc to annotate type expressions that reference builtins
// (double, string, cell, table, ...) rather than user-defined classes.
package builtins

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed matlab_builtins.json
var tableJSON []byte

var (
	once  sync.Once
	table map[string]string
)

func load() {
	table = map[string]string{}
	_ = json.Unmarshal(tableJSON, &table)
}

// DocURL returns the MathWorks documentation URL for a builtin name, and
// whether one is known.
func DocURL(name string) (string, bool) {
	once.Do(load)
	url, ok := table[name]
	return url, ok
}
