package collection

import (
	"fmt"
	"strings"
	"sync"
)

// LinesCollection is a simple path -> source-lines store, filled in as
// files are parsed and consulted by matlab.Object.Source to slice out an
// entity's backing text. Mirrors collection.py: LinesCollection.
type LinesCollection struct {
	mu   sync.RWMutex
	data map[string][]string
}

// NewLinesCollection returns an empty collection.
func NewLinesCollection() *LinesCollection {
	return &LinesCollection{data: map[string][]string{}}
}

// Set stores the lines backing path, splitting content on newlines.
func (l *LinesCollection) Set(path string, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data[path] = strings.Split(content, "\n")
}

// Lines implements matlab.LinesProvider.
func (l *LinesCollection) Lines(path string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lines, ok := l.data[path]
	if !ok {
		return nil, fmt.Errorf("no lines recorded for %s", path)
	}
	return lines, nil
}

// Has reports whether path has recorded lines.
func (l *LinesCollection) Has(path string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.data[path]
	return ok
}
