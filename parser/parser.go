// Package parser turns MATLAB source files into the typed entities defined
// by package matlab, using tree-sitter queries against the grammar exposed
// by internal/grammar. It is a direct Go port of the original
// watermarkhu/maxx implementation's FileParser (src/maxx/treesitter.py),
// restructured around smacker/go-tree-sitter's query/cursor API the way
// the teacher repo's TreeSitterInspector uses it
// (inspector/golang/inspector_tree_sitter.go).
package parser

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gogs/chardet"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/go-malt/malt/internal/grammar"
	"github.com/go-malt/malt/matlab"
)

var language = grammar.Language()

func compile(src string) *sitter.Query {
	q, err := sitter.NewQuery([]byte(src), language)
	if err != nil {
		panic(fmt.Sprintf("matlab grammar query failed to compile: %v", err))
	}
	return q
}

var (
	qFile        = compile(fileQuery)
	qFunction    = compile(functionQuery)
	qArguments   = compile(argumentsQuery)
	qProperty    = compile(propertyQuery)
	qAttribute   = compile(attributeQuery)
	qClass       = compile(classQuery)
	qMethods     = compile(methodsQuery)
	qProperties  = compile(propertiesQuery)
	qEnumeration = compile(enumerationsQuery)
)

// captures runs q against node and returns every captured node grouped by
// capture name, across all matches — the Go analogue of tree-sitter's
// QueryCursor.captures(node) used throughout the Python original.
func captures(q *sitter.Query, node *sitter.Node) map[string][]*sitter.Node {
	out := map[string][]*sitter.Node{}
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(q, node)
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			name := q.CaptureNameForId(c.Index)
			out[name] = append(out[name], c.Node)
		}
	}
	return out
}

// firstMatchCaptures runs q against node and returns only the first match's
// captures — used where a node matches its own defining query exactly once
// (FUNCTION_QUERY against a function_definition), the Go analogue of
// Python's `FUNCTION_QUERY.matches(node)[0][1]`.
func firstMatchCaptures(q *sitter.Query, node *sitter.Node) map[string][]*sitter.Node {
	out := map[string][]*sitter.Node{}
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(q, node)
	if m, ok := cursor.NextMatch(); ok {
		for _, c := range m.Captures {
			out[q.CaptureNameForId(c.Index)] = append(out[q.CaptureNameForId(c.Index)], c.Node)
		}
	}
	return out
}

// FileParser parses a single MATLAB source file into a Function, Class or
// Script.
type FileParser struct {
	filepath string
	content  []byte
	encoding string
	lookup   matlab.MemberLookup
	lines    matlab.LinesProvider

	node *sitter.Node // last node visited, for error reporting
}

// NewFileParser reads filepath's content (already loaded by the caller,
// typically through afs) and sniffs its charset via chardet, defaulting to
// UTF-8 when sniffing is inconclusive — spec.md §4.B.
func NewFileParser(filepath string, content []byte, lookup matlab.MemberLookup, lines matlab.LinesProvider) *FileParser {
	encoding := "utf-8"
	if res, err := chardet.NewTextDetector().DetectBest(content); err == nil && res != nil && res.Charset != "" {
		encoding = res.Charset
	}
	return &FileParser{filepath: filepath, content: content, encoding: encoding, lookup: lookup, lines: lines}
}

// Encoding reports the charset detected for this file's content.
func (p *FileParser) Encoding() string { return p.encoding }

// Parse parses the file's content and returns the Function, Class or Script
// it declares, with a header-comment fallback docstring applied when the
// construct has none of its own.
func (p *FileParser) Parse() (m matlab.Member, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = p.wrapError(fmt.Errorf("%v", r))
		}
	}()

	tsParser := sitter.NewParser()
	tsParser.SetLanguage(language)
	tree, perr := tsParser.ParseCtx(context.Background(), nil, p.content)
	if perr != nil {
		return nil, p.wrapError(perr)
	}
	root := tree.RootNode()
	p.node = root

	fileCaptures := captures(qFile, root)

	stem := stemName(p.filepath)
	var object matlab.Member

	switch {
	case len(fileCaptures["function"]) > 0:
		fn, ferr := p.parseFunction(fileCaptures["function"][0], false, matlab.AccessPublic, false, false, false, false)
		if ferr != nil {
			return nil, ferr
		}
		object = fn
	case len(fileCaptures["type"]) > 0:
		cls, cerr := p.parseClass(fileCaptures["type"][0])
		if cerr != nil {
			return nil, cerr
		}
		object = cls
	default:
		script := matlab.NewScript(stem, p.filepath, "", int(root.StartPoint().Row)+1, int(root.EndPoint().Row)+1)
		object = script
	}

	if object.Docstring() == "" {
		if header := p.commentDocstring(fileCaptures["header"]); header != "" {
			setDocstring(object, header)
		}
	}

	wireProviders(object, p.lines, p.lookup)
	return object, nil
}

// setDocstring assigns a fallback docstring to whichever concrete kind
// object holds, via the SetDocstring method every matlab.Object-embedding
// kind promotes.
func setDocstring(m matlab.Member, doc string) {
	if s, ok := m.(interface{ SetDocstring(string) }); ok {
		s.SetDocstring(doc)
	}
}

// wireProviders attaches the owning paths/lines collections to a freshly
// parsed object, via the SetProviders method every matlab.Object-embedding
// kind promotes.
func wireProviders(m matlab.Member, lines matlab.LinesProvider, lookup matlab.MemberLookup) {
	if s, ok := m.(interface {
		SetProviders(matlab.LinesProvider, matlab.MemberLookup)
	}); ok {
		s.SetProviders(lines, lookup)
	}
}

func (p *FileParser) wrapError(cause error) error {
	e := &matlab.ParseError{File: p.filepath, Cause: cause}
	if p.node != nil {
		e.Line = int(p.node.StartPoint().Row) + 1
		e.Col = int(p.node.StartPoint().Column) + 1
		e.Fragment = p.node.Content(p.content)
	}
	return e
}

func (p *FileParser) decode(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	p.node = n
	return n.Content(p.content)
}

func (p *FileParser) decodeAll(nodes []*sitter.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, p.decode(n))
	}
	return out
}

func (p *FileParser) firstOf(nodes []*sitter.Node) string {
	if len(nodes) == 0 {
		return ""
	}
	return p.decode(nodes[0])
}

func sortNodes(nodes []*sitter.Node) []*sitter.Node {
	out := append([]*sitter.Node{}, nodes...)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].StartPoint(), out[j].StartPoint()
		if pi.Row != pj.Row {
			return pi.Row < pj.Row
		}
		return pi.Column < pj.Column
	})
	return out
}

func stemName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

// parseAttribute decodes a single `(attribute ...)` node into its key and
// value, mirroring treesitter.py: FileParser._parse_attribute. A bare
// attribute (no "=value") is true; a boolean literal is parsed as bool;
// anything else is kept as its raw source text.
func (p *FileParser) parseAttribute(n *sitter.Node) (string, interface{}) {
	c := captures(qAttribute, n)
	key := p.firstOf(c["name"])
	if len(c["value"]) == 0 {
		return key, true
	}
	valueNode := c["value"][0]
	if valueNode.Type() == "boolean" {
		text := strings.ToLower(p.decode(valueNode))
		return key, text == "true" || text == "1"
	}
	return key, p.firstOf(c["value"])
}
