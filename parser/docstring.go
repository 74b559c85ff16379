package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

var pragmaLines = map[string]struct{}{
	"%#codegen":  {},
	"%#eml":      {},
	"%#external": {},
	"%#exclude":  {},
	"%#function": {},
	"%#ok":       {},
	"%#mex":      {},
}

// commentDocstring extracts a docstring from a run of comment nodes (or a
// single multi-line comment node), decoding through src/encoding and
// applying the same line-classification rules as the original Python
// implementation (treesitter.py: FileParser._comment_docstring):
//
//   - if given a list of nodes with a gap of more than one source line
//     between two consecutive nodes, only the first contiguous block is used
//   - pragma lines ("%#codegen", "%#ok", ...) and any line containing
//     "--8<--" are dropped
//   - "%{ ... %}" delimited blocks keep their first line as is and dedent
//     the remaining lines as a batch of their own; "%%" section headers
//     contribute their tail with leading whitespace trimmed; neither is
//     dedent-batched with the surrounding plain "%" lines
//   - consecutive plain "%" lines are dedented together as a batch
func (p *FileParser) commentDocstring(nodes []*sitter.Node) string {
	if len(nodes) == 0 {
		return ""
	}
	nodes = limitToFirstBlock(nodes)

	var rawLines []string
	for _, n := range nodes {
		text := p.decode(n)
		rawLines = append(rawLines, strings.Split(text, "\n")...)
	}

	var docstring []string
	var uncommented []string
	flush := func() {
		if len(uncommented) > 0 {
			docstring = append(docstring, dedent(uncommented)...)
			uncommented = nil
		}
	}

	for i := 0; i < len(rawLines); i++ {
		line := strings.TrimLeft(rawLines[i], " \t")

		if _, ok := pragmaLines[line]; ok {
			continue
		}
		if strings.Contains(line, "--8<--") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "%{"):
			flush()
			block := []string{}
			rest := line[2:]
			for !strings.Contains(rest, "%}") {
				block = append(block, rest)
				i++
				if i >= len(rawLines) {
					break
				}
				rest = rawLines[i]
			}
			if idx := strings.Index(rest, "%}"); idx >= 0 {
				if last := rest[:idx]; last != "" {
					block = append(block, last)
				}
			}
			if len(block) > 0 {
				docstring = append(docstring, block[0])
				docstring = append(docstring, dedent(block[1:])...)
			}
		case strings.HasPrefix(line, "%%"):
			flush()
			docstring = append(docstring, strings.TrimLeft(line[2:], " \t"))
		case strings.HasPrefix(line, "%"):
			uncommented = append(uncommented, line[1:])
		default:
			// a non-comment line inside a docstring run; original raises
			// LookupError here — we simply skip the line and go on, the best
			// a lenient caller can do with malformed input.
		}
	}
	flush()

	return strings.Join(docstring, "\n")
}

// limitToFirstBlock drops every node after the first gap of more than one
// source line between consecutive comment nodes.
func limitToFirstBlock(nodes []*sitter.Node) []*sitter.Node {
	if len(nodes) < 2 {
		return nodes
	}
	for i := 0; i < len(nodes)-1; i++ {
		gap := int(nodes[i+1].StartPoint().Row) - int(nodes[i].EndPoint().Row)
		if gap > 1 {
			return nodes[:i+1]
		}
	}
	return nodes
}

// dedent removes the common leading whitespace shared by every non-blank
// line, mirroring Python's textwrap.dedent.
func dedent(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := len(l) - len(strings.TrimLeft(l, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= minIndent {
			out[i] = l[minIndent:]
		} else {
			out[i] = strings.TrimLeft(l, " \t")
		}
	}
	return out
}
