package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/go-malt/malt/matlab"
)

// parseFunction parses a function_definition node into a matlab.Function.
// isMethod distinguishes a class method (whose name comes from the
// captured identifier) from a top-level function (whose name is always the
// file's stem, MATLAB's own convention). Mirrors treesitter.py:
// FileParser._parse_function.
func (p *FileParser) parseFunction(node *sitter.Node, isMethod bool, access matlab.AccessKind, static, abstract, sealed, hidden bool) (*matlab.Function, error) {
	p.node = node
	c := firstMatchCaptures(qFunction, node)

	inputNames := p.decodeAll(c["input"])
	outputNames := p.decodeAll(c["output"])

	name := stemName(p.filepath)
	if isMethod {
		name = p.firstOf(c["name"])
	}

	fn := matlab.NewFunction(name, p.filepath, p.commentDocstring(c["docstring"]), int(node.StartPoint().Row)+1, int(node.EndPoint().Row)+1)
	fn.Access = access
	fn.Static = static
	fn.Abstract = abstract
	fn.Sealed = sealed
	fn.Hidden = hidden
	fn.IsGetter = len(c["getter"]) > 0
	fn.IsSetter = len(c["setter"]) > 0

	arguments := matlab.NewArguments()
	for _, n := range inputNames {
		_ = arguments.Add(matlab.Argument{Name: n, Kind: matlab.ArgumentPositionalOnly})
	}
	returns := matlab.NewArguments()
	for _, n := range outputNames {
		_ = returns.Add(matlab.Argument{Name: n, Kind: matlab.ArgumentPositionalOnly})
	}

	for _, argsStmt := range c["arguments"] {
		argsCaptures := captures(qArguments, argsStmt)
		attrs := p.decodeAll(argsCaptures["attributes"])
		// An arguments block with no attributes, or explicitly marked
		// Input, or marked neither Input nor Output, is an inputs block;
		// only Output-and-not-Input makes it an outputs block. Mirrors
		// treesitter.py's "Output" in attributes and "Input" not in
		// attributes check.
		isInput := attrs == nil || containsStr(attrs, "Input") || !containsStr(attrs, "Output")

		for _, argNode := range sortNodes(argsCaptures["arguments"]) {
			propCaptures := captures(qProperty, argNode)
			argName := p.firstOf(propCaptures["name"])

			var arg matlab.Argument
			keywordOnly := len(propCaptures["options"]) > 0
			if keywordOnly {
				optionsName := p.firstOf(propCaptures["options"])
				arguments.Remove(optionsName)
				arg = matlab.Argument{Name: argName, Kind: matlab.ArgumentKeywordOnly}
			} else if isInput {
				if existing, ok := arguments.ByName(argName); ok {
					arg = existing
				} else {
					arg = matlab.Argument{Name: argName}
				}
			} else {
				if existing, ok := returns.ByName(argName); ok {
					arg = existing
				} else {
					arg = matlab.Argument{Name: argName}
				}
			}

			if len(propCaptures["dimensions"]) > 0 {
				arg.Dimensions = exprFromNodes(propCaptures["dimensions"], p)
			}
			if len(propCaptures["type"]) > 0 {
				arg.Type = exprFromNodes(propCaptures["type"], p)
			}
			if len(propCaptures["validators"]) > 0 {
				arg.Validators = []matlab.Expr{*exprFromNodes(propCaptures["validators"], p)}
			}
			if len(propCaptures["default"]) > 0 {
				arg.Default = exprFromNodes(propCaptures["default"], p)
				if !keywordOnly {
					arg.Kind = matlab.ArgumentOptional
				}
			} else if !keywordOnly {
				arg.Kind = matlab.ArgumentPositionalOnly
			}
			if doc := p.commentDocstring(propCaptures["comment"]); doc != "" {
				arg.Docstring = doc
			}

			if keywordOnly || isInput {
				arguments.Set(argName, arg)
			} else {
				returns.Set(argName, arg)
			}
		}
	}

	fn.Arguments = arguments
	if returns.Len() > 0 {
		fn.Returns = returns
	}
	return fn, nil
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func exprFromNodes(nodes []*sitter.Node, p *FileParser) *matlab.Expr {
	e := &matlab.Expr{Encoding: p.encoding}
	for _, n := range nodes {
		e.Nodes = append(e.Nodes, matlab.ExprNode{Text: p.decode(n)})
	}
	return e
}
