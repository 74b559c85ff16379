package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/go-malt/malt/matlab"
)

// parseClass parses a class_definition node into a matlab.Class, including
// its enumeration, properties and methods blocks. Mirrors treesitter.py:
// FileParser._parse_class.
func (p *FileParser) parseClass(node *sitter.Node) (*matlab.Class, error) {
	p.node = node
	c := captures(qClass, node)

	bases := p.decodeAll(c["bases"])
	docstring := p.commentDocstring(c["docstring"])

	var sealed, abstract, hidden bool
	for _, attrNode := range c["attributes"] {
		key, value := p.parseAttribute(attrNode)
		switch key {
		case "Sealed":
			sealed, _ = value.(bool)
		case "Abstract":
			abstract, _ = value.(bool)
		case "Hidden":
			hidden, _ = value.(bool)
		}
	}

	class := matlab.NewClass(stemName(p.filepath), p.filepath, docstring, int(node.StartPoint().Row)+1, int(node.EndPoint().Row)+1, nil)
	class.Bases = bases
	class.Sealed = sealed
	class.Abstract = abstract
	class.Hidden = hidden

	p.parseEnumerationBlocks(c["enumeration"], class)
	p.parsePropertiesBlocks(c["properties"], class)
	p.parseMethodsBlocks(c["methods"], class)

	return class, nil
}

// parseEnumerationBlocks walks each captured `enumeration` block, grouping
// its flat content-node stream into (identifier, comment-nodes,
// value-nodes) triples on every new identifier, and always flushing the
// final pending triple once the stream is exhausted — the fix for
// spec.md §9 Open Question 3, where the original Python's trailing
// `else:` on the `for` loop made the final enum member reachable only by
// accident of control flow.
func (p *FileParser) parseEnumerationBlocks(blocks []*sitter.Node, class *matlab.Class) {
	addEnum := func(identifier string, commentNodes, valueNodes []*sitter.Node) {
		var doc string
		if len(commentNodes) > 0 {
			doc = p.commentDocstring(commentNodes)
		}
		var value *matlab.Expr
		if len(valueNodes) > 0 {
			value = exprFromNodes(valueNodes, p)
		}
		enum := matlab.NewEnumeration(identifier, p.filepath, doc, 0, 0)
		enum.Value = value
		enum.SetParent(class)
		class.Members().Set(enum.Name(), enum)
	}

	for _, block := range sortNodes(blocks) {
		content := captures(qEnumeration, block)
		nodes := sortNodes(content["content"])

		var identifier string
		var commentNodes, valueNodes []*sitter.Node
		for _, n := range nodes {
			switch n.Type() {
			case "identifier":
				if identifier != "" {
					addEnum(identifier, commentNodes, valueNodes)
				}
				identifier = p.decode(n)
				commentNodes = nil
				valueNodes = nil
			case "comment":
				commentNodes = append(commentNodes, n)
			default:
				valueNodes = append(valueNodes, n)
			}
		}
		if identifier != "" {
			addEnum(identifier, commentNodes, valueNodes)
		}
	}
}

var propertyAttributeNames = map[string]bool{
	"AbortSet": true, "Abstract": true, "Constant": true, "Dependent": true,
	"GetObservable": true, "Hidden": true, "NonCopyable": true,
	"SetObservable": true, "Transient": true, "WeakHandle": true,
}

func (p *FileParser) parsePropertiesBlocks(blocks []*sitter.Node, class *matlab.Class) {
	for _, block := range sortNodes(blocks) {
		blockCaptures := captures(qProperties, block)

		access, getAccess, setAccess := matlab.AccessPublic, matlab.AccessPublic, matlab.AccessPublic
		blockFlags := map[string]bool{}
		for _, attrNode := range blockCaptures["attributes"] {
			key, value := p.parseAttribute(attrNode)
			switch {
			case propertyAttributeNames[key]:
				if b, ok := value.(bool); ok {
					blockFlags[key] = b
				} else {
					blockFlags[key] = true
				}
			case key == "Access":
				access = accessFromValue(value)
			case key == "GetAccess":
				getAccess = accessFromValue(value)
			case key == "SetAccess":
				setAccess = accessFromValue(value)
			}
		}

		for _, propNode := range blockCaptures["properties"] {
			pc := captures(qProperty, propNode)
			name := p.firstOf(pc["name"])
			prop := matlab.NewProperty(name, p.filepath, p.commentDocstring(pc["comment"]), int(propNode.StartPoint().Row)+1, int(propNode.EndPoint().Row)+1)
			prop.Access, prop.GetAccess, prop.SetAccess = access, getAccess, setAccess
			prop.AbortSet = blockFlags["AbortSet"]
			prop.Abstract = blockFlags["Abstract"]
			prop.Constant = blockFlags["Constant"]
			prop.Dependent = blockFlags["Dependent"]
			prop.GetObservable = blockFlags["GetObservable"]
			prop.Hidden = blockFlags["Hidden"]
			prop.NonCopyable = blockFlags["NonCopyable"]
			prop.SetObservable = blockFlags["SetObservable"]
			prop.Transient = blockFlags["Transient"]
			prop.WeakHandle = blockFlags["WeakHandle"]

			if len(pc["dimensions"]) > 0 {
				prop.Dimensions = exprFromNodes(pc["dimensions"], p)
			}
			if len(pc["type"]) > 0 {
				prop.Type = exprFromNodes(pc["type"], p)
			}
			if len(pc["validators"]) > 0 {
				prop.Validators = []matlab.Expr{*exprFromNodes(pc["validators"], p)}
			}
			if len(pc["default"]) > 0 {
				prop.Default = exprFromNodes(pc["default"], p)
			}
			prop.SetParent(class)
			class.Members().Set(prop.Name(), prop)
		}
	}
}

var methodAttributeNames = map[string]bool{"Abstract": true, "Hidden": true, "Sealed": true, "Static": true}

func (p *FileParser) parseMethodsBlocks(blocks []*sitter.Node, class *matlab.Class) {
	for _, block := range sortNodes(blocks) {
		blockCaptures := captures(qMethods, block)

		access := matlab.AccessPublic
		blockFlags := map[string]bool{}
		for _, attrNode := range blockCaptures["attributes"] {
			key, value := p.parseAttribute(attrNode)
			switch {
			case methodAttributeNames[key]:
				if b, ok := value.(bool); ok {
					blockFlags[key] = b
				} else {
					blockFlags[key] = true
				}
			case key == "Access":
				access = accessFromValue(value)
			}
		}

		for _, methodNode := range blockCaptures["methods"] {
			method, err := p.parseFunction(methodNode, true, access, blockFlags["Static"], blockFlags["Abstract"], blockFlags["Sealed"], blockFlags["Hidden"])
			if err != nil {
				continue
			}
			method.SetParent(class)

			if method.Name() != class.Name() && !method.Static && method.Arguments.Len() > 0 {
				stripImplicitInstance(method.Arguments)
			}

			if method.IsGetter {
				if existing, ok := class.Members().Get(method.Name()); ok {
					if prop, ok := existing.(*matlab.Property); ok {
						prop.Getter = method
						continue
					}
				}
			}
			if method.IsSetter {
				if existing, ok := class.Members().Get(method.Name()); ok {
					if prop, ok := existing.(*matlab.Property); ok {
						prop.Setter = method
						continue
					}
				}
			}
			class.Members().Set(method.Name(), method)
		}
	}
}

func stripImplicitInstance(args *matlab.Arguments) {
	rest := args.Slice()[1:]
	for args.Len() > 0 {
		first, _ := args.At(0)
		args.Remove(first.Name)
	}
	for _, a := range rest {
		_ = args.Add(a)
	}
}

func accessFromValue(value interface{}) matlab.AccessKind {
	s, _ := value.(string)
	switch s {
	case "public":
		return matlab.AccessPublic
	case "protected":
		return matlab.AccessProtected
	case "private":
		return matlab.AccessPrivate
	case "immutable":
		return matlab.AccessImmutable
	default:
		return matlab.AccessPrivate
	}
}
