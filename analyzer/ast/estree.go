package ast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON is returned when an ESTree dump is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNotAST is returned when an ESTree dump has no typed root node.
	ErrNotAST = errors.New("document is not an ESTree node")
)

// skippedESTreeKeys are node members that never contain checkable expressions.
var skippedESTreeKeys = map[string]bool{
	"loc":              true,
	"range":            true,
	"extra":            true,
	"comments":         true,
	"tokens":           true,
	"leadingComments":  true,
	"trailingComments": true,
	"innerComments":    true,
	"typeAnnotation":   true,
}

// ParseESTree reads an ESTree (espree, acorn, typescript-estree) or Babel JSON
// dump and returns every localize site it contains, in document order.
//
// The dump must have been produced with locations enabled. The root node's
// loc.source, when present, replaces file as the reported source name.
func ParseESTree(data []byte, file string, names Names) ([]Site, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", file, ErrInvalidJSON)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() || !root.Get("type").Exists() {
		return nil, fmt.Errorf("%s: %w", file, ErrNotAST)
	}

	if src := root.Get("loc.source"); src.Type == gjson.String && src.String() != "" {
		file = src.String()
	}

	c := estreeConverter{file: file}
	var sites []Site

	walkESTree(root, func(n gjson.Result) {
		switch n.Get("type").String() {
		case "CallExpression", "OptionalCallExpression":
			if names.IsFunction(estreeCalleeName(n.Get("callee"))) {
				sites = append(sites, Site{Kind: SiteCall, Node: c.convert(n)})
			}
		case "JSXOpeningElement":
			if names.IsComponent(estreeJSXName(n.Get("name"))) {
				sites = append(sites, Site{Kind: SiteComponent, Node: c.convert(n)})
			}
		}
	})

	return sites, nil
}

// walkESTree visits every typed object in the tree, parents before children.
func walkESTree(n gjson.Result, visit func(gjson.Result)) {
	switch {
	case n.IsObject():
		if n.Get("type").Exists() {
			visit(n)
		}
		n.ForEach(func(key, value gjson.Result) bool {
			if skippedESTreeKeys[key.String()] {
				return true
			}
			if value.IsObject() || value.IsArray() {
				walkESTree(value, visit)
			}
			return true
		})
	case n.IsArray():
		n.ForEach(func(_, value gjson.Result) bool {
			walkESTree(value, visit)
			return true
		})
	}
}

type estreeConverter struct {
	file string
}

// convert maps one ESTree expression onto a Node. It returns nil for JSON
// null and non-object values.
func (c estreeConverter) convert(n gjson.Result) *Node {
	if !n.IsObject() {
		return nil
	}

	typ := n.Get("type").String()
	node := &Node{Kind: KindOther, Type: typ, File: c.file, Loc: estreeLoc(n)}

	switch typ {
	case "Literal", "StringLiteral":
		if v := n.Get("value"); v.Type == gjson.String {
			node.Kind = KindStringLiteral
			node.Value = v.String()
		}

	case "Identifier":
		node.Kind = KindIdentifier
		node.Name = n.Get("name").String()

	case "BinaryExpression":
		node.Kind = KindBinary
		node.Operator = n.Get("operator").String()
		node.Left = c.convert(n.Get("left"))
		node.Right = c.convert(n.Get("right"))

	case "TemplateLiteral":
		node.Kind = KindTemplateLiteral
		var text strings.Builder
		for _, q := range n.Get("quasis").Array() {
			text.WriteString(q.Get("value.cooked").String())
		}
		node.Value = text.String()
		for _, e := range n.Get("expressions").Array() {
			if expr := c.convert(e); expr != nil {
				node.Expressions = append(node.Expressions, expr)
			}
		}

	case "ObjectExpression":
		node.Kind = KindObject
		for _, p := range n.Get("properties").Array() {
			if prop := c.property(p); prop != nil {
				node.Properties = append(node.Properties, prop)
			}
		}

	case "CallExpression", "OptionalCallExpression":
		node.Kind = KindCall
		callee := n.Get("callee")
		node.Callee = c.convert(callee)
		node.Name = estreeCalleeName(callee)
		for _, a := range n.Get("arguments").Array() {
			if arg := c.convert(a); arg != nil {
				node.Args = append(node.Args, arg)
			}
		}

	case "JSXElement":
		return c.convert(n.Get("openingElement"))

	case "JSXOpeningElement":
		node.Kind = KindElement
		node.Name = estreeJSXName(n.Get("name"))
		for _, a := range n.Get("attributes").Array() {
			if a.Get("type").String() != "JSXAttribute" {
				continue
			}
			attr := &Node{
				Kind: KindAttribute,
				Type: "JSXAttribute",
				File: c.file,
				Loc:  estreeLoc(a),
				Name: estreeJSXName(a.Get("name")),
				Init: c.convert(a.Get("value")),
			}
			node.Attributes = append(node.Attributes, attr)
		}

	case "ParenthesizedExpression", "JSXExpressionContainer":
		if inner := c.convert(n.Get("expression")); inner != nil {
			return inner
		}
	}

	return node
}

// property converts one member of an ObjectExpression. Spread members are
// kept as computed properties so that inspectors skip them.
func (c estreeConverter) property(p gjson.Result) *Node {
	if !p.IsObject() {
		return nil
	}

	node := &Node{
		Kind: KindProperty,
		Type: p.Get("type").String(),
		File: c.file,
		Loc:  estreeLoc(p),
	}

	switch node.Type {
	case "Property", "ObjectProperty":
		node.Init = c.convert(p.Get("value"))
		if p.Get("computed").Bool() {
			node.Computed = true
			return node
		}
		key := p.Get("key")
		switch key.Get("type").String() {
		case "Identifier":
			node.Name = key.Get("name").String()
		case "Literal", "StringLiteral", "NumericLiteral":
			node.Name = key.Get("value").String()
		}
		node.Computed = node.Name == ""
	default:
		node.Computed = true
	}

	return node
}

// estreeCalleeName returns the statically known name of a callee: the
// identifier itself or the property of a non-computed member expression.
func estreeCalleeName(callee gjson.Result) string {
	switch callee.Get("type").String() {
	case "Identifier":
		return callee.Get("name").String()
	case "MemberExpression", "OptionalMemberExpression":
		if callee.Get("computed").Bool() {
			return ""
		}
		return estreeCalleeName(callee.Get("property"))
	}
	return ""
}

// estreeJSXName returns the tag or attribute name of a JSX name node.
func estreeJSXName(name gjson.Result) string {
	switch name.Get("type").String() {
	case "JSXIdentifier":
		return name.Get("name").String()
	case "JSXMemberExpression":
		return estreeJSXName(name.Get("property"))
	case "JSXNamespacedName":
		return name.Get("namespace.name").String() + ":" + name.Get("name.name").String()
	}
	return ""
}

// estreeLoc converts ESTree's 0-based columns to 1-based ones.
func estreeLoc(n gjson.Result) Location {
	loc := Location{
		Start: Position{
			Line:   int(n.Get("loc.start.line").Int()),
			Column: int(n.Get("loc.start.column").Int()) + 1,
			Offset: -1,
		},
		End: Position{
			Line:   int(n.Get("loc.end.line").Int()),
			Column: int(n.Get("loc.end.column").Int()) + 1,
			Offset: -1,
		},
	}

	if start := n.Get("start"); start.Type == gjson.Number {
		loc.Start.Offset = int(start.Int())
		loc.End.Offset = int(n.Get("end").Int())
	} else if r := n.Get("range"); r.IsArray() {
		loc.Start.Offset = int(r.Get("0").Int())
		loc.End.Offset = int(r.Get("1").Int())
	}

	return loc
}
