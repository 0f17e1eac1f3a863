package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// Node builders for tests. Columns only serve to tell nodes apart.

func str(value string, col int) *ast.Node {
	return &ast.Node{Kind: ast.KindStringLiteral, Type: "Literal", Value: value, Loc: at(col)}
}

func ident(name string, col int) *ast.Node {
	return &ast.Node{Kind: ast.KindIdentifier, Type: "Identifier", Name: name, Loc: at(col)}
}

func num(col int) *ast.Node {
	return &ast.Node{Kind: ast.KindOther, Type: "Literal", Loc: at(col)}
}

func concat(left, right *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KindBinary, Type: "BinaryExpression", Operator: "+", Left: left, Right: right, Loc: left.Loc}
}

func tmpl(text string, col int, holes ...*ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KindTemplateLiteral, Type: "TemplateLiteral", Value: text, Expressions: holes, Loc: at(col)}
}

func obj(col int, props ...*ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KindObject, Type: "ObjectExpression", Properties: props, Loc: at(col)}
}

func prop(name string, col int) *ast.Node {
	return &ast.Node{Kind: ast.KindProperty, Type: "Property", Name: name, Init: ident(name, col), Loc: at(col)}
}

func computedProp(col int) *ast.Node {
	return &ast.Node{Kind: ast.KindProperty, Type: "Property", Computed: true, Loc: at(col)}
}

func element(attrs ...*ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KindElement, Type: "JSXOpeningElement", Name: "Localize", Attributes: attrs, Loc: at(1)}
}

func attr(name string, value *ast.Node, col int) *ast.Node {
	return &ast.Node{Kind: ast.KindAttribute, Type: "JSXAttribute", Name: name, Init: value, Loc: at(col)}
}

func at(col int) ast.Location {
	return ast.Location{
		Start: ast.Position{Line: 1, Column: col, Offset: -1},
		End:   ast.Position{Line: 1, Column: col + 1, Offset: -1},
	}
}

func args(nodes ...*ast.Node) []*ast.Node { return nodes }

func ids(names string) map[string]string {
	return map[string]string{DataIdentifiers: names}
}

func property(name string) map[string]string {
	return map[string]string{DataProperty: name}
}
