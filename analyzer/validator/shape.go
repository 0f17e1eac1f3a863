package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// Shape is the classification of one argument or attribute value. The set of
// shapes is closed: StringLiteral, Identifier, BinaryConcat, TemplateLiteral,
// ObjectLiteral and Other are its only implementations, and consumers switch
// over them exhaustively.
type Shape interface {
	// Node returns the classified node. It is nil only for Other shapes of
	// absent values.
	Node() *ast.Node
	shape()
}

// StringLiteral is a statically known string.
type StringLiteral struct {
	N     *ast.Node
	Value string
}

// Identifier is a bare variable reference. Its value is unknown statically
// and it is trusted wherever a template is expected.
type Identifier struct {
	N    *ast.Node
	Name string
}

// BinaryConcat is a "+" expression, decomposed into its classified operands.
type BinaryConcat struct {
	N           *ast.Node
	Left, Right Shape
}

// TemplateLiteral is a string with embedded expressions. Holes is empty for
// template literals without interpolation.
type TemplateLiteral struct {
	N     *ast.Node
	Text  string
	Holes []*ast.Node
}

// ObjectLiteral is an object-like literal whose keys can be inspected.
type ObjectLiteral struct {
	N *ast.Node
}

// Other is any value the checks cannot reason about.
type Other struct {
	N *ast.Node
}

func (s StringLiteral) Node() *ast.Node   { return s.N }
func (s Identifier) Node() *ast.Node      { return s.N }
func (s BinaryConcat) Node() *ast.Node    { return s.N }
func (s TemplateLiteral) Node() *ast.Node { return s.N }
func (s ObjectLiteral) Node() *ast.Node   { return s.N }
func (s Other) Node() *ast.Node           { return s.N }

func (StringLiteral) shape()   {}
func (Identifier) shape()      {}
func (BinaryConcat) shape()    {}
func (TemplateLiteral) shape() {}
func (ObjectLiteral) shape()   {}
func (Other) shape()           {}

// Classify returns the Shape of n. A nil node classifies as Other.
//
// Thread-safety: Pure function, safe for concurrent calls.
func Classify(n *ast.Node) Shape {
	if n == nil {
		return Other{}
	}

	switch n.Kind {
	case ast.KindStringLiteral:
		return StringLiteral{N: n, Value: n.Value}
	case ast.KindIdentifier:
		return Identifier{N: n, Name: n.Name}
	case ast.KindBinary:
		if n.Operator == "+" {
			return BinaryConcat{N: n, Left: Classify(n.Left), Right: Classify(n.Right)}
		}
	case ast.KindTemplateLiteral:
		return TemplateLiteral{N: n, Text: n.Value, Holes: n.Expressions}
	case ast.KindObject:
		return ObjectLiteral{N: n}
	}

	return Other{N: n}
}
