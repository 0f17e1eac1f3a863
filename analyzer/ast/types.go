package ast

import "go/token"

// Kind is the syntactic category of a Node as far as the localize checks
// are concerned. Hosts map their own node types onto these kinds.
type Kind uint8

const (
	// KindOther is any expression the checks do not inspect further.
	KindOther Kind = iota
	// KindStringLiteral is a static string value.
	KindStringLiteral
	// KindIdentifier is a bare variable reference.
	KindIdentifier
	// KindBinary is a binary expression; Operator holds the operator.
	KindBinary
	// KindTemplateLiteral is a string with embedded expressions
	// (JavaScript template literals, fmt.Sprintf calls in Go).
	KindTemplateLiteral
	// KindObject is an object-like literal with key/value properties.
	KindObject
	// KindProperty is one key/value entry of a KindObject node.
	KindProperty
	// KindCall is a function invocation.
	KindCall
	// KindElement is a declarative component usage (JSX element, Go composite literal).
	KindElement
	// KindAttribute is one named attribute of a KindElement node.
	KindAttribute
)

var kindNames = [...]string{
	KindOther:           "Other",
	KindStringLiteral:   "StringLiteral",
	KindIdentifier:      "Identifier",
	KindBinary:          "Binary",
	KindTemplateLiteral: "TemplateLiteral",
	KindObject:          "Object",
	KindProperty:        "Property",
	KindCall:            "Call",
	KindElement:         "Element",
	KindAttribute:       "Attribute",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Position is a 1-based line/column location inside a source file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	// Offset is the 0-based byte offset, or -1 when the host does not supply it.
	Offset int `json:"offset"`
}

// Location is the source span covered by a node.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Node is a host-neutral syntax node. Only the fields relevant to the node's
// Kind are populated; everything else stays at its zero value.
type Node struct {
	// Kind is the category used by the validators.
	Kind Kind
	// Type is the host's own node type tag (e.g. "Literal", "*ast.BasicLit").
	Type string
	// File is the source file the node was read from.
	File string
	// Loc is the node's span.
	Loc Location
	// Pos and End are set for nodes built from Go source and are NoPos otherwise.
	Pos, End token.Pos

	// Name holds identifier names, property keys, attribute names,
	// callee names and element tag names.
	Name string
	// Value holds the value of string literals and the static text of
	// template literals.
	Value string
	// Operator is the operator of a KindBinary node.
	Operator string
	// Left and Right are the operands of a KindBinary node.
	Left, Right *Node
	// Expressions are the embedded expressions of a KindTemplateLiteral node.
	Expressions []*Node
	// Properties are the entries of a KindObject node.
	Properties []*Node
	// Computed marks a property whose key is not statically known.
	Computed bool
	// Callee is the invoked expression of a KindCall node.
	Callee *Node
	// Args are the arguments of a KindCall node.
	Args []*Node
	// Attributes are the attributes of a KindElement node.
	Attributes []*Node
	// Init is the value of a KindProperty or KindAttribute node. It is nil
	// for valueless attributes.
	Init *Node
}

// SiteKind tells which validator a Site belongs to.
type SiteKind uint8

const (
	// SiteCall is a localize function invocation.
	SiteCall SiteKind = iota
	// SiteComponent is a declarative localize component usage.
	SiteComponent
)

func (k SiteKind) String() string {
	if k == SiteComponent {
		return "component"
	}
	return "call"
}

// Site is a recognised localize call or component usage.
type Site struct {
	Kind SiteKind
	// Node is a KindCall node for SiteCall and a KindElement node for SiteComponent.
	Node *Node
}

// Names tells the site finders which callees and components to look for.
type Names struct {
	// Functions are the localize function names, matched against the callee
	// identifier or the selected member name.
	Functions []string
	// Component is the localize component name.
	Component string
}

// IsFunction reports whether name is one of the configured localize functions.
func (n Names) IsFunction(name string) bool {
	if name == "" {
		return false
	}
	for _, fn := range n.Functions {
		if fn == name {
			return true
		}
	}
	return false
}

// IsComponent reports whether name is the configured component name.
func (n Names) IsComponent(name string) bool {
	return name != "" && name == n.Component
}
