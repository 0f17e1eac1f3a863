package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// Kind identifies a diagnostic. Its value doubles as the message id used to
// look up host-facing text.
type Kind string

const (
	// KindOnlyStringLiteralAsFirstArgument: the template (or a concatenation
	// operand) is not a statically verifiable string literal.
	KindOnlyStringLiteralAsFirstArgument Kind = "onlyStringLiteralAsFirstArgument"
	// KindOnlyObjectExpressionAsSecondArgument: the bindings are not an object literal.
	KindOnlyObjectExpressionAsSecondArgument Kind = "onlyObjectExpressionAsSecondArgument"
	// KindOnlyAcceptsTwoArguments: an argument beyond the second.
	KindOnlyAcceptsTwoArguments Kind = "onlyAcceptsTwoArguments"
	// KindPassCorrectProperties: placeholders without a binding.
	KindPassCorrectProperties Kind = "passCorrectProperties"
	// KindAvoidExtraProperties: a binding without a placeholder.
	KindAvoidExtraProperties Kind = "avoidExtraProperties"
	// KindProvideValues: placeholders but no bindings argument at all.
	KindProvideValues Kind = "provideValues"
	// KindInvalidTemplateLiteral: dynamic interpolation inside the template text.
	KindInvalidTemplateLiteral Kind = "invalidTemplateLiteral"
)

// Kinds lists every diagnostic kind.
var Kinds = []Kind{
	KindOnlyStringLiteralAsFirstArgument,
	KindOnlyObjectExpressionAsSecondArgument,
	KindOnlyAcceptsTwoArguments,
	KindPassCorrectProperties,
	KindAvoidExtraProperties,
	KindProvideValues,
	KindInvalidTemplateLiteral,
}

// Data keys carried by diagnostics.
const (
	DataIdentifiers = "identifiers"
	DataProperty    = "property"
)

// Diagnostic is one finding addressed to a node.
type Diagnostic struct {
	Kind Kind
	// Rule is the id of the rule whose validator produced the finding.
	Rule string
	// Severity is filled in by the Checker from the rule configuration.
	Severity Severity
	// Node is the node the finding is reported on.
	Node *ast.Node
	// Data holds the message interpolation values.
	Data map[string]string
}

// Reporter is the sink validators emit diagnostics to.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Collector is a Reporter that keeps every diagnostic in emission order.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

func report(r Reporter, rule string, kind Kind, node *ast.Node, data map[string]string) {
	r.Report(Diagnostic{Kind: kind, Rule: rule, Node: node, Data: data})
}
