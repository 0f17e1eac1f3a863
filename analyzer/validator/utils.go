package validator

import (
	"strings"

	"github.com/abiiranathan/localize-usage/analyzer/ast"
)

// joinNames renders an identifier list the way diagnostic data carries it.
func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

// Result flattens d into a ValidationResult carrying the rendered message.
func (d Diagnostic) Result(message string) ValidationResult {
	res := ValidationResult{
		Rule:      d.Rule,
		MessageID: d.Kind,
		Message:   message,
		Severity:  d.Severity,
		Data:      d.Data,
	}

	if n := d.Node; n != nil {
		res.File = n.File
		res.Line = n.Loc.Start.Line
		res.Column = n.Loc.Start.Column
		res.EndLine = n.Loc.End.Line
		res.EndColumn = n.Loc.End.Column
		res.NodeType = n.Type
	}

	return res
}

// attribute returns the attribute named name and its value node. Both are
// nil when the attribute is absent; when it is repeated the last one wins.
func attribute(attrs []*ast.Node, name string) (attr, value *ast.Node) {
	for _, a := range attrs {
		if a != nil && a.Name == name {
			attr, value = a, a.Init
		}
	}
	return attr, value
}
