package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// Primitives bundles the stateless helpers both validators are built on.
type Primitives struct {
	Extract  func(text string) PlaceholderSet
	Bindings func(obj *ast.Node) Bindings
	Classify func(n *ast.Node) Shape
}

// DefaultPrimitives are the package's own extractor, inspector and classifier.
var DefaultPrimitives = Primitives{
	Extract:  ExtractPlaceholders,
	Bindings: InspectBindings,
	Classify: Classify,
}

// CallSiteValidator checks localize(text, values?) invocations.
type CallSiteValidator struct {
	prims Primitives
	// extra enables avoidExtraProperties on the bindings argument.
	extra bool
}

// NewCallSiteValidator returns a validator using prims. With extra set, a
// binding that matches no placeholder of a literal template is reported too.
func NewCallSiteValidator(prims Primitives, extra bool) *CallSiteValidator {
	return &CallSiteValidator{prims: prims, extra: extra}
}

// Validate checks the argument list of one call.
//
// Position 0 must be a string literal or an identifier; position 1, when
// given, must be an object literal binding every placeholder of position 0;
// any further argument is reported individually.
func (v *CallSiteValidator) Validate(args []*ast.Node, r Reporter) {
	var (
		placeholders PlaceholderSet
		static       bool
	)

	for i, arg := range args {
		switch {
		case i == 0:
			placeholders, static = v.validateTemplate(arg, r)
			if placeholders.Len() > 0 && len(args) == 1 {
				report(r, RuleOnlyStringLiteralArgument, KindProvideValues, arg, map[string]string{
					DataIdentifiers: placeholders.Join(),
				})
			}

		case i == 1:
			v.validateBindings(arg, placeholders, static, r)

		default:
			report(r, RuleOnlyStringLiteralArgument, KindOnlyAcceptsTwoArguments, arg, nil)
		}
	}
}

// validateTemplate checks the first argument and returns its placeholders.
// static reports whether the template text is known.
func (v *CallSiteValidator) validateTemplate(arg *ast.Node, r Reporter) (PlaceholderSet, bool) {
	switch s := v.prims.Classify(arg).(type) {
	case StringLiteral:
		return v.prims.Extract(s.Value), true

	case Identifier:
		// Unknown statically; trusted.

	case BinaryConcat:
		// An identifier operand makes the key unverifiable.
		for _, operand := range []Shape{s.Left, s.Right} {
			if id, ok := operand.(Identifier); ok {
				report(r, RuleOnlyStringLiteralArgument, KindOnlyStringLiteralAsFirstArgument, id.N, nil)
			}
		}

	case TemplateLiteral, ObjectLiteral, Other:
		report(r, RuleOnlyStringLiteralArgument, KindOnlyStringLiteralAsFirstArgument, arg, nil)
	}

	return PlaceholderSet{}, false
}

func (v *CallSiteValidator) validateBindings(arg *ast.Node, placeholders PlaceholderSet, static bool, r Reporter) {
	obj, ok := v.prims.Classify(arg).(ObjectLiteral)
	if !ok {
		report(r, RuleOnlyStringLiteralArgument, KindOnlyObjectExpressionAsSecondArgument, arg, nil)
		return
	}

	dir := CheckMissing
	if v.extra && static {
		dir |= CheckExtra
	}

	m := Diff(placeholders, v.prims.Bindings(obj.N), dir)
	reportMismatch(r, RuleOnlyStringLiteralArgument, m, obj.N)
}
