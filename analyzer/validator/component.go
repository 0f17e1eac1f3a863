package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// ComponentValidator checks declarative usages such as
// <Localize i18n_default_text="..." values={{...}} />.
type ComponentValidator struct {
	prims     Primitives
	textAttr  string
	valueAttr string
	extra     bool
}

// NewComponentValidator returns a validator looking up the template in
// textAttr and the bindings in valuesAttr. With extra set, a binding that
// matches no placeholder is reported too.
func NewComponentValidator(prims Primitives, textAttr, valuesAttr string, extra bool) *ComponentValidator {
	return &ComponentValidator{
		prims:     prims,
		textAttr:  textAttr,
		valueAttr: valuesAttr,
		extra:     extra,
	}
}

// Validate checks one usage node (a KindElement node with attributes).
func (v *ComponentValidator) Validate(usage *ast.Node, r Reporter) {
	if usage == nil {
		return
	}

	_, text := attribute(usage.Attributes, v.textAttr)
	valuesAttr, values := attribute(usage.Attributes, v.valueAttr)

	var (
		placeholders PlaceholderSet
		static       bool
	)

	if text != nil {
		switch s := v.prims.Classify(text).(type) {
		case TemplateLiteral:
			if len(s.Holes) > 0 {
				// Every hole is reported and nothing else is checked.
				for _, hole := range s.Holes {
					report(r, RuleNoInvalidIdentifierInPropValue, KindInvalidTemplateLiteral, hole, nil)
				}
				return
			}
			placeholders, static = v.prims.Extract(s.Text), true
		case StringLiteral:
			placeholders, static = v.prims.Extract(s.Value), true
		case Identifier, BinaryConcat, ObjectLiteral, Other:
			// Not statically known.
		}
	}

	if valuesAttr == nil {
		if placeholders.Len() > 0 {
			report(r, RuleNoInvalidIdentifierInPropValue, KindPassCorrectProperties, usage, map[string]string{
				DataIdentifiers: placeholders.Join(),
			})
		}
		return
	}

	obj, ok := v.prims.Classify(values).(ObjectLiteral)
	if !ok {
		report(r, RuleNoInvalidIdentifierInPropValue, KindOnlyObjectExpressionAsSecondArgument, valuesAttr, nil)
		return
	}

	dir := CheckMissing
	if v.extra && static {
		dir |= CheckExtra
	}

	m := Diff(placeholders, v.prims.Bindings(obj.N), dir)
	reportMismatch(r, RuleNoInvalidIdentifierInPropValue, m, valuesAttr)
}
