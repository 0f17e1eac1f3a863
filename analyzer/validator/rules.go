package validator

// Rule ids.
const (
	RuleOnlyStringLiteralArgument      = "only-string-literal-argument"
	RuleNoInvalidIdentifierInPropValue = "no-invalid-identifier-in-prop-value"
)

// Rule describes one check exposed to the host.
type Rule struct {
	ID          string
	Description string
	// Kinds are the diagnostics the rule may emit.
	Kinds []Kind
	// Recommended is the severity in the recommended configuration.
	Recommended Severity
}

// Rules is the rule catalogue, in display order.
var Rules = []Rule{
	{
		ID:          RuleOnlyStringLiteralArgument,
		Description: "Enforce static string templates and matching values in localize calls",
		Kinds: []Kind{
			KindOnlyStringLiteralAsFirstArgument,
			KindOnlyObjectExpressionAsSecondArgument,
			KindOnlyAcceptsTwoArguments,
			KindPassCorrectProperties,
			KindAvoidExtraProperties,
			KindProvideValues,
		},
		Recommended: SeverityError,
	},
	{
		ID:          RuleNoInvalidIdentifierInPropValue,
		Description: "Enforce static templates and matching values on the Localize component",
		Kinds: []Kind{
			KindInvalidTemplateLiteral,
			KindOnlyObjectExpressionAsSecondArgument,
			KindPassCorrectProperties,
			KindAvoidExtraProperties,
		},
		Recommended: SeverityError,
	},
}

// LookupRule returns the rule with the given id.
func LookupRule(id string) (Rule, bool) {
	for _, r := range Rules {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
