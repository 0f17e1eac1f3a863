package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// Direction selects which sides of a placeholder/bindings comparison are checked.
type Direction uint8

const (
	// CheckMissing looks for placeholders without a binding.
	CheckMissing Direction = 1 << iota
	// CheckExtra looks for bindings without a placeholder.
	CheckExtra
)

// Mismatch is the outcome of comparing a placeholder set with bindings.
type Mismatch struct {
	// Missing are the placeholders with no binding, in placeholder order.
	Missing []string
	// Extra is the first binding with no placeholder, or nil.
	Extra *Binding
}

// Diff compares placeholders with bindings in the enabled directions.
// Only the first extra binding is reported.
func Diff(placeholders PlaceholderSet, bindings Bindings, dir Direction) Mismatch {
	var m Mismatch

	if dir&CheckMissing != 0 {
		for _, name := range placeholders.names {
			if !bindings.Has(name) {
				m.Missing = append(m.Missing, name)
			}
		}
	}

	if dir&CheckExtra != 0 {
		for i := range bindings {
			if !placeholders.Has(bindings[i].Name) {
				m.Extra = &bindings[i]
				break
			}
		}
	}

	return m
}

// CheckExtras reports the first binding whose name is not a placeholder as
// avoidExtraProperties, addressed to the binding's property node. It emits
// at most one diagnostic and returns whether it did.
func CheckExtras(bindings Bindings, placeholders PlaceholderSet, rule string, r Reporter) bool {
	return reportExtra(r, rule, Diff(placeholders, bindings, CheckExtra).Extra)
}

// reportMismatch emits passCorrectProperties on target for the missing names
// and avoidExtraProperties for the extra binding, in that order.
func reportMismatch(r Reporter, rule string, m Mismatch, target *ast.Node) {
	if len(m.Missing) > 0 {
		report(r, rule, KindPassCorrectProperties, target, map[string]string{
			DataIdentifiers: joinNames(m.Missing),
		})
	}
	reportExtra(r, rule, m.Extra)
}

func reportExtra(r Reporter, rule string, extra *Binding) bool {
	if extra == nil {
		return false
	}
	report(r, rule, KindAvoidExtraProperties, extra.Node, map[string]string{
		DataProperty: extra.Name,
	})
	return true
}
