// Package validator
/*
Package validator checks that localize calls and Localize component usages
supply exactly the values their message templates need.

A template is a string literal carrying {{name}} placeholders. The validator
provides:
  - Placeholder extraction from template text
  - Classification of argument shapes (literal, identifier, concatenation,
    template literal, object literal)
  - Call-site validation of localize(text, values?)
  - Component-usage validation of the text and values attributes
  - A bidirectional placeholder/bindings diff shared by both surfaces

Validators are pure: they inspect the nodes handed to them and emit
Diagnostics to a Reporter, keeping no state between sites.
*/
package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// Checker dispatches localize sites to the validator of their kind and
// stamps the configured severity on every finding.
//
// Thread-safety: A Checker is immutable after construction and safe for
// concurrent use.
type Checker struct {
	calls      *CallSiteValidator
	components *ComponentValidator
	severities map[string]Severity
}

// NewChecker builds a Checker from cfg using the default primitives with a
// memoising placeholder extractor.
func NewChecker(cfg AnalysisConfig) *Checker {
	return NewCheckerWith(cfg, CachedPrimitives())
}

// NewCheckerWith builds a Checker from cfg using prims.
func NewCheckerWith(cfg AnalysisConfig, prims Primitives) *Checker {
	severities := make(map[string]Severity, len(Rules))
	for _, r := range Rules {
		severities[r.ID] = cfg.Severity(r.ID)
	}

	return &Checker{
		calls:      NewCallSiteValidator(prims, cfg.ExtraProperties),
		components: NewComponentValidator(prims, cfg.TextAttribute, cfg.ValuesAttribute, cfg.ExtraProperties),
		severities: severities,
	}
}

// Names returns the site finder configuration matching cfg.
func Names(cfg AnalysisConfig) ast.Names {
	return ast.Names{Functions: cfg.FunctionNames, Component: cfg.ComponentName}
}

// CheckSite validates one site and forwards its findings to r.
func (c *Checker) CheckSite(site ast.Site, r Reporter) {
	if site.Node == nil {
		return
	}

	switch site.Kind {
	case ast.SiteCall:
		sev := c.severities[RuleOnlyStringLiteralArgument]
		if sev == SeverityOff {
			return
		}
		c.calls.Validate(site.Node.Args, withSeverity(r, sev))

	case ast.SiteComponent:
		sev := c.severities[RuleNoInvalidIdentifierInPropValue]
		if sev == SeverityOff {
			return
		}
		c.components.Validate(site.Node, withSeverity(r, sev))
	}
}

// Check validates every site and returns the findings in emission order.
func (c *Checker) Check(sites []ast.Site) []Diagnostic {
	var col Collector
	for _, site := range sites {
		c.CheckSite(site, &col)
	}
	return col.Diagnostics
}

func withSeverity(r Reporter, sev Severity) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		d.Severity = sev
		r.Report(d)
	})
}
