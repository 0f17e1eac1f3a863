// Package localizeusage defines an Analyzer that checks localize calls and
// Localize component literals in Go code.
//
// # Analyzer localizeusage
//
// localizeusage: check that localize templates are static and that every
// {{placeholder}} they contain is bound.
//
// A call such as
//
//	localize("Hello {{name}}")
//
// is reported because the template needs a value for name, and
//
//	localize("Hello " + user)
//
// because the key cannot be verified statically. Component literals
// (Localize{Text: ..., Values: ...}) are checked the same way, with
// fmt.Sprintf in Text reported once per formatting argument.
package localizeusage

import (
	goast "go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/abiiranathan/localize-usage/analyzer/ast"
	"github.com/abiiranathan/localize-usage/analyzer/catalog"
	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

const doc = `check that localize templates are static and that every {{placeholder}} they contain is bound

Calls to the localize functions must pass a string literal (or a variable
holding a key) and an object literal binding every placeholder. Localize
component literals must bind every placeholder of their Text field in their
Values field.`

// Analyzer uses the recommended configuration; its flags adjust it.
var Analyzer = New(validator.DefaultConfig)

// New returns an analyzer checking with cfg. Its -functions, -component and
// -extra-properties flags override the matching cfg fields.
func New(cfg validator.AnalysisConfig) *analysis.Analyzer {
	s := &settings{
		base:      cfg,
		functions: strings.Join(cfg.FunctionNames, ","),
		component: cfg.ComponentName,
		extra:     cfg.ExtraProperties,
	}

	a := &analysis.Analyzer{
		Name:     "localizeusage",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      s.run,
	}
	a.Flags.StringVar(&s.functions, "functions", s.functions, "comma-separated names of the localize functions")
	a.Flags.StringVar(&s.component, "component", s.component, "type name of the localize component")
	a.Flags.BoolVar(&s.extra, "extra-properties", s.extra, "also report bindings that match no placeholder")
	return a
}

type settings struct {
	base      validator.AnalysisConfig
	functions string
	component string
	extra     bool
}

func (s *settings) config() validator.AnalysisConfig {
	cfg := s.base
	cfg.FunctionNames = nil
	for _, fn := range strings.Split(s.functions, ",") {
		if fn = strings.TrimSpace(fn); fn != "" {
			cfg.FunctionNames = append(cfg.FunctionNames, fn)
		}
	}
	cfg.ComponentName = s.component
	cfg.ExtraProperties = s.extra
	return cfg.ForGo()
}

func (s *settings) run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	cfg := s.config()
	names := validator.Names(cfg)
	checker := validator.NewChecker(cfg)
	printer := catalog.Default().Printer(catalog.BaseLocale)

	reporter := validator.ReporterFunc(func(d validator.Diagnostic) {
		if d.Node == nil {
			return
		}
		pass.Report(analysis.Diagnostic{
			Pos:      d.Node.Pos,
			End:      d.Node.End,
			Category: d.Rule,
			Message:  printer.Message(d.Kind, d.Data),
		})
	})

	nodeFilter := []goast.Node{
		(*goast.CallExpr)(nil),
		(*goast.CompositeLit)(nil),
	}
	insp.Preorder(nodeFilter, func(n goast.Node) {
		if site, ok := ast.GoSiteFor(pass.Fset, pass.TypesInfo, n, names); ok {
			checker.CheckSite(site, reporter)
		}
	})

	return nil, nil
}
