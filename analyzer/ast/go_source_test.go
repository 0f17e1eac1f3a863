package ast

import (
	goast "go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Statements start at column 1 so reported columns are easy to read.
const goSource = `package p

import "fmt"

func f(name, key string) {
localize("Hi {{name}}", map[string]any{"name": name})
localize(fmt.Sprintf("Hi %s", name))
i18n.localize("x" + key)
localize("a", map[string]any{name: 1})
_ = Localize{Text: "Hi {{a}}", Values: Values{A: 1}}
_ = &ui.Localize{Text: key}
other("x")
localize(` + "`raw {{x}}`" + `, (Values{X: 1}), 3)
}
`

func parseGo(t *testing.T) (*token.FileSet, *goast.File) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "p.go", goSource, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return fset, f
}

func TestGoSites(t *testing.T) {
	fset, f := parseGo(t)
	sites := GoSites(fset, nil, f, defaultNames)

	type siteView struct {
		Kind SiteKind
		Line int
		Name string
	}
	var got []siteView
	for _, s := range sites {
		got = append(got, siteView{s.Kind, s.Node.Loc.Start.Line, s.Node.Name})
	}
	want := []siteView{
		{SiteCall, 6, "localize"},
		{SiteCall, 7, "localize"},
		{SiteCall, 8, "localize"},
		{SiteCall, 9, "localize"},
		{SiteComponent, 10, "Localize"},
		{SiteComponent, 11, "Localize"},
		{SiteCall, 13, "localize"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GoSites() mismatch (-want +got):\n%s", diff)
	}

	t.Run("literal and map bindings", func(t *testing.T) {
		call := sites[0].Node
		tmpl := call.Args[0]
		if tmpl.Kind != KindStringLiteral || tmpl.Value != "Hi {{name}}" {
			t.Errorf("template = %v %q", tmpl.Kind, tmpl.Value)
		}
		if tmpl.Loc.Start.Column != 10 || tmpl.File != "p.go" || tmpl.Type != "*ast.BasicLit" {
			t.Errorf("template at column %d in %q, type %q", tmpl.Loc.Start.Column, tmpl.File, tmpl.Type)
		}
		if !tmpl.Pos.IsValid() || tmpl.End <= tmpl.Pos {
			t.Errorf("template Pos/End = %v/%v", tmpl.Pos, tmpl.End)
		}
		obj := call.Args[1]
		if obj.Kind != KindObject || len(obj.Properties) != 1 || obj.Properties[0].Name != "name" || obj.Properties[0].Computed {
			t.Errorf("bindings = %+v", obj)
		}
	})

	t.Run("sprintf is a template literal", func(t *testing.T) {
		tl := sites[1].Node.Args[0]
		if tl.Kind != KindTemplateLiteral || tl.Value != "Hi %s" || len(tl.Expressions) != 1 {
			t.Fatalf("Sprintf = %v %q holes=%d", tl.Kind, tl.Value, len(tl.Expressions))
		}
		if tl.Expressions[0].Name != "name" {
			t.Errorf("hole = %q", tl.Expressions[0].Name)
		}
	})

	t.Run("concatenation", func(t *testing.T) {
		bin := sites[2].Node.Args[0]
		if bin.Kind != KindBinary || bin.Operator != "+" || bin.Right.Kind != KindIdentifier {
			t.Errorf("concat = %v %q right=%v", bin.Kind, bin.Operator, bin.Right.Kind)
		}
	})

	t.Run("map identifier keys are computed", func(t *testing.T) {
		p := sites[3].Node.Args[1].Properties[0]
		if !p.Computed || p.Name != "" {
			t.Errorf("property = %q computed=%v", p.Name, p.Computed)
		}
	})

	t.Run("component literal", func(t *testing.T) {
		el := sites[4].Node
		if el.Kind != KindElement || len(el.Attributes) != 2 {
			t.Fatalf("element = %v with %d attributes", el.Kind, len(el.Attributes))
		}
		if a := el.Attributes[0]; a.Name != "Text" || a.Init.Kind != KindStringLiteral {
			t.Errorf("Text attribute = %q %v", a.Name, a.Init.Kind)
		}
		values := el.Attributes[1]
		if values.Name != "Values" || values.Init.Kind != KindObject || values.Init.Properties[0].Name != "A" {
			t.Errorf("Values attribute = %+v", values)
		}
		if values.Loc.Start.Column != 32 {
			t.Errorf("Values attribute column = %d, want 32", values.Loc.Start.Column)
		}
	})

	t.Run("qualified component", func(t *testing.T) {
		el := sites[5].Node
		if el.Attributes[0].Init.Kind != KindIdentifier {
			t.Errorf("Text = %v", el.Attributes[0].Init.Kind)
		}
	})

	t.Run("raw string and parenthesised struct", func(t *testing.T) {
		a := sites[6].Node.Args
		if len(a) != 3 {
			t.Fatalf("args = %d", len(a))
		}
		if a[0].Value != "raw {{x}}" {
			t.Errorf("raw literal = %q", a[0].Value)
		}
		if a[1].Kind != KindObject || a[1].Properties[0].Name != "X" {
			t.Errorf("struct bindings = %+v", a[1])
		}
		if a[2].Kind != KindOther {
			t.Errorf("int literal kind = %v", a[2].Kind)
		}
	})
}

func TestGoSiteForIgnoresOtherNodes(t *testing.T) {
	fset, f := parseGo(t)
	if _, ok := GoSiteFor(fset, nil, f, defaultNames); ok {
		t.Error("GoSiteFor(*ast.File) reported a site")
	}

	var calls int
	goast.Inspect(f, func(n goast.Node) bool {
		if _, ok := GoSiteFor(fset, nil, n, Names{Functions: []string{"other"}}); ok {
			calls++
		}
		return true
	})
	if calls != 1 {
		t.Errorf("custom function sites = %d, want 1", calls)
	}
}

func TestGoExpr(t *testing.T) {
	fset := token.NewFileSet()
	e, err := parser.ParseExprFrom(fset, "e.go", `("a" + "b")`, 0)
	if err != nil {
		t.Fatal(err)
	}
	n := GoExpr(fset, nil, e)
	if n.Kind != KindBinary || n.Left.Value != "a" || n.Right.Value != "b" {
		t.Errorf("GoExpr() = %+v", n)
	}
	if GoExpr(fset, nil, nil) != nil {
		t.Error("GoExpr(nil) != nil")
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct{ in, want string }{
		{`"a\tb"`, "a\tb"},
		{"`raw`", "raw"},
		{`"bad\q"`, `bad\q`},
		{`"`, ""},
	}
	for _, tt := range tests {
		if got := unquote(tt.in); got != tt.want {
			t.Errorf("unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
