package ast

import (
	"fmt"
	goast "go/ast"
	"go/token"
	"go/types"
	"strconv"
)

// GoSites returns every localize site in a Go file, in source order.
// info may be nil; it only sharpens fmt.Sprintf and map literal detection.
func GoSites(fset *token.FileSet, info *types.Info, file *goast.File, names Names) []Site {
	var sites []Site
	goast.Inspect(file, func(n goast.Node) bool {
		if site, ok := GoSiteFor(fset, info, n, names); ok {
			sites = append(sites, site)
		}
		return true
	})
	return sites
}

// GoSiteFor converts n into a Site when it is a call to a localize function
// or a composite literal of the localize component type.
func GoSiteFor(fset *token.FileSet, info *types.Info, n goast.Node, names Names) (Site, bool) {
	c := goConverter{fset: fset, info: info}

	switch n := n.(type) {
	case *goast.CallExpr:
		if !names.IsFunction(goCalleeName(n.Fun)) {
			return Site{}, false
		}
		return Site{Kind: SiteCall, Node: c.call(n)}, true

	case *goast.CompositeLit:
		if n.Type == nil || !names.IsComponent(goTypeName(n.Type)) {
			return Site{}, false
		}
		return Site{Kind: SiteComponent, Node: c.element(n)}, true
	}

	return Site{}, false
}

// GoExpr converts a single Go expression. It is exported for hosts that
// locate call sites themselves.
func GoExpr(fset *token.FileSet, info *types.Info, e goast.Expr) *Node {
	return goConverter{fset: fset, info: info}.expr(e)
}

type goConverter struct {
	fset *token.FileSet
	info *types.Info
}

func (c goConverter) base(n goast.Node, kind Kind) *Node {
	start := c.fset.Position(n.Pos())
	end := c.fset.Position(n.End())
	return &Node{
		Kind: kind,
		Type: fmt.Sprintf("%T", n),
		File: start.Filename,
		Loc: Location{
			Start: Position{Line: start.Line, Column: start.Column, Offset: start.Offset},
			End:   Position{Line: end.Line, Column: end.Column, Offset: end.Offset},
		},
		Pos: n.Pos(),
		End: n.End(),
	}
}

func (c goConverter) expr(e goast.Expr) *Node {
	switch e := e.(type) {
	case nil:
		return nil

	case *goast.ParenExpr:
		return c.expr(e.X)

	case *goast.BasicLit:
		node := c.base(e, KindOther)
		if e.Kind == token.STRING {
			node.Kind = KindStringLiteral
			node.Value = unquote(e.Value)
		}
		return node

	case *goast.Ident:
		node := c.base(e, KindIdentifier)
		node.Name = e.Name
		return node

	case *goast.BinaryExpr:
		node := c.base(e, KindBinary)
		node.Operator = e.Op.String()
		node.Left = c.expr(e.X)
		node.Right = c.expr(e.Y)
		return node

	case *goast.CallExpr:
		if c.isSprintf(e) {
			return c.sprintf(e)
		}
		return c.call(e)

	case *goast.UnaryExpr:
		if lit, ok := e.X.(*goast.CompositeLit); ok && e.Op == token.AND {
			return c.object(lit)
		}

	case *goast.CompositeLit:
		return c.object(e)
	}

	return c.base(e, KindOther)
}

func (c goConverter) call(e *goast.CallExpr) *Node {
	node := c.base(e, KindCall)
	node.Callee = c.expr(e.Fun)
	node.Name = goCalleeName(e.Fun)
	for _, arg := range e.Args {
		node.Args = append(node.Args, c.expr(arg))
	}
	return node
}

// sprintf turns fmt.Sprintf(format, args...) into a template literal whose
// holes are the formatting arguments.
func (c goConverter) sprintf(e *goast.CallExpr) *Node {
	node := c.base(e, KindTemplateLiteral)
	if len(e.Args) == 0 {
		return node
	}
	if lit, ok := e.Args[0].(*goast.BasicLit); ok && lit.Kind == token.STRING {
		node.Value = unquote(lit.Value)
	}
	for _, arg := range e.Args[1:] {
		node.Expressions = append(node.Expressions, c.expr(arg))
	}
	return node
}

func (c goConverter) object(lit *goast.CompositeLit) *Node {
	node := c.base(lit, KindObject)
	isMap := c.isMapLiteral(lit)

	for _, elt := range lit.Elts {
		kv, ok := elt.(*goast.KeyValueExpr)
		if !ok {
			continue
		}
		prop := c.base(kv, KindProperty)
		prop.Init = c.expr(kv.Value)

		switch key := kv.Key.(type) {
		case *goast.BasicLit:
			if key.Kind == token.STRING {
				prop.Name = unquote(key.Value)
			}
		case *goast.Ident:
			// Identifier keys name struct fields; in map literals they are
			// variables and the key is unknown.
			if !isMap {
				prop.Name = key.Name
			}
		}
		prop.Computed = prop.Name == ""
		node.Properties = append(node.Properties, prop)
	}

	return node
}

func (c goConverter) element(lit *goast.CompositeLit) *Node {
	node := c.base(lit, KindElement)
	node.Name = goTypeName(lit.Type)

	for _, elt := range lit.Elts {
		kv, ok := elt.(*goast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*goast.Ident)
		if !ok {
			continue
		}
		attr := c.base(kv, KindAttribute)
		attr.Name = key.Name
		attr.Init = c.expr(kv.Value)
		node.Attributes = append(node.Attributes, attr)
	}

	return node
}

func (c goConverter) isSprintf(e *goast.CallExpr) bool {
	sel, ok := e.Fun.(*goast.SelectorExpr)
	if !ok || sel.Sel.Name != "Sprintf" {
		return false
	}
	pkg, ok := sel.X.(*goast.Ident)
	if !ok {
		return false
	}
	if c.info != nil {
		if pkgName, ok := c.info.Uses[pkg].(*types.PkgName); ok {
			return pkgName.Imported().Path() == "fmt"
		}
	}
	return pkg.Name == "fmt"
}

func (c goConverter) isMapLiteral(lit *goast.CompositeLit) bool {
	if c.info != nil {
		if t := c.info.TypeOf(lit); t != nil {
			_, ok := t.Underlying().(*types.Map)
			return ok
		}
	}
	_, ok := lit.Type.(*goast.MapType)
	return ok
}

// goCalleeName returns the function name of a call: the identifier itself
// or the selected name of pkg.Func / recv.Method.
func goCalleeName(fun goast.Expr) string {
	switch fun := fun.(type) {
	case *goast.Ident:
		return fun.Name
	case *goast.SelectorExpr:
		return fun.Sel.Name
	case *goast.IndexExpr:
		return goCalleeName(fun.X)
	case *goast.ParenExpr:
		return goCalleeName(fun.X)
	}
	return ""
}

// goTypeName returns the bare type name of a composite literal type.
func goTypeName(t goast.Expr) string {
	switch t := t.(type) {
	case *goast.Ident:
		return t.Name
	case *goast.SelectorExpr:
		return t.Sel.Name
	case *goast.IndexExpr:
		return goTypeName(t.X)
	}
	return ""
}

// unquote returns the value of a Go string literal, falling back to
// stripping the delimiters when the literal is malformed.
func unquote(lit string) string {
	if s, err := strconv.Unquote(lit); err == nil {
		return s
	}
	if len(lit) < 2 {
		return ""
	}
	return lit[1 : len(lit)-1]
}
