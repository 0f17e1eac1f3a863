package validator

import "github.com/abiiranathan/localize-usage/analyzer/ast"

// Binding is one statically named property of a bindings object.
type Binding struct {
	Name string
	Node *ast.Node
}

// Bindings are the named properties of a bindings object in declaration order.
type Bindings []Binding

// InspectBindings returns the statically named properties of an object
// literal node. Computed keys and spreads are ignored; a nil or non-object
// node has no bindings.
func InspectBindings(obj *ast.Node) Bindings {
	if obj == nil || obj.Kind != ast.KindObject {
		return nil
	}

	var out Bindings
	for _, prop := range obj.Properties {
		if prop == nil || prop.Computed || prop.Name == "" {
			continue
		}
		out = append(out, Binding{Name: prop.Name, Node: prop})
	}
	return out
}

// Has reports whether a binding named name exists.
func (b Bindings) Has(name string) bool {
	for _, binding := range b {
		if binding.Name == name {
			return true
		}
	}
	return false
}

// Names returns the binding names in declaration order.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b))
	for _, binding := range b {
		names = append(names, binding.Name)
	}
	return names
}
