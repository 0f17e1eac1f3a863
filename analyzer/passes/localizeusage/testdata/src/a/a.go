package a

import "fmt"

func localize(text string, values ...any) string { return text }

type Localize struct {
	Text   string
	Values map[string]any
}

type i18n struct{}

func (i18n) localize(text string, values ...any) string { return text }

func calls(key, name string, vals map[string]any) {
	localize("Hello")
	localize("Hello {{name}}", map[string]any{"name": name})
	localize("Hello {{ name }}", map[string]any{"name": name, "unused": 1})
	localize(key)
	localize(key, vals) // want `second argument must be an object`
	localize("Hello {{Name}}", struct{ Name string }{Name: name})
	i18n{}.localize("Hi {{name}}") // want `provide value for \(name\) on second argument`

	localize("Hi {{name}}")                                          // want `provide value for \(name\) on second argument`
	localize("Hi {{name}} {{count}}", map[string]any{"name": name}) // want `object must have these properties \(count\)`
	localize("Hi {{name}}", map[string]any{name: name})             // want `object must have these properties \(name\)`
	localize("Hi " + key)                                            // want `first argument must be a string literal`
	localize(fmt.Sprintf("Hi %s", name))                             // want `first argument must be a string literal`
	localize("Hi", nil)                                              // want `second argument must be an object`
	localize("Hi", map[string]any{}, 3)                              // want `this function only accepts 2 arguments`
}

func components(name string, vals map[string]any) {
	_ = Localize{Text: "Hello"}
	_ = Localize{Text: "Hi {{name}}", Values: map[string]any{"name": name}}
	_ = &Localize{Text: "Hi {{name}}", Values: map[string]any{"name": name, "extra": 1}}
	_ = Localize{Text: "Hi {{name}}"}                                           // want `object must have these properties \(name\)`
	_ = Localize{Text: "Hi {{name}} {{n}}", Values: map[string]any{"name": name}} // want `object must have these properties \(n\)`
	_ = Localize{Text: "Hi {{name}}", Values: vals}                             // want `second argument must be an object`
	_ = Localize{Text: fmt.Sprintf("Hi %s", name)}                              // want `template literals with expressions are not allowed`
}
