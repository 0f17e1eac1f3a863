package extra

func localize(text string, values ...any) string { return text }

type Localize struct {
	Text   string
	Values map[string]any
}

func calls(key, name string) {
	localize("Hi {{name}}", map[string]any{"name": name})
	localize("Hi {{name}}", map[string]any{"name": name, "mock_value": 1}) // want `mock_value, this extra property is not present in the string literal`
	localize("Hi", map[string]any{"a": 1, "b": 2})                         // want `a, this extra property is not present in the string literal`
	localize("Hi {{a}}", map[string]any{"b": 1})                           // want `object must have these properties \(a\)` `b, this extra property is not present in the string literal`
	localize(key, map[string]any{"anything": name})
}

func components(name string) {
	_ = Localize{Text: "Hi", Values: map[string]any{"mock_value": name}} // want `mock_value, this extra property is not present in the string literal`
}
