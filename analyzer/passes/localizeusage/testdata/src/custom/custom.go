package custom

func tr(text string, values ...any) string { return text }

func localize(text string, values ...any) string { return text }

type Trans struct {
	Text   string
	Values map[string]any
}

type Localize struct {
	Text string
}

func f() {
	tr("Hi {{x}}") // want `provide value for \(x\) on second argument`
	localize("Hi {{x}}")
	_ = Trans{Text: "{{x}}"} // want `object must have these properties \(x\)`
	_ = Localize{Text: "{{x}}"}
}
