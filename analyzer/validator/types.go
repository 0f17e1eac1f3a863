package validator

import "fmt"

// Severity is how a rule's findings are treated by the host.
type Severity string

const (
	// SeverityError findings fail the run.
	SeverityError Severity = "error"
	// SeverityWarning findings are reported but do not fail the run.
	SeverityWarning Severity = "warning"
	// SeverityOff disables a rule.
	SeverityOff Severity = "off"
)

// ParseSeverity accepts the ESLint spellings ("error", "warn", "off", 2, 1, 0)
// as well as "warning".
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error", "2":
		return SeverityError, nil
	case "warn", "warning", "1":
		return SeverityWarning, nil
	case "off", "0":
		return SeverityOff, nil
	}
	return "", fmt.Errorf("invalid severity %q (want error, warn or off)", s)
}

// ValidationResult represents a single diagnostic in its flattened,
// serialisable form.
type ValidationResult struct {
	// File is the source file the finding belongs to.
	File string `json:"file"`
	// Line is the 1-based line of the reported node.
	Line int `json:"line"`
	// Column is the 1-based column of the reported node.
	Column int `json:"column"`
	// EndLine is the line where the reported node ends.
	EndLine int `json:"endLine,omitempty"`
	// EndColumn is the column where the reported node ends.
	EndColumn int `json:"endColumn,omitempty"`
	// Rule is the id of the rule that produced the finding.
	Rule string `json:"rule"`
	// MessageID is the diagnostic kind.
	MessageID Kind `json:"messageId"`
	// Message is the rendered, human-readable text.
	Message string `json:"message"`
	// Severity is "error" or "warning".
	Severity Severity `json:"severity"`
	// NodeType is the host node type of the reported node (e.g. "Identifier").
	NodeType string `json:"nodeType,omitempty"`
	// Data holds the message interpolation values.
	Data map[string]string `json:"data,omitempty"`
}

// AnalysisConfig defines the names the checks look for and how strict they are.
type AnalysisConfig struct {
	// FunctionNames are the localize functions (default: "localize").
	FunctionNames []string
	// ComponentName is the localize component (default: "Localize").
	ComponentName string
	// TextAttribute is the component attribute holding the template (default: "i18n_default_text").
	TextAttribute string
	// ValuesAttribute is the component attribute holding the bindings (default: "values").
	ValuesAttribute string
	// GoTextField is the struct field holding the template in Go component literals (default: "Text").
	GoTextField string
	// GoValuesField is the struct field holding the bindings in Go component literals (default: "Values").
	GoValuesField string
	// ExtraProperties enables reporting bindings that match no placeholder.
	ExtraProperties bool
	// Rules maps rule ids to severities. Rules not listed use their recommended severity.
	Rules map[string]Severity
}

// DefaultConfig mirrors the recommended configuration of the localize-usage rules.
var DefaultConfig = AnalysisConfig{
	FunctionNames:   []string{"localize"},
	ComponentName:   "Localize",
	TextAttribute:   "i18n_default_text",
	ValuesAttribute: "values",
	GoTextField:     "Text",
	GoValuesField:   "Values",
}

// ForGo returns a copy of c whose component attributes are the Go field names.
func (c AnalysisConfig) ForGo() AnalysisConfig {
	c.TextAttribute = c.GoTextField
	c.ValuesAttribute = c.GoValuesField
	return c
}

// Severity returns the effective severity of a rule.
func (c AnalysisConfig) Severity(rule string) Severity {
	if sev, ok := c.Rules[rule]; ok {
		return sev
	}
	if r, ok := LookupRule(rule); ok {
		return r.Recommended
	}
	return SeverityOff
}
