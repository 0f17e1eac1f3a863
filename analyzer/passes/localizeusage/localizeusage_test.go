package localizeusage_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/abiiranathan/localize-usage/analyzer/passes/localizeusage"
	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), localizeusage.Analyzer, "a")
}

func TestExtraPropertiesFlag(t *testing.T) {
	a := localizeusage.New(validator.DefaultConfig)
	if err := a.Flags.Set("extra-properties", "true"); err != nil {
		t.Fatal(err)
	}
	analysistest.Run(t, analysistest.TestData(), a, "extra")
}

func TestExtraPropertiesConfig(t *testing.T) {
	cfg := validator.DefaultConfig
	cfg.ExtraProperties = true
	analysistest.Run(t, analysistest.TestData(), localizeusage.New(cfg), "extra")
}

func TestCustomNames(t *testing.T) {
	a := localizeusage.New(validator.DefaultConfig)
	for name, value := range map[string]string{"functions": "tr", "component": "Trans"} {
		if err := a.Flags.Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	analysistest.Run(t, analysistest.TestData(), a, "custom")
}
