package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abiiranathan/localize-usage/analyzer/catalog"
	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

// Helpers building minimal ESTree JSON. Columns are 0-based as in ESTree.

func loc(line, col, endCol int) string {
	return fmt.Sprintf(`"loc":{"start":{"line":%d,"column":%d},"end":{"line":%d,"column":%d}}`, line, col, line, endCol)
}

func strLit(value string, line, col int) string {
	return fmt.Sprintf(`{"type":"Literal","value":%q,%s}`, value, loc(line, col, col+len(value)+2))
}

func ident(name string, line, col int) string {
	return fmt.Sprintf(`{"type":"Identifier","name":%q,%s}`, name, loc(line, col, col+len(name)))
}

func object(line, col int, keys ...string) string {
	props := make([]string, 0, len(keys))
	c := col + 2
	for _, k := range keys {
		props = append(props, fmt.Sprintf(`{"type":"Property","computed":false,"key":%s,"value":%s,%s}`,
			ident(k, line, c), ident(k, line, c), loc(line, c, c+len(k))))
		c += len(k) + 2
	}
	return fmt.Sprintf(`{"type":"ObjectExpression","properties":[%s],%s}`, strings.Join(props, ","), loc(line, col, c))
}

func call(line int, args ...string) string {
	return fmt.Sprintf(`{"type":"ExpressionStatement","expression":{"type":"CallExpression","callee":%s,"arguments":[%s],%s},%s}`,
		ident("localize", line, 0), strings.Join(args, ","), loc(line, 0, 80), loc(line, 0, 80))
}

func program(stmts ...string) string {
	return fmt.Sprintf(`{"type":"Program","body":[%s],%s}`, strings.Join(stmts, ","), loc(1, 0, 0))
}

func writeDump(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietOptions() Options {
	return Options{
		Config: validator.DefaultConfig,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()

	writeDump(t, dir, "b.ast.json", program(
		call(2, strLit("Hi {{name}}", 2, 9)),
	))
	writeDump(t, dir, "a.ast.json", program(
		call(1, strLit("ok", 1, 9)),
		call(3, strLit("{{a}} {{b}}", 3, 9), object(3, 24, "a")),
		call(4, ident("key", 4, 9), object(4, 14), strLit("x", 4, 18)),
	))
	writeDump(t, dir, "node_modules/dep.ast.json", program(call(1, ident("x", 1, 9), ident("y", 1, 12))))
	writeDump(t, dir, "notes.json", program(call(1, ident("x", 1, 9), ident("y", 1, 12))))

	opts := quietOptions()
	opts.BaseDir = dir
	opts.Jobs = 2

	res, err := CheckFiles(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("CheckFiles() error = %v", err)
	}

	type finding struct {
		File   string
		Line   int
		Column int
		Kind   validator.Kind
	}
	var got []finding
	for _, r := range res.Results {
		got = append(got, finding{r.File, r.Line, r.Column, r.MessageID})
	}

	want := []finding{
		{"a.ast.json", 3, 25, validator.KindPassCorrectProperties},
		{"a.ast.json", 4, 19, validator.KindOnlyAcceptsTwoArguments},
		{"b.ast.json", 2, 10, validator.KindProvideValues},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
	if res.Files != 2 {
		t.Errorf("Files = %d, want 2", res.Files)
	}
	if !res.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if got := res.Results[0].Message; got != "object must have these properties (b)" {
		t.Errorf("Message = %q", got)
	}
}

func TestCheckFilesMalformedInputIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	bad := writeDump(t, dir, "bad.ast.json", `{"type":`)
	notAST := writeDump(t, dir, "array.ast.json", `[1,2]`)
	writeDump(t, dir, "good.ast.json", program(call(1, strLit("Hi {{name}}", 1, 9))))

	res, err := CheckFiles(context.Background(), []string{dir}, quietOptions())
	if err != nil {
		t.Fatalf("CheckFiles() error = %v", err)
	}

	if len(res.Errors) != 2 {
		t.Fatalf("Errors = %v, want 2 entries", res.Errors)
	}
	for i, path := range []string{notAST, bad} {
		if !strings.Contains(res.Errors[i], path) {
			t.Errorf("Errors[%d] = %q, want mention of %s", i, res.Errors[i], path)
		}
	}
	if len(res.Results) != 1 || res.Results[0].MessageID != validator.KindProvideValues {
		t.Errorf("Results = %+v, want the provideValues finding of good.ast.json", res.Results)
	}
}

func TestCheckFilesMissingPath(t *testing.T) {
	_, err := CheckFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, quietOptions())
	if err == nil {
		t.Fatal("CheckFiles() error = nil")
	}
}

func TestCheckFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "a.ast.json", program(call(1, strLit("x", 1, 9))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := CheckFiles(ctx, []string{dir}, quietOptions()); err == nil {
		t.Fatal("CheckFiles() error = nil, want context error")
	}
}

func TestCheckFilesSeverityAndLocale(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "a.ast.json", program(call(1, ident("k", 1, 9), ident("v", 1, 12))))

	opts := quietOptions()
	opts.Config.Rules = map[string]validator.Severity{
		validator.RuleOnlyStringLiteralArgument: validator.SeverityWarning,
	}
	opts.Printer = catalog.Default().Printer("pt-BR")

	res, err := CheckFiles(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("CheckFiles() error = %v", err)
	}
	if len(res.Results) != 1 {
		t.Fatalf("Results = %+v, want 1", res.Results)
	}

	r := res.Results[0]
	if r.Severity != validator.SeverityWarning {
		t.Errorf("Severity = %q, want warning", r.Severity)
	}
	if r.Message != "o segundo argumento deve ser um objeto" {
		t.Errorf("Message = %q", r.Message)
	}
	if res.HasErrors() {
		t.Error("HasErrors() = true with only warnings")
	}
}

func TestMaxDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "a.ast.json", program(
		call(1, ident("k", 1, 9), ident("v", 1, 12)),
		call(2, ident("k", 2, 9), ident("v", 2, 12)),
		call(3, ident("k", 3, 9), ident("v", 3, 12)),
	))

	opts := quietOptions()
	opts.MaxDiagnostics = 2

	res, err := CheckFiles(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("CheckFiles() error = %v", err)
	}
	if len(res.Results) != 2 || !res.Truncated {
		t.Errorf("got %d results, truncated=%v; want 2, true", len(res.Results), res.Truncated)
	}
	if res.Results[1].Line != 2 {
		t.Errorf("kept results are not the first ones: %+v", res.Results)
	}
}

func TestSortResultsIsStable(t *testing.T) {
	results := []validator.ValidationResult{
		{File: "b", Line: 1, Column: 1, Rule: "r", MessageID: validator.KindPassCorrectProperties},
		{File: "a", Line: 2, Column: 1, Rule: "r"},
		{File: "b", Line: 1, Column: 1, Rule: "r", MessageID: validator.KindAvoidExtraProperties},
		{File: "a", Line: 1, Column: 5, Rule: "r"},
	}

	SortResults(results)

	want := []validator.ValidationResult{
		{File: "a", Line: 1, Column: 5, Rule: "r"},
		{File: "a", Line: 2, Column: 1, Rule: "r"},
		{File: "b", Line: 1, Column: 1, Rule: "r", MessageID: validator.KindPassCorrectProperties},
		{File: "b", Line: 1, Column: 1, Rule: "r", MessageID: validator.KindAvoidExtraProperties},
	}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("SortResults() mismatch (-want +got):\n%s", diff)
	}
}
