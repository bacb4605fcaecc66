package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/valreport/internal/config"
	"github.com/nao1215/valreport/internal/model"
	"github.com/nao1215/valreport/internal/report"
)

// writeTestFile writes content to name inside dir and returns the path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// runGenerate executes the generate command with an isolated config file so
// that no .valreport from the developer's environment is picked up.
func runGenerate(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfgPath := writeTestFile(t, dir, ".valreport", "lang: zh-Hant\n")

	var outBuf, errBuf bytes.Buffer
	cmd := NewGenerateCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(append([]string{"-c", cfgPath}, args...))

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

const mismatchedData = `report_title: "Draft"
header_title: "Header"
hero:
  subtitle: "Sub"
  main_metric: 12.5
  status: "ok"
  description: "desc"
history_chart:
  labels: ["a", "b", "c"]
  values: [1, 2]
`

const missingStatusData = `report_title: "Draft"
header_title: "Header"
hero:
  subtitle: "Sub"
  main_metric: 12.5
  description: "desc"
history_chart:
  labels: ["a"]
  values: [1]
`

// TestNewGenerateCmd tests the generate command creation.
func TestNewGenerateCmd(t *testing.T) {
	t.Parallel()

	cmd := NewGenerateCmd()

	if cmd.Use != "generate" {
		t.Errorf("expected use 'generate', got %q", cmd.Use)
	}

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"data", "d", ""},
		{"output", "o", config.DefaultOutputPath},
		{"format", "F", string(config.DefaultFormat)},
		{"lang", "l", config.DefaultLanguage},
		{"allow-mismatch", "", "false"},
		{"config", "c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}
}

// TestRunGenerateCmd tests the generate command execution.
func TestRunGenerateCmd(t *testing.T) {
	t.Parallel()

	t.Run("renders sample report", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		out := filepath.Join(dir, "report.html")

		stdout, _, err := runGenerate(t, dir, "-o", out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Report '" + out + "' generated.\n"
		if stdout != want {
			t.Errorf("expected output %q, got %q", want, stdout)
		}

		content, err := os.ReadFile(out) //nolint:gosec // test file
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		html := string(content)
		for _, s := range []string{
			"<title>動態生成-台股估值儀表板</title>",
			"281.2%",
			"[210,95,265,281.2]",
		} {
			if !strings.Contains(html, s) {
				t.Errorf("expected report to contain %q", s)
			}
		}
	})

	t.Run("creates nested output directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		out := filepath.Join(dir, "a", "b", "report.html")

		if _, _, err := runGenerate(t, dir, "-o", out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("expected report to exist: %v", err)
		}
	})

	t.Run("renders markdown and json formats", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		md := filepath.Join(dir, "report.md")
		if _, _, err := runGenerate(t, dir, "-F", "markdown", "-o", md); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err := os.ReadFile(md) //nolint:gosec // test file
		if err != nil {
			t.Fatalf("failed to read markdown: %v", err)
		}
		if !strings.HasPrefix(string(content), "# 動態生成-台股估值儀表板") {
			t.Errorf("expected markdown heading, got %q", firstLine(string(content)))
		}

		js := filepath.Join(dir, "report.json")
		if _, _, err := runGenerate(t, dir, "-F", "JSON", "-o", js); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err = os.ReadFile(js) //nolint:gosec // test file
		if err != nil {
			t.Fatalf("failed to read json: %v", err)
		}
		data, err := model.ParseReportData(content)
		if err != nil {
			t.Fatalf("failed to parse json report: %v", err)
		}
		if data.ReportTitle != model.SampleReportData().ReportTitle {
			t.Errorf("unexpected title %q", data.ReportTitle)
		}
	})

	t.Run("missing field writes no file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		dataPath := writeTestFile(t, dir, "data.yaml", missingStatusData)
		out := filepath.Join(dir, "report.html")

		_, _, err := runGenerate(t, dir, "-d", dataPath, "-o", out)
		if err == nil {
			t.Fatal("expected error for missing hero.status")
		}

		var missing *model.MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingFieldError, got %T: %v", err, err)
		}
		if missing.Field != "hero.status" {
			t.Errorf("expected field 'hero.status', got %q", missing.Field)
		}
		if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
			t.Error("expected no report file to be created")
		}
	})

	t.Run("length mismatch fails by default", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		dataPath := writeTestFile(t, dir, "data.yaml", mismatchedData)
		out := filepath.Join(dir, "report.html")

		_, _, err := runGenerate(t, dir, "-d", dataPath, "-o", out)
		var mismatch *model.LengthMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected LengthMismatchError, got %v", err)
		}
		if mismatch.Labels != 3 || mismatch.Values != 2 {
			t.Errorf("unexpected counts: %d labels, %d values", mismatch.Labels, mismatch.Values)
		}
	})

	t.Run("allow-mismatch renders and warns", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		dataPath := writeTestFile(t, dir, "data.yaml", mismatchedData)
		out := filepath.Join(dir, "report.html")

		_, stderr, err := runGenerate(t, dir, "-d", dataPath, "-o", out, "--allow-mismatch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, "differ in length") {
			t.Errorf("expected a warning on stderr, got %q", stderr)
		}

		content, err := os.ReadFile(out) //nolint:gosec // test file
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(content), `["a","b","c"]`) {
			t.Error("expected all labels to be rendered")
		}
		if !strings.Contains(string(content), "[1,2]") {
			t.Error("expected all values to be rendered")
		}
	})

	t.Run("unwritable path returns IOError", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		blocker := writeTestFile(t, dir, "blocker", "")
		out := filepath.Join(blocker, "report.html")

		_, _, err := runGenerate(t, dir, "-o", out)
		if err == nil {
			t.Fatal("expected error for unwritable path")
		}
		var ioErr *report.IOError
		if !errors.As(err, &ioErr) {
			t.Fatalf("expected IOError, got %T: %v", err, err)
		}
		if !strings.HasPrefix(err.Error(), "report not written:") {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("invalid format is rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		_, _, err := runGenerate(t, dir, "-F", "pdf", "-o", filepath.Join(dir, "r.pdf"))
		if !errors.Is(err, config.ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("invalid language is rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		_, _, err := runGenerate(t, dir, "-l", "not a tag!", "-o", filepath.Join(dir, "r.html"))
		if !errors.Is(err, config.ErrInvalidLanguage) {
			t.Errorf("expected ErrInvalidLanguage, got %v", err)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		cmd := NewGenerateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", filepath.Join(dir, "missing.yaml")})

		if err := cmd.Execute(); !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("config file values apply and flags override", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		fromFile := filepath.Join(dir, "from-file.md")
		cfgPath := writeTestFile(t, dir, "custom.yaml",
			"output: "+fromFile+"\nformat: markdown\n")

		cmd := NewGenerateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", cfgPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(fromFile); err != nil {
			t.Errorf("expected output from config file: %v", err)
		}

		fromFlag := filepath.Join(dir, "from-flag.md")
		cmd = NewGenerateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", cfgPath, "-o", fromFlag})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(fromFlag); err != nil {
			t.Errorf("expected output from flag: %v", err)
		}
	})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
