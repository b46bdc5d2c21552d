package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/reduce"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTextOutput(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-e", "(λm.λn.λf.λx.m f (n f x)) (λf.λx.f x) (λf.λx.f x)")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "(λm.λn.λf.λx.m f (n f x)) (λf.λx.f x) (λf.λx.f x)" {
		t.Errorf("first line = %q", lines[0])
	}
	if got := lines[len(lines)-1]; got != "(Church numeral 2)" {
		t.Errorf("last line = %q", got)
	}
	if !strings.Contains(out, "  => Apply (λf.λx.f x) to λm\n") {
		t.Errorf("missing first action in output:\n%s", out)
	}
}

func TestTextOutputNormalForm(t *testing.T) {
	code, out, _ := runCLI(t, "x y")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if out != "x y\n(already in normal form)\n" {
		t.Errorf("output = %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	code, out, errOut := runCLI(t, "(λx.x) HelloWorld", "-format", "json")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	var res reduce.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if !res.Success || len(res.Steps) != 1 || res.Steps[0].After != "HelloWorld" {
		t.Errorf("result = %+v", res)
	}
}

func TestYAMLOutputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omega.lam")
	if err := os.WriteFile(path, []byte(`(\x.x x) (\x.x x)`), 0644); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runCLI(t, "", "-format", "yaml", "-max-steps", "2", path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	var res reduce.Result
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid YAML %q: %v", out, err)
	}
	if len(res.Steps) != 3 || !res.Steps[2].IsTruncated() {
		t.Errorf("result = %+v", res)
	}
}

func TestParseErrorExitCode(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-e", "(λx.x")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "Parse error: missing closing parenthesis") {
		t.Errorf("stderr = %q", errOut)
	}

	code, out, _ := runCLI(t, "", "-format", "json", "-e", "")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	var res reduce.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if res.Success || res.Error != "unexpected end of input" {
		t.Errorf("result = %+v", res)
	}
}

func TestUnknownFormatSuggestion(t *testing.T) {
	code, _, errOut := runCLI(t, "x", "-format", "yml")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, `did you mean "yaml"?`) {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestStatsAndDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "(λx.λy.x) y", "-v", "-stats")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"Alpha Conversions:      1", "beta reduction", "component=reduce"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
}
