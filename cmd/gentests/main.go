package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/lambda"
	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/reduce"
)

type TestCase struct {
	Name      string
	Input     string
	MaxSteps  int
	FinalOnly bool
}

// Scenario is one entry of the reducer's scenario fixture.
type Scenario struct {
	Name      string   `yaml:"name"`
	Input     string   `yaml:"input"`
	MaxSteps  int      `yaml:"max_steps,omitempty"`
	FinalOnly bool     `yaml:"final_only,omitempty"`
	Status    string   `yaml:"status"`
	After     []string `yaml:"after,omitempty"`
	Final     string   `yaml:"final,omitempty"`
}

const header = `# Reduction scenarios from the tutorial lessons. ` + "`after`" + ` lists the printed
# term after each reduction, in order; ` + "`final`" + ` is omitted for runs that hit
# the step limit. Regenerate with: go run ./cmd/gentests
`

var tests = []TestCase{
	// Lessons
	{Name: "identity", Input: "(λx.x) HelloWorld"},
	{Name: "backslash_lambda", Input: `(\x.x) a`},
	{Name: "select_first", Input: "(λx.λy.x) Hello World"},
	{Name: "select_second", Input: "(λx.λy.y) Hello World"},
	{Name: "scope_free", Input: "(λx.(x (λy.x))) HelloWorld"},
	{Name: "scope_bound", Input: "(λx.(x (λx.x))) HelloWorld"},
	{Name: "symbolic_plus", Input: "(λx.x + 1) 1"},
	{Name: "already_normal", Input: "λx.λy.x x y"},
	{Name: "under_lambda", Input: "λy.(λx.x) z"},
	{Name: "capture_avoided", Input: "(λx.λy.x) y"},
	{Name: "church_add_1_1", Input: "(λm.λn.λf.λx.m f (n f x)) (λf.λx.f x) (λf.λx.f x)"},
	{Name: "pair_first", Input: "(λp.p (λx.λy.x)) ((λx.λy.λz.z x y) a b)"},
	{Name: "not_true", Input: "(λp.p (λx.λy.y) (λx.λy.x)) (λx.λy.x)"},
	{Name: "omega_limited", Input: "(λx.x x) (λx.x x)", MaxSteps: 3},

	// Combinators and encodings
	{Name: "s_k_k", Input: "(λx.λy.λz.x z (y z)) (λa.λb.a) (λc.λd.c) e", FinalOnly: true},
	{Name: "apply_pair", Input: "(λx.λy.x y) a b", FinalOnly: true},
	{Name: "not_false", Input: "(λb.b (λx.λy.y) (λx.λy.x)) (λx.λy.y) a b", FinalOnly: true},
	{Name: "and_true_false", Input: "(λp.λq.p q p) (λx.λy.x) (λx.λy.y) a b", FinalOnly: true},
	{Name: "share_app", Input: "(λf.f (f x)) (λy.y)", FinalOnly: true},
	{Name: "erase_shared", Input: "(λx.λy.y) ((λz.z) a) b", FinalOnly: true},
	{Name: "succ_zero", Input: "(λn.λf.λx.f (n f x)) (λf.λx.x) f x", FinalOnly: true},
	{Name: "add_1_1_applied", Input: "(λm.λn.λf.λx.m f (n f x)) (λf.λx.f x) (λf.λx.f x) f x", FinalOnly: true},
	{Name: "mul_2_2_applied", Input: "(λm.λn.λf.m (n f)) (λf.λx.f (f x)) (λf.λx.f (f x)) f x", FinalOnly: true},
	{Name: "pair_second", Input: "(λp.p (λx.λy.y)) ((λx.λy.λz.z x y) a b)", FinalOnly: true},
}

func main() {
	out := flag.String("o", "pkg/reduce/testdata/scenarios.yaml", "fixture file to write")
	flag.Parse()

	scenarios, err := buildScenarios(tests)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := encode(&buf, scenarios); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding scenarios: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d scenarios\n", len(scenarios))
}

// buildScenarios reduces every test case and records what the reducer did.
func buildScenarios(cases []TestCase) ([]Scenario, error) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	scenarios := make([]Scenario, 0, len(cases))
	for _, tc := range cases {
		term, err := lambda.Parse(tc.Input)
		if err != nil {
			return nil, fmt.Errorf("parsing input for %s: %w", tc.Name, err)
		}

		r := reduce.NewReducer(tc.MaxSteps)
		r.SetLogger(quiet)
		res := r.Normalize(term)

		sc := Scenario{
			Name:      tc.Name,
			Input:     tc.Input,
			MaxSteps:  tc.MaxSteps,
			FinalOnly: tc.FinalOnly,
			Status:    res.Status.String(),
		}
		if !tc.FinalOnly {
			sc.After = lo.Map(res.Steps, func(s reduce.TraceStep, _ int) string { return s.After })
		}
		if res.Status == reduce.StatusNormal {
			sc.Final = res.Final.String()
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func encode(w io.Writer, scenarios []Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(scenarios); err != nil {
		return err
	}
	return enc.Close()
}
