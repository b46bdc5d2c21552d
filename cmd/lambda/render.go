package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/lambda"
	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/reduce"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

func checkFormat(format string) error {
	if lo.Contains(formats, format) {
		return nil
	}
	ranks := fuzzy.RankFindFold(format, formats)
	if len(ranks) == 0 {
		return fmt.Errorf("unknown format %q (want one of %v)", format, formats)
	}
	sort.Sort(ranks)
	return fmt.Errorf("unknown format %q, did you mean %q?", format, ranks[0].Target)
}

// writeText prints the trace as a chain of terms, each rewrite introduced
// by its action.
func writeText(w io.Writer, out reduce.Outcome) {
	if len(out.Steps) == 0 {
		fmt.Fprintf(w, "%s\n(already in normal form)\n", out.Final)
		return
	}
	fmt.Fprintln(w, out.Steps[0].Before)
	for _, s := range out.Steps {
		fmt.Fprintf(w, "  => %s\n", s.Action)
		fmt.Fprintln(w, s.After)
	}
	if out.Status == reduce.StatusNormal {
		if n, ok := lambda.ChurchValue(out.Final); ok {
			fmt.Fprintf(w, "(Church numeral %d)\n", n)
		}
	}
}

func writeResult(w io.Writer, format string, res reduce.Result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
