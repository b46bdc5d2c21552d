package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/lambda"
	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/reduce"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lambda", flag.ContinueOnError)
	fs.SetOutput(stderr)
	expr := fs.String("e", "", "expression to reduce (instead of a file or stdin)")
	maxSteps := fs.Int("max-steps", reduce.DefaultMaxSteps, "stop after this many reductions")
	format := fs.String("format", formatText, "output format: text, json or yaml")
	verbose := fs.Bool("v", false, "log every reduction to stderr")
	stats := fs.Bool("stats", false, "print reduction statistics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: lambda [flags] [file]\n\n")
		fmt.Fprintf(stderr, "Reduces an untyped lambda calculus expression step by step.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := checkFormat(*format); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	input, err := readInput(*expr, fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

	level := slog.LevelWarn
	if *verbose || os.Getenv("LAMBDA_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	term, err := lambda.Parse(input)
	if err != nil {
		if *format != formatText {
			if err := writeResult(stdout, *format, reduce.Result{Success: false, Error: err.Error()}); err != nil {
				fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			}
			return 1
		}
		fmt.Fprintf(stderr, "Parse error: %v\n", err)
		return 1
	}

	r := reduce.NewReducer(*maxSteps)
	r.SetLogger(logger)

	start := time.Now()
	out := r.Normalize(term)
	elapsed := time.Since(start)

	if *format == formatText {
		writeText(stdout, out)
	} else if err := writeResult(stdout, *format, reduce.Result{Success: true, Steps: out.Steps}); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	if *stats {
		writeStats(stderr, r.GetStats(), elapsed)
	}
	return 0
}

func readInput(expr string, args []string, stdin io.Reader) (string, error) {
	if expr != "" {
		return expr, nil
	}
	var input []byte
	var err error
	if len(args) > 0 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", err
	}
	return string(input), nil
}

func writeStats(w io.Writer, stats reduce.Stats, elapsed time.Duration) {
	seconds := elapsed.Seconds()
	total := stats.BetaReductions

	fmt.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Time: %v\n", elapsed)
	fmt.Fprintf(w, "Total Reductions: %d", total)
	if seconds > 0 {
		fmt.Fprintf(w, " (%.2f ops/sec)", float64(total)/seconds)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "\nBreakdown:\n")
	fmt.Fprintf(w, "  Beta Reductions:   %6d\n", stats.BetaReductions)
	fmt.Fprintf(w, "  Alpha Conversions: %6d\n", stats.AlphaConversions)
	if stats.Exhausted > 0 {
		fmt.Fprintf(w, "  Step Limit Hit:    %6d\n", stats.Exhausted)
	}
}
