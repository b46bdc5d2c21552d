package reduce

import (
	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/lambda"
)

// Result is the outcome of Run as handed to a display layer. On success
// Steps holds the trace (empty when the input was already normal); on
// failure Error holds the parser's message.
type Result struct {
	Success bool        `json:"success" yaml:"success"`
	Steps   []TraceStep `json:"steps" yaml:"steps"`
	Error   string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Evaluate parses input and reduces it with a new Reducer. Runs are
// independent, so the same input always yields the same outcome.
func Evaluate(input string, maxSteps int) (Outcome, error) {
	term, err := lambda.Parse(input)
	if err != nil {
		return Outcome{}, err
	}
	return NewReducer(maxSteps).Normalize(term), nil
}

// Run is Evaluate with the error folded into the Result.
func Run(input string, maxSteps int) Result {
	out, err := Evaluate(input, maxSteps)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Steps: out.Steps}
}
