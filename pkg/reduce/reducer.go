package reduce

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/lambda"
)

// DefaultMaxSteps bounds a run when no positive limit is given.
const DefaultMaxSteps = 50

// Redex describes the beta-reduction fired by one step.
type Redex struct {
	Param   string
	Arg     lambda.Term
	Renames []Rename
}

// Describe renders the redex as trace action text.
func (r *Redex) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Apply (%s) to λ%s", r.Arg, r.Param)
	if len(r.Renames) > 0 {
		sb.WriteString(", renaming ")
		sb.WriteString(strings.Join(lo.Map(r.Renames, func(rn Rename, _ int) string {
			return rn.String()
		}), ", "))
	}
	return sb.String()
}

// Stats holds reduction statistics.
type Stats struct {
	Runs             uint64
	BetaReductions   uint64
	AlphaConversions uint64
	Exhausted        uint64
}

// Reducer rewrites terms leftmost-outermost, one beta-reduction per step,
// looking inside abstraction bodies when nothing outside them fires.
// A Reducer is not safe for concurrent use; independent reducers share
// no state.
type Reducer struct {
	maxSteps int
	names    *NameSupply
	logger   *slog.Logger
	stats    Stats
}

// NewReducer returns a reducer that stops runs after maxSteps reductions.
// A non-positive maxSteps means DefaultMaxSteps.
func NewReducer(maxSteps int) *Reducer {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Reducer{
		maxSteps: maxSteps,
		names:    NewNameSupply(),
		logger:   slog.Default().With(slog.String("component", "reduce")),
	}
}

func (r *Reducer) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	r.logger = logger.With(slog.String("component", "reduce"))
}

func (r *Reducer) MaxSteps() int { return r.maxSteps }

// Names exposes the reducer's fresh-name supply.
func (r *Reducer) Names() *NameSupply { return r.names }

func (r *Reducer) GetStats() Stats { return r.stats }

// Step fires the next redex of term. It reports false, returning term
// unchanged, when term is in normal form. Names in term should be
// reserved in r.Names() beforehand; Normalize does this itself.
func (r *Reducer) Step(term lambda.Term) (lambda.Term, *Redex, bool) {
	switch t := term.(type) {
	case lambda.Var:
		return t, nil, false
	case lambda.App:
		if fn, ok := t.Fun.(lambda.Abs); ok {
			return r.beta(fn, t.Arg)
		}
		if fun, redex, ok := r.Step(t.Fun); ok {
			return lambda.App{Fun: fun, Arg: t.Arg}, redex, true
		}
		if arg, redex, ok := r.Step(t.Arg); ok {
			return lambda.App{Fun: t.Fun, Arg: arg}, redex, true
		}
		return t, nil, false
	case lambda.Abs:
		if body, redex, ok := r.Step(t.Body); ok {
			return lambda.Abs{Param: t.Param, Body: body}, redex, true
		}
		return t, nil, false
	default:
		panic(fmt.Sprintf("reduce: unknown term type %T", term))
	}
}

func (r *Reducer) beta(fn lambda.Abs, arg lambda.Term) (lambda.Term, *Redex, bool) {
	s := &substituter{names: r.names}
	result := s.subst(fn.Body, fn.Param, arg)

	r.stats.BetaReductions++
	r.stats.AlphaConversions += uint64(len(s.renames))
	for _, rn := range s.renames {
		r.logger.Debug("alpha conversion", slog.String("from", rn.From), slog.String("to", rn.To))
	}
	r.logger.Debug("beta reduction", slog.String("param", fn.Param), slog.String("arg", arg.String()))

	return result, &Redex{Param: fn.Param, Arg: arg, Renames: s.renames}, true
}

// HasRedex reports whether Step would fire on t.
func HasRedex(t lambda.Term) bool {
	switch t := t.(type) {
	case lambda.App:
		if _, ok := t.Fun.(lambda.Abs); ok {
			return true
		}
		return HasRedex(t.Fun) || HasRedex(t.Arg)
	case lambda.Abs:
		return HasRedex(t.Body)
	default:
		return false
	}
}

// Outcome is the result of one bounded reduction run.
type Outcome struct {
	Steps  []TraceStep
	Final  lambda.Term
	Status Status
}

// Normalize reduces term until it reaches normal form or the step limit.
// Every reduction is recorded in order; a run that hits the limit with a
// redex left ends with a step whose After is Truncated.
func (r *Reducer) Normalize(term lambda.Term) Outcome {
	r.names.Reserve(lambda.Names(term)...)
	r.stats.Runs++

	var tr trace
	current := term
	status := StatusRunning
	for steps := 0; ; steps++ {
		if steps >= r.maxSteps {
			if HasRedex(current) {
				status = StatusExhausted
				tr.record(current.String(), fmt.Sprintf("stopped: reached the step limit (%d)", r.maxSteps), Truncated)
			} else {
				status = StatusNormal
			}
			break
		}

		before := current.String()
		next, redex, ok := r.Step(current)
		if !ok {
			status = StatusNormal
			break
		}
		tr.record(before, redex.Describe(), next.String())
		current = next
	}

	if status == StatusExhausted {
		r.stats.Exhausted++
		r.logger.Debug("step limit reached", slog.Int("max_steps", r.maxSteps))
	}
	r.logger.Debug("run finished",
		slog.String("status", status.String()),
		slog.Int("steps", len(tr.steps)),
		slog.String("final", current.String()))

	return Outcome{Steps: tr.snapshot(), Final: current, Status: status}
}
