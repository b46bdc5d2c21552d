package reduce

// Truncated is the After text of the step appended when a run hits its
// step limit.
const Truncated = "..."

// TraceStep is one rewrite of a reduction run, in printed form.
type TraceStep struct {
	Before string `json:"before" yaml:"before"`
	Action string `json:"action" yaml:"action"`
	After  string `json:"after" yaml:"after"`
}

// IsTruncated reports whether s is the step-limit marker rather than a reduction.
func (s TraceStep) IsTruncated() bool {
	return s.After == Truncated
}

type Status int

const (
	StatusRunning Status = iota
	StatusNormal
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusNormal:
		return "normal"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// trace collects steps in reduction order; appended steps are never changed.
type trace struct {
	steps []TraceStep
}

func (t *trace) record(before, action, after string) {
	t.steps = append(t.steps, TraceStep{Before: before, Action: action, After: after})
}

func (t *trace) snapshot() []TraceStep {
	res := make([]TraceStep, len(t.steps))
	copy(res, t.steps)
	return res
}
