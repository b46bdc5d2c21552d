package reduce

import (
	"strconv"

	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/lambda"
)

// NameSupply mints variable names for alpha-conversion. Its counter only
// grows, so a name is never handed out twice by the same supply.
type NameSupply struct {
	counter uint64
	used    map[string]struct{}
}

func NewNameSupply() *NameSupply {
	return &NameSupply{used: make(map[string]struct{})}
}

// Reserve marks names as taken so Fresh never returns them.
func (s *NameSupply) Reserve(names ...string) {
	for _, n := range names {
		s.used[n] = struct{}{}
	}
}

// Fresh returns a new name derived from base, of the form base_N.
func (s *NameSupply) Fresh(base string) string {
	if !lambda.IsWord(base) {
		base = "v"
	}
	for {
		s.counter++
		name := base + "_" + strconv.FormatUint(s.counter, 10)
		if _, taken := s.used[name]; taken {
			continue
		}
		s.used[name] = struct{}{}
		return name
	}
}

// Counter returns how many candidate names have been minted so far.
func (s *NameSupply) Counter() uint64 {
	return s.counter
}
