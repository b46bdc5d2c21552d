package reduce

import (
	"fmt"

	"github.com/goldengrape/Lambda-Calculus-Lecture/pkg/lambda"
)

// Rename records one alpha-conversion performed during substitution.
type Rename struct {
	From string
	To   string
}

func (r Rename) String() string {
	return fmt.Sprintf("%s → %s", r.From, r.To)
}

type substituter struct {
	names   *NameSupply
	renames []Rename
}

// Substitute returns term[v := repl]. Binders of term that would capture a
// free variable of repl are renamed with names from supply first.
func Substitute(term lambda.Term, v string, repl lambda.Term, supply *NameSupply) lambda.Term {
	s := &substituter{names: supply}
	return s.subst(term, v, repl)
}

func (s *substituter) subst(term lambda.Term, v string, repl lambda.Term) lambda.Term {
	switch t := term.(type) {
	case lambda.Var:
		if t.Name == v {
			return repl
		}
		return t
	case lambda.App:
		return lambda.App{
			Fun: s.subst(t.Fun, v, repl),
			Arg: s.subst(t.Arg, v, repl),
		}
	case lambda.Abs:
		if t.Param == v {
			// v is shadowed below this binder
			return t
		}
		if lambda.IsFree(t.Param, repl) {
			fresh := s.names.Fresh(t.Param)
			s.renames = append(s.renames, Rename{From: t.Param, To: fresh})
			body := s.subst(t.Body, t.Param, lambda.Var{Name: fresh})
			return lambda.Abs{Param: fresh, Body: s.subst(body, v, repl)}
		}
		return lambda.Abs{Param: t.Param, Body: s.subst(t.Body, v, repl)}
	default:
		panic(fmt.Sprintf("reduce: unknown term type %T", term))
	}
}
