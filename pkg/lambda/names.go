package lambda

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// FreeVars returns the sorted names of the variables that occur free in t.
func FreeVars(t Term) []string {
	set := make(map[string]struct{})
	collectFree(t, nil, set)
	names := lo.Keys(set)
	slices.Sort(names)
	return names
}

func collectFree(t Term, bound []string, set map[string]struct{}) {
	switch t := t.(type) {
	case Var:
		if !slices.Contains(bound, t.Name) {
			set[t.Name] = struct{}{}
		}
	case Abs:
		collectFree(t.Body, append(bound, t.Param), set)
	case App:
		collectFree(t.Fun, bound, set)
		collectFree(t.Arg, bound, set)
	}
}

// IsFree reports whether name occurs free in t.
func IsFree(name string, t Term) bool {
	switch t := t.(type) {
	case Var:
		return t.Name == name
	case Abs:
		if t.Param == name {
			return false
		}
		return IsFree(name, t.Body)
	case App:
		return IsFree(name, t.Fun) || IsFree(name, t.Arg)
	default:
		return false
	}
}

// Names returns every identifier in t, bound or free, sorted.
func Names(t Term) []string {
	var names []string
	var walk func(Term)
	walk = func(t Term) {
		switch t := t.(type) {
		case Var:
			names = append(names, t.Name)
		case Abs:
			names = append(names, t.Param)
			walk(t.Body)
		case App:
			walk(t.Fun)
			walk(t.Arg)
		}
	}
	walk(t)
	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

// Canonical renames the bound variables of t to #0, #1, ... in binding
// order. Free variables keep their names. Two terms are alpha-equivalent
// exactly when their canonical forms are equal.
func Canonical(t Term) Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(Term) Term
	walk = func(t Term) Term {
		switch v := t.(type) {
		case Var:
			if name, ok := bindings[v.Name]; ok {
				return Var{Name: name}
			}
			return v
		case Abs:
			canon := fmt.Sprintf("#%d", idx)
			idx++
			// shadowing: save old if any
			old, had := bindings[v.Param]
			bindings[v.Param] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Param] = old
			} else {
				delete(bindings, v.Param)
			}
			return Abs{Param: canon, Body: body}
		case App:
			return App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return t
		}
	}
	return walk(t)
}

// AlphaEquivalent reports whether a and b differ only in the names of
// their bound variables.
func AlphaEquivalent(a, b Term) bool {
	return Canonical(a) == Canonical(b)
}
