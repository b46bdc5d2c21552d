package lambda

// Church returns the Church numeral for n: λf.λx.f (f (... x)).
func Church(n int) Term {
	var body Term = Var{Name: "x"}
	for i := 0; i < n; i++ {
		body = App{Fun: Var{Name: "f"}, Arg: body}
	}
	return Abs{Param: "f", Body: Abs{Param: "x", Body: body}}
}

// ChurchValue decodes a Church numeral. It reports false when t is not of
// the form λf.λx.f (f (... x)) with distinct f and x.
func ChurchValue(t Term) (int, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok || inner.Param == outer.Param {
		return 0, false
	}
	f, x := outer.Param, inner.Param

	n := 0
	body := inner.Body
	for {
		switch b := body.(type) {
		case Var:
			if b.Name != x {
				return 0, false
			}
			return n, true
		case App:
			if fn, ok := b.Fun.(Var); !ok || fn.Name != f {
				return 0, false
			}
			n++
			body = b.Arg
		default:
			return 0, false
		}
	}
}
