package lambda

import "strings"

// Term represents a lambda calculus term.
// The only implementations are Var, Abs and App.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (Var) term() {}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Param string
	Body  Term
}

func (Abs) term() {}

func (a Abs) String() string {
	return Print(a)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) term() {}

func (a App) String() string {
	return Print(a)
}

// Print renders a term in surface syntax, adding only the parentheses
// needed for it to parse back to the same term.
func Print(t Term) string {
	var sb strings.Builder
	write(&sb, t)
	return sb.String()
}

func write(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		sb.WriteString(t.Name)
	case Abs:
		sb.WriteString("λ")
		sb.WriteString(t.Param)
		sb.WriteByte('.')
		write(sb, t.Body)
	case App:
		if _, ok := t.Fun.(Abs); ok {
			writeParens(sb, t.Fun)
		} else {
			write(sb, t.Fun)
		}
		sb.WriteByte(' ')
		switch t.Arg.(type) {
		case App, Abs:
			writeParens(sb, t.Arg)
		default:
			write(sb, t.Arg)
		}
	default:
		panic("lambda: unknown term type")
	}
}

func writeParens(sb *strings.Builder, t Term) {
	sb.WriteByte('(')
	write(sb, t)
	sb.WriteByte(')')
}
