package lambda

import (
	"reflect"
	"testing"
)

func TestFreeVars(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"x", []string{"x"}},
		{"λx.x", []string{}},
		{"λx.x y z y", []string{"y", "z"}},
		{"(λx.x) x", []string{"x"}},
		{"λx.(λy.x y) y", []string{"y"}},
		{"λx.λx.x", []string{}},
		{"(λx.x + 1) 1", []string{"+", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := FreeVars(MustParse(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FreeVars(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for _, name := range tt.want {
				if !IsFree(name, MustParse(tt.input)) {
					t.Errorf("IsFree(%q, %q) = false", name, tt.input)
				}
			}
		})
	}
}

func TestNames(t *testing.T) {
	got := Names(MustParse("(λx.λy.x z) (λz.w)"))
	want := []string{"w", "x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestAlphaEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"λx.x", "λy.y", true},
		{"λx.λy.x", "λy.λx.y", true},
		{"λx.λy.x", "λx.λy.y", false},
		{"λx.y", "λx.z", false},
		{"λx.y", "λz.y", true},
		{"λx.λx.x", "λa.λb.b", true},
		{"λx.λx.x", "λa.λb.a", false},
		{"x y", "x y", true},
		{"x y", "y x", false},
		{"λf.λx.f (f x)", "λg.λy.g (g y)", true},
		{"λf.λx.f (f x)", "λf.λx.f x", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+" ~ "+tt.b, func(t *testing.T) {
			if got := AlphaEquivalent(MustParse(tt.a), MustParse(tt.b)); got != tt.want {
				t.Errorf("AlphaEquivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
