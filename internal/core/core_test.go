package core_test

import (
	"testing"

	"github.com/tscott-dev/lumen/internal/core"
	"github.com/tscott-dev/lumen/internal/env"
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/eval"
	"github.com/tscott-dev/lumen/internal/printer"
	"github.com/tscott-dev/lumen/internal/reader"
	"github.com/tscott-dev/lumen/internal/value"
)

func noReadline(_ string) (string, bool) { return "", false }

func newNamespace() *env.Environment {
	return core.MakeNamespace(noReadline)
}

func evalStr(t *testing.T, environment *env.Environment, src string) value.Value {
	t.Helper()
	form, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): %v", src, err)
	}
	v, err := eval.Eval(form, environment)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return v
}

func evalErr(t *testing.T, environment *env.Environment, src string) error {
	t.Helper()
	form, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): %v", src, err)
	}
	_, err = eval.Eval(form, environment)
	if err == nil {
		t.Fatalf("Eval(%q): expected error, got none", src)
	}
	return err
}

func pr(v value.Value) string { return printer.PrStr(v, true) }

func TestArithmeticPromotion(t *testing.T) {
	e := newNamespace()
	tests := []struct{ src, want string }{
		{"(+ 1 2 3)", "6"},
		{"(+ 1 2.0)", "3"},
		{"(- 10 1 2)", "7"},
		{"(* 2 3 4)", "24"},
		{"(/ 10 2)", "5"},
		{"(/ 1 2)", "0"},
		{"(/ 1.0 2)", "0.5"},
	}
	for _, tt := range tests {
		if got := pr(evalStr(t, e, tt.src)); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	e := newNamespace()
	for _, src := range []string{"(/ 1 0)", "(/ 1.0 0.0)"} {
		err := evalErr(t, e, src)
		userErr, ok := err.(*errors.UserError)
		if !ok {
			t.Fatalf("%s: expected *errors.UserError, got %T (%v)", src, err, err)
		}
		if userErr.Error() != "Division by zero" {
			t.Fatalf("%s: got %q, want %q", src, userErr.Error(), "Division by zero")
		}
	}
}

func TestComparisonAndEquality(t *testing.T) {
	e := newNamespace()
	tests := []struct{ src, want string }{
		{"(< 1 2)", "true"},
		{"(<= 1 1)", "true"},
		{"(> 3 2)", "true"},
		{"(>= 3 3)", "true"},
		{"(= 1 1)", "true"},
		{"(= 1 2)", "false"},
		{"(= '(1 2 3) [1 2 3])", "true"},
		{`(= {"a" 1 "b" 2} {"b" 2 "a" 1})`, "true"},
	}
	for _, tt := range tests {
		if got := pr(evalStr(t, e, tt.src)); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestSequencePrimitives(t *testing.T) {
	e := newNamespace()
	tests := []struct{ src, want string }{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list? (list 1 2))", "true"},
		{"(empty? (list))", "true"},
		{"(count [1 2 3])", "3"},
		{"(first '(1 2 3))", "1"},
		{"(rest '(1 2 3))", "(2 3)"},
		{"(cons 1 '(2 3))", "(1 2 3)"},
		{"(concat '(1 2) '(3 4))", "(1 2 3 4)"},
		{"(conj [1 2] 3)", "[1 2 3]"},
		{"(conj '(3) 1 2)", "(2 1 3)"},
		{`(seq "ab")`, `("a" "b")`},
		{"(vector 1 2)", "[1 2]"},
		{"(vector? [1])", "true"},
		{"(sequential? [1])", "true"},
	}
	for _, tt := range tests {
		if got := pr(evalStr(t, e, tt.src)); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestNthOutOfRange(t *testing.T) {
	e := newNamespace()
	err := evalErr(t, e, "(nth '(1 2) 5)")
	userErr, ok := err.(*errors.UserError)
	if !ok {
		t.Fatalf("expected *errors.UserError, got %T (%v)", err, err)
	}
	if userErr.Error() != "index out of range" {
		t.Fatalf("got %q, want %q", userErr.Error(), "index out of range")
	}
}

func TestHashMapPrimitives(t *testing.T) {
	e := newNamespace()
	tests := []struct{ src, want string }{
		{`(get {"a" 1} "a")`, "1"},
		{`(get {"a" 1} "z")`, "nil"},
		{`(get 1 "z")`, "nil"},
		{`(contains? {"a" 1} "a")`, "true"},
		{`(contains? 1 "a")`, "nil"},
		{`(map? {"a" 1})`, "true"},
		{`(keys {"a" 1 "b" 2})`, `("a" "b")`},
		{`(vals {"a" 1 "b" 2})`, "(1 2)"},
		{`(assoc {"a" 1} "b" 2)`, `{"a" 1 "b" 2}`},
		{`(dissoc {"a" 1 "b" 2} "a")`, `{"b" 2}`},
	}
	for _, tt := range tests {
		if got := pr(evalStr(t, e, tt.src)); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
		}
	}
}

// TestAtoms is spec §8's exact atoms property.
func TestAtoms(t *testing.T) {
	e := newNamespace()
	evalStr(t, e, "(def! a (atom 1))")
	evalStr(t, e, "(swap! a + 2)")
	got := evalStr(t, e, "(deref a)")
	if got.(*value.Integer).Val != 3 {
		t.Fatalf("got %v, want 3", got)
	}
}

func TestAtomPredicateAndReset(t *testing.T) {
	e := newNamespace()
	evalStr(t, e, "(def! a (atom 1))")
	if got := pr(evalStr(t, e, "(atom? a)")); got != "true" {
		t.Fatalf("atom? = %s, want true", got)
	}
	if got := pr(evalStr(t, e, `(reset! a "x")`)); got != `"x"` {
		t.Fatalf("reset! = %s, want \"x\"", got)
	}
}

func TestPredicates(t *testing.T) {
	e := newNamespace()
	tests := []struct{ src, want string }{
		{"(nil? nil)", "true"},
		{"(true? true)", "true"},
		{"(false? false)", "true"},
		{"(symbol? 'x)", "true"},
		{"(keyword? :x)", "true"},
		{"(fn? (fn* (x) x))", "true"},
		{"(number? 1)", "true"},
		{`(string? "x")`, "true"},
	}
	for _, tt := range tests {
		if got := pr(evalStr(t, e, tt.src)); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	e := newNamespace()
	if got := pr(evalStr(t, e, `(symbol "x")`)); got != "x" {
		t.Fatalf("symbol = %s, want x", got)
	}
	if got := pr(evalStr(t, e, `(keyword "x")`)); got != ":x" {
		t.Fatalf("keyword = %s, want :x", got)
	}
	if got := pr(evalStr(t, e, `(keyword :x)`)); got != ":x" {
		t.Fatalf("keyword on keyword = %s, want :x", got)
	}
}

func TestApplyAndMap(t *testing.T) {
	e := newNamespace()
	if got := pr(evalStr(t, e, "(apply + 1 2 '(3 4))")); got != "10" {
		t.Fatalf("apply = %s, want 10", got)
	}
	evalStr(t, e, "(def! double (fn* (x) (* x 2)))")
	if got := pr(evalStr(t, e, "(map double '(1 2 3))")); got != "(2 4 6)" {
		t.Fatalf("map = %s, want (2 4 6)", got)
	}
}

func TestEnvKeys(t *testing.T) {
	e := newNamespace()
	evalStr(t, e, "(def! a 1)")
	evalStr(t, e, "(def! b 2)")
	got := evalStr(t, e, "(env-keys)")
	list, ok := got.(*value.List)
	if !ok {
		t.Fatalf("env-keys did not return a list: %T", got)
	}
	seen := map[string]bool{}
	for _, item := range list.Items {
		sym, ok := item.(*value.Symbol)
		if !ok {
			t.Fatalf("env-keys entry is not a symbol: %T", item)
		}
		seen[sym.Name] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("env-keys missing a/b: %v", pr(got))
	}
}

func TestMetaRoundtrip(t *testing.T) {
	e := newNamespace()
	got := evalStr(t, e, `(meta (with-meta [1 2] {"a" 1}))`)
	if want := `{"a" 1}`; pr(got) != want {
		t.Fatalf("got %s, want %s", pr(got), want)
	}
}

func TestReadStringAndEval(t *testing.T) {
	e := newNamespace()
	if got := pr(evalStr(t, e, `(eval (read-string "(+ 1 2)"))`)); got != "3" {
		t.Fatalf("got %s, want 3", got)
	}
}

func TestHostLanguageBound(t *testing.T) {
	e := newNamespace()
	got, ok := e.Get("*host-language*")
	if !ok {
		t.Fatal("*host-language* not bound")
	}
	if _, ok := got.(*value.String); !ok {
		t.Fatalf("*host-language* is not a string: %T", got)
	}
}

func TestUndefinedSymbolError(t *testing.T) {
	e := newNamespace()
	err := evalErr(t, e, "undefined-name")
	if _, ok := err.(*errors.UndefinedSymbolError); !ok {
		t.Fatalf("expected *errors.UndefinedSymbolError, got %T (%v)", err, err)
	}
}

func TestParseFailureOnUnterminatedList(t *testing.T) {
	_, err := reader.ReadStr("(")
	if _, ok := err.(*errors.ParseError); !ok {
		t.Fatalf("expected *errors.ParseError, got %T (%v)", err, err)
	}
}
