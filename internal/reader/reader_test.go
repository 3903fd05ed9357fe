package reader_test

import (
	"testing"

	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/printer"
	"github.com/tscott-dev/lumen/internal/reader"
	"github.com/tscott-dev/lumen/internal/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q) returned error: %v", src, err)
	}
	return v
}

func TestReadAtoms(t *testing.T) {
	cases := map[string]string{
		"123":     "123",
		"-123":    "-123",
		"1.5":     "1.5",
		"abc":     "abc",
		"nil":     "nil",
		"true":    "true",
		"false":   "false",
		":keyword": ":keyword",
		`"hi"`:    `"hi"`,
	}
	for src, want := range cases {
		v := mustRead(t, src)
		if got := printer.PrStr(v, true); got != want {
			t.Errorf("ReadStr(%q) printed %q, want %q", src, got, want)
		}
	}
}

func TestReadStringEscapes(t *testing.T) {
	v := mustRead(t, `"a\nb\\c\"d"`)
	s, ok := v.(*value.String)
	if !ok {
		t.Fatalf("expected *value.String, got %T", v)
	}
	if want := "a\nb\\c\"d"; s.Val != want {
		t.Fatalf("got %q, want %q", s.Val, want)
	}
}

func TestReadCollections(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"(1 2 3)", "(1 2 3)"},
		{"[1 2 3]", "[1 2 3]"},
		{"{:a 1 :b 2}", "{:a 1 :b 2}"},
		{"()", "()"},
		{"(1, 2, 3)", "(1 2 3)"}, // commas are whitespace
	}
	for _, tc := range cases {
		v := mustRead(t, tc.src)
		if got := printer.PrStr(v, true); got != tc.want {
			t.Errorf("ReadStr(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestReadHashMapOddArity(t *testing.T) {
	_, err := reader.ReadStr("{:a 1 :b}")
	if err == nil {
		t.Fatal("expected an error for an odd-arity hash-map literal")
	}
	if _, ok := err.(*errors.ParseError); !ok {
		t.Fatalf("expected *errors.ParseError, got %T", err)
	}
}

func TestReadUnterminatedList(t *testing.T) {
	_, err := reader.ReadStr("(1 2")
	if err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
	if _, ok := err.(*errors.ParseError); !ok {
		t.Fatalf("expected *errors.ParseError, got %T", err)
	}
}

func TestReadUnexpectedCloser(t *testing.T) {
	_, err := reader.ReadStr(")")
	if err == nil {
		t.Fatal("expected an error for a stray closing paren")
	}
}

func TestReadUnterminatedString(t *testing.T) {
	_, err := reader.ReadStr(`"abc`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}

func TestReadBlankInputYieldsEOF(t *testing.T) {
	_, err := reader.ReadStr("   ; just a comment\n")
	if err != errors.ErrEOF {
		t.Fatalf("expected errors.ErrEOF, got %v", err)
	}
}

func TestReaderMacros(t *testing.T) {
	cases := map[string]string{
		"'a":  "(quote a)",
		"`a":  "(quasiquote a)",
		"~a":  "(unquote a)",
		"~@a": "(splice-unquote a)",
		"@a":  "(deref a)",
	}
	for src, want := range cases {
		v := mustRead(t, src)
		if got := printer.PrStr(v, true); got != want {
			t.Errorf("ReadStr(%q) = %q, want %q", src, got, want)
		}
	}
}

func TestReadWithMeta(t *testing.T) {
	v := mustRead(t, `^{"a" 1} [1 2 3]`)
	if got, want := printer.PrStr(v, true), `(with-meta [1 2 3] {"a" 1})`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadIntegerOverflow(t *testing.T) {
	_, err := reader.ReadStr("99999999999999999999999999999")
	if err == nil {
		t.Fatal("expected an overflow error")
	}
	if _, ok := err.(*errors.ParseError); !ok {
		t.Fatalf("expected *errors.ParseError, got %T", err)
	}
}

func TestReadNegativeSymbolNotInteger(t *testing.T) {
	v := mustRead(t, "-")
	if _, ok := v.(*value.Symbol); !ok {
		t.Fatalf("expected a bare '-' to read as a Symbol, got %T", v)
	}
}
