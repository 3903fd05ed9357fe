package printer_test

import (
	"testing"

	"github.com/tscott-dev/lumen/internal/printer"
	"github.com/tscott-dev/lumen/internal/value"
)

func TestPrStrReadable(t *testing.T) {
	list := value.NewList(
		value.NewInteger(1),
		value.NewList(value.NewInteger(2), value.NewInteger(3)),
		value.NewString("a\nb"),
	)
	got := printer.PrStr(list, true)
	want := `(1 (2 3) "a\nb")`
	if got != want {
		t.Fatalf("PrStr readable = %q, want %q", got, want)
	}
}

func TestPrStrDisplay(t *testing.T) {
	s := value.NewString("hi\nthere")
	if got, want := printer.PrStr(s, false), "hi\nthere"; got != want {
		t.Fatalf("PrStr display = %q, want %q", got, want)
	}
}

func TestPrStrAtomSelfReference(t *testing.T) {
	a := value.NewAtom(value.Nil)
	a.Val = a
	got := printer.PrStr(a, true)
	want := "(atom #atom#)"
	if got != want {
		t.Fatalf("PrStr self-referential atom = %q, want %q", got, want)
	}
}

func TestPrStrClosureTag(t *testing.T) {
	env := value.NewEnvironment()
	fn := value.NewClosure(env, value.NewList(), value.Nil)
	if got := printer.PrStr(fn, true); got != "#function" {
		t.Fatalf("non-macro closure printed %q", got)
	}
	macro := fn.MarkMacro()
	if got := printer.PrStr(macro, true); got != "#macro" {
		t.Fatalf("macro closure printed %q", got)
	}
}

func TestJoin(t *testing.T) {
	vs := []value.Value{value.NewInteger(1), value.NewString("x")}
	if got, want := printer.Join(vs, true, " "), `1 "x"`; got != want {
		t.Fatalf("Join readable = %q, want %q", got, want)
	}
	if got, want := printer.Join(vs, false, ""), "1x"; got != want {
		t.Fatalf("Join display = %q, want %q", got, want)
	}
}
