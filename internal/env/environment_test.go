package env_test

import (
	"testing"

	"github.com/tscott-dev/lumen/internal/env"
	"github.com/tscott-dev/lumen/internal/value"
)

func TestLookupThroughFrameChain(t *testing.T) {
	a := env.New()
	a.Set("x", value.NewInteger(1))
	b := env.NewChild(a)
	c := env.NewChild(b)

	got, ok := c.Get("x")
	if !ok {
		t.Fatal("expected x to be found via outer chain")
	}
	if iv, ok := got.(*value.Integer); !ok || iv.Val != 1 {
		t.Fatalf("got %#v, want Integer(1)", got)
	}

	b.Set("x", value.NewInteger(2))
	got, _ = c.Get("x")
	if iv := got.(*value.Integer); iv.Val != 2 {
		t.Fatalf("shadowing not observed: got %d, want 2", iv.Val)
	}
}

func TestUndefinedLookup(t *testing.T) {
	e := env.New()
	if _, ok := e.Get("missing"); ok {
		t.Fatal("expected missing symbol to be not found")
	}
}

func TestVariadicBinding(t *testing.T) {
	binds := value.NewList(value.NewSymbol("a"), value.NewSymbol("&"), value.NewSymbol("b"))

	frame, err := env.Bind(env.New(), binds, []value.Value{
		value.NewInteger(1), value.NewInteger(2), value.NewInteger(3),
	})
	if err != nil {
		t.Fatal(err)
	}
	bv, _ := frame.Get("b")
	list := bv.(*value.List)
	if len(list.Items) != 2 {
		t.Fatalf("expected (2 3), got %v", list.Items)
	}

	frame, err = env.Bind(env.New(), binds, []value.Value{value.NewInteger(1)})
	if err != nil {
		t.Fatal(err)
	}
	bv, _ = frame.Get("b")
	list = bv.(*value.List)
	if len(list.Items) != 0 {
		t.Fatalf("expected empty rest binding, got %v", list.Items)
	}
}

func TestEvalRootSkipsArgsFrames(t *testing.T) {
	root := env.New()
	callFrame, err := env.Bind(root, value.NewList(value.NewSymbol("x")), []value.Value{value.NewInteger(1)})
	if err != nil {
		t.Fatal(err)
	}
	if got := callFrame.EvalRoot(); got != root {
		t.Fatal("EvalRoot should skip the args frame and land on root")
	}
}
