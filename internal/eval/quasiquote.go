package eval

import "github.com/tscott-dev/lumen/internal/value"

// quasiquote implements spec §4.6's quasiquote expansion: a purely
// syntactic transform of x into a List of `quote`/`cons`/`concat`
// operations that, when evaluated, reproduce x with any `unquote`/
// `splice-unquote` forms substituted. Grounded on
// original_source/c_thylacine/eval.c's quasiquote routine.
func quasiquote(x value.Value) value.Value {
	items, ok := nonEmptySeq(x)
	if !ok {
		return value.NewList(value.NewSymbol("quote"), x)
	}

	if sym, ok := items[0].(*value.Symbol); ok && sym.Name == "unquote" {
		if len(items) > 1 {
			return items[1]
		}
		return value.Nil
	}

	rest := seqRest(items)

	if innerItems, ok := nonEmptySeq(items[0]); ok {
		if sym, ok := innerItems[0].(*value.Symbol); ok && sym.Name == "splice-unquote" {
			var spliced value.Value = value.Nil
			if len(innerItems) > 1 {
				spliced = innerItems[1]
			}
			return value.NewList(value.NewSymbol("concat"), spliced, quasiquote(rest))
		}
	}

	return value.NewList(value.NewSymbol("cons"), quasiquote(items[0]), quasiquote(rest))
}

// nonEmptySeq returns x's elements if x is a non-empty List or Vector.
func nonEmptySeq(x value.Value) ([]value.Value, bool) {
	items, ok := value.AsSequence(x)
	if !ok || len(items) == 0 {
		return nil, false
	}
	return items, true
}

// seqRest builds a List of items[1:], or the empty List if there is
// nothing left.
func seqRest(items []value.Value) value.Value {
	if len(items) <= 1 {
		return value.NewList()
	}
	return value.NewList(items[1:]...)
}
