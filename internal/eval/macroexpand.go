package eval

import (
	"github.com/tscott-dev/lumen/internal/env"
	"github.com/tscott-dev/lumen/internal/value"
)

// macroExpand implements spec §4.6's macro-expansion loop: while ast
// is a List whose head Symbol resolves to a macro Closure, replace ast
// with the result of applying that closure to the List's tail,
// unevaluated. The loop stops as soon as ast is no longer such a form.
func macroExpand(ast value.Value, environment *env.Environment) (value.Value, error) {
	for {
		list, ok := ast.(*value.List)
		if !ok || len(list.Items) == 0 {
			return ast, nil
		}
		sym, ok := list.Items[0].(*value.Symbol)
		if !ok {
			return ast, nil
		}
		found, ok := environment.Get(sym.Name)
		if !ok {
			return ast, nil
		}
		closure, ok := found.(*value.Closure)
		if !ok || !closure.IsMacro {
			return ast, nil
		}

		expanded, err := Apply(environment, closure, list.Items[1:])
		if err != nil {
			return nil, err
		}
		ast = expanded
	}
}
