package eval

import (
	"github.com/tscott-dev/lumen/internal/env"
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

// evalSpecialForm dispatches the special forms of spec §4.6's table.
// When name does not name a special form it returns handled=false and
// the caller proceeds to ordinary application. When it does:
//   - handled=true means result (and err) are the step's final value;
//   - handled=false with a non-nil nextAst/nextEnv means the caller
//     should rebind ast/env to them and continue the trampoline loop
//     (the form's TCO tail position).
func evalSpecialForm(name string, list *value.List, environment *env.Environment) (nextAst value.Value, nextEnv *env.Environment, result value.Value, handled bool, err error) {
	switch name {
	case "def!":
		v, err := evalDefBang(list, environment)
		return nil, nil, v, true, err

	case "defmacro!":
		v, err := evalDefMacroBang(list, environment)
		return nil, nil, v, true, err

	case "let*":
		child, body, err := evalLetStar(list, environment)
		if err != nil {
			return nil, nil, nil, true, err
		}
		return body, child, nil, false, nil

	case "do":
		next, err := evalDo(list, environment)
		if err != nil {
			return nil, nil, nil, true, err
		}
		return next, environment, nil, false, nil

	case "if":
		next, err := evalIf(list, environment)
		if err != nil {
			return nil, nil, nil, true, err
		}
		return next, environment, nil, false, nil

	case "fn*":
		v, err := evalFnStar(list, environment)
		return nil, nil, v, true, err

	case "quote":
		if len(list.Items) < 2 {
			return nil, nil, value.Nil, true, nil
		}
		return nil, nil, list.Items[1], true, nil

	case "quasiquote":
		if len(list.Items) < 2 {
			return nil, nil, value.Nil, true, nil
		}
		return quasiquote(list.Items[1]), environment, nil, false, nil

	case "macroexpand":
		if len(list.Items) < 2 {
			return nil, nil, value.Nil, true, nil
		}
		v, err := macroExpand(list.Items[1], environment)
		return nil, nil, v, true, err

	case "throw":
		if len(list.Items) < 2 {
			return nil, nil, nil, true, errors.NewUserError(value.Nil)
		}
		payload, err := Eval(list.Items[1], environment)
		if err != nil {
			return nil, nil, nil, true, err
		}
		return nil, nil, nil, true, errors.NewUserError(payload)

	default:
		return nil, nil, nil, false, nil
	}
}

// evalDefBang implements `(def! NAME FORM)`: evaluate FORM, bind NAME
// in env, return the bound value.
func evalDefBang(list *value.List, environment *env.Environment) (value.Value, error) {
	if len(list.Items) != 3 {
		return nil, errors.NewTypeError("def! requires exactly 2 arguments")
	}
	sym, ok := list.Items[1].(*value.Symbol)
	if !ok {
		return nil, errors.NewTypeError("def! name must be a symbol, got %s", value.Kind(list.Items[1]))
	}
	val, err := Eval(list.Items[2], environment)
	if err != nil {
		return nil, err
	}
	environment.Set(sym.Name, val)
	return val, nil
}

// evalDefMacroBang implements `(defmacro! NAME FORM)`: as def!, but a
// Closure result is flagged is_macro before being bound.
func evalDefMacroBang(list *value.List, environment *env.Environment) (value.Value, error) {
	if len(list.Items) != 3 {
		return nil, errors.NewTypeError("defmacro! requires exactly 2 arguments")
	}
	sym, ok := list.Items[1].(*value.Symbol)
	if !ok {
		return nil, errors.NewTypeError("defmacro! name must be a symbol, got %s", value.Kind(list.Items[1]))
	}
	val, err := Eval(list.Items[2], environment)
	if err != nil {
		return nil, err
	}
	if closure, ok := val.(*value.Closure); ok {
		val = closure.MarkMacro()
	}
	environment.Set(sym.Name, val)
	return val, nil
}

// evalLetStar implements `(let* BINDS FORM)`: builds a child frame,
// binds each paired (symbol, form) evaluating successive values in
// that same child frame, then returns the child frame and FORM for
// the caller to tail-evaluate.
func evalLetStar(list *value.List, environment *env.Environment) (*env.Environment, value.Value, error) {
	if len(list.Items) != 3 {
		return nil, nil, errors.NewTypeError("let* requires exactly 2 arguments")
	}
	binds, ok := value.AsSequence(list.Items[1])
	if !ok {
		return nil, nil, errors.NewTypeError("let* bindings must be a list or vector, got %s", value.Kind(list.Items[1]))
	}
	if len(binds)%2 != 0 {
		return nil, nil, errors.NewTypeError("let* bindings must have an even number of forms")
	}

	child := env.NewChild(environment)
	for i := 0; i+1 < len(binds); i += 2 {
		sym, ok := binds[i].(*value.Symbol)
		if !ok {
			return nil, nil, errors.NewTypeError("let* binding name must be a symbol, got %s", value.Kind(binds[i]))
		}
		val, err := Eval(binds[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Set(sym.Name, val)
	}
	return child, list.Items[2], nil
}

// evalDo implements `(do FORM*)`: evaluate every form but the last for
// effect, then return the last form for the caller to tail-evaluate.
// An empty body evaluates to nil.
func evalDo(list *value.List, environment *env.Environment) (value.Value, error) {
	forms := list.Items[1:]
	if len(forms) == 0 {
		return value.Nil, nil
	}
	for _, f := range forms[:len(forms)-1] {
		if _, err := Eval(f, environment); err != nil {
			return nil, err
		}
	}
	return forms[len(forms)-1], nil
}

// evalIf implements `(if COND THEN ELSE?)`: evaluate COND, then return
// THEN or ELSE (or nil, if ELSE is absent) for the caller to
// tail-evaluate.
func evalIf(list *value.List, environment *env.Environment) (value.Value, error) {
	if len(list.Items) < 3 || len(list.Items) > 4 {
		return nil, errors.NewTypeError("if requires 2 or 3 arguments")
	}
	cond, err := Eval(list.Items[1], environment)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return list.Items[2], nil
	}
	if len(list.Items) == 4 {
		return list.Items[3], nil
	}
	return value.Nil, nil
}

// evalFnStar implements `(fn* PARAMS BODY)`: produce a non-macro
// Closure capturing env, PARAMS, and BODY.
func evalFnStar(list *value.List, environment *env.Environment) (value.Value, error) {
	if len(list.Items) != 3 {
		return nil, errors.NewTypeError("fn* requires exactly 2 arguments")
	}
	return value.NewClosure(environment, list.Items[1], list.Items[2]), nil
}
