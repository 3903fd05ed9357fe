package repl

// bootstrapSource is spec §6's exact bootstrap block, evaluated in the
// root environment before any user input. `not`, `load-file`, `cond`,
// and `or` are defined in the dialect itself rather than as host
// primitives because that is what the original REPL does — see
// original_source/c_thylacine's bootstrap forms compiled into
// repl_env.c — and it keeps internal/core free of forms that are
// ordinary Lumen code.
//
// The four definitions are wrapped in a single `do` so one ReadStr +
// Eval call installs all of them, the same trick `load-file` itself
// uses to evaluate a whole file as one form.
const bootstrapSource = `(do
(def! not (fn* (a) (if a false true)))
(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) ")")))))
(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))
(defmacro! or (fn* (& xs) (if (empty? xs) nil (if (= 1 (count xs)) (first xs) ` + "`" + `(let* (or_FIXME ~(first xs)) (if or_FIXME or_FIXME (or ~@(rest xs))))))))
)`
