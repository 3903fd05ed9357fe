// Package core implements spec §4.7's default namespace: the ~60
// host-implemented primitive functions bound into a fresh root
// environment, grounded on original_source/c_thylacine/core.c's
// CORE_FN_DEF registration table.
package core

import (
	"github.com/tscott-dev/lumen/internal/env"
	"github.com/tscott-dev/lumen/internal/value"
)

// hostLanguage names the implementation for *host-language* (spec
// §4.7, printed by the REPL's banner per spec §6).
const hostLanguage = "lumen"

// MakeNamespace builds a fresh root environment with every core
// primitive bound by name, plus *host-language*. readLine implements
// the `readline` primitive's external line-editor facade; the REPL
// supplies the real one so this package never imports internal/repl.
func MakeNamespace(readLine ReadLineFunc) *env.Environment {
	e := env.New()

	fns := map[string]value.Fn{
		// Arithmetic
		"+": builtinAdd,
		"-": builtinSub,
		"*": builtinMul,
		"/": builtinDiv,

		// Comparison
		"=":  builtinEqual,
		"<":  builtinLessThan,
		"<=": builtinLessEqual,
		">":  builtinGreaterThan,
		">=": builtinGreaterEqual,

		// Print/format
		"prn":     builtinPrn,
		"println": builtinPrintln,
		"pr-str":  builtinPrStr,
		"str":     builtinStr,

		// Sequence
		"list":        builtinList,
		"list?":       builtinListP,
		"empty?":      builtinEmptyP,
		"count":       builtinCount,
		"nth":         builtinNth,
		"first":       builtinFirst,
		"rest":        builtinRest,
		"cons":        builtinCons,
		"concat":      builtinConcat,
		"conj":        builtinConj,
		"seq":         builtinSeq,
		"sequential?": builtinSequentialP,
		"vector":      builtinVector,
		"vector?":     builtinVectorP,

		// HashMap
		"hash-map":  builtinHashMap,
		"map?":      builtinMapP,
		"get":       builtinGet,
		"contains?": builtinContainsP,
		"keys":      builtinKeys,
		"vals":      builtinVals,
		"assoc":     builtinAssoc,
		"dissoc":    builtinDissoc,

		// Atoms
		"atom":   builtinAtom,
		"atom?":  builtinAtomP,
		"deref":  builtinDeref,
		"reset!": builtinReset,
		"swap!":  builtinSwap,

		// I/O & metaprogramming
		"read-string": builtinReadString,
		"slurp":       builtinSlurp,
		"eval":        builtinEval,
		"readline":    makeReadlineBuiltin(readLine),

		// Predicates
		"nil?":     builtinNilP,
		"true?":    builtinTrueP,
		"false?":   builtinFalseP,
		"symbol?":  builtinSymbolP,
		"keyword?": builtinKeywordP,
		"fn?":      builtinFnP,
		"macro?":   builtinMacroP,
		"number?":  builtinNumberP,
		"string?":  builtinStringP,

		// Constructors
		"symbol":  builtinSymbol,
		"keyword": builtinKeyword,

		// Time
		"time-ms": builtinTimeMs,

		// Meta
		"meta":      builtinMeta,
		"with-meta": builtinWithMeta,

		// Apply / higher-order
		"apply": builtinApply,
		"map":   builtinMap,
		"throw": builtinThrow,

		// Environment introspection
		"env-keys": builtinEnvKeys,
	}

	for name, fn := range fns {
		e.Set(name, value.NewFunction(name, fn))
	}

	e.Set("*host-language*", value.NewString(hostLanguage))

	return e
}
