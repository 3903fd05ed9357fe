// Package value implements Lumen's tagged runtime value model: the
// closed set of Nil/True/False/Integer/Float/String/Symbol/Keyword/
// List/Vector/HashMap/Atom/Function/Closure variants, together with
// the total comparator that backs equality, HashMap key ordering, and
// printed output.
package value

import "math"

// Value is the common interface implemented by every Lumen runtime
// value. Concrete types are a closed set (see the variants below); new
// host code should never add another implementation.
type Value interface {
	// typeName returns a short tag used in error messages and the
	// Kind() accessor. Unexported so the variant set stays closed to
	// this package.
	typeName() string
}

// Meta returns v's meta slot, or Nil if v carries none. Only the
// variants that accept `with-meta` (§4.7) keep a mutable-by-clone meta
// field; everything else reports Nil.
func Meta(v Value) Value {
	if m, ok := v.(interface{ meta() Value }); ok {
		return m.meta()
	}
	return Nil
}

// WithMeta returns a shallow clone of v carrying the given meta value.
// It mirrors the `with-meta` primitive (§4.7) and the reader's `^`
// macro (§4.2).
func WithMeta(v Value, meta Value) (Value, bool) {
	if m, ok := v.(interface{ withMeta(Value) Value }); ok {
		return m.withMeta(meta), true
	}
	return v, false
}

// Kind reports v's variant name, e.g. for `type`-style diagnostics.
func Kind(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.typeName()
}

// --- Singletons -------------------------------------------------------

type nilValue struct{}
type trueValue struct{}
type falseValue struct{}

func (nilValue) typeName() string   { return "nil" }
func (trueValue) typeName() string  { return "true" }
func (falseValue) typeName() string { return "false" }

// Nil, True, False are the three interned singletons of spec §3. Every
// instance of each is the same pointer-identical value.
var (
	Nil   Value = nilValue{}
	True  Value = trueValue{}
	False Value = falseValue{}
)

// Bool converts a host bool into the True/False singletons.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Truthy implements spec §4.6's truthiness rule: everything is truthy
// except the Nil and False singletons.
func Truthy(v Value) bool {
	return v != Nil && v != False
}

// --- Integer / Float ----------------------------------------------------

// Integer is a signed 64-bit integer value.
type Integer struct {
	Val int64
}

func (*Integer) typeName() string { return "integer" }

// NewInteger constructs an Integer value.
func NewInteger(v int64) *Integer { return &Integer{Val: v} }

// Float is an IEEE-754 double-precision value.
type Float struct {
	Val float64
}

func (*Float) typeName() string { return "float" }

// NewFloat constructs a Float value.
func NewFloat(v float64) *Float { return &Float{Val: v} }

// divideByZeroEpsilon is the magnitude threshold used to detect a
// Float divisor that should be treated as zero. Grounded on
// original_source/c_thylacine/core.c's float division guard (spec §9
// Open Question: epsilon comparison, not exact `== 0.0`).
const divideByZeroEpsilon = 1e-12

// IsZeroFloat reports whether f is close enough to zero to be treated
// as a division-by-zero divisor.
func IsZeroFloat(f float64) bool {
	return math.Abs(f) < divideByZeroEpsilon
}

// --- String / Symbol / Keyword ------------------------------------------

// String is an immutable byte sequence.
type String struct {
	Val  string
	meta_ Value
}

func (*String) typeName() string { return "string" }

// NewString constructs a String value.
func NewString(s string) *String { return &String{Val: s, meta_: Nil} }

func (s *String) meta() Value { return s.meta_ }
func (s *String) withMeta(m Value) Value {
	clone := *s
	clone.meta_ = m
	return &clone
}

// Symbol is an interned-style name; identity is by byte equality.
type Symbol struct {
	Name  string
	meta_ Value
}

func (*Symbol) typeName() string { return "symbol" }

// NewSymbol constructs a Symbol value.
func NewSymbol(name string) *Symbol { return &Symbol{Name: name, meta_: Nil} }

func (s *Symbol) meta() Value { return s.meta_ }
func (s *Symbol) withMeta(m Value) Value {
	clone := *s
	clone.meta_ = m
	return &clone
}

// Keyword is a Symbol-like value whose printed form begins with ':'.
// Name does NOT include the leading colon; printing adds it back.
type Keyword struct {
	Name  string
	meta_ Value
}

func (*Keyword) typeName() string { return "keyword" }

// NewKeyword constructs a Keyword from a bare name (without ':').
func NewKeyword(name string) *Keyword { return &Keyword{Name: name, meta_: Nil} }

func (k *Keyword) meta() Value { return k.meta_ }
func (k *Keyword) withMeta(m Value) Value {
	clone := *k
	clone.meta_ = m
	return &clone
}
