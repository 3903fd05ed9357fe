// Package reader assembles a Lumen token sequence into a tagged Value
// tree (spec §4.2): the lexer's tokens become atoms, collections, and
// reader-macro forms via a single cursor with one-token lookahead.
// Grounded on original_source/c_thylacine/reader.c for the exact
// dispatch order and the "even element count" HashMap check spec.md
// leaves implementation-defined.
package reader

import (
	"strconv"
	"strings"

	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/lexer"
	"github.com/tscott-dev/lumen/internal/value"
)

// Reader walks a token sequence with a single cursor and one-token
// lookahead (spec §4.2).
type Reader struct {
	tokens []string
	pos    int
}

// New creates a Reader over tokens.
func New(tokens []string) *Reader {
	return &Reader{tokens: tokens}
}

func (r *Reader) peek() (string, bool) {
	if r.pos >= len(r.tokens) {
		return "", false
	}
	return r.tokens[r.pos], true
}

func (r *Reader) next() (string, bool) {
	tok, ok := r.peek()
	if ok {
		r.pos++
	}
	return tok, ok
}

// ReadStr tokenizes and reads a single form from src (spec §4.7's
// `read-string`). An input with no tokens at all (blank line, comment
// only) yields errors.ErrEOF so callers can skip it without printing a
// diagnostic, matching the REPL's treatment of a blank input line. A
// failure anywhere in tokenizing or reading leaves no partial state
// behind (spec §4.5): each call starts a fresh Reader over a fresh
// token slice.
func ReadStr(src string) (value.Value, error) {
	tokens, unterminated := lexer.Tokenize(src)
	if unterminated {
		return nil, errors.NewParseError("unterminated string")
	}
	if len(tokens) == 0 {
		return nil, errors.ErrEOF
	}
	return New(tokens).ReadForm()
}

// ReadForm reads exactly one form starting at the cursor, dispatching
// on the first byte of the next token (spec §4.2).
func (r *Reader) ReadForm() (value.Value, error) {
	tok, ok := r.peek()
	if !ok {
		return nil, errors.NewParseError("unexpected end of input")
	}

	switch tok {
	case "(":
		return r.readSeq(")", true)
	case "[":
		return r.readSeq("]", false)
	case "{":
		return r.readHashMap()
	case ")", "]", "}":
		return nil, errors.NewParseError("unexpected '%s'", tok)
	case "'":
		return r.readWrapped("quote")
	case "`":
		return r.readWrapped("quasiquote")
	case "~":
		return r.readWrapped("unquote")
	case "~@":
		return r.readWrapped("splice-unquote")
	case "@":
		return r.readWrapped("deref")
	case "^":
		return r.readWithMeta()
	default:
		return r.readAtom(tok)
	}
}

// readWrapped consumes the current reader-macro token, reads the next
// form, and wraps it as `(sym X)` (spec §4.2).
func (r *Reader) readWrapped(sym string) (value.Value, error) {
	r.next() // the macro token itself
	target, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	return value.NewList(value.NewSymbol(sym), target), nil
}

// readWithMeta implements `^ meta target` → `(with-meta target meta)`
// (spec §4.2: "the source order is `^ meta target` but the produced
// list is `(with-meta target meta)`").
func (r *Reader) readWithMeta() (value.Value, error) {
	r.next() // '^'
	meta, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	target, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	return value.NewList(value.NewSymbol("with-meta"), target, meta), nil
}

// readSeq reads a List or Vector. The opening token has already been
// peeked, not consumed.
func (r *Reader) readSeq(close string, isList bool) (value.Value, error) {
	r.next() // the opener
	items, err := r.readUntil(close)
	if err != nil {
		return nil, err
	}
	if isList {
		return value.NewList(items...), nil
	}
	return value.NewVector(items...), nil
}

// readUntil reads forms until it sees the close token (which it
// consumes), returning a parse failure if input ends first (spec
// §4.2: "unterminated collection").
func (r *Reader) readUntil(close string) ([]value.Value, error) {
	var items []value.Value
	for {
		tok, ok := r.peek()
		if !ok {
			return nil, errors.NewParseError("expected '%s', got EOF", close)
		}
		if tok == close {
			r.next()
			return items, nil
		}
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		items = append(items, form)
	}
}

// readHashMap reads `{ … }`, requiring an even number of children,
// paired key-first (spec §4.2).
func (r *Reader) readHashMap() (value.Value, error) {
	r.next() // '{'
	items, err := r.readUntil("}")
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, errors.NewParseError("hash-map literal requires an even number of forms")
	}
	b := value.NewHashMapBuilder()
	for i := 0; i+1 < len(items); i += 2 {
		b.Add(items[i], items[i+1])
	}
	return b.Build(), nil
}

// readAtom classifies a non-punctuation token: a String, Keyword, the
// nil/true/false singletons, an Integer, a Float, or a bare Symbol
// (spec §4.2).
func (r *Reader) readAtom(tok string) (value.Value, error) {
	r.next()

	switch {
	case strings.HasPrefix(tok, "\""):
		return r.readString(tok)
	case strings.HasPrefix(tok, ":"):
		return value.NewKeyword(tok[1:]), nil
	}

	switch tok {
	case "nil":
		return value.Nil, nil
	case "true":
		return value.True, nil
	case "false":
		return value.False, nil
	}

	if isIntegerShaped(tok) {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, errors.NewParseError("integer overflow in numeric literal '%s'", tok)
		}
		return value.NewInteger(n), nil
	}

	if looksFloatShaped(tok) {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return value.NewFloat(f), nil
		}
	}

	return value.NewSymbol(tok), nil
}

// readString unescapes a `"`-delimited token (spec §4.2: strip the
// surrounding quotes; `\\`→`\`, `\"`→`"`, `\n`→newline; any other
// `\X` drops the backslash).
func (r *Reader) readString(tok string) (value.Value, error) {
	if len(tok) < 2 || tok[len(tok)-1] != '"' {
		return nil, errors.NewParseError("unterminated string %s", tok)
	}
	inner := tok[1 : len(tok)-1]

	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' || i == len(inner)-1 {
			sb.WriteByte(c)
			continue
		}
		i++
		switch inner[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		default:
			sb.WriteByte(inner[i])
		}
	}
	return value.NewString(sb.String()), nil
}

// isIntegerShaped reports whether tok is an optional '-' followed by
// one or more decimal digits and nothing else.
func isIntegerShaped(tok string) bool {
	i := 0
	if len(tok) > 0 && tok[0] == '-' {
		i = 1
	}
	if i == len(tok) {
		return false
	}
	for ; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// looksFloatShaped reports whether tok contains digits and a decimal
// point or exponent marker, a quick filter before attempting
// strconv.ParseFloat so non-numeric symbols (e.g. `list->vector`)
// don't get misclassified.
func looksFloatShaped(tok string) bool {
	hasDigit := false
	hasFloatMarker := false
	for i := 0; i < len(tok); i++ {
		switch {
		case tok[i] >= '0' && tok[i] <= '9':
			hasDigit = true
		case tok[i] == '.' || tok[i] == 'e' || tok[i] == 'E':
			hasFloatMarker = true
		case tok[i] == '-' || tok[i] == '+':
			// sign only valid in first position or right after 'e'/'E'
		default:
			return false
		}
	}
	return hasDigit && hasFloatMarker
}
