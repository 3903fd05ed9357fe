// Package printer renders Lumen Values back to text (spec §4.3): the
// readable mode used by pr-str/prn and the REPL, and the display mode
// used by str/println. Grounded on original_source/c_thylacine/
// printer.c for the exact escaping and closure-tag behavior spec.md
// leaves implementation-defined.
package printer

import (
	"strconv"
	"strings"

	"github.com/tscott-dev/lumen/internal/value"
)

// PrStr renders v as text. readable selects §4.3's readable mode
// (strings quoted and escaped) vs. display mode (raw bytes).
func PrStr(v value.Value, readable bool) string {
	var sb strings.Builder
	write(&sb, v, readable, map[*value.Atom]bool{})
	return sb.String()
}

// Join renders each of vs with PrStr and concatenates the results,
// separated by sep. This backs `pr-str`/`prn` (space-joined,
// readable), `println` (space-joined, display) and `str` (no
// separator, display) per spec §4.7.
func Join(vs []value.Value, readable bool, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = PrStr(v, readable)
	}
	return strings.Join(parts, sep)
}

func write(sb *strings.Builder, v value.Value, readable bool, seen map[*value.Atom]bool) {
	switch tv := v.(type) {
	case *value.Integer:
		sb.WriteString(strconv.FormatInt(tv.Val, 10))
	case *value.Float:
		sb.WriteString(strconv.FormatFloat(tv.Val, 'g', -1, 64))
	case *value.String:
		writeString(sb, tv.Val, readable)
	case *value.Symbol:
		sb.WriteString(tv.Name)
	case *value.Keyword:
		sb.WriteByte(':')
		sb.WriteString(tv.Name)
	case *value.List:
		writeSeq(sb, "(", ")", tv.Items, readable, seen)
	case *value.Vector:
		writeSeq(sb, "[", "]", tv.Items, readable, seen)
	case *value.HashMap:
		writeMap(sb, tv, readable, seen)
	case *value.Atom:
		writeAtom(sb, tv, readable, seen)
	case *value.Function:
		sb.WriteString("#function")
	case *value.Closure:
		if tv.IsMacro {
			sb.WriteString("#macro")
		} else {
			sb.WriteString("#function")
		}
	default:
		switch v {
		case value.Nil:
			sb.WriteString("nil")
		case value.True:
			sb.WriteString("true")
		case value.False:
			sb.WriteString("false")
		default:
			sb.WriteString("#unknown")
		}
	}
}

func writeString(sb *strings.Builder, s string, readable bool) {
	if !readable {
		sb.WriteString(s)
		return
	}
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}

func writeSeq(sb *strings.Builder, open, close string, items []value.Value, readable bool, seen map[*value.Atom]bool) {
	sb.WriteString(open)
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, it, readable, seen)
	}
	sb.WriteString(close)
}

func writeMap(sb *strings.Builder, m *value.HashMap, readable bool, seen map[*value.Atom]bool) {
	sb.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, e.Key, readable, seen)
		sb.WriteByte(' ')
		write(sb, e.Val, readable, seen)
	}
	sb.WriteByte('}')
}

// writeAtom prints `(atom V)`, guarding against a self-referential
// atom by printing its inner value as the placeholder `#atom#` (spec
// §4.3) instead of recursing forever.
func writeAtom(sb *strings.Builder, a *value.Atom, readable bool, seen map[*value.Atom]bool) {
	if seen[a] {
		sb.WriteString("#atom#")
		return
	}
	seen[a] = true
	sb.WriteString("(atom ")
	write(sb, a.Val, readable, seen)
	sb.WriteByte(')')
	delete(seen, a)
}
