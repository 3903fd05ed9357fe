package printer_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/tscott-dev/lumen/internal/printer"
	"github.com/tscott-dev/lumen/internal/value"
)

// TestPrStrFixtures snapshots pr-str's readable rendering of a handful
// of representative values with go-snaps rather than inlining every
// expected string.
func TestPrStrFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		v    value.Value
	}{
		{"nested_list", value.NewList(
			value.NewInteger(1),
			value.NewList(value.NewInteger(2), value.NewInteger(3)),
			value.NewString("a\nb"),
		)},
		{"vector_mixed", value.NewVector(
			value.NewKeyword("x"),
			value.NewSymbol("y"),
			value.NewFloat(3.5),
		)},
		{"hashmap_sorted_keys", func() value.Value {
			b := value.NewHashMapBuilder()
			b.Add(value.NewString("b"), value.NewInteger(2))
			b.Add(value.NewString("a"), value.NewInteger(1))
			return b.Build()
		}()},
		{"singletons", value.NewList(value.Nil, value.True, value.False)},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, printer.PrStr(f.v, true))
		})
	}
}
