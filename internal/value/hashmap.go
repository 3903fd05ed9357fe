package value

import "sort"

// MapEntry is a single key/value pair of a HashMap.
type MapEntry struct {
	Key Value
	Val Value
}

// HashMap is an ordered mapping from Value to Value with unique keys.
// Iteration order is deterministic by key order under Compare (spec
// §3). Entries are kept sorted by key at all times outside of the
// builder below — the "batch-insertion APIs defer sorting until a
// set_done call" invariant is realized by HashMapBuilder.Build.
type HashMap struct {
	entries []MapEntry
	meta_   Value
}

func (*HashMap) typeName() string { return "map" }

func (m *HashMap) meta() Value { return m.meta_ }
func (m *HashMap) withMeta(meta Value) Value {
	clone := *m
	clone.meta_ = meta
	return &clone
}

// EmptyHashMap is a convenience for the zero-pair map.
func EmptyHashMap() *HashMap {
	return &HashMap{entries: nil, meta_: Nil}
}

// Entries returns m's entries in sorted key order. Callers must treat
// the slice as read-only.
func (m *HashMap) Entries() []MapEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Len returns the number of key/value pairs in m.
func (m *HashMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get looks up key in m, returning (value, true) if present.
func (m *HashMap) Get(key Value) (Value, bool) {
	if m == nil {
		return nil, false
	}
	i := m.search(key)
	if i < len(m.entries) && Equal(m.entries[i].Key, key) {
		return m.entries[i].Val, true
	}
	return nil, false
}

// Has reports whether key is present in m.
func (m *HashMap) Has(key Value) bool {
	_, ok := m.Get(key)
	return ok
}

// search returns the index of the first entry whose key is not less
// than key, using Compare as the sort order.
func (m *HashMap) search(key Value) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return Compare(m.entries[i].Key, key) >= 0
	})
}

// Assoc returns a fresh HashMap with each key/value pair in kvs
// inserted or overwritten. kvs must have even length (key, val, key,
// val, …), as produced by the `assoc` primitive (spec §4.7).
func (m *HashMap) Assoc(kvs ...Value) *HashMap {
	b := NewHashMapBuilder()
	if m != nil {
		for _, e := range m.entries {
			b.Add(e.Key, e.Val)
		}
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		b.Add(kvs[i], kvs[i+1])
	}
	out := b.Build()
	if m != nil {
		out.meta_ = m.meta_
	}
	return out
}

// Dissoc returns a fresh HashMap with the given keys removed.
func (m *HashMap) Dissoc(keys ...Value) *HashMap {
	b := NewHashMapBuilder()
	if m != nil {
		for _, e := range m.entries {
			remove := false
			for _, k := range keys {
				if Equal(e.Key, k) {
					remove = true
					break
				}
			}
			if !remove {
				b.Add(e.Key, e.Val)
			}
		}
	}
	out := b.Build()
	if m != nil {
		out.meta_ = m.meta_
	}
	return out
}

// Keys returns m's keys in sorted order.
func (m *HashMap) Keys() []Value {
	out := make([]Value, 0, m.Len())
	for _, e := range m.Entries() {
		out = append(out, e.Key)
	}
	return out
}

// Vals returns m's values, ordered to match Keys().
func (m *HashMap) Vals() []Value {
	out := make([]Value, 0, m.Len())
	for _, e := range m.Entries() {
		out = append(out, e.Val)
	}
	return out
}

// HashMapBuilder accumulates key/value pairs for a HashMap under
// construction, deferring the sort-by-key pass to Build (spec §3
// invariant). Later duplicate keys overwrite earlier ones, matching
// the insertion semantics of `hash-map`/`assoc`.
type HashMapBuilder struct {
	entries []MapEntry
}

// NewHashMapBuilder creates an empty builder.
func NewHashMapBuilder() *HashMapBuilder {
	return &HashMapBuilder{}
}

// Add appends a key/value pair to the builder, unsorted.
func (b *HashMapBuilder) Add(key, val Value) {
	b.entries = append(b.entries, MapEntry{Key: key, Val: val})
}

// Build sorts the accumulated entries by key, collapses duplicate keys
// (last write wins, matching ordinary map insertion), and returns the
// finished HashMap. This is the builder's "set_done" call.
func (b *HashMapBuilder) Build() *HashMap {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return Compare(b.entries[i].Key, b.entries[j].Key) < 0
	})

	deduped := make([]MapEntry, 0, len(b.entries))
	for _, e := range b.entries {
		if n := len(deduped); n > 0 && Equal(deduped[n-1].Key, e.Key) {
			deduped[n-1] = e
			continue
		}
		deduped = append(deduped, e)
	}

	return &HashMap{entries: deduped, meta_: Nil}
}
