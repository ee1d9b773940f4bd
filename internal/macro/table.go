package macro

import "hash/fnv"

const bucketCount = 1024

// Table is a hashed mapping from macro name to Macro record, with a fixed
// 1024-bucket layout. It has no notion of fatal errors of its own —
// Define reports a conflicting redefinition by returning ok=false and
// lets the caller (the Engine, which owns the diagnostic sink) decide how
// to fail.
type Table struct {
	buckets [][]Macro
}

// NewTable returns an empty, ready-to-use Table.
func NewTable() *Table {
	return &Table{buckets: make([][]Macro, bucketCount)}
}

func bucketFor(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return int(h.Sum32() % bucketCount)
}

// Lookup returns the macro bound to name, if any.
func (t *Table) Lookup(name string) (Macro, bool) {
	b := t.buckets[bucketFor(name)]
	for _, m := range b {
		if m.Name == name {
			return m, true
		}
	}
	return Macro{}, false
}

// Define inserts m. If a macro of that name already exists and compares
// unequal to m under Equal, Define reports the conflict via ok=false and
// leaves the table unchanged; the caller is expected to treat this as a
// fatal redefinition error. If an identical definition already exists,
// Define is a no-op.
func (t *Table) Define(m Macro) (ok bool) {
	idx := bucketFor(m.Name)
	for i, existing := range t.buckets[idx] {
		if existing.Name == m.Name {
			if Equal(existing, m) {
				return true
			}
			_ = i
			return false
		}
	}
	t.buckets[idx] = append(t.buckets[idx], m)
	return true
}

// Undef removes any binding for name. Silently succeeds if none exists.
func (t *Table) Undef(name string) {
	idx := bucketFor(name)
	b := t.buckets[idx]
	for i, m := range b {
		if m.Name == name {
			t.buckets[idx] = append(b[:i], b[i+1:]...)
			return
		}
	}
}
