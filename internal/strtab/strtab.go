// Package strtab implements the string-interning table the macro engine
// treats as an external collaborator. Go string values already compare
// cheaply by content, but the engine still routes stringified text through
// a single intern pool so that repeated "#x" stringifications of identical
// text share storage: equal strings get equal handles.
package strtab

import "sync"

// Table is a concurrent string-intern pool.
type Table struct {
	mu   sync.RWMutex
	pool map[string]string
}

// New returns an empty, ready-to-use Table.
func New() *Table {
	return &Table{pool: make(map[string]string)}
}

// Init interns a Go string literal known at call time, e.g. a fixed file
// path.
func (t *Table) Init(s string) string {
	return t.intern(s)
}

// Register interns an arbitrary byte buffer, returning the canonical
// handle for it.
func (t *Table) Register(buf []byte) string {
	return t.intern(string(buf))
}

func (t *Table) intern(s string) string {
	t.mu.RLock()
	if v, ok := t.pool[s]; ok {
		t.mu.RUnlock()
		return v
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.pool[s]; ok {
		return v
	}
	t.pool[s] = s
	return s
}

// Cmp reports the strcmp-style ordering of two interned handles. Since
// handles are plain Go strings this is just a byte comparison, kept as a
// named operation of the string-table contract. The macro table does not
// call it; macro equality compares token spellings directly.
func Cmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
