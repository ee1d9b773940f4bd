// Package preprocessor implements the macro engine's expander, built-in
// registration, and stringifier/paster: the driving pass over a token
// list, invocation-site detection, argument reading, and the exact
// recursion-guard, paste, and stringify semantics a C preprocessor needs.
//
// Engine collects the macro table, the expansion stack, and the external
// collaborators (tokenizer, input source, string table, diagnostics) into
// one value a caller constructs and owns, rather than process-wide
// globals torn down at exit.
package preprocessor

import (
	"github.com/vsajip/lacc/internal/macro"
	"github.com/vsajip/lacc/internal/token"
)

// Tokenizer is the external "tokenizer" collaborator: tokenize the given
// input, reporting whether the whole input was consumed by tokens
// actually produced (used by the paster to validate a paste result, and
// by the built-in micro-parser to tokenize literal replacement text).
type Tokenizer interface {
	Tokenize(input string) (token.List, bool)
}

// InputSource is the external "input source" collaborator: the file and
// line currently being read.
type InputSource interface {
	CurrentFileLine() int
	CurrentFilePath() string
}

// StringTable is the external "string table" collaborator: interning for
// literal and stringified text.
type StringTable interface {
	Init(s string) string
	Register(buf []byte) string
}

// Diagnostics is the external "diagnostic sink" collaborator. Fatalf must
// not return.
type Diagnostics interface {
	Fatalf(format string, args ...interface{})
}

// Engine is the macro engine's core-exposed surface: define, undef,
// definition, expand, stringify, tok_cmp, register_builtin_definitions,
// print_list.
type Engine struct {
	table *macro.Table
	stack *macro.Stack

	tok    Tokenizer
	source InputSource
	strtab StringTable
	diag   Diagnostics
}

// New builds an Engine with an empty macro table over the given
// collaborators.
func New(tok Tokenizer, source InputSource, strtab StringTable, diag Diagnostics) *Engine {
	return &Engine{
		table:  macro.NewTable(),
		stack:  macro.NewStack(),
		tok:    tok,
		source: source,
		strtab: strtab,
		diag:   diag,
	}
}

// Define inserts m into the table. If a macro of that name already
// exists with a different form, parameter count, or replacement list,
// this is a redefinition conflict and is fatal.
func (e *Engine) Define(m macro.Macro) {
	if !e.table.Define(m) {
		e.diag.Fatalf("redefinition of macro %q with a different substitution", m.Name)
	}
}

// Undef removes any binding for name. Silently succeeds if none exists.
func (e *Engine) Undef(name string) {
	e.table.Undef(name)
}

// Definition returns the macro bound to name, or (Macro{}, false). As a
// side effect, if the returned macro is __LINE__, its single replacement
// token's numeric value is overwritten with the current source line
// number in place, avoiding an allocation per __LINE__ reference.
func (e *Engine) Definition(name string) (macro.Macro, bool) {
	m, ok := e.table.Lookup(name)
	if !ok {
		return macro.Macro{}, false
	}
	if name == "__LINE__" && len(m.Replacement) > 0 {
		m.Replacement[0].NumValue = uint64(e.source.CurrentFileLine())
	}
	return m, true
}

// TokCmp reports whether a and b are identical: kind and payload
// coincide, numbers compare by type and value, parameter-placeholders
// compare by index.
func TokCmp(a, b token.Token) bool { return token.Equal(a, b) }

// PrintList renders a debug dump of list.
func PrintList(list token.List) string { return list.String() }

// StackDepth reports the current expansion-stack depth. It is zero
// between top-level Expand calls; tests use it to confirm the guard
// drains fully even after deep recursion.
func (e *Engine) StackDepth() int { return e.stack.Len() }
