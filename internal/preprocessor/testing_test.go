package preprocessor_test

import (
	"fmt"
	"testing"

	"github.com/vsajip/lacc/internal/lex"
	"github.com/vsajip/lacc/internal/preprocessor"
	"github.com/vsajip/lacc/internal/strtab"
	"github.com/vsajip/lacc/internal/token"
)

type tokenizer struct{}

func (tokenizer) Tokenize(input string) (token.List, bool) { return lex.Tokenize(input) }

type fakeSource struct {
	line int
	path string
}

func (f *fakeSource) CurrentFileLine() int   { return f.line }
func (f *fakeSource) CurrentFilePath() string { return f.path }

// recordingSink turns Fatalf into a recoverable panic carrying the
// message, so tests can assert on fatal error conditions without the
// process dying.
type recordingSink struct {
	messages []string
}

func (s *recordingSink) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.messages = append(s.messages, msg)
	panic(fatal{msg})
}

type fatal struct{ msg string }

func newEngine(t *testing.T, line int, path string) (*preprocessor.Engine, *fakeSource) {
	t.Helper()
	src := &fakeSource{line: line, path: path}
	eng := preprocessor.New(tokenizer{}, src, strtab.New(), &recordingSink{})
	return eng, src
}

func tokenize(t *testing.T, s string) token.List {
	t.Helper()
	list, ok := lex.Tokenize(s)
	if !ok {
		t.Fatalf("failed to fully tokenize %q", s)
	}
	return list
}

// spell renders a token list the way a real preprocessor's textual output
// would: a space appears between two tokens only when the right-hand
// token carries a positive leading-whitespace count.
func spell(l token.List) string {
	out := ""
	for i, tk := range l {
		if i > 0 && tk.LeadingWS > 0 {
			out += " "
		}
		out += token.Spell(tk)
	}
	return out
}

func mustPanic(t *testing.T, f func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a fatal panic, got none")
		}
		fe, ok := r.(fatal)
		if !ok {
			panic(r)
		}
		msg = fe.msg
	}()
	f()
	return ""
}
