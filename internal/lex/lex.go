// Package lex implements a minimal tokenizer over C-like source text: it
// scans identifiers, numbers, string literals, and punctuators into
// token.Token values, tracking leading-whitespace counts and dedicated
// punctuator kinds. The macro engine depends on this only through the
// Tokenizer interface it declares, so a fuller tokenizer can be swapped
// in without touching expansion logic.
package lex

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/vsajip/lacc/internal/token"
)

// Lexer tokenizes a single line (or buffer) of C-like source text.
type Lexer struct {
	input string
	pos   int
}

// New returns a Lexer over input, starting at offset 0.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Next reads and returns the next token, advancing past it. At end of
// input it returns token.EOFToken forever.
func (l *Lexer) Next() token.Token {
	ws := l.skipSpaces()

	if l.pos >= len(l.input) {
		return token.EOFToken
	}

	ch := l.input[l.pos]

	if ch == '\n' {
		l.pos++
		t := token.Token{Kind: token.Newline, LeadingWS: ws}
		return t
	}

	if ch >= '0' && ch <= '9' {
		return l.readNumber(ws)
	}

	if ch == '"' {
		return l.readString(ws)
	}

	if isIdentStart(rune(ch)) {
		return l.readIdent(ws)
	}

	return l.readPunct(ws)
}

// Pos returns the current byte offset into the input.
func (l *Lexer) Pos() int { return l.pos }

// Tokenize consumes the tokenizer's input to end-of-string, returning the
// resulting sequence with no trailing EOF token appended, and reports
// whether every byte of the input was consumed by the returned tokens
// (used by the paster: a leftover byte means the pasted spelling wasn't a
// single valid token).
func Tokenize(input string) (token.List, bool) {
	l := New(input)
	var out token.List
	for {
		t := l.Next()
		if t.Kind == token.EOF {
			break
		}
		out = append(out, t)
	}
	return out, l.pos == len(input)
}

func (l *Lexer) skipSpaces() int {
	n := 0
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
			n++
		default:
			return n
		}
	}
	return n
}

func (l *Lexer) readNumber(ws int) token.Token {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
	}
	text := l.input[start:l.pos]
	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Value too large for int64; keep the low 64 bits, matching a
		// hosted C compiler's wraparound rather than failing outright.
		var uv uint64
		for i := 0; i < len(text); i++ {
			uv = uv*10 + uint64(text[i]-'0')
		}
		return token.Token{Kind: token.Number, NumValue: uv, NumType: token.NumType{Signed: false, Width: 64}, LeadingWS: ws}
	}
	t := token.Int(val, 32)
	t.LeadingWS = ws
	return t
}

func (l *Lexer) readString(ws int) token.Token {
	start := l.pos
	l.pos++
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		if l.input[l.pos] == '\\' && l.pos+1 < len(l.input) {
			l.pos++
		}
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++ // closing quote
	}
	t := token.StringLit(l.input[start:l.pos])
	t.LeadingWS = ws
	return t
}

func (l *Lexer) readIdent(ws int) token.Token {
	start := l.pos
	for l.pos < len(l.input) && isIdentCont(rune(l.input[l.pos])) {
		l.pos++
	}
	t := token.Ident(l.input[start:l.pos])
	t.LeadingWS = ws
	return t
}

var twoCharPuncts = []string{"==", "!=", "<=", ">=", "&&", "||", "->", "##"}

func (l *Lexer) readPunct(ws int) token.Token {
	rest := l.input[l.pos:]
	for _, p := range twoCharPuncts {
		if len(rest) >= 2 && rest[:2] == p {
			l.pos += 2
			t := token.Punctuator(p)
			t.LeadingWS = ws
			return t
		}
	}
	ch := l.input[l.pos]
	l.pos++
	t := token.Punctuator(string(ch))
	t.LeadingWS = ws
	return t
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

// Quote double-quotes s for use as a string-literal spelling, escaping
// backslashes and embedded quotes.
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}
