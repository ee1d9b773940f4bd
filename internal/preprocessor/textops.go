package preprocessor

import (
	"strings"

	"github.com/vsajip/lacc/internal/token"
)

// Stringify implements the '#' operator: concatenate the
// canonical spelling of each token in arg, inserting exactly one space
// between adjacent tokens when the right-hand token had a positive
// leading-whitespace count and is not the first token of the result. The
// resulting text is interned through the string table and returned as a
// single String-kind token. An empty argument stringifies to the literal
// empty string, `""`.
func (e *Engine) Stringify(arg token.List) token.Token {
	var b strings.Builder
	for i, t := range arg {
		if i > 0 && t.LeadingWS > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token.Spell(t))
	}

	quoted := quote(b.String())
	handle := e.strtab.Register([]byte(quoted))
	return token.StringLit(handle)
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Paste implements the '##' operator on a single pair of tokens: the two
// spellings are concatenated into one byte string and re-tokenized; if
// the tokenizer doesn't consume the whole string as a single token, the
// paste is invalid and fatal. The result inherits the left token's
// leading-whitespace count.
func (e *Engine) Paste(left, right token.Token) token.Token {
	text := token.Spell(left) + token.Spell(right)
	list, complete := e.tok.Tokenize(text)
	if !complete || len(list) != 1 {
		e.diag.Fatalf("invalid token resulting from pasting %q and %q", token.Spell(left), token.Spell(right))
	}
	result := list[0]
	result.LeadingWS = left.LeadingWS
	return result
}

// expandPasteOperators is a left-to-right fold of list into a new list: each
// '##' fuses the accumulator so far with the following token; every other
// token is copied forward unchanged. A '##' at position 0 or at the final
// position is fatal: it may not appear at the start or the end of a
// replacement list.
func (e *Engine) expandPasteOperators(list token.List) token.List {
	if len(list) == 0 {
		return list
	}
	if list[0].Kind == token.HashHash {
		e.diag.Fatalf("unexpected token paste operator at start of macro expansion")
	}

	out := token.List{list[0]}
	for i := 1; i < len(list); i++ {
		if list[i].Kind == token.HashHash {
			i++
			if i >= len(list) {
				e.diag.Fatalf("unexpected token paste operator at end of macro expansion")
			}
			out[len(out)-1] = e.Paste(out[len(out)-1], list[i])
			continue
		}
		out = token.Append(out, list[i])
	}
	return out
}
