// Package token defines the atomic lexeme type shared by the tokenizer,
// the macro engine, and the stringifier/paster, plus the token-list
// algebra operations used to build and combine token sequences.
package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// Identifier is a C identifier: letters, digits, underscore, not
	// starting with a digit.
	Identifier Kind = iota
	// Number is a numeric constant, carrying a NumType payload.
	Number
	// String is a string literal, including its surrounding quotes in
	// Spelling.
	String
	// Punct is a punctuator that isn't singled out below.
	Punct
	// Hash is the '#' stringizing operator.
	Hash
	// HashHash is the '##' token-paste operator.
	HashHash
	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen
	// Comma is ','.
	Comma
	// Param is a parameter-placeholder pre-lowered into a macro's
	// replacement list; Payload is the zero-based parameter index.
	Param
	// Newline marks the end of a source line. Never present in a stored
	// replacement list.
	Newline
	// EOF is the end-of-list sentinel, used only where a sequence must
	// cross the tokenizer boundary one token at a time.
	EOF
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case Punct:
		return "punct"
	case Hash:
		return "#"
	case HashHash:
		return "##"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Comma:
		return ","
	case Param:
		return "param"
	case Newline:
		return "newline"
	case EOF:
		return "eof"
	default:
		return "invalid"
	}
}

// NumType is the C numeric type tag carried by a Number token: signedness
// and bit width. Two numbers compare equal only when both the type and
// the value match.
type NumType struct {
	Signed bool
	Width  int // in bits: 8, 16, 32, or 64
}

// Token is an atomic lexeme. Only the fields relevant to its Kind are
// meaningful; the rest are zero.
type Token struct {
	Kind Kind

	// Spelling is the canonical text for Identifier, String, Punct, Hash,
	// HashHash, LParen, RParen, and Comma tokens.
	Spelling string

	// NumValue and NumType are populated for Number tokens. NumValue
	// holds the bit pattern; interpret as signed via int64(NumValue) when
	// NumType.Signed is true.
	NumValue uint64
	NumType  NumType

	// Payload is the parameter index for Param tokens.
	Payload int

	// LeadingWS is the count of spaces preceding this token on its
	// source line. Used by the stringifier and for cosmetic whitespace
	// propagation into macro expansions.
	LeadingWS int
}

// Ident returns an identifier token with the given spelling.
func Ident(name string) Token { return Token{Kind: Identifier, Spelling: name} }

// Punctuator returns a punctuator token, mapping well-known spellings to
// their dedicated Kind.
func Punctuator(spelling string) Token {
	switch spelling {
	case "#":
		return Token{Kind: Hash, Spelling: spelling}
	case "##":
		return Token{Kind: HashHash, Spelling: spelling}
	case "(":
		return Token{Kind: LParen, Spelling: spelling}
	case ")":
		return Token{Kind: RParen, Spelling: spelling}
	case ",":
		return Token{Kind: Comma, Spelling: spelling}
	default:
		return Token{Kind: Punct, Spelling: spelling}
	}
}

// Int returns a signed decimal number token of the given width.
func Int(val int64, width int) Token {
	return Token{Kind: Number, NumValue: uint64(val), NumType: NumType{Signed: true, Width: width}}
}

// StringLit returns a string-literal token whose Spelling already
// includes surrounding quotes.
func StringLit(quoted string) Token { return Token{Kind: String, Spelling: quoted} }

// ParamPlaceholder returns a formal-parameter placeholder token for the
// given zero-based index.
func ParamPlaceholder(index int) Token { return Token{Kind: Param, Payload: index} }

// EOFToken is the canonical end-of-list sentinel.
var EOFToken = Token{Kind: EOF}

// Spell renders the canonical textual spelling of a token, the form used
// by the stringifier and the paster.
func Spell(t Token) string {
	switch t.Kind {
	case Number:
		if t.NumType.Signed {
			return strconv.FormatInt(int64(t.NumValue), 10)
		}
		return strconv.FormatUint(t.NumValue, 10)
	case Param:
		// Placeholders never reach the paster/stringifier unsubstituted
		// in a well-formed pipeline; render defensively for diagnostics.
		return fmt.Sprintf("<param %d>", t.Payload)
	case EOF:
		return ""
	default:
		return t.Spelling
	}
}

// Equal implements tok_cmp: kind and payload must coincide. Numbers
// compare by type and value; parameter-placeholders compare by index;
// everything else compares by spelling.
func Equal(a, b Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Number:
		return a.NumType == b.NumType && a.NumValue == b.NumValue
	case Param:
		return a.Payload == b.Payload
	default:
		return a.Spelling == b.Spelling
	}
}
