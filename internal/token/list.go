package token

import "strings"

// List is a growable token sequence carrying its own length rather than
// relying on an EOF sentinel; EOF-kind tokens only ever appear
// transiently, at the boundary where a List is being assembled one token
// at a time off a Lexer.
//
// Every function here that mutates a List returns the (possibly
// reallocated) result; callers should treat the argument as consumed and
// use the return value.
type List []Token

// Len reports the number of tokens in the list.
func (l List) Len() int { return len(l) }

// Copy returns a new List with its own backing array, holding the same
// tokens as l. Needed wherever an argument's tokens must survive being
// consumed by a later '#'/'##' reference to the same argument.
func Copy(l List) List {
	c := make(List, len(l))
	copy(c, l)
	return c
}

// Append adds a single token to the end of the list.
func Append(l List, t Token) List {
	return append(l, t)
}

// Concat appends all of b's tokens to a and returns the combined list.
func Concat(a, b List) List {
	return append(a, b...)
}

// ListEqual reports whether two lists are token-by-token identical under
// Equal (tok_cmp semantics).
func ListEqual(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String renders a debug dump of the list: ['tok', 'tok'] (n), with
// leading whitespace reproduced inside the quotes and newlines shown as
// "\n".
func (l List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		for n := 0; n < t.LeadingWS; n++ {
			b.WriteByte(' ')
		}
		if t.Kind == Newline {
			b.WriteString(`\n`)
		} else {
			b.WriteString(Spell(t))
		}
		b.WriteByte('\'')
	}
	b.WriteString("] (")
	b.WriteString(itoa(len(l)))
	b.WriteByte(')')
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
