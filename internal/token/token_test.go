package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsajip/lacc/internal/token"
)

func TestEqual(t *testing.T) {
	require.True(t, token.Equal(token.Ident("foo"), token.Ident("foo")))
	require.False(t, token.Equal(token.Ident("foo"), token.Ident("bar")))
	require.False(t, token.Equal(token.Ident("foo"), token.Punctuator("foo")))

	require.True(t, token.Equal(token.Int(42, 32), token.Int(42, 32)))
	require.False(t, token.Equal(token.Int(42, 32), token.Int(42, 64)),
		"numbers must compare by type as well as value")
	require.False(t, token.Equal(token.Int(1, 32), token.Int(2, 32)))

	require.True(t, token.Equal(token.ParamPlaceholder(0), token.ParamPlaceholder(0)))
	require.False(t, token.Equal(token.ParamPlaceholder(0), token.ParamPlaceholder(1)))
}

func TestPunctuatorKinds(t *testing.T) {
	require.Equal(t, token.Hash, token.Punctuator("#").Kind)
	require.Equal(t, token.HashHash, token.Punctuator("##").Kind)
	require.Equal(t, token.LParen, token.Punctuator("(").Kind)
	require.Equal(t, token.RParen, token.Punctuator(")").Kind)
	require.Equal(t, token.Comma, token.Punctuator(",").Kind)
	require.Equal(t, token.Punct, token.Punctuator("+").Kind)
}

func TestSpell(t *testing.T) {
	require.Equal(t, "42", token.Spell(token.Int(42, 32)))
	require.Equal(t, "foo", token.Spell(token.Ident("foo")))
	require.Equal(t, `"hi"`, token.Spell(token.StringLit(`"hi"`)))
}
