package lex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsajip/lacc/internal/lex"
	"github.com/vsajip/lacc/internal/token"
)

func TestTokenizeBasic(t *testing.T) {
	list, ok := lex.Tokenize("foo + 42")
	require.True(t, ok)
	require.Len(t, list, 3)
	require.Equal(t, token.Identifier, list[0].Kind)
	require.Equal(t, token.Punct, list[1].Kind)
	require.Equal(t, token.Number, list[2].Kind)
	require.Equal(t, 1, list[1].LeadingWS)
	require.Equal(t, 1, list[2].LeadingWS)
}

func TestTokenizePunctKinds(t *testing.T) {
	list, ok := lex.Tokenize("#x##y(a,b)")
	require.True(t, ok)
	kinds := make([]token.Kind, len(list))
	for i, tk := range list {
		kinds[i] = tk.Kind
	}
	require.Equal(t, []token.Kind{
		token.Hash, token.Identifier, token.HashHash, token.Identifier,
		token.LParen, token.Identifier, token.Comma, token.Identifier, token.RParen,
	}, kinds)
}

func TestTokenizeString(t *testing.T) {
	list, ok := lex.Tokenize(`"hello world"`)
	require.True(t, ok)
	require.Len(t, list, 1)
	require.Equal(t, token.String, list[0].Kind)
	require.Equal(t, `"hello world"`, list[0].Spelling)
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	list, ok := lex.Tokenize("   ")
	require.True(t, ok)
	require.Empty(t, list)
}

func TestTokenizePasteCandidateSplitsIntoTwoTokens(t *testing.T) {
	// "1a" is not a single valid token: the digit run stops at '1' and
	// 'a' starts a new identifier. The paster relies on exactly this to
	// reject an invalid ## result.
	list, ok := lex.Tokenize("1a")
	require.True(t, ok)
	require.Len(t, list, 2)
}
