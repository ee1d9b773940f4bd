package macro_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsajip/lacc/internal/macro"
	"github.com/vsajip/lacc/internal/token"
)

func TestDefineAndLookup(t *testing.T) {
	tab := macro.NewTable()
	m := macro.Macro{Name: "X", Form: macro.ObjectLike, Replacement: token.List{token.Int(42, 32)}}

	require.True(t, tab.Define(m))

	got, ok := tab.Lookup("X")
	require.True(t, ok)
	require.True(t, macro.Equal(m, got))
}

func TestDefineIdenticalIsNoOp(t *testing.T) {
	tab := macro.NewTable()
	m := macro.Macro{Name: "X", Form: macro.ObjectLike, Replacement: token.List{token.Int(1, 32)}}

	require.True(t, tab.Define(m))
	require.True(t, tab.Define(m), "redefining with an identical body must succeed")

	_, ok := tab.Lookup("X")
	require.True(t, ok)
}

func TestDefineConflictReported(t *testing.T) {
	tab := macro.NewTable()
	require.True(t, tab.Define(macro.Macro{Name: "X", Form: macro.ObjectLike, Replacement: token.List{token.Int(1, 32)}}))

	ok := tab.Define(macro.Macro{Name: "X", Form: macro.ObjectLike, Replacement: token.List{token.Int(2, 32)}})
	require.False(t, ok, "differing replacement lists must be reported as a conflict")

	got, _ := tab.Lookup("X")
	require.Equal(t, uint64(1), got.Replacement[0].NumValue, "the original definition must survive a rejected redefinition")
}

func TestUndef(t *testing.T) {
	tab := macro.NewTable()
	tab.Define(macro.Macro{Name: "X", Form: macro.ObjectLike})
	tab.Undef("X")

	_, ok := tab.Lookup("X")
	require.False(t, ok)

	require.NotPanics(t, func() { tab.Undef("never-defined") })
}

func TestManyNamesShareBuckets(t *testing.T) {
	tab := macro.NewTable()
	for i := 0; i < 5000; i++ {
		name := token.Spell(token.Int(int64(i), 32))
		require.True(t, tab.Define(macro.Macro{Name: name, Form: macro.ObjectLike}))
	}
	for i := 0; i < 5000; i++ {
		name := token.Spell(token.Int(int64(i), 32))
		_, ok := tab.Lookup(name)
		require.True(t, ok, "lookup must survive many entries colliding across only 1024 buckets")
	}
}
