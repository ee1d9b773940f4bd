package fatalerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsajip/lacc/internal/fatalerr"
)

func TestNewfFormatsMessage(t *testing.T) {
	err := fatalerr.Newf("bad token %q at line %d", "##", 4)
	require.Equal(t, `bad token "##" at line 4`, err.Error())
}

func TestRecoverCatchesThrow(t *testing.T) {
	err := fatalerr.Recover(func() {
		fatalerr.Throw("redefinition of macro %q", "X")
	})
	require.Error(t, err)
	require.Equal(t, `redefinition of macro "X"`, err.Error())
}

func TestRecoverReturnsNilWhenNoPanic(t *testing.T) {
	err := fatalerr.Recover(func() {})
	require.NoError(t, err)
}

func TestRecoverRepanicsOnForeignPanic(t *testing.T) {
	require.Panics(t, func() {
		_ = fatalerr.Recover(func() {
			panic(errors.New("not a fatalerr.Error"))
		})
	})
}
