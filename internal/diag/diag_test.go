package diag_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vsajip/lacc/internal/diag"
	"github.com/vsajip/lacc/internal/fatalerr"
)

func TestFatalfPanicsWithFatalerr(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(log.New(&buf))

	err := fatalerr.Recover(func() {
		sink.Fatalf("redefinition of macro %q", "X")
	})
	require.Error(t, err)
	require.Equal(t, `redefinition of macro "X"`, err.Error())
	require.Contains(t, buf.String(), "redefinition of macro")
}

func TestWarnfDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(log.New(&buf))

	require.NotPanics(t, func() {
		sink.Warnf("unused macro %q", "Y")
	})
	require.Contains(t, buf.String(), "unused macro")
}
