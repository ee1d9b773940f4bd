// Package diag implements the macro engine's diagnostic sink: a call
// prints a one-line diagnostic and terminates the current operation.
// Termination is modeled as a fatalerr panic (see internal/fatalerr)
// rather than os.Exit, so the sink is usable both from the CLI and from
// tests.
package diag

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vsajip/lacc/internal/fatalerr"
)

// Sink is the diagnostic collaborator the macro engine calls on any fatal
// condition: a redefinition conflict, a malformed invocation, an invalid
// paste result, and so on.
type Sink struct {
	logger *log.Logger
	runID  uuid.UUID
}

// New wraps logger, tagging every line with a fresh run ID so that
// diagnostics from concurrent or batched preprocessor runs can be told
// apart in aggregated log output.
func New(logger *log.Logger) *Sink {
	return &Sink{logger: logger, runID: uuid.New()}
}

// Fatalf logs the formatted message at error level and then throws a
// fatalerr.Error, unwinding to whatever boundary is prepared to recover
// it. It never returns.
func (s *Sink) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.logger.With("run", s.runID.String()).Error(msg)
	panic(fatalerr.Newf("%s", msg))
}

// Warnf logs a non-fatal diagnostic, used for boundary behaviors that are
// legal rather than erroneous (e.g. an unused #define with no effect is
// not diagnosed here, but a caller wiring up directive handling might
// want a warning channel).
func (s *Sink) Warnf(format string, args ...interface{}) {
	s.logger.With("run", s.runID.String()).Warn(fmt.Sprintf(format, args...))
}
