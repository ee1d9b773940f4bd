// Package source implements the "input source" collaborator the macro
// engine reads the current file path and line number from — the values
// patched into __LINE__ and __FILE__. It is backed by an afero.Fs so
// tests can drive it off an in-memory filesystem instead of real files.
package source

import (
	"fmt"

	"github.com/spf13/afero"
)

// Source tracks the file currently being read and the line the reader has
// advanced to within it.
type Source struct {
	fs   afero.Fs
	path string
	line int
}

// New returns a Source reading through fs, positioned at line 1 of path.
// It does not itself open the file; callers advance Line as they consume
// input (e.g. once per newline token produced by the tokenizer).
func New(fs afero.Fs, path string) *Source {
	return &Source{fs: fs, path: path, line: 1}
}

// CurrentFilePath returns the path of the file currently being read.
func (s *Source) CurrentFilePath() string { return s.path }

// CurrentFileLine returns the 1-based line number currently being read.
func (s *Source) CurrentFileLine() int { return s.line }

// Advance moves the line counter forward by n lines (n is typically 1,
// once per Newline token consumed).
func (s *Source) Advance(n int) { s.line += n }

// SetLine pins the line counter to an absolute value, used when a caller
// re-seeks (e.g. after splicing in an included file — out of scope for
// this engine, but the hook exists so a directive-parser layered on top
// can maintain it).
func (s *Source) SetLine(line int) { s.line = line }

// ReadAll reads the whole file at s's current path through its
// filesystem, returning its contents as a string. Convenience for
// tokenizer callers that want the full logical unit up front.
func (s *Source) ReadAll() (string, error) {
	buf, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", s.path, err)
	}
	return string(buf), nil
}
