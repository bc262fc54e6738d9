// Package trace renders decode parameter records as indented text.
//
// All output goes through a Sink. A record is rendered into a private buffer
// through Scope values and written to the Sink's writer in a single call, so
// records from concurrent decode calls never interleave. Indentation depth is
// carried by the Scope value itself: Enter returns a deeper copy and the
// caller's Scope is left untouched, so every nested block is closed at the
// depth it was opened at.
//
// Building with the notrace tag replaces every entry point with an empty
// function and sets Enabled to false.
package trace

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"
)

// DefaultIndent is the text emitted once per depth level at the start of a line.
const DefaultIndent = "    "

// Sink is the gated destination for trace text.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	indent string
	log    *zap.Logger
	muted  atomic.Bool
}

// NewSink creates a sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{
		w:      w,
		indent: DefaultIndent,
	}
}

// SetIndent sets the per-level indentation unit.
func (s *Sink) SetIndent(unit string) { s.indent = unit }

// Indent returns the per-level indentation unit.
func (s *Sink) Indent() string { return s.indent }

// SetMessageLogger mirrors every rendered record to logger at debug level.
func (s *Sink) SetMessageLogger(logger *zap.Logger) { s.log = logger }

// SetMute stops output until unmuted. Muted sinks skip rendering entirely.
func (s *Sink) SetMute(mute bool) { s.muted.Store(mute) }

// IsMuted returns true if the sink is muted.
func (s *Sink) IsMuted() bool { return s.muted.Load() }

// Scope is a position in a record being rendered: the record buffer and the
// current nesting depth. The zero Scope discards everything.
type Scope struct {
	r     *record
	depth int
}

type record struct {
	buf       bytes.Buffer
	indent    string
	lineStart bool
}

// Depth returns the nesting depth of s.
func (s Scope) Depth() int { return s.depth }

// Enter returns a scope one level deeper than s.
func (s Scope) Enter() Scope {
	return Scope{r: s.r, depth: s.depth + 1}
}

// Cells returns the row-major storage of a fixed-size 2-D array starting at
// first, n elements long.
func Cells[T any](first *T, n int) []T {
	return unsafe.Slice(first, n)
}
