//go:build !notrace

package trace

import (
	"fmt"
	"strings"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Enabled reports whether trace support is compiled in.
const Enabled = true

// Record renders one top-level record with fn and writes it to the sink.
func (s *Sink) Record(fn func(Scope)) {
	if s == nil || s.IsMuted() {
		return
	}
	r := &record{indent: s.indent, lineStart: true}
	fn(Scope{r: r})
	if r.buf.Len() == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w != nil {
		_, _ = s.w.Write(r.buf.Bytes())
	}
	if s.log != nil {
		s.log.Debug("trace record", zap.String("text", r.buf.String()))
	}
}

// Sprint renders fn into a string using indent as the indentation unit.
func Sprint(indent string, fn func(Scope)) string {
	r := &record{indent: indent, lineStart: true}
	fn(Scope{r: r})
	return r.buf.String()
}

// Print emits text. Each line it starts is prefixed with the scope's indentation.
func (s Scope) Print(text string) {
	if s.r == nil {
		return
	}
	for text != "" {
		if s.r.lineStart && text[0] != '\n' {
			for i := 0; i < s.depth; i++ {
				s.r.buf.WriteString(s.r.indent)
			}
		}
		s.r.lineStart = false
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			s.r.buf.WriteString(text)
			return
		}
		s.r.buf.WriteString(text[:i+1])
		s.r.lineStart = true
		text = text[i+1:]
	}
}

// Printf emits formatted text, see Print.
func (s Scope) Printf(format string, args ...any) {
	if s.r == nil {
		return
	}
	s.Print(fmt.Sprintf(format, args...))
}

// Int emits a field as signed decimal.
func Int[T constraints.Integer](s Scope, name string, v T) {
	s.Printf(".%s = %d,\n", name, v)
}

// Uint emits a field as unsigned decimal.
func Uint[T constraints.Unsigned](s Scope, name string, v T) {
	s.Printf(".%s = %d,\n", name, uint64(v))
}

// Hex emits a field as 8-digit zero-padded hexadecimal.
func Hex[T constraints.Unsigned](s Scope, name string, v T) {
	s.Printf(".%s = 0x%08x,\n", name, uint64(v))
}

// Ptr emits a field holding an address.
func Ptr(s Scope, name string, p uintptr) {
	if p == 0 {
		s.Printf(".%s = (nil),\n", name)
		return
	}
	s.Printf(".%s = 0x%x,\n", name, p)
}

// Matrix emits data as rows x cols hexadecimal elements, row-major, stopping
// after limit elements. Every completed row except the last ends with a
// comma; a row cut short does not. The block is closed even when it stops
// mid-row.
// limit is clamped to the matrix size and to len(data).
func Matrix[T constraints.Unsigned](s Scope, label string, data []T, rows, cols, limit int) {
	var zero T
	width := int(unsafe.Sizeof(zero)) * 2
	limit = max(0, min(limit, rows*cols, len(data)))

	s.Printf(".%s = {\n", label)
	in := s.Enter()
	n := 0
	for j := 0; j < rows && n < limit; j++ {
		i := 0
		for ; i < cols && n < limit; i, n = i+1, n+1 {
			if i > 0 {
				in.Print(", ")
			}
			in.Printf("0x%0*x", width, uint64(data[n]))
		}
		// A row cut short by the limit is never followed by another row.
		if j < rows-1 && i == cols {
			in.Print(",")
		}
		in.Print("\n")
	}
	s.Print("}\n")
}
