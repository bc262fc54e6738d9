// Package printers walks decode parameter records field by field and renders
// them through the trace package. There is one dumper per record shape; each
// is a fixed sequence of field emitters in declaration order.
package printers

import (
	"golang.org/x/exp/constraints"

	"vdptrace/internal/trace"
)

// record emits a top-level block. The header sits one level below s and the
// fields one level below the header.
func record(s trace.Scope, header string, fields func(trace.Scope)) {
	if !trace.Enabled {
		return
	}
	s = s.Enter()
	s.Printf("%s = {\n", header)
	fields(s.Enter())
	s.Print("};\n")
}

// nested emits a labelled sub-record inside an enclosing block.
func nested(s trace.Scope, label string, fields func(trace.Scope)) {
	s.Printf(".%s = {\n", label)
	fields(s.Enter())
	s.Print("}\n")
}

// matrix emits a fully populated rows x cols block.
func matrix[T constraints.Unsigned](s trace.Scope, label string, data []T, rows, cols int) {
	trace.Matrix(s, label, data, rows, cols, rows*cols)
}
