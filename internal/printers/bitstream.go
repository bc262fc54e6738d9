package printers

import (
	"fmt"

	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

// Bitstream buffers are shown as at most 10 rows of 15 bytes.
const (
	bitstreamRows = 10
	bitstreamCols = 15
)

// DumpBitstreamBuffer dumps the valid bytes of a VdpBitstreamBuffer.
func DumpBitstreamBuffer(s trace.Scope, b *vdp.BitstreamBuffer) {
	if !trace.Enabled {
		return
	}
	record(s, fmt.Sprintf("VdpBitstreamBuffer (%d bytes)", b.BitstreamBytes), func(s trace.Scope) {
		trace.Int(s, "struct_version", b.StructVersion)
		trace.Matrix(s, "buffer", b.Bitstream, bitstreamRows, bitstreamCols, int(b.BitstreamBytes))
	})
}
