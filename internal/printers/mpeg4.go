//go:build !nompeg4

package printers

import (
	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

func init() {
	mustAdd(defaultRegister, newDumper("VdpPictureInfoMPEG4Part2", DumpPictureInfoMPEG4Part2, vdp.CodecMPEG4))
}

// DumpPictureInfoMPEG4Part2 dumps a VdpPictureInfoMPEG4Part2. Only built
// when MPEG-4 Part 2 support is compiled in.
func DumpPictureInfoMPEG4Part2(s trace.Scope, p *vdp.PictureInfoMPEG4Part2) {
	record(s, "VdpPictureInfoMPEG4Part2", func(s trace.Scope) {
		trace.Hex(s, "forward_reference", p.ForwardReference)
		trace.Hex(s, "backward_reference", p.BackwardReference)
		trace.Int(s, "trd[0]", p.TRD[0])
		trace.Int(s, "trd[1]", p.TRD[1])
		trace.Int(s, "trb[0]", p.TRB[0])
		trace.Int(s, "trb[1]", p.TRB[1])
		trace.Int(s, "vop_time_increment_resolution", p.VOPTimeIncrementResolution)
		trace.Int(s, "vop_coding_type", p.VOPCodingType)
		trace.Int(s, "vop_fcode_forward", p.VOPFcodeForward)
		trace.Int(s, "vop_fcode_backward", p.VOPFcodeBackward)
		trace.Int(s, "resync_marker_disable", p.ResyncMarkerDisable)
		trace.Int(s, "interlaced", p.Interlaced)
		trace.Int(s, "quant_type", p.QuantType)
		trace.Int(s, "quarter_sample", p.QuarterSample)
		trace.Int(s, "short_video_header", p.ShortVideoHeader)
		trace.Int(s, "rounding_control", p.RoundingControl)
		trace.Int(s, "alternate_vertical_scan_flag", p.AlternateVerticalScanFlag)
		trace.Int(s, "top_field_first", p.TopFieldFirst)
		matrix(s, "intra_quantizer_matrix", p.IntraQuantizerMatrix[:], 8, 8)
		matrix(s, "non_intra_quantizer_matrix", p.NonIntraQuantizerMatrix[:], 8, 8)
	})
}
