package printers

import (
	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

// DumpPictureInfoMPEG1Or2 dumps a VdpPictureInfoMPEG1Or2.
func DumpPictureInfoMPEG1Or2(s trace.Scope, p *vdp.PictureInfoMPEG1Or2) {
	record(s, "VdpPictureInfoMPEG1Or2", func(s trace.Scope) {
		trace.Hex(s, "forward_reference", p.ForwardReference)
		trace.Hex(s, "backward_reference", p.BackwardReference)
		trace.Int(s, "slice_count", p.SliceCount)
		trace.Int(s, "picture_structure", p.PictureStructure)
		trace.Int(s, "picture_coding_type", p.PictureCodingType)
		trace.Int(s, "intra_dc_precision", p.IntraDCPrecision)
		trace.Int(s, "frame_pred_frame_dct", p.FramePredFrameDCT)
		trace.Int(s, "concealment_motion_vectors", p.ConcealmentMotionVectors)
		trace.Int(s, "intra_vlc_format", p.IntraVLCFormat)
		trace.Int(s, "alternate_scan", p.AlternateScan)
		trace.Int(s, "q_scale_type", p.QScaleType)
		trace.Int(s, "top_field_first", p.TopFieldFirst)
		trace.Int(s, "full_pel_forward_vector", p.FullPelForwardVector)
		trace.Int(s, "full_pel_backward_vector", p.FullPelBackwardVector)
		s.Printf(".f_code = { { %d, %d }, { %d, %d } };\n",
			p.FCode[0][0], p.FCode[0][1],
			p.FCode[1][0], p.FCode[1][1])
		matrix(s, "intra_quantizer_matrix", p.IntraQuantizerMatrix[:], 8, 8)
		matrix(s, "non_intra_quantizer_matrix", p.NonIntraQuantizerMatrix[:], 8, 8)
	})
}
