package printers

import (
	"fmt"

	"vdptrace/internal/trace"
	"vdptrace/internal/va"
	"vdptrace/internal/vdp"
)

// DumpDecPictureParameterBufferVP9 dumps a VADecPictureParameterBufferVP9,
// unpacking pic_fields into its individual bitfields.
func DumpDecPictureParameterBufferVP9(s trace.Scope, p *va.DecPictureParameterBufferVP9) {
	record(s, "VADecPictureParameterBufferVP9", func(s trace.Scope) {
		f := p.PicFields
		trace.Int(s, "frame_width", p.FrameWidth)
		trace.Int(s, "frame_height", p.FrameHeight)
		matrix(s, "reference_frames", p.ReferenceFrames[:], 1, 8)
		trace.Int(s, "pic_fields.bits.subsampling_x", f.SubsamplingX())
		trace.Int(s, "pic_fields.bits.subsampling_y", f.SubsamplingY())
		trace.Int(s, "pic_fields.bits.frame_type", f.FrameType())
		trace.Int(s, "pic_fields.bits.show_frame", f.ShowFrame())
		trace.Int(s, "pic_fields.bits.error_resilient_mode", f.ErrorResilientMode())
		trace.Int(s, "pic_fields.bits.intra_only", f.IntraOnly())
		trace.Int(s, "pic_fields.bits.allow_high_precision_mv", f.AllowHighPrecisionMV())
		trace.Int(s, "pic_fields.bits.mcomp_filter_type", f.McompFilterType())
		trace.Int(s, "pic_fields.bits.frame_parallel_decoding_mode", f.FrameParallelDecodingMode())
		trace.Int(s, "pic_fields.bits.reset_frame_context", f.ResetFrameContext())
		trace.Int(s, "pic_fields.bits.refresh_frame_context", f.RefreshFrameContext())
		trace.Int(s, "pic_fields.bits.frame_context_idx", f.FrameContextIdx())
		trace.Int(s, "pic_fields.bits.segmentation_enabled", f.SegmentationEnabled())
		trace.Int(s, "pic_fields.bits.segmentation_temporal_update", f.SegmentationTemporalUpdate())
		trace.Int(s, "pic_fields.bits.segmentation_update_map", f.SegmentationUpdateMap())
		trace.Int(s, "pic_fields.bits.last_ref_frame", f.LastRefFrame())
		trace.Int(s, "pic_fields.bits.last_ref_frame_sign_bias", f.LastRefFrameSignBias())
		trace.Int(s, "pic_fields.bits.golden_ref_frame", f.GoldenRefFrame())
		trace.Int(s, "pic_fields.bits.golden_ref_frame_sign_bias", f.GoldenRefFrameSignBias())
		trace.Int(s, "pic_fields.bits.alt_ref_frame", f.AltRefFrame())
		trace.Int(s, "pic_fields.bits.alt_ref_frame_sign_bias", f.AltRefFrameSignBias())
		trace.Int(s, "pic_fields.bits.lossless_flag", f.LosslessFlag())
		trace.Int(s, "filter_level", p.FilterLevel)
		trace.Int(s, "sharpness_level", p.SharpnessLevel)
		trace.Int(s, "log2_tile_rows", p.Log2TileRows)
		trace.Int(s, "log2_tile_columns", p.Log2TileColumns)
		trace.Int(s, "frame_header_length_in_bytes", p.FrameHeaderLengthInBytes)
		trace.Int(s, "first_partition_size", p.FirstPartitionSize)
		matrix(s, "mb_segment_tree_probs", p.MbSegmentTreeProbs[:], 1, 7)
		matrix(s, "segment_pred_probs", p.SegmentPredProbs[:], 1, 3)
		trace.Int(s, "profile", p.Profile)
		trace.Int(s, "bit_depth", p.BitDepth)
	})
}

func dumpSegmentParameterVP9(s trace.Scope, label string, sp *va.SegmentParameterVP9) {
	nested(s, label, func(s trace.Scope) {
		trace.Int(s, "segment_flags.value", uint16(sp.SegmentFlags))
		bits := s.Enter()
		trace.Int(bits, "segment_flags.fields.segment_reference_enabled", sp.SegmentFlags.SegmentReferenceEnabled())
		trace.Int(bits, "segment_flags.fields.segment_reference", sp.SegmentFlags.SegmentReference())
		trace.Int(bits, "segment_flags.fields.segment_reference_skipped", sp.SegmentFlags.SegmentReferenceSkipped())
		matrix(s, "filter_level", trace.Cells(&sp.FilterLevel[0][0], 4*2), 4, 2)
		trace.Int(s, "luma_ac_quant_scale", sp.LumaACQuantScale)
		trace.Int(s, "luma_dc_quant_scale", sp.LumaDCQuantScale)
		trace.Int(s, "chroma_ac_quant_scale", sp.ChromaACQuantScale)
		trace.Int(s, "chroma_dc_quant_scale", sp.ChromaDCQuantScale)
	})
}

// DumpSliceParameterBufferVP9 dumps a VASliceParameterBufferVP9 and its eight
// per-segment parameter blocks.
func DumpSliceParameterBufferVP9(s trace.Scope, p *va.SliceParameterBufferVP9) {
	record(s, "VASliceParameterBufferVP9", func(s trace.Scope) {
		trace.Uint(s, "slice_data_size", p.SliceDataSize)
		trace.Uint(s, "slice_data_offset", p.SliceDataOffset)
		trace.Uint(s, "slice_data_flag", p.SliceDataFlag)
		for i := range p.SegParam {
			dumpSegmentParameterVP9(s, fmt.Sprintf("seg_param[%d]", i), &p.SegParam[i])
		}
	})
}

// DumpPictureInfoVP9 dumps a VdpPictureInfoVP9. activeRefIdx, mbRefLfDelta
// and mbModeLfDelta are declared unsigned in vdpau.h and are shown unsigned.
func DumpPictureInfoVP9(s trace.Scope, p *vdp.PictureInfoVP9) {
	record(s, "VdpPictureInfoVP9", func(s trace.Scope) {
		trace.Int(s, "width", p.Width)
		trace.Int(s, "height", p.Height)
		trace.Hex(s, "lastReference", p.LastReference)
		trace.Hex(s, "goldenReference", p.GoldenReference)
		trace.Hex(s, "altReference", p.AltReference)
		trace.Int(s, "colorSpace", p.ColorSpace)
		trace.Int(s, "profile", p.Profile)
		trace.Int(s, "frameContextIdx", p.FrameContextIdx)
		trace.Int(s, "keyFrame", p.KeyFrame)
		trace.Int(s, "showFrame", p.ShowFrame)
		trace.Int(s, "errorResilient", p.ErrorResilient)
		trace.Int(s, "frameParallelDecoding", p.FrameParallelDecoding)
		trace.Int(s, "subSamplingX", p.SubSamplingX)
		trace.Int(s, "subSamplingY", p.SubSamplingY)
		trace.Int(s, "intraOnly", p.IntraOnly)
		trace.Int(s, "allowHighPrecisionMv", p.AllowHighPrecisionMv)
		trace.Int(s, "refreshEntropyProbs", p.RefreshEntropyProbs)
		matrix(s, "refFrameSignBias", p.RefFrameSignBias[:], 1, 4)
		trace.Int(s, "bitDepthMinus8Luma", p.BitDepthMinus8Luma)
		trace.Int(s, "bitDepthMinus8Chroma", p.BitDepthMinus8Chroma)
		trace.Int(s, "loopFilterLevel", p.LoopFilterLevel)
		trace.Int(s, "loopFilterSharpness", p.LoopFilterSharpness)
		trace.Int(s, "modeRefLfEnabled", p.ModeRefLfEnabled)
		trace.Int(s, "log2TileColumns", p.Log2TileColumns)
		trace.Int(s, "log2TileRows", p.Log2TileRows)
		trace.Int(s, "segmentEnabled", p.SegmentEnabled)
		trace.Int(s, "segmentMapUpdate", p.SegmentMapUpdate)
		trace.Int(s, "segmentMapTemporalUpdate", p.SegmentMapTemporalUpdate)
		trace.Int(s, "segmentFeatureMode", p.SegmentFeatureMode)
		matrix(s, "segmentFeatureEnable", trace.Cells(&p.SegmentFeatureEnable[0][0], 8*4), 8, 4)
		matrix(s, "segmentFeatureData", segmentFeatureData(&p.SegmentFeatureData), 8, 4)
		matrix(s, "mbSegmentTreeProbs", p.MbSegmentTreeProbs[:], 1, 7)
		matrix(s, "segmentPredProbs", p.SegmentPredProbs[:], 1, 3)
		matrix(s, "reservedSegment16Bits", p.ReservedSegment16Bits[:], 1, 2)
		trace.Int(s, "qpYAc", p.QpYAc)
		trace.Int(s, "qpYDc", p.QpYDc)
		trace.Int(s, "qpChDc", p.QpChDc)
		trace.Int(s, "qpChAc", p.QpChAc)
		matrix(s, "activeRefIdx", p.ActiveRefIdx[:], 1, 3)
		trace.Int(s, "resetFrameContext", p.ResetFrameContext)
		trace.Int(s, "mcompFilterType", p.McompFilterType)
		matrix(s, "mbRefLfDelta", p.MbRefLfDelta[:], 1, 4)
		matrix(s, "mbModeLfDelta", p.MbModeLfDelta[:], 1, 2)
		trace.Int(s, "uncompressedHeaderSize", p.UncompressedHeaderSize)
		trace.Int(s, "compressedHeaderSize", p.CompressedHeaderSize)
	})
}

// segmentFeatureData reinterprets the signed feature data as 16-bit words.
func segmentFeatureData(d *[8][4]int16) []uint16 {
	out := make([]uint16, 0, 8*4)
	for _, row := range d {
		for _, v := range row {
			out = append(out, uint16(v))
		}
	}
	return out
}
