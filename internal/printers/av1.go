package printers

import (
	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

// DumpPictureInfoAV1 dumps a VdpPictureInfoAV1.
func DumpPictureInfoAV1(s trace.Scope, p *vdp.PictureInfoAV1) {
	record(s, "VdpPictureInfoAV1", func(s trace.Scope) {
		trace.Int(s, "width", p.Width)
		trace.Int(s, "height", p.Height)
		trace.Hex(s, "frame_offset", p.FrameOffset)
		trace.Hex(s, "profile", p.Profile)
		trace.Int(s, "use_128x128_superblock", p.Use128x128Superblock)
		trace.Int(s, "subsampling_x", p.SubsamplingX)
		trace.Int(s, "subsampling_y", p.SubsamplingY)
		trace.Int(s, "mono_chrome", p.MonoChrome)
		trace.Int(s, "bit_depth_minus8", p.BitDepthMinus8)
		trace.Int(s, "enable_filter_intra", p.EnableFilterIntra)
		trace.Int(s, "enable_order_hint", p.EnableOrderHint)
		trace.Int(s, "order_hint_bits_minus1", p.OrderHintBitsMinus1)
		trace.Int(s, "frame_type", p.FrameType)
		trace.Int(s, "show_frame", p.ShowFrame)
		trace.Int(s, "disable_cdf_update", p.DisableCDFUpdate)
		trace.Int(s, "allow_screen_content_tools", p.AllowScreenContentTools)
		trace.Int(s, "force_integer_mv", p.ForceIntegerMV)
		trace.Int(s, "allow_intrabc", p.AllowIntrabc)
		trace.Int(s, "use_superres", p.UseSuperres)
		trace.Int(s, "allow_high_precision_mv", p.AllowHighPrecisionMV)
		trace.Int(s, "base_qindex", p.BaseQIdx)
		trace.Int(s, "qm_y", p.QMY)
		trace.Int(s, "qm_u", p.QMU)
		trace.Int(s, "qm_v", p.QMV)
		matrix(s, "loop_filter_level", p.LoopFilterLevel[:], 1, 2)
		matrix(s, "loop_filter_ref_deltas", p.LoopFilterRefDeltas[:], 1, 8)
		trace.Int(s, "tile_cols", p.TileCols)
		trace.Int(s, "tile_rows", p.TileRows)
		trace.Int(s, "primary_ref_frame", p.PrimaryRefFrame)
		matrix(s, "ref_frame_map", p.RefFrameMap[:], 1, 8)
	})
}
