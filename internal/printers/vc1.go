package printers

import (
	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

// DumpPictureInfoVC1 dumps a VdpPictureInfoVC1.
func DumpPictureInfoVC1(s trace.Scope, p *vdp.PictureInfoVC1) {
	record(s, "VdpPictureInfoVC1", func(s trace.Scope) {
		trace.Hex(s, "forward_reference", p.ForwardReference)
		trace.Hex(s, "backward_reference", p.BackwardReference)
		trace.Int(s, "slice_count", p.SliceCount)
		trace.Int(s, "picture_type", p.PictureType)
		trace.Int(s, "frame_coding_mode", p.FrameCodingMode)
		trace.Int(s, "postprocflag", p.PostProcFlag)
		trace.Int(s, "pulldown", p.Pulldown)
		trace.Int(s, "interlace", p.Interlace)
		trace.Int(s, "tfcntrflag", p.TFCntrFlag)
		trace.Int(s, "finterpflag", p.FInterpFlag)
		trace.Int(s, "psf", p.PSF)
		trace.Int(s, "dquant", p.DQuant)
		trace.Int(s, "panscan_flag", p.PanScanFlag)
		trace.Int(s, "refdist_flag", p.RefDistFlag)
		trace.Int(s, "quantizer", p.Quantizer)
		trace.Int(s, "extended_mv", p.ExtendedMV)
		trace.Int(s, "extended_dmv", p.ExtendedDMV)
		trace.Int(s, "overlap", p.Overlap)
		trace.Int(s, "vstransform", p.VSTransform)
		trace.Int(s, "loopfilter", p.LoopFilter)
		trace.Int(s, "fastuvmc", p.FastUVMC)
		trace.Int(s, "range_mapy_flag", p.RangeMapYFlag)
		trace.Int(s, "range_mapy", p.RangeMapY)
		trace.Int(s, "range_mapuv_flag", p.RangeMapUVFlag)
		trace.Int(s, "range_mapuv", p.RangeMapUV)
		trace.Int(s, "multires", p.Multires)
		trace.Int(s, "syncmarker", p.SyncMarker)
		trace.Int(s, "rangered", p.RangeRed)
		trace.Int(s, "maxbframes", p.MaxBFrames)
		trace.Int(s, "deblockEnable", p.DeblockEnable)
		trace.Int(s, "pquant", p.PQuant)
	})
}
