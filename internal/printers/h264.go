package printers

import (
	"fmt"

	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

func dumpReferenceFrameH264(s trace.Scope, label string, rf *vdp.ReferenceFrameH264) {
	nested(s, label, func(s trace.Scope) {
		trace.Hex(s, "surface", rf.Surface)
		trace.Int(s, "is_long_term", rf.IsLongTerm)
		trace.Int(s, "top_is_reference", rf.TopIsReference)
		trace.Int(s, "bottom_is_reference", rf.BottomIsReference)
		trace.Int(s, "field_order_cnt[0]", rf.FieldOrderCnt[0])
		trace.Int(s, "field_order_cnt[1]", rf.FieldOrderCnt[1])
		trace.Int(s, "frame_idx", rf.FrameIdx)
	})
}

// DumpPictureInfoH264 dumps a VdpPictureInfoH264 including all 16 reference
// frame slots.
func DumpPictureInfoH264(s trace.Scope, p *vdp.PictureInfoH264) {
	record(s, "VdpPictureInfoH264", func(s trace.Scope) {
		trace.Int(s, "slice_count", p.SliceCount)
		trace.Int(s, "field_order_cnt[0]", p.FieldOrderCnt[0])
		trace.Int(s, "field_order_cnt[1]", p.FieldOrderCnt[1])
		trace.Int(s, "is_reference", p.IsReference)
		trace.Int(s, "frame_num", p.FrameNum)
		trace.Int(s, "field_pic_flag", p.FieldPicFlag)
		trace.Int(s, "bottom_field_flag", p.BottomFieldFlag)
		trace.Int(s, "num_ref_frames", p.NumRefFrames)
		trace.Int(s, "mb_adaptive_frame_field_flag", p.MBAdaptiveFrameFieldFlag)
		trace.Int(s, "constrained_intra_pred_flag", p.ConstrainedIntraPredFlag)
		trace.Int(s, "weighted_pred_flag", p.WeightedPredFlag)
		trace.Int(s, "weighted_bipred_idc", p.WeightedBipredIDC)
		trace.Int(s, "frame_mbs_only_flag", p.FrameMBsOnlyFlag)
		trace.Int(s, "transform_8x8_mode_flag", p.Transform8x8ModeFlag)
		trace.Int(s, "chroma_qp_index_offset", p.ChromaQPIndexOffset)
		trace.Int(s, "second_chroma_qp_index_offset", p.SecondChromaQPIndexOffset)
		trace.Int(s, "pic_init_qp_minus26", p.PicInitQPMinus26)
		trace.Int(s, "num_ref_idx_l0_active_minus1", p.NumRefIdxL0ActiveMinus1)
		trace.Int(s, "num_ref_idx_l1_active_minus1", p.NumRefIdxL1ActiveMinus1)
		trace.Int(s, "log2_max_frame_num_minus4", p.Log2MaxFrameNumMinus4)
		trace.Int(s, "pic_order_cnt_type", p.PicOrderCntType)
		trace.Int(s, "log2_max_pic_order_cnt_lsb_minus4", p.Log2MaxPicOrderCntLsbMinus4)
		trace.Int(s, "delta_pic_order_always_zero_flag", p.DeltaPicOrderAlwaysZeroFlag)
		trace.Int(s, "direct_8x8_inference_flag", p.Direct8x8InferenceFlag)
		trace.Int(s, "entropy_coding_mode_flag", p.EntropyCodingModeFlag)
		trace.Int(s, "pic_order_present_flag", p.PicOrderPresentFlag)
		trace.Int(s, "deblocking_filter_control_present_flag", p.DeblockingFilterControlPresentFlag)
		trace.Int(s, "redundant_pic_cnt_present_flag", p.RedundantPicCntPresentFlag)
		matrix(s, "scaling_lists_4x4", trace.Cells(&p.ScalingLists4x4[0][0], 6*16), 6, 16)
		matrix(s, "scaling_lists_8x8[0]", p.ScalingLists8x8[0][:], 8, 8)
		matrix(s, "scaling_lists_8x8[1]", p.ScalingLists8x8[1][:], 8, 8)
		for i := range p.ReferenceFrames {
			dumpReferenceFrameH264(s, fmt.Sprintf("referenceFrames[%d]", i), &p.ReferenceFrames[i])
		}
	})
}
