// Package vdp holds the VDPAU-side decode parameter records exchanged at the
// translation boundary. Field layouts mirror vdpau.h and must not be changed.
package vdp

// VideoSurface is a VDPAU surface handle.
type VideoSurface uint32

// InvalidHandle marks an unused surface slot.
const InvalidHandle VideoSurface = 0xFFFFFFFF

// Bool is the VDPAU boolean (an int in the C API).
type Bool int32

// Codec identifies the codec family a decoder context was created for.
type Codec int32

const (
	CodecMPEG1 Codec = iota + 1
	CodecMPEG2
	CodecMPEG4
	CodecH264
	CodecVC1
	CodecVP9
	CodecAV1
)

// PictureInfoMPEG1Or2 mirrors VdpPictureInfoMPEG1Or2.
type PictureInfoMPEG1Or2 struct {
	ForwardReference         VideoSurface `yaml:"forward_reference"`
	BackwardReference        VideoSurface `yaml:"backward_reference"`
	SliceCount               uint32       `yaml:"slice_count"`
	PictureStructure         uint8        `yaml:"picture_structure"`
	PictureCodingType        uint8        `yaml:"picture_coding_type"`
	IntraDCPrecision         uint8        `yaml:"intra_dc_precision"`
	FramePredFrameDCT        uint8        `yaml:"frame_pred_frame_dct"`
	ConcealmentMotionVectors uint8        `yaml:"concealment_motion_vectors"`
	IntraVLCFormat           uint8        `yaml:"intra_vlc_format"`
	AlternateScan            uint8        `yaml:"alternate_scan"`
	QScaleType               uint8        `yaml:"q_scale_type"`
	TopFieldFirst            uint8        `yaml:"top_field_first"`
	FullPelForwardVector     uint8        `yaml:"full_pel_forward_vector"`
	FullPelBackwardVector    uint8        `yaml:"full_pel_backward_vector"`
	FCode                    [2][2]uint8  `yaml:"f_code"`
	IntraQuantizerMatrix     [64]uint8    `yaml:"intra_quantizer_matrix"`
	NonIntraQuantizerMatrix  [64]uint8    `yaml:"non_intra_quantizer_matrix"`
}

// PictureInfoMPEG4Part2 mirrors VdpPictureInfoMPEG4Part2.
type PictureInfoMPEG4Part2 struct {
	ForwardReference           VideoSurface `yaml:"forward_reference"`
	BackwardReference          VideoSurface `yaml:"backward_reference"`
	TRD                        [2]int32     `yaml:"trd"`
	TRB                        [2]int32     `yaml:"trb"`
	VOPTimeIncrementResolution uint16       `yaml:"vop_time_increment_resolution"`
	VOPCodingType              uint8        `yaml:"vop_coding_type"`
	VOPFcodeForward            uint8        `yaml:"vop_fcode_forward"`
	VOPFcodeBackward           uint8        `yaml:"vop_fcode_backward"`
	ResyncMarkerDisable        uint8        `yaml:"resync_marker_disable"`
	Interlaced                 uint8        `yaml:"interlaced"`
	QuantType                  uint8        `yaml:"quant_type"`
	QuarterSample              uint8        `yaml:"quarter_sample"`
	ShortVideoHeader           uint8        `yaml:"short_video_header"`
	RoundingControl            uint8        `yaml:"rounding_control"`
	AlternateVerticalScanFlag  uint8        `yaml:"alternate_vertical_scan_flag"`
	TopFieldFirst              uint8        `yaml:"top_field_first"`
	IntraQuantizerMatrix       [64]uint8    `yaml:"intra_quantizer_matrix"`
	NonIntraQuantizerMatrix    [64]uint8    `yaml:"non_intra_quantizer_matrix"`
}

// ReferenceFrameH264 mirrors VdpReferenceFrameH264.
type ReferenceFrameH264 struct {
	Surface           VideoSurface `yaml:"surface"`
	IsLongTerm        Bool         `yaml:"is_long_term"`
	TopIsReference    Bool         `yaml:"top_is_reference"`
	BottomIsReference Bool         `yaml:"bottom_is_reference"`
	FieldOrderCnt     [2]int32     `yaml:"field_order_cnt"`
	FrameIdx          uint16       `yaml:"frame_idx"`
}

// PictureInfoH264 mirrors VdpPictureInfoH264.
type PictureInfoH264 struct {
	SliceCount                         uint32                 `yaml:"slice_count"`
	FieldOrderCnt                      [2]int32               `yaml:"field_order_cnt"`
	IsReference                        Bool                   `yaml:"is_reference"`
	FrameNum                           uint16                 `yaml:"frame_num"`
	FieldPicFlag                       uint8                  `yaml:"field_pic_flag"`
	BottomFieldFlag                    uint8                  `yaml:"bottom_field_flag"`
	NumRefFrames                       uint8                  `yaml:"num_ref_frames"`
	MBAdaptiveFrameFieldFlag           uint8                  `yaml:"mb_adaptive_frame_field_flag"`
	ConstrainedIntraPredFlag           uint8                  `yaml:"constrained_intra_pred_flag"`
	WeightedPredFlag                   uint8                  `yaml:"weighted_pred_flag"`
	WeightedBipredIDC                  uint8                  `yaml:"weighted_bipred_idc"`
	FrameMBsOnlyFlag                   uint8                  `yaml:"frame_mbs_only_flag"`
	Transform8x8ModeFlag               uint8                  `yaml:"transform_8x8_mode_flag"`
	ChromaQPIndexOffset                int8                   `yaml:"chroma_qp_index_offset"`
	SecondChromaQPIndexOffset          int8                   `yaml:"second_chroma_qp_index_offset"`
	PicInitQPMinus26                   int8                   `yaml:"pic_init_qp_minus26"`
	NumRefIdxL0ActiveMinus1            uint8                  `yaml:"num_ref_idx_l0_active_minus1"`
	NumRefIdxL1ActiveMinus1            uint8                  `yaml:"num_ref_idx_l1_active_minus1"`
	Log2MaxFrameNumMinus4              uint8                  `yaml:"log2_max_frame_num_minus4"`
	PicOrderCntType                    uint8                  `yaml:"pic_order_cnt_type"`
	Log2MaxPicOrderCntLsbMinus4        uint8                  `yaml:"log2_max_pic_order_cnt_lsb_minus4"`
	DeltaPicOrderAlwaysZeroFlag        uint8                  `yaml:"delta_pic_order_always_zero_flag"`
	Direct8x8InferenceFlag             uint8                  `yaml:"direct_8x8_inference_flag"`
	EntropyCodingModeFlag              uint8                  `yaml:"entropy_coding_mode_flag"`
	PicOrderPresentFlag                uint8                  `yaml:"pic_order_present_flag"`
	DeblockingFilterControlPresentFlag uint8                  `yaml:"deblocking_filter_control_present_flag"`
	RedundantPicCntPresentFlag         uint8                  `yaml:"redundant_pic_cnt_present_flag"`
	ScalingLists4x4                    [6][16]uint8           `yaml:"scaling_lists_4x4"`
	ScalingLists8x8                    [2][64]uint8           `yaml:"scaling_lists_8x8"`
	ReferenceFrames                    [16]ReferenceFrameH264 `yaml:"reference_frames"`
}

// PictureInfoVC1 mirrors VdpPictureInfoVC1.
type PictureInfoVC1 struct {
	ForwardReference  VideoSurface `yaml:"forward_reference"`
	BackwardReference VideoSurface `yaml:"backward_reference"`
	SliceCount        uint32       `yaml:"slice_count"`
	PictureType       uint8        `yaml:"picture_type"`
	FrameCodingMode   uint8        `yaml:"frame_coding_mode"`
	PostProcFlag      uint8        `yaml:"postprocflag"`
	Pulldown          uint8        `yaml:"pulldown"`
	Interlace         uint8        `yaml:"interlace"`
	TFCntrFlag        uint8        `yaml:"tfcntrflag"`
	FInterpFlag       uint8        `yaml:"finterpflag"`
	PSF               uint8        `yaml:"psf"`
	DQuant            uint8        `yaml:"dquant"`
	PanScanFlag       uint8        `yaml:"panscan_flag"`
	RefDistFlag       uint8        `yaml:"refdist_flag"`
	Quantizer         uint8        `yaml:"quantizer"`
	ExtendedMV        uint8        `yaml:"extended_mv"`
	ExtendedDMV       uint8        `yaml:"extended_dmv"`
	Overlap           uint8        `yaml:"overlap"`
	VSTransform       uint8        `yaml:"vstransform"`
	LoopFilter        uint8        `yaml:"loopfilter"`
	FastUVMC          uint8        `yaml:"fastuvmc"`
	RangeMapYFlag     uint8        `yaml:"range_mapy_flag"`
	RangeMapY         uint8        `yaml:"range_mapy"`
	RangeMapUVFlag    uint8        `yaml:"range_mapuv_flag"`
	RangeMapUV        uint8        `yaml:"range_mapuv"`
	Multires          uint8        `yaml:"multires"`
	SyncMarker        uint8        `yaml:"syncmarker"`
	RangeRed          uint8        `yaml:"rangered"`
	MaxBFrames        uint8        `yaml:"maxbframes"`
	DeblockEnable     uint8        `yaml:"deblockEnable"`
	PQuant            uint8        `yaml:"pquant"`
}

// PictureInfoVP9 mirrors VdpPictureInfoVP9.
type PictureInfoVP9 struct {
	Width                    uint32       `yaml:"width"`
	Height                   uint32       `yaml:"height"`
	LastReference            VideoSurface `yaml:"lastReference"`
	GoldenReference          VideoSurface `yaml:"goldenReference"`
	AltReference             VideoSurface `yaml:"altReference"`
	ColorSpace               uint8        `yaml:"colorSpace"`
	Profile                  uint16       `yaml:"profile"`
	FrameContextIdx          uint16       `yaml:"frameContextIdx"`
	KeyFrame                 uint16       `yaml:"keyFrame"`
	ShowFrame                uint16       `yaml:"showFrame"`
	ErrorResilient           uint16       `yaml:"errorResilient"`
	FrameParallelDecoding    uint16       `yaml:"frameParallelDecoding"`
	SubSamplingX             uint16       `yaml:"subSamplingX"`
	SubSamplingY             uint16       `yaml:"subSamplingY"`
	IntraOnly                uint16       `yaml:"intraOnly"`
	AllowHighPrecisionMv     uint16       `yaml:"allowHighPrecisionMv"`
	RefreshEntropyProbs      uint16       `yaml:"refreshEntropyProbs"`
	RefFrameSignBias         [4]uint8     `yaml:"refFrameSignBias"`
	BitDepthMinus8Luma       uint8        `yaml:"bitDepthMinus8Luma"`
	BitDepthMinus8Chroma     uint8        `yaml:"bitDepthMinus8Chroma"`
	LoopFilterLevel          uint8        `yaml:"loopFilterLevel"`
	LoopFilterSharpness      uint8        `yaml:"loopFilterSharpness"`
	ModeRefLfEnabled         uint8        `yaml:"modeRefLfEnabled"`
	Log2TileColumns          uint8        `yaml:"log2TileColumns"`
	Log2TileRows             uint8        `yaml:"log2TileRows"`
	SegmentEnabled           uint8        `yaml:"segmentEnabled"`
	SegmentMapUpdate         uint8        `yaml:"segmentMapUpdate"`
	SegmentMapTemporalUpdate uint8        `yaml:"segmentMapTemporalUpdate"`
	SegmentFeatureMode       uint8        `yaml:"segmentFeatureMode"`
	SegmentFeatureEnable     [8][4]uint8  `yaml:"segmentFeatureEnable"`
	SegmentFeatureData       [8][4]int16  `yaml:"segmentFeatureData"`
	MbSegmentTreeProbs       [7]uint8     `yaml:"mbSegmentTreeProbs"`
	SegmentPredProbs         [3]uint8     `yaml:"segmentPredProbs"`
	ReservedSegment16Bits    [2]uint8     `yaml:"reservedSegment16Bits"`
	QpYAc                    int32        `yaml:"qpYAc"`
	QpYDc                    int32        `yaml:"qpYDc"`
	QpChDc                   int32        `yaml:"qpChDc"`
	QpChAc                   int32        `yaml:"qpChAc"`
	ActiveRefIdx             [3]uint32    `yaml:"activeRefIdx"`
	ResetFrameContext        uint32       `yaml:"resetFrameContext"`
	McompFilterType          uint32       `yaml:"mcompFilterType"`
	MbRefLfDelta             [4]uint32    `yaml:"mbRefLfDelta"`
	MbModeLfDelta            [2]uint32    `yaml:"mbModeLfDelta"`
	UncompressedHeaderSize   uint32       `yaml:"uncompressedHeaderSize"`
	CompressedHeaderSize     uint32       `yaml:"compressedHeaderSize"`
}

// PictureInfoAV1 carries the AV1 frame header fields the translation layer
// fills from VADecPictureParameterBufferAV1.
type PictureInfoAV1 struct {
	Width                   uint32          `yaml:"width"`
	Height                  uint32          `yaml:"height"`
	FrameOffset             uint32          `yaml:"frame_offset"`
	Profile                 uint32          `yaml:"profile"`
	Use128x128Superblock    uint32          `yaml:"use_128x128_superblock"`
	SubsamplingX            uint32          `yaml:"subsampling_x"`
	SubsamplingY            uint32          `yaml:"subsampling_y"`
	MonoChrome              uint32          `yaml:"mono_chrome"`
	BitDepthMinus8          uint32          `yaml:"bit_depth_minus8"`
	EnableFilterIntra       uint32          `yaml:"enable_filter_intra"`
	EnableOrderHint         uint32          `yaml:"enable_order_hint"`
	OrderHintBitsMinus1     uint32          `yaml:"order_hint_bits_minus1"`
	FrameType               uint32          `yaml:"frame_type"`
	ShowFrame               uint32          `yaml:"show_frame"`
	DisableCDFUpdate        uint32          `yaml:"disable_cdf_update"`
	AllowScreenContentTools uint32          `yaml:"allow_screen_content_tools"`
	ForceIntegerMV          uint32          `yaml:"force_integer_mv"`
	AllowIntrabc            uint32          `yaml:"allow_intrabc"`
	UseSuperres             uint32          `yaml:"use_superres"`
	AllowHighPrecisionMV    uint32          `yaml:"allow_high_precision_mv"`
	BaseQIdx                uint32          `yaml:"base_qindex"`
	QMY                     uint32          `yaml:"qm_y"`
	QMU                     uint32          `yaml:"qm_u"`
	QMV                     uint32          `yaml:"qm_v"`
	LoopFilterLevel         [2]uint32       `yaml:"loop_filter_level"`
	LoopFilterRefDeltas     [8]uint8        `yaml:"loop_filter_ref_deltas"`
	TileCols                uint32          `yaml:"tile_cols"`
	TileRows                uint32          `yaml:"tile_rows"`
	PrimaryRefFrame         uint32          `yaml:"primary_ref_frame"`
	RefFrameMap             [8]VideoSurface `yaml:"ref_frame_map"`
}

// BitstreamBuffer mirrors VdpBitstreamBuffer. Bitstream may be longer than
// BitstreamBytes; only the first BitstreamBytes bytes are valid.
type BitstreamBuffer struct {
	StructVersion  uint32 `yaml:"struct_version"`
	Bitstream      []byte `yaml:"bitstream"`
	BitstreamBytes uint32 `yaml:"bitstream_bytes"`
}

// BitstreamBufferVersion is VDP_BITSTREAM_BUFFER_VERSION.
const BitstreamBufferVersion = 0
