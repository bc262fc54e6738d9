package va

func bits[T ~uint16 | ~uint32](v T, shift, width uint) uint32 {
	return uint32(v>>shift) & (1<<width - 1)
}

// VP9PicFields is the packed pic_fields word of VADecPictureParameterBufferVP9.
type VP9PicFields uint32

func (f VP9PicFields) SubsamplingX() uint32 { return bits(f, 0, 1) }
func (f VP9PicFields) SubsamplingY() uint32 { return bits(f, 1, 1) }
func (f VP9PicFields) FrameType() uint32 { return bits(f, 2, 1) }
func (f VP9PicFields) ShowFrame() uint32 { return bits(f, 3, 1) }
func (f VP9PicFields) ErrorResilientMode() uint32 { return bits(f, 4, 1) }
func (f VP9PicFields) IntraOnly() uint32 { return bits(f, 5, 1) }
func (f VP9PicFields) AllowHighPrecisionMV() uint32 { return bits(f, 6, 1) }
func (f VP9PicFields) McompFilterType() uint32 { return bits(f, 7, 3) }
func (f VP9PicFields) FrameParallelDecodingMode() uint32 { return bits(f, 10, 1) }
func (f VP9PicFields) ResetFrameContext() uint32 { return bits(f, 11, 2) }
func (f VP9PicFields) RefreshFrameContext() uint32 { return bits(f, 13, 1) }
func (f VP9PicFields) FrameContextIdx() uint32 { return bits(f, 14, 2) }
func (f VP9PicFields) SegmentationEnabled() uint32 { return bits(f, 16, 1) }
func (f VP9PicFields) SegmentationTemporalUpdate() uint32 { return bits(f, 17, 1) }
func (f VP9PicFields) SegmentationUpdateMap() uint32 { return bits(f, 18, 1) }
func (f VP9PicFields) LastRefFrame() uint32 { return bits(f, 19, 3) }
func (f VP9PicFields) LastRefFrameSignBias() uint32 { return bits(f, 22, 1) }
func (f VP9PicFields) GoldenRefFrame() uint32 { return bits(f, 23, 3) }
func (f VP9PicFields) GoldenRefFrameSignBias() uint32 { return bits(f, 26, 1) }
func (f VP9PicFields) AltRefFrame() uint32 { return bits(f, 27, 3) }
func (f VP9PicFields) AltRefFrameSignBias() uint32 { return bits(f, 30, 1) }
func (f VP9PicFields) LosslessFlag() uint32 { return bits(f, 31, 1) }

// DecPictureParameterBufferVP9 mirrors VADecPictureParameterBufferVP9.
type DecPictureParameterBufferVP9 struct {
	FrameWidth               uint16       `yaml:"frame_width"`
	FrameHeight              uint16       `yaml:"frame_height"`
	ReferenceFrames          [8]SurfaceID `yaml:"reference_frames"`
	PicFields                VP9PicFields `yaml:"pic_fields"`
	FilterLevel              uint8        `yaml:"filter_level"`
	SharpnessLevel           uint8        `yaml:"sharpness_level"`
	Log2TileRows             uint8        `yaml:"log2_tile_rows"`
	Log2TileColumns          uint8        `yaml:"log2_tile_columns"`
	FrameHeaderLengthInBytes uint8        `yaml:"frame_header_length_in_bytes"`
	FirstPartitionSize       uint16       `yaml:"first_partition_size"`
	MbSegmentTreeProbs       [7]uint8     `yaml:"mb_segment_tree_probs"`
	SegmentPredProbs         [3]uint8     `yaml:"segment_pred_probs"`
	Profile                  uint8        `yaml:"profile"`
	BitDepth                 uint8        `yaml:"bit_depth"`
}

// VP9SegmentFlags is the packed segment_flags word of VASegmentParameterVP9.
type VP9SegmentFlags uint16

func (f VP9SegmentFlags) SegmentReferenceEnabled() uint32 { return bits(f, 0, 1) }
func (f VP9SegmentFlags) SegmentReference() uint32 { return bits(f, 1, 2) }
func (f VP9SegmentFlags) SegmentReferenceSkipped() uint32 { return bits(f, 3, 1) }

// SegmentParameterVP9 mirrors VASegmentParameterVP9.
type SegmentParameterVP9 struct {
	SegmentFlags       VP9SegmentFlags `yaml:"segment_flags"`
	FilterLevel        [4][2]uint8     `yaml:"filter_level"`
	LumaACQuantScale   int16           `yaml:"luma_ac_quant_scale"`
	LumaDCQuantScale   int16           `yaml:"luma_dc_quant_scale"`
	ChromaACQuantScale int16           `yaml:"chroma_ac_quant_scale"`
	ChromaDCQuantScale int16           `yaml:"chroma_dc_quant_scale"`
}

// SliceParameterBufferVP9 mirrors VASliceParameterBufferVP9.
type SliceParameterBufferVP9 struct {
	SliceDataSize   uint32                 `yaml:"slice_data_size"`
	SliceDataOffset uint32                 `yaml:"slice_data_offset"`
	SliceDataFlag   uint32                 `yaml:"slice_data_flag"`
	SegParam        [8]SegmentParameterVP9 `yaml:"seg_param"`
}
