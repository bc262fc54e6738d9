// Package names maps coded identifiers seen at the translation boundary to
// their symbolic names. Lookups never fail: unrecognized values resolve to "".
package names

import (
	"vdptrace/internal/va"
	"vdptrace/internal/vdp"
)

// FourCC returns the four characters packed little-endian into v. Bytes are
// kept verbatim, printable or not.
func FourCC(v uint32) string {
	return string([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

type bufferTypeEntry struct {
	name  string
	since va.Version
}

// Buffer types introduced after the first supported VA-API release carry the
// version that added them.
var bufferTypes = map[va.BufferType]bufferTypeEntry{
	va.PictureParameterBufferType:     {name: "VAPictureParameterBufferType"},
	va.IQMatrixBufferType:             {name: "VAIQMatrixBufferType"},
	va.BitPlaneBufferType:             {name: "VABitPlaneBufferType"},
	va.SliceGroupMapBufferType:        {name: "VASliceGroupMapBufferType"},
	va.SliceParameterBufferType:       {name: "VASliceParameterBufferType"},
	va.SliceDataBufferType:            {name: "VASliceDataBufferType"},
	va.MacroblockParameterBufferType:  {name: "VAMacroblockParameterBufferType"},
	va.ResidualDataBufferType:         {name: "VAResidualDataBufferType"},
	va.DeblockingParameterBufferType:  {name: "VADeblockingParameterBufferType"},
	va.ImageBufferType:                {name: "VAImageBufferType"},
	va.ProtectedSliceDataBufferType:   {"VAProtectedSliceDataBufferType", va.Version{Minor: 30}},
	va.EncCodedBufferType:             {"VAEncCodedBufferType", va.Version{Minor: 30}},
	va.EncSequenceParameterBufferType: {"VAEncSequenceParameterBufferType", va.Version{Minor: 30}},
	va.EncPictureParameterBufferType:  {"VAEncPictureParameterBufferType", va.Version{Minor: 30}},
	va.EncSliceParameterBufferType:    {"VAEncSliceParameterBufferType", va.Version{Minor: 30}},
	va.QMatrixBufferType:              {"VAQMatrixBufferType", va.Version{Minor: 31, Micro: 1}},
	va.EncMiscParameterBufferType:     {"VAEncMiscParameterBufferType", va.Version{Minor: 32}},
}

// BufferType returns the name of t as known to the VA-API level the driver
// is built against.
func BufferType(t va.BufferType) string {
	return BufferTypeAt(va.APIVersion, t)
}

// BufferTypeAt returns the name of t if it exists at VA-API version v.
func BufferTypeAt(v va.Version, t va.BufferType) string {
	e, ok := bufferTypes[t]
	if !ok || !v.AtLeast(e.since) {
		return ""
	}
	return e.name
}

// Codec returns the short name of c.
func Codec(c vdp.Codec) string {
	switch c {
	case vdp.CodecMPEG1:
		return "MPEG1"
	case vdp.CodecMPEG2:
		return "MPEG2"
	case vdp.CodecMPEG4:
		return "MPEG4"
	case vdp.CodecH264:
		return "H264"
	case vdp.CodecVC1:
		return "VC1"
	case vdp.CodecVP9:
		return "VP9"
	case vdp.CodecAV1:
		return "AV1"
	default:
		return ""
	}
}
