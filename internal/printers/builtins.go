package printers

import "vdptrace/internal/vdp"

// init registers the dumpers that are always compiled in. Optional codecs
// register from their own files.
func init() {
	reg := DefaultRegister()
	mustAdd(reg, newDumper("VdpPictureInfoMPEG1Or2", DumpPictureInfoMPEG1Or2, vdp.CodecMPEG1, vdp.CodecMPEG2))
	mustAdd(reg, newDumper("VdpPictureInfoH264", DumpPictureInfoH264, vdp.CodecH264))
	mustAdd(reg, newDumper("VdpPictureInfoVC1", DumpPictureInfoVC1, vdp.CodecVC1))
	mustAdd(reg, newDumper("VdpPictureInfoVP9", DumpPictureInfoVP9, vdp.CodecVP9))
	mustAdd(reg, newDumper("VdpPictureInfoAV1", DumpPictureInfoAV1, vdp.CodecAV1))
	mustAdd(reg, newDumper("VADecPictureParameterBufferVP9", DumpDecPictureParameterBufferVP9))
	mustAdd(reg, newDumper("VASliceParameterBufferVP9", DumpSliceParameterBufferVP9))
	mustAdd(reg, newDumper("VdpBitstreamBuffer", DumpBitstreamBuffer))
}
