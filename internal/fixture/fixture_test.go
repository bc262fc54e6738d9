package fixture

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vdptrace/internal/printers"
	"vdptrace/internal/va"
	"vdptrace/internal/vdp"
)

func TestLoadStream(t *testing.T) {
	recs, err := Load("testdata/stream.yaml", printers.DefaultRegister())
	require.NoError(t, err)
	require.Len(t, recs, 4)

	kinds := make([]string, len(recs))
	for i, r := range recs {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []string{
		"VdpPictureInfoVC1",
		"VdpBitstreamBuffer",
		"VADecPictureParameterBufferVP9",
		"VdpPictureInfoMPEG1Or2",
	}, kinds)

	vc1, ok := recs[0].Value.(*vdp.PictureInfoVC1)
	require.True(t, ok)
	assert.Equal(t, vdp.InvalidHandle, vc1.ForwardReference)
	assert.Equal(t, uint32(1), vc1.SliceCount)
	assert.Equal(t, uint8(4), vc1.PQuant)

	bs, ok := recs[1].Value.(*vdp.BitstreamBuffer)
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x0d, 0xa1, 0x3c}, bs.Bitstream)
	assert.Equal(t, uint32(6), bs.BitstreamBytes)

	vp9, ok := recs[2].Value.(*va.DecPictureParameterBufferVP9)
	require.True(t, ok)
	assert.Equal(t, uint16(352), vp9.FrameWidth)
	assert.Equal(t, va.SurfaceID(3), vp9.ReferenceFrames[2])
	assert.Equal(t, uint32(1), vp9.PicFields.SubsamplingX())
	assert.Equal(t, uint32(1), vp9.PicFields.ShowFrame())

	mpeg, ok := recs[3].Value.(*vdp.PictureInfoMPEG1Or2)
	require.True(t, ok)
	assert.Equal(t, [2][2]uint8{{1, 1}, {15, 15}}, mpeg.FCode)
}

func TestDecodeSkipsEmptyDocuments(t *testing.T) {
	recs, err := Decode(strings.NewReader("---\n---\nkind: VdpPictureInfoAV1\n---\n"), printers.DefaultRegister())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.IsType(t, &vdp.PictureInfoAV1{}, recs[0].Value)
}

func TestDecodeErrors(t *testing.T) {
	reg := printers.DefaultRegister()

	_, err := Decode(strings.NewReader("kind: VdpPictureInfoHEVC\n"), reg)
	assert.True(t, errors.Is(err, printers.ErrUnknownKind), "got %v", err)

	_, err = Decode(strings.NewReader("kind: VdpPictureInfoVC1\nrecord:\n  slice_count: many\n"), reg)
	assert.ErrorContains(t, err, "VdpPictureInfoVC1")

	_, err = Decode(strings.NewReader("kind: VdpPictureInfoMPEG1Or2\nrecord:\n  f_code: [[1, 2]]\n"), reg)
	assert.Error(t, err)

	_, err = Load("testdata/missing.yaml", reg)
	assert.ErrorContains(t, err, "failed to open fixture")
}
