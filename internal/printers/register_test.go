package printers

import (
	"errors"
	"testing"

	"vdptrace/internal/trace"
	"vdptrace/internal/va"
	"vdptrace/internal/vdp"
)

func TestRegisterByCodec(t *testing.T) {
	tests := []struct {
		codec vdp.Codec
		kind  string
	}{
		{vdp.CodecMPEG1, "VdpPictureInfoMPEG1Or2"},
		{vdp.CodecMPEG2, "VdpPictureInfoMPEG1Or2"},
		{vdp.CodecH264, "VdpPictureInfoH264"},
		{vdp.CodecVC1, "VdpPictureInfoVC1"},
		{vdp.CodecVP9, "VdpPictureInfoVP9"},
		{vdp.CodecAV1, "VdpPictureInfoAV1"},
	}
	reg := DefaultRegister()
	for _, tt := range tests {
		d, err := reg.ByCodec(tt.codec)
		if err != nil {
			t.Errorf("ByCodec(%d): %v", tt.codec, err)
			continue
		}
		if d.Kind != tt.kind {
			t.Errorf("ByCodec(%d).Kind = %q, want %q", tt.codec, d.Kind, tt.kind)
		}
	}

	if _, err := reg.ByCodec(99); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("ByCodec(99) err = %v, want ErrUnknownCodec", err)
	}
}

func TestRegisterByRecord(t *testing.T) {
	reg := DefaultRegister()
	recs := map[string]any{
		"VdpPictureInfoH264":             &vdp.PictureInfoH264{},
		"VASliceParameterBufferVP9":      &va.SliceParameterBufferVP9{},
		"VADecPictureParameterBufferVP9": &va.DecPictureParameterBufferVP9{},
		"VdpBitstreamBuffer":             &vdp.BitstreamBuffer{},
	}
	for kind, rec := range recs {
		d, err := reg.ByRecord(rec)
		if err != nil {
			t.Errorf("ByRecord(%T): %v", rec, err)
			continue
		}
		if d.Kind != kind {
			t.Errorf("ByRecord(%T).Kind = %q, want %q", rec, d.Kind, kind)
		}
	}

	if _, err := reg.ByRecord(vdp.PictureInfoH264{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("non-pointer record err = %v, want ErrUnknownKind", err)
	}
	if _, err := reg.ByKind("VdpPictureInfoHEVC"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ByKind err = %v, want ErrUnknownKind", err)
	}
}

func TestRegisterAdd(t *testing.T) {
	reg := NewRegister()
	d := newDumper("VdpPictureInfoVC1", DumpPictureInfoVC1, vdp.CodecVC1)
	if err := reg.Add(d); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(d); !errors.Is(err, ErrKindRepeat) {
		t.Errorf("repeat Add err = %v, want ErrKindRepeat", err)
	}
	if err := reg.Add(nil); err == nil {
		t.Error("Add(nil) should fail")
	}
	if kinds := reg.Kinds(); len(kinds) != 1 || kinds[0] != "VdpPictureInfoVC1" {
		t.Errorf("Kinds() = %v", kinds)
	}
	got, err := reg.ByKind("VdpPictureInfoVC1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.New().(*vdp.PictureInfoVC1); !ok {
		t.Error("New() did not allocate the record shape")
	}
}

func TestDumperNewMatchesAccepts(t *testing.T) {
	reg := DefaultRegister()
	for _, kind := range reg.Kinds() {
		d, _ := reg.ByKind(kind)
		if !d.Accepts(d.New()) {
			t.Errorf("%s does not accept its own record", kind)
		}
		var s trace.Scope
		d.Dump(s, d.New())
	}
}
