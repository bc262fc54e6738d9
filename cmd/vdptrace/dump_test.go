//go:build !notrace

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vdptrace.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDump(t *testing.T) {
	cfg := writeConfig(t, "trace:\n  output: stdout\n  indent: \"  \"\nlog:\n  level: error\n")
	got, err := run(t, "dump", "--config", cfg, "--stats", "../../internal/fixture/testdata/stream.yaml")
	if err != nil {
		t.Fatal(err)
	}

	golden, err := os.ReadFile("../../testdata/stream.golden")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, string(golden)) {
		t.Errorf("dump output does not start with the golden trace:\n%s", got)
	}
	if !strings.Contains(got, "Records dumped:-\nVdpPictureInfoMPEG1Or2 : 1\n") {
		t.Errorf("stats missing:\n%s", got[len(golden):])
	}
}

func TestDumpToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trace.log")
	cfg := writeConfig(t, "trace:\n  output: "+out+"\nlog:\n  level: error\n")
	got, err := run(t, "dump", "-c", cfg, "../../internal/fixture/testdata/stream.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("unexpected console output %q", got)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "    VdpPictureInfoVC1 = {\n") {
		t.Errorf("trace file does not start with the VC1 record:\n%s", data)
	}
}

func TestDumpDisabled(t *testing.T) {
	t.Setenv("VDPAU_VIDEO_TRACE", "0")
	cfg := writeConfig(t, "trace:\n  output: stdout\nlog:\n  level: error\n")
	got, err := run(t, "dump", "-c", cfg, "../../internal/fixture/testdata/stream.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("disabled trace wrote %q", got)
	}
}

func TestKinds(t *testing.T) {
	got, err := run(t, "kinds")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"VdpPictureInfoMPEG1Or2 (MPEG1,MPEG2)\n",
		"VdpPictureInfoH264 (H264)\n",
		"VdpBitstreamBuffer\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("kinds missing %q:\n%s", want, got)
		}
	}
}
