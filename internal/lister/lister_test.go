//go:build !notrace

package lister

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"vdptrace/internal/logging"
	"vdptrace/internal/trace"
)

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunStats(t *testing.T) {
	a := writeFixture(t, "kind: VdpPictureInfoVC1\n---\nkind: VdpPictureInfoVC1\n")
	b := writeFixture(t, "kind: VdpPictureInfoAV1\nrecord:\n  width: 1920\n")

	core, logs := observer.New(zap.InfoLevel)
	var buf bytes.Buffer
	err := Run(Config{
		Fixtures:     []string{a, b},
		Stats:        true,
		OutputWriter: &buf,
		Logger:       zap.New(core),
	})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if n := strings.Count(out, "VdpPictureInfoVC1 = {"); n != 2 {
		t.Errorf("dumped %d VC1 records, want 2", n)
	}
	if !strings.Contains(out, trace.DefaultIndent+trace.DefaultIndent+".width = 1920,\n") {
		t.Errorf("AV1 record missing or mis-indented:\n%s", out)
	}
	for _, want := range []string{"VdpPictureInfoVC1 : 2\n", "VdpPictureInfoAV1 : 1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats missing %q", want)
		}
	}

	if got := logs.FilterMessage("fixture dumped").Len(); got != 2 {
		t.Errorf("logged %d fixtures, want 2", got)
	}
}

func TestRunUsesPackageLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })

	err := Run(Config{
		Fixtures:     []string{writeFixture(t, "kind: VdpPictureInfoVC1\n")},
		OutputWriter: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("fixture dumped").All()
	if len(entries) != 1 {
		t.Fatalf("package logger got %d entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["records"]; got != int64(1) {
		t.Errorf("records = %v, want 1", got)
	}
}

func TestRunSink(t *testing.T) {
	var buf bytes.Buffer
	sink := trace.NewSink(&buf)
	sink.SetMute(true)
	err := Run(Config{
		Fixtures: []string{writeFixture(t, "kind: VdpPictureInfoH264\n")},
		Sink:     sink,
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("muted sink wrote:\n%s", buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	if err := Run(Config{OutputWriter: &bytes.Buffer{}}); err == nil {
		t.Error("Run without fixtures should fail")
	}

	err := Run(Config{
		Fixtures:     []string{writeFixture(t, "kind: VdpPictureInfoHEVC\n")},
		OutputWriter: &bytes.Buffer{},
	})
	if err == nil || !strings.Contains(err.Error(), "VdpPictureInfoHEVC") {
		t.Errorf("err = %v, want unknown kind", err)
	}
}
