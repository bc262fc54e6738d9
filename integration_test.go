//go:build !notrace

package vdptrace_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vdptrace/internal/lister"
)

// This test ensures the dumped fixtures match the golden trace text.
func TestIntegrationComparison(t *testing.T) {
	tests := []struct {
		name     string
		fixtures []string
		golden   string
	}{
		{
			name:     "VC1 VP9 MPEG2 stream",
			fixtures: []string{"internal/fixture/testdata/stream.yaml"},
			golden:   "testdata/stream.golden",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expectedBytes, err := os.ReadFile(tc.golden)
			if err != nil {
				t.Fatalf("Could not read golden file %s: %v", tc.golden, err)
			}

			var actualBuf bytes.Buffer
			cfg := lister.Config{
				Fixtures:     tc.fixtures,
				Indent:       "  ",
				OutputWriter: &actualBuf,
			}
			if err := lister.Run(cfg); err != nil {
				t.Fatalf("lister.Run failed: %v", err)
			}

			actual := strings.ReplaceAll(actualBuf.String(), "\r\n", "\n")
			expected := strings.ReplaceAll(string(expectedBytes), "\r\n", "\n")
			if diff := cmp.Diff(expected, actual); diff != "" {
				debugFile := filepath.Join(t.TempDir(), "actual.txt")
				_ = os.WriteFile(debugFile, []byte(actual), 0644)
				t.Errorf("output mismatch (-golden +actual):\n%s\nSee %s for details.", diff, debugFile)
			}
		})
	}
}
