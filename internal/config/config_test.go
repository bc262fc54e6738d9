package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vdptrace/internal/trace"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vdptrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, OutputStderr, cfg.Trace.Output)
	assert.Equal(t, trace.DefaultIndent, cfg.Trace.Indent)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
trace:
  enabled: false
  output: stdout
  indent: "  "
  mirror: true
log:
  level: debug
  development: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Trace.Enabled)
	assert.Equal(t, OutputStdout, cfg.Trace.Output)
	assert.Equal(t, "  ", cfg.Trace.Indent)
	assert.True(t, cfg.Trace.Mirror)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "trace: [1, 2"))
		assert.ErrorContains(t, err, "failed to parse config")
	})
	t.Run("bad level", func(t *testing.T) {
		_, err := Load(writeFile(t, "log:\n  level: loud\n"))
		assert.ErrorContains(t, err, "unknown log level")
	})
	t.Run("empty output", func(t *testing.T) {
		_, err := Load(writeFile(t, "trace:\n  output: \"\"\n"))
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("switch", func(t *testing.T) {
		for v, want := range map[string]bool{"1": true, "yes": true, "ON": true, "0": false, "no": false} {
			t.Setenv(EnvTrace, v)
			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, want, cfg.Trace.Enabled, v)
		}
	})

	t.Run("invalid switch", func(t *testing.T) {
		t.Setenv(EnvTrace, "maybe")
		_, err := Load("")
		assert.ErrorContains(t, err, EnvTrace)
	})

	t.Run("file and indent override the file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "trace.log")
		t.Setenv(EnvTraceFile, out)
		t.Setenv(EnvTraceIndent, "\t")
		cfg, err := Load(writeFile(t, "trace:\n  output: stdout\n  indent: \"  \"\n"))
		require.NoError(t, err)
		assert.Equal(t, out, cfg.Trace.Output)
		assert.Equal(t, "\t", cfg.Trace.Indent)
	})
}

func TestOpen(t *testing.T) {
	tc := TraceConfig{Output: OutputStdout}
	w, closeFn, err := tc.Open()
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "trace.log")
	tc = TraceConfig{Output: path}
	w, closeFn, err = tc.Open()
	require.NoError(t, err)
	_, err = w.Write([]byte("VdpPictureInfoVC1 = {\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "VdpPictureInfoVC1 = {\n", string(data))

	tc = TraceConfig{Output: filepath.Join(t.TempDir(), "missing", "trace.log")}
	_, _, err = tc.Open()
	assert.ErrorContains(t, err, "failed to open trace output")
}

func TestNewSink(t *testing.T) {
	tc := TraceConfig{Enabled: true, Indent: "\t"}
	sink := tc.NewSink(os.Stdout)
	assert.Equal(t, "\t", sink.Indent())
	assert.False(t, sink.IsMuted())

	tc.Enabled = false
	assert.True(t, tc.NewSink(os.Stdout).IsMuted())

	tc = TraceConfig{Enabled: true, Mute: true}
	assert.True(t, tc.NewSink(os.Stdout).IsMuted())
}
