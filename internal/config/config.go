// Package config loads the trace configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"vdptrace/internal/trace"
)

// Environment variables that override the file.
const (
	EnvTrace       = "VDPAU_VIDEO_TRACE"
	EnvTraceFile   = "VDPAU_VIDEO_TRACE_FILE"
	EnvTraceIndent = "VDPAU_VIDEO_TRACE_INDENT"
)

// Output names that select a standard stream instead of a file.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Config is the root configuration.
type Config struct {
	Trace TraceConfig `yaml:"trace"`
	Log   LogConfig   `yaml:"log"`
}

// TraceConfig configures the trace sink.
type TraceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Output  string `yaml:"output"` // stdout, stderr or a file path
	Indent  string `yaml:"indent"`
	Mute    bool   `yaml:"mute"`
	Mirror  bool   `yaml:"mirror"` // copy records to the logger at debug level
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Trace: TraceConfig{
			Enabled: true,
			Output:  OutputStderr,
			Indent:  trace.DefaultIndent,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvTrace); ok && v != "" {
		on, err := parseSwitch(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTrace, err)
		}
		c.Trace.Enabled = on
	}
	if v := os.Getenv(EnvTraceFile); v != "" {
		c.Trace.Output = v
	}
	if v, ok := os.LookupEnv(EnvTraceIndent); ok {
		c.Trace.Indent = v
	}
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid switch value %q", v)
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Trace.Output == "" {
		return errors.New("trace output must not be empty")
	}
	if strings.ContainsAny(c.Trace.Indent, "\n\r") {
		return errors.New("trace indent must not contain line breaks")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// Open returns the writer selected by Output. The returned closer must be
// called when done; it is a no-op for the standard streams.
func (c *TraceConfig) Open() (io.Writer, func() error, error) {
	switch c.Output {
	case OutputStdout:
		return os.Stdout, func() error { return nil }, nil
	case OutputStderr:
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, f.Close, nil
}

// NewSink builds a trace sink from the configuration on w.
func (c *TraceConfig) NewSink(w io.Writer) *trace.Sink {
	sink := trace.NewSink(w)
	sink.SetIndent(c.Indent)
	sink.SetMute(c.Mute || !c.Enabled)
	return sink
}
