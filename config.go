package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/gobf/internal/mem"
)

// Config is the YAML config file format, e.g.:
//
//	memory_size: 65536
//	strict: true
//	output: ansi
//	trace: false
//	line_flush: true
//
// Every field is optional; line_flush defaults to whether stdout is a
// terminal.
type Config struct {
	MemorySize uint       `yaml:"memory_size,omitempty"`
	Strict     bool       `yaml:"strict,omitempty"`
	Output     OutputMode `yaml:"output,omitempty"`
	Trace      bool       `yaml:"trace,omitempty"`
	LineFlush  *bool      `yaml:"line_flush,omitempty"`
}

// MaxMemorySize bounds the memory_size setting.
const MaxMemorySize = 1 << 30

// ConfigError aggregates config validation failures.
type ConfigError struct {
	Path   string
	Issues []string
}

func (ce *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("invalid config ")
	b.WriteString(ce.Path)
	b.WriteString(":")
	for _, issue := range ce.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses config file content; path is used only for error
// messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (cfg *Config) validate(path string) error {
	var issues []string
	if cfg.MemorySize > MaxMemorySize {
		issues = append(issues, fmt.Sprintf("memory_size: %v exceeds limit %v", cfg.MemorySize, MaxMemorySize))
	}
	if cfg.Output < OutputBytes || cfg.Output > OutputANSI {
		issues = append(issues, fmt.Sprintf("output: unsupported mode %v", cfg.Output))
	}
	if len(issues) > 0 {
		return &ConfigError{path, issues}
	}
	return nil
}

func (cfg *Config) setDefaults() {
	if cfg.MemorySize == 0 {
		cfg.MemorySize = mem.DefaultTapeSize
	}
}

// Options returns VM options implementing the config; any trace logging goes
// through logf, and line flushing uses the given default unless set.
func (cfg *Config) Options(logf func(string, ...interface{}), lineFlush bool) []VMOption {
	if cfg.LineFlush != nil {
		lineFlush = *cfg.LineFlush
	}
	opts := []VMOption{
		WithMemSize(cfg.MemorySize),
		WithStrict(cfg.Strict),
		WithOutputMode(cfg.Output),
		WithLineFlush(lineFlush),
	}
	if cfg.Trace && logf != nil {
		opts = append(opts, WithLogf(logf))
	}
	return opts
}

// UnmarshalYAML decodes an output mode from its name.
func (mode *OutputMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return mode.Set(name)
}

// MarshalYAML encodes an output mode as its name.
func (mode OutputMode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}
