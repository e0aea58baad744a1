// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pkg/errors"

	"hyperion/internal/log"
	"hyperion/pkg/compare"
	"hyperion/pkg/literal"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "hyperion.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig("")
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	want := defaults()
	if diff := pretty.Compare(want, *cfg); diff != "" {
		t.Errorf("LoadConfig(\"\") diff (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig("nonexistent.yaml")
	if err == nil {
		t.Errorf("expected error for missing file, got nil")
	}
	if cfg != nil {
		t.Errorf("expected nil config on error, got %+v", cfg)
	}
}

func TestLoadConfig_UnmarshalError(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, ":\n:bad")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
log_level: warn
compare:
  epsilon_type: relative
  epsilon: 0.1
output:
  format: json
server:
  address: 127.0.0.1:0
  write_timeout: 2s
constants:
  frames: "u32:64'000"
  mask: "u64:0xDEAD'BEEF"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := defaults()
	want.LogLevel = "warn"
	want.Compare = CompareConfig{EpsilonType: "relative", Epsilon: 0.1}
	want.Output.Format = "json"
	want.Server.Address = "127.0.0.1:0"
	want.Server.WriteTimeout = 2 * time.Second
	want.Constants = map[string]string{
		"frames": "u32:64'000",
		"mask":   "u64:0xDEAD'BEEF",
	}
	if diff := pretty.Compare(want, *cfg); diff != "" {
		t.Errorf("LoadConfig() diff (-want +got):\n%s", diff)
	}

	if got := cfg.Level(); got != log.LevelWarn {
		t.Errorf("Level() = %v, want %v", got, log.LevelWarn)
	}
	eps := cfg.Epsilons()
	if len(eps) != 1 || eps[0].Type() != compare.Relative || eps[0].Value() != 0.1 {
		t.Fatalf("Epsilons() = %v, want [relative(0.1)]", eps)
	}
	if !compare.Equal(2.0, 2.2, eps...) {
		t.Errorf("Equal(2.0, 2.2, %v) = false, want true", eps[0])
	}

	kind, v, err := cfg.Constant("frames")
	if err != nil || kind != literal.KindU32 || v != uint32(64000) {
		t.Errorf("Constant(frames) = %v, %v, %v; want u32, 64000, nil", kind, v, err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
		wantIs  error
	}{
		{"Defaults", func(*Config) {}, "", nil},
		{"Bad Level", func(c *Config) { c.LogLevel = "loud" }, "log_level", nil},
		{"Bad Epsilon Type", func(c *Config) { c.Compare.EpsilonType = "ulp" }, "compare.epsilon_type", compare.ErrUnknownEpsilonType},
		{"Negative Epsilon", func(c *Config) { c.Compare.Epsilon = -1 }, "compare.epsilon", nil},
		{"Bad Format", func(c *Config) { c.Output.Format = "xml" }, "output.format", nil},
		{"Empty Address", func(c *Config) { c.Server.Address = "" }, "server.address", nil},
		{"Zero Read Limit", func(c *Config) { c.Server.ReadLimit = 0 }, "server.read_limit", nil},
		{"Zero Timeout", func(c *Config) { c.Server.WriteTimeout = 0 }, "server.write_timeout", nil},
		{"Constant Out Of Range", func(c *Config) { c.Constants["big"] = "u8:256" }, "constants.big", literal.ErrOutOfRange},
		{"Constant Bad Digits", func(c *Config) { c.Constants["bad"] = "u8:0b102" }, "constants.bad", literal.ErrInvalidCharacterSequence},
		{"Constant Bad Kind", func(c *Config) { c.Constants["odd"] = "u128:1" }, "constants.odd", literal.ErrInvalidLiteralType},
		{"Constant No Kind", func(c *Config) { c.Constants["raw"] = "12" }, "kind:literal", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("Validate() error = %v, want errors.Is %v", err, tt.wantIs)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ENV_DEBUG", "true")
	t.Setenv("ENV_EPSILON_TYPE", "abs")
	t.Setenv("ENV_EPSILON", "0.5")
	t.Setenv("ENV_OUTPUT_FORMAT", "yaml")
	t.Setenv("ENV_SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("ENV_SERVER_WRITE_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Debug || cfg.Level() != log.LevelDebug {
		t.Errorf("Debug = %v, Level() = %v; want true, DEBUG", cfg.Debug, cfg.Level())
	}
	if cfg.Compare.Epsilon != 0.5 || cfg.Compare.EpsilonType != "abs" {
		t.Errorf("Compare = %+v, want abs 0.5", cfg.Compare)
	}
	if cfg.Output.Format != "yaml" || cfg.Server.Address != "0.0.0.0:9000" {
		t.Errorf("Output = %+v, Server = %+v", cfg.Output, cfg.Server)
	}
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("WriteTimeout = %v, want unparsable override ignored", cfg.Server.WriteTimeout)
	}
	if eps := cfg.Epsilons(); len(eps) != 1 || eps[0].Type() != compare.Absolute {
		t.Errorf("Epsilons() = %v, want [absolute(0.5)]", eps)
	}
}

func TestEpsilonsDefault(t *testing.T) {
	t.Parallel()
	cfg := defaults()
	if eps := cfg.Epsilons(); eps != nil {
		t.Errorf("Epsilons() = %v, want nil", eps)
	}
	if _, _, err := cfg.Constant("missing"); err == nil {
		t.Error("Constant(missing) error = nil, want error")
	}
}
