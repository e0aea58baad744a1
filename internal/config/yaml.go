// SPDX-License-Identifier: MIT
package config

import (
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"hyperion/internal/log"
	"hyperion/pkg/compare"
)

// Config represents the main application configuration structure, loaded from YAML.
type Config struct {
	Debug     bool              `yaml:"debug"`     // Enable debug logging.
	LogLevel  string            `yaml:"log_level"` // Logging level (e.g., "debug", "info", "warn", "error").
	Compare   CompareConfig     `yaml:"compare"`   // Default tolerance for comparisons.
	Output    OutputConfig      `yaml:"output"`    // Rendering of command results.
	Server    ServerConfig      `yaml:"server"`    // Websocket evaluation service.
	Constants map[string]string `yaml:"constants"` // Named literals as "kind:literal", validated at load.
}

// CompareConfig holds the default epsilon used by compare commands and the server.
type CompareConfig struct {
	EpsilonType string  `yaml:"epsilon_type"` // "absolute" or "relative".
	Epsilon     float64 `yaml:"epsilon"`      // Tolerance value; 0 keeps the machine epsilon default.
}

// OutputConfig holds settings for command output.
type OutputConfig struct {
	Format string `yaml:"format"` // "text", "json" or "yaml".
}

// ServerConfig holds settings for the websocket evaluation service.
type ServerConfig struct {
	Address      string        `yaml:"address"`       // Listen address (e.g., "127.0.0.1:9480").
	ReadLimit    int64         `yaml:"read_limit"`    // Maximum request size in bytes.
	WriteTimeout time.Duration `yaml:"write_timeout"` // Deadline for writing a single response.
}

// LoadConfig loads configuration from a YAML file specified by path. If path is
// empty, it looks for DefaultPath in the working directory and falls back to
// built-in defaults when that is absent. Environment overrides are applied
// after the file, then the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, errors.Wrap(err, "invalid default configuration")
			}
			return &cfg, nil
		}
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// Validate checks every section. Constants are parsed here so that a bad
// literal is reported at load time with the name it was bound to.
func (c *Config) Validate() error {
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return errors.Errorf("log_level %q is not a known level", c.LogLevel)
	}

	if _, err := compare.ParseEpsilonType(c.Compare.EpsilonType); err != nil {
		return errors.Wrap(err, "compare.epsilon_type")
	}
	if c.Compare.Epsilon < 0 {
		return errors.Errorf("compare.epsilon must not be negative, got %g", c.Compare.Epsilon)
	}

	if !slices.Contains(OutputFormats, c.Output.Format) {
		return errors.Errorf("output.format %q must be one of %s", c.Output.Format, strings.Join(OutputFormats, ", "))
	}

	if c.Server.Address == "" {
		return errors.New("server.address must be set")
	}
	if c.Server.ReadLimit <= 0 || c.Server.ReadLimit > MaxReadLimit {
		return errors.Errorf("server.read_limit must be in (0, %d], got %d", MaxReadLimit, c.Server.ReadLimit)
	}
	if c.Server.WriteTimeout <= 0 {
		return errors.New("server.write_timeout must be positive")
	}

	for _, name := range slices.Sorted(maps.Keys(c.Constants)) {
		if _, _, err := c.Constant(name); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvOverrides layers ENV_* variables over the loaded values. Values
// that fail to parse are ignored.
func (cfg *Config) applyEnvOverrides() {
	// ENV_DEBUG
	if val, ok := os.LookupEnv("ENV_DEBUG"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			cfg.Debug = bVal
			log.Debugf("configuration: overriding debug from env: %v", bVal)
		}
	}
	// ENV_LOG_LEVEL
	if val, ok := os.LookupEnv("ENV_LOG_LEVEL"); ok {
		cfg.LogLevel = val
		log.Debugf("configuration: overriding log_level from env: %s", val)
	}

	// ENV_EPSILON_{...}
	// These are specific to comparisons.

	// ENV_EPSILON_TYPE
	if val, ok := os.LookupEnv("ENV_EPSILON_TYPE"); ok {
		cfg.Compare.EpsilonType = val
		log.Debugf("configuration: overriding compare.epsilon_type from env: %s", val)
	}
	// ENV_EPSILON
	if val, ok := os.LookupEnv("ENV_EPSILON"); ok {
		if fVal, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Compare.Epsilon = fVal
			log.Debugf("configuration: overriding compare.epsilon from env: %g", fVal)
		}
	}

	// ENV_OUTPUT_FORMAT
	if val, ok := os.LookupEnv("ENV_OUTPUT_FORMAT"); ok {
		cfg.Output.Format = val
		log.Debugf("configuration: overriding output.format from env: %s", val)
	}

	// ENV_SERVER_{...}
	// These are specific to the evaluation service.

	// ENV_SERVER_ADDRESS
	if val, ok := os.LookupEnv("ENV_SERVER_ADDRESS"); ok {
		cfg.Server.Address = val
		log.Debugf("configuration: overriding server.address from env: %s", val)
	}
	// ENV_SERVER_WRITE_TIMEOUT
	if val, ok := os.LookupEnv("ENV_SERVER_WRITE_TIMEOUT"); ok {
		if dur, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = dur
			log.Debugf("configuration: overriding server.write_timeout from env: %s", dur)
		}
	}
}
