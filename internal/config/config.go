// SPDX-License-Identifier: MIT
package config

import "time"

// Defaults and limits for the hyperion configuration.
const (
	DefaultPath         = "hyperion.yaml"
	DefaultLogLevel     = "info"
	DefaultEpsilonType  = "absolute"
	DefaultEpsilon      = 0 // 0 selects the machine epsilon of the operands
	DefaultOutputFormat = "text"
	DefaultAddress      = "127.0.0.1:9480"
	DefaultReadLimit    = 64 << 10
	DefaultWriteTimeout = 5 * time.Second

	MaxReadLimit = 16 << 20
)

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{"text", "json", "yaml"}

// defaults returns the built-in configuration that file and environment
// settings are layered over.
func defaults() Config {
	return Config{
		Debug:    false,
		LogLevel: DefaultLogLevel,
		Compare: CompareConfig{
			EpsilonType: DefaultEpsilonType,
			Epsilon:     DefaultEpsilon,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Server: ServerConfig{
			Address:      DefaultAddress,
			ReadLimit:    DefaultReadLimit,
			WriteTimeout: DefaultWriteTimeout,
		},
		Constants: map[string]string{},
	}
}
