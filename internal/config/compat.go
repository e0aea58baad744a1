// SPDX-License-Identifier: MIT
package config

import (
	"strings"

	"github.com/pkg/errors"

	"hyperion/internal/log"
	"hyperion/pkg/compare"
	"hyperion/pkg/literal"
)

// Level returns the configured log level, with debug taking precedence.
func (c *Config) Level() log.LogLevel {
	if c.Debug {
		return log.LevelDebug
	}
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// Epsilons returns the configured tolerance as a variadic argument for the
// compare predicates. It is empty when no explicit value is set, so the
// predicates fall back to the machine epsilon of the operands.
func (c *Config) Epsilons() []compare.Epsilon {
	if c.Compare.Epsilon == 0 {
		return nil
	}
	kind, err := compare.ParseEpsilonType(c.Compare.EpsilonType)
	if err != nil {
		return nil
	}
	return []compare.Epsilon{compare.NewEpsilon(kind, c.Compare.Epsilon)}
}

// Constant parses the named entry of the constants section.
func (c *Config) Constant(name string) (literal.Kind, any, error) {
	entry, ok := c.Constants[name]
	if !ok {
		return literal.KindInvalid, nil, errors.Errorf("constants.%s is not defined", name)
	}
	kindName, lit, ok := strings.Cut(entry, ":")
	if !ok {
		return literal.KindInvalid, nil, errors.Errorf("constants.%s: %q is not of the form kind:literal", name, entry)
	}
	kind := literal.KindOf(strings.TrimSpace(kindName))
	v, err := literal.ParseKind(kind, strings.TrimSpace(lit))
	if err != nil {
		return kind, nil, errors.Wrapf(err, "constants.%s", name)
	}
	return kind, v, nil
}
