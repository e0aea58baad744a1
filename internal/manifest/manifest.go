// SPDX-License-Identifier: MIT

/*
Package manifest reads constants manifests: line oriented files that bind
names to validated numeric literals.

	package limits

	// MaxFrames bounds a single read.
	const MaxFrames u32 = 64'000
	const Mask u64 = 0xDEAD'BEEF // trailing comments are dropped
	const Tolerance f64 = 0.001

Comment lines directly above a const become its documentation. Every literal
is parsed with its declared kind during validation, so a Manifest returned
without error only holds values of Valid status.
*/
package manifest

import (
	"context"
	"go/token"
	"os"
	"strings"

	"github.com/johnsiilver/halfpike"
	"github.com/pkg/errors"

	"hyperion/pkg/literal"
)

// ErrDuplicateName is returned when two consts share a name.
var ErrDuplicateName = errors.New("duplicate const name")

// Manifest is a decoded constants manifest. It implements halfpike.Parsable.
type Manifest struct {
	// Package is the Go package name generated code is placed in.
	Package string
	// Consts are in declaration order.
	Consts []Const

	doc []string
}

// Const is a single named literal.
type Const struct {
	Name    string
	Kind    literal.Kind
	Literal string
	// Value holds the parsed literal, typed as Kind.GoType().
	Value any
	Doc   []string
	Line  int
}

// Parse decodes and validates a manifest.
func Parse(ctx context.Context, content string) (*Manifest, error) {
	m := &Manifest{}
	if err := halfpike.Parse(ctx, content, m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseFile reads the manifest at path and decodes it.
func ParseFile(ctx context.Context, path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "problem reading manifest %s", path)
	}
	m, err := Parse(ctx, string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "problem parsing manifest %s", path)
	}
	return m, nil
}

// Validate checks names and parses every literal with its declared kind.
// Values are stored on success.
func (m *Manifest) Validate() error {
	if !validIdent(m.Package) {
		return errors.Errorf("package name %q is not a valid identifier", m.Package)
	}

	seen := make(map[string]int, len(m.Consts))
	for i := range m.Consts {
		c := &m.Consts[i]
		if !validIdent(c.Name) {
			return errors.Errorf("[Line %d] error: const name %q is not a valid identifier", c.Line, c.Name)
		}
		if prev, ok := seen[c.Name]; ok {
			return errors.Wrapf(ErrDuplicateName, "[Line %d] error: %s already declared on line %d", c.Line, c.Name, prev)
		}
		seen[c.Name] = c.Line

		v, err := literal.ParseKind(c.Kind, c.Literal)
		if err != nil {
			return errors.Wrapf(err, "[Line %d] error: const %s", c.Line, c.Name)
		}
		c.Value = v
	}
	return nil
}

// Lookup returns the named const.
func (m *Manifest) Lookup(name string) (Const, bool) {
	for _, c := range m.Consts {
		if c.Name == name {
			return c, true
		}
	}
	return Const{}, false
}

func validIdent(s string) bool {
	return token.IsIdentifier(s) && s != "_"
}

// Start is the start point for reading the manifest.
func (m *Manifest) Start(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	return m.parsePackage
}

// words splits l into fields, stopping at a trailing comment.
func words(l halfpike.Line) []string {
	fields := strings.Fields(l.Raw)
	for i, f := range fields {
		if strings.HasPrefix(f, "//") {
			return fields[:i]
		}
	}
	return fields
}

func isComment(l halfpike.Line) bool {
	fields := strings.Fields(l.Raw)
	return len(fields) > 0 && strings.HasPrefix(fields[0], "//")
}

func isBlank(l halfpike.Line) bool {
	return strings.TrimSpace(l.Raw) == ""
}

// skipComments consumes comment and blank lines. Comments are kept as
// documentation for the next const; a blank line detaches them.
func (m *Manifest) skipComments(p *halfpike.Parser) {
	for {
		l := p.Next()
		switch {
		case p.EOF(l):
			p.Backup()
			return
		case isBlank(l):
			m.doc = nil
		case isComment(l):
			text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l.Raw), "//"))
			m.doc = append(m.doc, text)
		default:
			p.Backup()
			return
		}
	}
}

func (m *Manifest) parsePackage(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	m.skipComments(p)
	m.doc = nil

	l := p.Next()
	if p.EOF(l) {
		return p.Errorf("error: manifest is empty, expected a 'package' statement")
	}

	w := words(l)
	if w[0] != "package" {
		return p.Errorf("[Line %d] error: first statement must be 'package <name>'", l.LineNum)
	}
	if len(w) != 2 {
		return p.Errorf("[Line %d] error: 'package' takes exactly one name, got %q", l.LineNum, strings.Join(w[1:], " "))
	}
	m.Package = w[1]

	return m.parseConst
}

func (m *Manifest) parseConst(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	m.skipComments(p)

	l := p.Next()
	if p.EOF(l) {
		return nil
	}

	w := words(l)
	switch {
	case w[0] == "package":
		return p.Errorf("[Line %d] error: duplicate 'package' statement", l.LineNum)
	case w[0] != "const":
		return p.Errorf("[Line %d] error: expected 'const', not %q", l.LineNum, w[0])
	case len(w) != 5 || w[3] != "=":
		return p.Errorf("[Line %d] error: want 'const <Name> <kind> = <literal>', got %q", l.LineNum, strings.Join(w, " "))
	}

	kind := literal.KindOf(w[2])
	if !kind.Valid() {
		return p.Errorf("[Line %d] error: unknown kind %q for const %s", l.LineNum, w[2], w[1])
	}

	m.Consts = append(m.Consts, Const{
		Name:    w[1],
		Kind:    kind,
		Literal: w[4],
		Doc:     m.doc,
		Line:    l.LineNum,
	})
	m.doc = nil

	return m.parseConst
}
