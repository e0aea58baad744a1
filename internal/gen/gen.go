// SPDX-License-Identifier: MIT

// Package gen renders a validated constants manifest as Go source.
package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"text/template"

	"github.com/pkg/errors"

	"hyperion/internal/log"
	"hyperion/internal/manifest"
)

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{
	"value": formatValue,
}).Parse(`// Code generated by hyperion gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}
{{if .Consts}}
const (
{{- range $i, $c := .Consts}}
{{- if and $i $c.Doc}}
{{end}}
{{- range $c.Doc}}
	// {{.}}
{{- end}}
	{{$c.Name}} {{$c.Kind.GoType}} = {{value $c.Value}} // {{$c.Literal}}
{{- end}}
)
{{end}}`))

type options struct {
	source string
}

// Option configures Render.
type Option func(*options)

// WithSource names the manifest in the generated header.
func WithSource(path string) Option {
	return func(o *options) {
		o.source = path
	}
}

// Render returns gofmt'd Go source declaring every const of m with its
// declared type. m must have been validated.
func Render(m *manifest.Manifest, opts ...Option) ([]byte, error) {
	if m == nil {
		return nil, errors.New("nil manifest")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	for _, c := range m.Consts {
		if c.Value == nil {
			return nil, errors.Errorf("const %s has no value; validate the manifest first", c.Name)
		}
	}

	var buf bytes.Buffer
	err := fileTmpl.Execute(&buf, struct {
		*manifest.Manifest
		Source string
	}{m, o.source})
	if err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting generated source:\n%s", buf.Bytes())
	}
	return src, nil
}

// Generate parses the manifest at in and writes the rendered source to out.
// A manifest with any invalid literal produces no output file.
func Generate(ctx context.Context, in, out string) error {
	m, err := manifest.ParseFile(ctx, in)
	if err != nil {
		return err
	}

	src, err := Render(m, WithSource(in))
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, src, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	log.Infof("gen: wrote %d constants from %s to %s", len(m.Consts), in, out)
	return nil
}

func formatValue(v any) (string, error) {
	switch v := v.(type) {
	case float32:
		return floatLiteral(float64(v), 32), nil
	case float64:
		return floatLiteral(v, 64), nil
	case uint8, uint16, uint32, uint64, uint, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), nil
	default:
		return "", errors.Errorf("unsupported constant value %T", v)
	}
}

// floatLiteral prints the shortest representation that round trips at the
// given width. Whole numbers keep a trailing ".0" so the literal reads as
// floating point.
func floatLiteral(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if _, err := strconv.Atoi(s); err == nil {
		s += ".0"
	}
	return s
}
