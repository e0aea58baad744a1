// SPDX-License-Identifier: MIT
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"hyperion/internal/transport"
	"hyperion/pkg/platform"
)

// render writes v as JSON or YAML. Text rendering is specific to each command.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
}

// renderFacts prints facts as a table with one row per fact. The section
// name appears on the first row of each section.
func renderFacts(w io.Writer, format string, facts platform.Facts) error {
	if format != "text" {
		return render(w, format, facts)
	}

	r := lipgloss.NewRenderer(w)
	var (
		cellStyle    = r.NewStyle().Padding(0, 1)
		headerStyle  = cellStyle.Foreground(lipgloss.Color("#25A065")).Bold(true)
		sectionStyle = cellStyle.Foreground(lipgloss.Color("#25A065"))
		borderStyle  = r.NewStyle().Foreground(lipgloss.Color("#25A065"))
	)

	var rows [][]string
	section := ""
	for _, e := range facts.Entries() {
		name := ""
		if e.Section != section {
			section = e.Section
			name = section
		}
		rows = append(rows, []string{name, e.Name, e.Value})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("SECTION", "FACT", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return sectionStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// renderResponse prints an evaluator response. A failed response is returned
// as an error after rendering so the process exits non-zero.
func renderResponse(w io.Writer, format string, resp transport.Response) error {
	if format == "text" {
		if resp.OK {
			fmt.Fprintln(w, resp.Value)
		}
	} else if err := render(w, format, resp); err != nil {
		return err
	}

	if !resp.OK {
		return errors.New(resp.Error)
	}
	return nil
}
