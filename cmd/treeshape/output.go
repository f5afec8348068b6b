package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// tabular is implemented by every command result so --format text can
// render it as a table.
type tabular interface {
	headers() []string
	rows() [][]string
}

func render(w io.Writer, format string, v tabular) error {
	if format == formatText {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(v.headers()...).
			Rows(v.rows()...)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func ftoa(x float64) string { return strconv.FormatFloat(x, 'g', 10, 64) }
