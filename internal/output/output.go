// Package output prints command results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mj1618/outlook-a11y/internal/outlook"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format: %s (use yaml, json or text)", s)
}

// ClassifyResult is the top-level output of the `classify` command.
type ClassifyResult struct {
	File     string                   `yaml:"file,omitempty" json:"file,omitempty"`
	Version  int                      `yaml:"version"        json:"version"`
	Elements []outlook.Classification `yaml:"elements"       json:"elements"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, OutputFormat, v)
}

// Fprint serializes v to w in format f.
func Fprint(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v, PrettyOutput)
	case FormatYAML:
		return WriteYAML(w, v)
	case FormatText:
		return WriteText(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}
