package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// OutputFormat is a pflag.Value selecting how results are printed.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

var _ pflag.Value = (*OutputFormat)(nil)

func (f *OutputFormat) String() string { return string(*f) }

func (f *OutputFormat) Set(v string) error {
	switch OutputFormat(strings.ToLower(v)) {
	case FormatTable, FormatJSON, FormatYAML:
		*f = OutputFormat(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf("must be one of table, json, yaml")
	}
}

func (f *OutputFormat) Type() string { return "format" }

// render writes v in the requested format. table is called for FormatTable.
func render(w io.Writer, format OutputFormat, v any, table func() string) error {
	switch format {
	case FormatTable:
		_, err := fmt.Fprint(w, table())
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
