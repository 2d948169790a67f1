package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/perfconf/internal/core/service"
)

// YAMLFormatter formats lines as a YAML sequence.
type YAMLFormatter struct{}

// Format formats lines as YAML. No lines encode as [].
func (f *YAMLFormatter) Format(w io.Writer, lines []service.Line) error {
	if lines == nil {
		lines = []service.Line{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lines); err != nil {
		return err
	}
	return enc.Close()
}
