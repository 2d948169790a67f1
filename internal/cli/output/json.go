package output

import (
	"encoding/json"
	"io"

	"github.com/yndnr/perfconf/internal/core/service"
)

// JSONFormatter formats lines as a JSON array.
type JSONFormatter struct{}

// Format formats lines as indented JSON. No lines encode as [].
func (f *JSONFormatter) Format(w io.Writer, lines []service.Line) error {
	if lines == nil {
		lines = []service.Line{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(lines)
}
