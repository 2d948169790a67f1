package output

import (
	"io"
	"strings"

	"github.com/yndnr/perfconf/internal/core/domain"
	"github.com/yndnr/perfconf/internal/core/service"
)

// Format represents the output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// Formatter writes resolved lines.
type Formatter interface {
	Format(w io.Writer, lines []service.Line) error
}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", domain.ErrUsage.WithDetails("unknown output format: " + s)
}

// NewFormatter creates a formatter for the given format. noHeaders
// applies to the table format only.
func NewFormatter(format Format, noHeaders bool) Formatter {
	switch format {
	case FormatTable:
		return &TableFormatter{NoHeaders: noHeaders}
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TextFormatter{}
	}
}
