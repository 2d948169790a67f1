package output

import (
	"bufio"
	"io"

	"github.com/yndnr/perfconf/internal/core/service"
)

// TextFormatter writes one section.key=value line per entry.
type TextFormatter struct{}

// Format writes lines in their text form.
func (f *TextFormatter) Format(w io.Writer, lines []service.Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
