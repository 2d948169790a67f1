package perfconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/yndnr/perfconf/internal/core/domain"
	"github.com/yndnr/perfconf/internal/telemetry/logger"
)

// CollectFunc receives one entry. A nil value marks a key without a value.
type CollectFunc func(name string, value *string) error

// Reader parses perfconfig files.
type Reader struct {
	log  logger.Logger
	opts ini.LoadOptions
}

// NewReader creates a reader that logs through log.
func NewReader(log logger.Logger) *Reader {
	if log == nil {
		log = logger.Nop()
	}
	return &Reader{
		log: log.With("component", "perfconfig"),
		// A key without '=' is a parse error. An unquoted value ends at
		// the first '#' or ';'; a double-quoted one keeps both.
		opts: ini.LoadOptions{
			UnescapeValueDoubleQuotes: true,
		},
	}
}

// Read reads every file selected by scope, in order.
func (r *Reader) Read(locs Locations, scope Scope, fn CollectFunc) error {
	paths := locs.Paths(scope)
	r.log.Debug("resolved config files", "scope", scope.String(), "paths", paths)

	for _, p := range paths {
		if err := r.ReadFile(p, fn); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile parses one file and calls fn for each key, in file order.
// A file that does not exist is skipped.
func (r *Reader) ReadFile(path string, fn CollectFunc) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Debug("config file not found", "path", path)
			return nil
		}
		return domain.ErrSourceRead.WithDetails(path).Wrap(err)
	}

	return r.parse(path, data, fn)
}

func (r *Reader) parse(path string, data []byte, fn CollectFunc) error {
	f, err := ini.LoadSources(r.opts, data)
	if err != nil {
		return domain.ErrSourceRead.WithDetails(path).Wrap(err)
	}

	r.log.Debug("reading config file", "path", path)

	for _, sec := range f.Sections() {
		prefix := sectionPrefix(sec.Name())
		for _, k := range sec.Keys() {
			name := prefix + k.Name()
			value := k.Value()
			if err := fn(name, &value); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

// sectionPrefix maps an INI section header to the dotted name prefix.
// Keys outside any section get no prefix; `name "sub"` becomes "name.sub.".
func sectionPrefix(section string) string {
	if section == ini.DefaultSection {
		return ""
	}
	if base, sub, ok := strings.Cut(section, " "); ok {
		sub = strings.TrimSpace(sub)
		if len(sub) >= 2 && sub[0] == '"' && sub[len(sub)-1] == '"' {
			return base + "." + sub[1:len(sub)-1] + "."
		}
	}
	return section + "."
}
