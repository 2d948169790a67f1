package service

import (
	"errors"

	"github.com/yndnr/perfconf/internal/core/domain"
)

// OverlayReader is the read side of the overlay store.
type OverlayReader interface {
	// Value returns the text collected for section.key.
	Value(section, key string) (string, bool)

	// Entries returns every collected entry in collection order.
	Entries() []domain.OverlayEntry
}

// Source tells where a resolved value came from.
type Source string

const (
	SourceUser    Source = "user"
	SourceDefault Source = "default"
)

// Line is one resolved section.key=value.
type Line struct {
	Section string `json:"section" yaml:"section"`
	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value" yaml:"value"`
	Source  Source `json:"source" yaml:"source"`

	// Marked lines carry a " (default)" suffix in text output.
	Marked bool `json:"-" yaml:"-"`
}

// Name returns the dotted section.key name.
func (l Line) Name() string {
	return l.Section + "." + l.Key
}

// String renders the line as section.key=value.
func (l Line) String() string {
	s := l.Name() + "=" + l.Value
	if l.Marked {
		s += " (default)"
	}
	return s
}

// Resolver merges an overlay with the compiled-in default table.
type Resolver struct {
	overlay OverlayReader
}

// NewResolver creates a resolver over overlay.
func NewResolver(overlay OverlayReader) *Resolver {
	return &Resolver{overlay: overlay}
}

// Resolve runs q and returns the lines to print.
//
// In ModeQuery, keys that neither the overlay nor the defaults know are
// skipped; the remaining terms are still resolved and the returned error
// joins one domain.ErrKeyNotFound per miss.
func (r *Resolver) Resolve(q Query) ([]Line, error) {
	switch q.Mode {
	case ModeListAll:
		return r.ListAll(), nil
	case ModeList:
		return r.List(), nil
	case ModeQuery:
		var (
			lines  []Line
			misses []error
		)
		for _, t := range q.Terms {
			line, err := r.Lookup(t)
			if err != nil {
				misses = append(misses, err)
				continue
			}
			lines = append(lines, line)
		}
		return lines, errors.Join(misses...)
	default:
		return nil, domain.ErrInternal.WithDetails("unknown query mode " + q.Mode.String())
	}
}

// ListAll returns every default in table order, with the collected value
// when there is one, followed by collected entries that have no default.
func (r *Resolver) ListAll() []Line {
	defaults := domain.Defaults()
	lines := make([]Line, 0, len(defaults))

	for _, d := range defaults {
		if v, ok := r.overlay.Value(d.Section, d.Key); ok {
			lines = append(lines, Line{Section: d.Section, Key: d.Key, Value: v, Source: SourceUser})
			continue
		}
		lines = append(lines, Line{Section: d.Section, Key: d.Key, Value: d.Text(), Source: SourceDefault})
	}

	for _, e := range r.overlay.Entries() {
		if domain.HasDefault(e.Section, e.Key) {
			continue
		}
		lines = append(lines, overlayLine(e))
	}

	return lines
}

// List returns the collected entries only.
func (r *Resolver) List() []Line {
	entries := r.overlay.Entries()
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, overlayLine(e))
	}
	return lines
}

// Lookup resolves a single term: the collected value first, then the
// default, marked as such.
func (r *Resolver) Lookup(t Term) (Line, error) {
	if v, ok := r.overlay.Value(t.Section, t.Key); ok {
		return Line{Section: t.Section, Key: t.Key, Value: v, Source: SourceUser}, nil
	}

	if d, ok := domain.LookupDefault(t.Section, t.Key); ok {
		return Line{
			Section: d.Section,
			Key:     d.Key,
			Value:   d.Text(),
			Source:  SourceDefault,
			Marked:  true,
		}, nil
	}

	return Line{}, domain.ErrKeyNotFound.WithDetails(t.Name())
}

func overlayLine(e domain.OverlayEntry) Line {
	return Line{Section: e.Section, Key: e.Key, Value: e.Value, Source: SourceUser}
}
