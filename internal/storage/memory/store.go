package memory

import (
	"strings"

	"github.com/yndnr/perfconf/internal/core/domain"
)

// Store holds the overlay collected from perfconfig files.
type Store struct {
	// Sections in collection order.
	sections []*Section

	// Name index: section name -> section
	index map[string]*Section
}

// New creates an empty overlay store.
func New() *Store {
	return &Store{
		index: make(map[string]*Section),
	}
}

// Collect records value under section.key. A second value for the same
// key replaces the first.
//
// A nil value means the key was present without a value. Entries with an
// empty section, an empty key or a nil value are rejected with
// domain.ErrMalformedEntry and leave the store unchanged.
func (s *Store) Collect(section, key string, value *string) error {
	if section == "" || key == "" || value == nil {
		return domain.ErrMalformedEntry.WithDetails(section + "." + key)
	}

	sec, ok := s.index[section]
	if !ok {
		sec = newSection(section)
		s.index[section] = sec
		s.sections = append(s.sections, sec)
	}

	sec.set(key, *value)
	return nil
}

// CollectVar splits a dotted name on its first '.' and collects it.
func (s *Store) CollectVar(name string, value *string) error {
	section, key, ok := strings.Cut(name, ".")
	if !ok {
		return domain.ErrMalformedEntry.WithDetails(name)
	}
	return s.Collect(section, key, value)
}

// Find returns the element collected for section.key.
func (s *Store) Find(section, key string) (Element, bool) {
	sec, ok := s.index[section]
	if !ok {
		return Element{}, false
	}
	return sec.find(key)
}

// Value returns the text collected for section.key.
func (s *Store) Value(section, key string) (string, bool) {
	e, ok := s.Find(section, key)
	return e.Value, ok
}

// Sections returns all sections in collection order.
func (s *Store) Sections() []*Section {
	out := make([]*Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Entries returns every element, sections first-collected first and
// elements in collection order within each section.
func (s *Store) Entries() []domain.OverlayEntry {
	out := make([]domain.OverlayEntry, 0, s.Len())
	for _, sec := range s.Sections() {
		for _, e := range sec.Elements() {
			out = append(out, domain.OverlayEntry{Section: sec.Name(), Key: e.Key, Value: e.Value})
		}
	}
	return out
}

// Len returns the total number of elements.
func (s *Store) Len() int {
	n := 0
	for _, sec := range s.sections {
		n += sec.Len()
	}
	return n
}
