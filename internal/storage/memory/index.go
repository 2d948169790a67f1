package memory

// Element is one collected key and its text value.
type Element struct {
	Key   string
	Value string
}

// Section is an ordered set of elements sharing a section name.
type Section struct {
	name     string
	elements []Element
	index    map[string]int
}

func newSection(name string) *Section {
	return &Section{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of elements in the section.
func (s *Section) Len() int {
	return len(s.elements)
}

// Elements returns the elements in collection order.
func (s *Section) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// find returns the element for key.
func (s *Section) find(key string) (Element, bool) {
	i, ok := s.index[key]
	if !ok {
		return Element{}, false
	}
	return s.elements[i], true
}

// set appends key or replaces its value in place.
func (s *Section) set(key, value string) {
	if i, ok := s.index[key]; ok {
		s.elements[i].Value = value
		return
	}
	s.index[key] = len(s.elements)
	s.elements = append(s.elements, Element{Key: key, Value: value})
}
