package domain

// OverlayEntry is one collected section.key=value from a perfconfig file.
type OverlayEntry struct {
	Section string
	Key     string
	Value   string
}

// Name returns the dotted section.key name.
func (e OverlayEntry) Name() string {
	return e.Section + "." + e.Key
}
