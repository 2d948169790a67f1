package domain

// DefaultEntry is the compiled-in fallback for one section.key.
type DefaultEntry struct {
	Section string
	Key     string
	Value   Value
}

// Name returns the dotted section.key name.
func (e DefaultEntry) Name() string {
	return e.Section + "." + e.Key
}

// Kind returns the kind of the default value.
func (e DefaultEntry) Kind() Kind {
	return e.Value.Kind()
}

// Text returns the rendered default value.
func (e DefaultEntry) Text() string {
	return Render(e.Value)
}

func boolVar(section, key string, v bool) DefaultEntry {
	return DefaultEntry{Section: section, Key: key, Value: Bool(v)}
}

func intVar(section, key string, v int32) DefaultEntry {
	return DefaultEntry{Section: section, Key: key, Value: Int(v)}
}

func longVar(section, key string, v uint32) DefaultEntry {
	return DefaultEntry{Section: section, Key: key, Value: Long(v)}
}

func u64Var(section, key string, v int64) DefaultEntry {
	return DefaultEntry{Section: section, Key: key, Value: U64(v)}
}

func floatVar(section, key string, v float32) DefaultEntry {
	return DefaultEntry{Section: section, Key: key, Value: Float(v)}
}

func doubleVar(section, key string, v float64) DefaultEntry {
	return DefaultEntry{Section: section, Key: key, Value: Double(v)}
}

func strVar(section, key, v string) DefaultEntry {
	return DefaultEntry{Section: section, Key: key, Value: String(v)}
}

// defaultEntries is the default table. Order is output order for list-all.
var defaultEntries = [...]DefaultEntry{
	strVar("colors", "top", "red, default"),
	strVar("colors", "medium", "green, default"),
	strVar("colors", "normal", "lightgray, default"),
	strVar("colors", "selected", "white, lightgray"),
	strVar("colors", "code", "blue, default"),
	strVar("colors", "addr", "magenta, default"),
	strVar("colors", "root", "white, blue"),
	boolVar("tui", "report", true),
	boolVar("tui", "annotate", true),
	boolVar("tui", "top", true),
	strVar("buildid", "dir", "~/.debug"),
	boolVar("annotate", "hide_src_code", false),
	boolVar("annotate", "use_offset", true),
	boolVar("annotate", "jump_arrows", true),
	boolVar("annotate", "show_nr_jumps", false),
	boolVar("gtk", "annotate", false),
	boolVar("gtk", "report", false),
	boolVar("gtk", "top", false),
	boolVar("pager", "cmd", true),
	boolVar("pager", "report", true),
	boolVar("pager", "annotate", true),
	boolVar("pager", "top", true),
	boolVar("pager", "diff", true),
	strVar("help", "format", "man"),
	intVar("help", "autocorrect", 0),
	strVar("hist", "percentage", "absolute"),
	boolVar("ui", "show-headers", true),
	strVar("call-graph", "record-mode", "fp"),
	longVar("call-graph", "dump-size", 8192),
	strVar("call-graph", "print-type", "graph"),
	strVar("call-graph", "order", "callee"),
	strVar("call-graph", "sort-key", "function"),
	doubleVar("call-graph", "threshold", 0.5),
	longVar("call-graph", "print-limit", 0),
	boolVar("report", "children", true),
	floatVar("report", "percent-limit", 0),
	u64Var("report", "queue-size", 0),
	boolVar("top", "children", true),
	strVar("man", "viewer", "man"),
	strVar("kmem", "default", "slab"),
}

// Defaults returns the default table in declaration order.
// The returned slice is a copy; the table itself never changes.
func Defaults() []DefaultEntry {
	out := make([]DefaultEntry, len(defaultEntries))
	copy(out, defaultEntries[:])
	return out
}

// LookupDefault finds the default entry for section.key.
func LookupDefault(section, key string) (DefaultEntry, bool) {
	for _, e := range defaultEntries {
		if e.Section == section && e.Key == key {
			return e, true
		}
	}
	return DefaultEntry{}, false
}

// HasDefault reports whether section.key has a compiled-in default.
func HasDefault(section, key string) bool {
	_, ok := LookupDefault(section, key)
	return ok
}
