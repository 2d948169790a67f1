package memory

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/yndnr/perfconf/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func mustCollectVar(t *testing.T, store *Store, name, value string) {
	t.Helper()
	if err := store.CollectVar(name, &value); err != nil {
		t.Fatalf("CollectVar(%q) error = %v", name, err)
	}
}

func TestStore_CollectAndFind(t *testing.T) {
	store := New()

	mustCollectVar(t, store, "colors.top", "blue")
	mustCollectVar(t, store, "tui.report", "false")

	e, ok := store.Find("colors", "top")
	if !ok {
		t.Fatal("Find(colors, top) = false, want true")
	}
	if e != (Element{Key: "top", Value: "blue"}) {
		t.Errorf("Find(colors, top) = %+v", e)
	}

	v, ok := store.Value("tui", "report")
	if !ok || v != "false" {
		t.Errorf("Value(tui, report) = %q, %v; want false, true", v, ok)
	}

	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
}

func TestStore_FindMissing(t *testing.T) {
	store := New()
	mustCollectVar(t, store, "colors.top", "blue")

	tests := []struct {
		name    string
		section string
		key     string
	}{
		{"missing key in known section", "colors", "medium"},
		{"missing section", "tui", "top"},
		{"section names are case-sensitive", "Colors", "top"},
		{"key names are case-sensitive", "colors", "TOP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := store.Find(tt.section, tt.key); ok {
				t.Errorf("Find(%s, %s) = true, want false", tt.section, tt.key)
			}
		})
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	store := New()

	mustCollectVar(t, store, "colors.top", "blue")
	mustCollectVar(t, store, "colors.medium", "green")
	mustCollectVar(t, store, "colors.top", "yellow")

	if v, _ := store.Value("colors", "top"); v != "yellow" {
		t.Errorf("Value(colors, top) = %q, want yellow", v)
	}

	sections := store.Sections()
	if len(sections) != 1 {
		t.Fatalf("len(Sections()) = %d, want 1", len(sections))
	}
	if sections[0].Name() != "colors" {
		t.Errorf("Sections()[0].Name() = %q, want colors", sections[0].Name())
	}

	// An update keeps the original position.
	want := []Element{
		{Key: "top", Value: "yellow"},
		{Key: "medium", Value: "green"},
	}
	if got := sections[0].Elements(); !slices.Equal(got, want) {
		t.Errorf("Elements() = %+v, want %+v", got, want)
	}
}

func TestStore_CollectMalformed(t *testing.T) {
	tests := []struct {
		name    string
		section string
		key     string
		value   *string
	}{
		{"empty key", "colors", "", strPtr("blue")},
		{"empty section", "", "top", strPtr("blue")},
		{"absent value", "colors", "top", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New()
			err := store.Collect(tt.section, tt.key, tt.value)
			if !errors.Is(err, domain.ErrMalformedEntry) {
				t.Errorf("Collect() error = %v, want ErrMalformedEntry", err)
			}
			if store.Len() != 0 {
				t.Errorf("Len = %d, want 0", store.Len())
			}
			if len(store.Sections()) != 0 {
				t.Error("a rejected entry left an empty section behind")
			}
		})
	}
}

func TestStore_CollectEmptyValue(t *testing.T) {
	store := New()
	if err := store.Collect("buildid", "dir", strPtr("")); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	v, ok := store.Value("buildid", "dir")
	if !ok || v != "" {
		t.Errorf("Value(buildid, dir) = %q, %v; want empty, true", v, ok)
	}
}

func TestStore_CollectVar(t *testing.T) {
	store := New()

	mustCollectVar(t, store, "call-graph.record-mode", "dwarf")
	mustCollectVar(t, store, "report.sort.order", "x")

	if v, _ := store.Value("call-graph", "record-mode"); v != "dwarf" {
		t.Errorf("Value(call-graph, record-mode) = %q, want dwarf", v)
	}

	// The split happens on the first dot only.
	if v, ok := store.Value("report", "sort.order"); !ok || v != "x" {
		t.Errorf("Value(report, sort.order) = %q, %v; want x, true", v, ok)
	}

	malformed := []struct {
		name  string
		value *string
	}{
		{"nodothere", strPtr("v")},
		{"colors.", strPtr("v")},
		{"colors.top", nil},
	}
	for _, m := range malformed {
		if err := store.CollectVar(m.name, m.value); !errors.Is(err, domain.ErrMalformedEntry) {
			t.Errorf("CollectVar(%q) error = %v, want ErrMalformedEntry", m.name, err)
		}
	}
}

func TestStore_EntriesOrder(t *testing.T) {
	store := New()

	mustCollectVar(t, store, "tui.report", "false")
	mustCollectVar(t, store, "colors.top", "blue")
	mustCollectVar(t, store, "tui.top", "false")
	mustCollectVar(t, store, "colors.code", "red")

	want := []domain.OverlayEntry{
		{Section: "tui", Key: "report", Value: "false"},
		{Section: "tui", Key: "top", Value: "false"},
		{Section: "colors", Key: "top", Value: "blue"},
		{Section: "colors", Key: "code", Value: "red"},
	}
	if got := store.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %+v, want %+v", got, want)
	}

	var names []string
	for _, sec := range store.Sections() {
		names = append(names, sec.Name())
	}
	if !slices.Equal(names, []string{"tui", "colors"}) {
		t.Errorf("section order = %v, want [tui colors]", names)
	}
}

func TestStore_SectionsReturnsCopy(t *testing.T) {
	store := New()
	mustCollectVar(t, store, "a.b", "c")

	secs := store.Sections()
	secs[0] = nil

	if store.Sections()[0] == nil {
		t.Error("mutating the returned slice changed the store")
	}
}

// Property-based tests using rapid

var (
	sectionGen = rapid.SampledFrom([]string{"colors", "tui", "gtk", "report", "user", "Colors"})
	keyGen     = rapid.StringMatching(`[a-z][a-z_-]{0,8}`)
	valueGen   = rapid.String()
)

// TestStore_PropertyBased_FindReturnsLastCollected checks that every key
// resolves to its last collected value and appears exactly once.
func TestStore_PropertyBased_FindReturnsLastCollected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := New()
		want := make(map[[2]string]string)

		n := rapid.IntRange(0, 50).Draw(t, "n")
		for i := 0; i < n; i++ {
			section := sectionGen.Draw(t, "section")
			key := keyGen.Draw(t, "key")
			value := valueGen.Draw(t, "value")

			if err := store.Collect(section, key, &value); err != nil {
				t.Fatalf("Collect(%s, %s) error = %v", section, key, err)
			}
			want[[2]string{section, key}] = value
		}

		if store.Len() != len(want) {
			t.Fatalf("Len = %d, want %d", store.Len(), len(want))
		}

		for sk, value := range want {
			e, ok := store.Find(sk[0], sk[1])
			if !ok {
				t.Fatalf("Find(%s, %s) = false", sk[0], sk[1])
			}
			if e.Value != value {
				t.Fatalf("Find(%s, %s) = %q, want %q", sk[0], sk[1], e.Value, value)
			}
		}

		seen := make(map[string]bool)
		for _, e := range store.Entries() {
			if seen[e.Name()] {
				t.Fatalf("duplicate entry %s", e.Name())
			}
			seen[e.Name()] = true
		}

		for _, sec := range store.Sections() {
			if sec.Len() == 0 {
				t.Fatalf("section %s has no elements", sec.Name())
			}
		}
	})
}
