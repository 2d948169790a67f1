package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// result is the outcome of one in-process run.
type result struct {
	stdout string
	stderr string
	code   int
}

// testEnv isolates a run from the host: a fresh HOME and settings
// directory, and no system file unless a test points files.system at one.
type testEnv struct {
	t    *testing.T
	home string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("PERFCONF_SETTINGS", "")
	t.Setenv("PERFCONF_FILES_SYSTEM", filepath.Join(home, "no-system-file"))
	t.Setenv("PERF_CONFIG_NOSYSTEM", "")
	return &testEnv{t: t, home: home}
}

// writeFile writes content under the test home and returns its path.
func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.home, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// run executes the app with args and captures both streams.
func (e *testEnv) run(args ...string) result {
	e.t.Helper()
	var stdout, stderr bytes.Buffer

	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	code := Run(context.Background(), app, append([]string{"perfconf"}, args...))
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// expectCode fails the test when the run exited with another code.
func (r result) expectCode(t *testing.T, want int) {
	t.Helper()
	if r.code != want {
		t.Fatalf("exit code = %d, want %d\nstdout:\n%s\nstderr:\n%s", r.code, want, r.stdout, r.stderr)
	}
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func expectLines(t *testing.T, got string, want ...string) {
	t.Helper()
	if g := lines(got); !slices.Equal(g, want) {
		t.Errorf("output lines = %q, want %q", g, want)
	}
}

func expectContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("output %q does not contain %q", s, substr)
	}
}

func expectNotContains(t *testing.T, s, substr string) {
	t.Helper()
	if strings.Contains(s, substr) {
		t.Errorf("output %q should not contain %q", s, substr)
	}
}
