//go:build integration

package integration_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fixkit/fixfactory/internal/factory"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // HOME, contains .fixfactory/
	ModuleDir string // an extra module search directory
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so nothing reads the developer's own config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		ModuleDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// shippedModules returns the absolute path of the repository's modules/ dir.
func shippedModules(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "modules"))
	if err != nil {
		t.Fatalf("resolving modules dir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("modules dir missing: %v", err)
	}
	return dir
}

// buildFactory builds a registry over searchPath and returns its log output.
func buildFactory(t *testing.T, searchPath ...string) (*factory.Factory, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	f := factory.Build(factory.Options{
		SearchPath: searchPath,
		Logger:     slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	return f, &logs
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// dumpLines returns the registry listing split into lines.
func dumpLines(f *factory.Factory) []string {
	var b strings.Builder
	f.Dump(&b)
	out := strings.TrimSpace(b.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
