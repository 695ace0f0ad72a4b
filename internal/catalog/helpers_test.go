package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fixkit/fixfactory/internal/fix"
)

// stubFactory is a minimal MessageFactory for load tests.
type stubFactory struct {
	beginString string
}

func (s *stubFactory) Create(beginString, msgType string) *fix.Message {
	m := fix.NewMessage()
	m.Header.SetString(fix.TagMsgType, msgType)
	return m
}

func (s *stubFactory) CreateGroup(beginString, msgType string, counterTag int) *fix.Group {
	return nil
}

const (
	versionStub     = "FIX.9.0"
	versionFailing  = "FIX.9.1"
	versionPanicky  = "FIX.9.2"
	versionWrongTyp = "FIX.9.3"
	versionOrphan   = "FIX.9.4"
)

func init() {
	RegisterProvider(EntryPoint(versionStub), func(m *Module) (any, error) {
		return &stubFactory{beginString: m.BeginString}, nil
	})
	RegisterProvider(EntryPoint(versionFailing), func(m *Module) (any, error) {
		return nil, errors.New("layout rejected")
	})
	RegisterProvider(EntryPoint(versionPanicky), func(m *Module) (any, error) {
		panic("boom")
	})
	RegisterProvider(EntryPoint(versionWrongTyp), func(m *Module) (any, error) {
		return "not a factory", nil
	})
}

// writeModule writes a minimal manifest for beginString into dir.
func writeModule(t *testing.T, dir, beginString, extra string) string {
	t.Helper()
	c := NewCandidate(beginString)
	content := fmt.Sprintf("module: %s\nbegin_string: %s\n%smessages:\n  - msg_type: D\n    name: NewOrderSingle\n",
		c.Module, beginString, extra)
	return writeFile(t, filepath.Join(dir, c.FileName()), content)
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
