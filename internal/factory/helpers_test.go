package factory

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fixkit/fixfactory/internal/catalog"
	_ "github.com/fixkit/fixfactory/internal/dictionary"
	"github.com/fixkit/fixfactory/internal/fix"
)

// Versions reserved for test-only providers.
const (
	versionRecorded  = "FIX.7.0"
	versionTransport = "FIXT.7.1"
	versionPoisoned  = "FIX.7.2"
	versionBroken    = "FIX.7.3"
)

type createCall struct {
	beginString string
	msgType     string
	counterTag  int
}

// recordingFactory returns fixed values and records every call.
type recordingFactory struct {
	mu      sync.Mutex
	calls   []createCall
	message *fix.Message
	group   *fix.Group
}

func newRecordingFactory() *recordingFactory {
	msg := fix.NewMessage()
	msg.Header.SetString(fix.TagMsgType, "recorded")
	msg.Body.SetString(58, "from recording factory")
	return &recordingFactory{
		message: msg,
		group:   fix.NewGroup(9000, 9001, []int{9001}),
	}
}

func (r *recordingFactory) Create(beginString, msgType string) *fix.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, createCall{beginString: beginString, msgType: msgType})
	return r.message
}

func (r *recordingFactory) CreateGroup(beginString, msgType string, counterTag int) *fix.Group {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, createCall{beginString: beginString, msgType: msgType, counterTag: counterTag})
	if counterTag != r.group.CounterTag {
		return nil
	}
	return r.group
}

func (r *recordingFactory) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *recordingFactory) Calls() []createCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]createCall(nil), r.calls...)
}

var recorders = map[string]*recordingFactory{
	versionRecorded:  newRecordingFactory(),
	versionTransport: newRecordingFactory(),
}

func init() {
	for version, rec := range recorders {
		rec := rec
		catalog.RegisterProvider(catalog.EntryPoint(version), func(m *catalog.Module) (any, error) {
			return rec, nil
		})
	}
	catalog.RegisterProvider(catalog.EntryPoint(versionPoisoned), func(m *catalog.Module) (any, error) {
		panic("poisoned catalog")
	})
	catalog.RegisterProvider(catalog.EntryPoint(versionBroken), func(m *catalog.Module) (any, error) {
		return struct{}{}, nil
	})
}

func candidates(versions ...string) []catalog.Candidate {
	out := make([]catalog.Candidate, 0, len(versions))
	for _, v := range versions {
		out = append(out, catalog.NewCandidate(v))
	}
	return out
}

// writeStubModule writes a minimal valid manifest for version into dir.
func writeStubModule(t *testing.T, dir, version string) string {
	t.Helper()
	c := catalog.NewCandidate(version)
	body := fmt.Sprintf("module: %s\nbegin_string: %s\nmessages: []\n", c.Module, version)
	return writeFile(t, filepath.Join(dir, c.FileName()), body)
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

// captureLogger returns a debug-level JSON logger and its output buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

const fix44Manifest = `module: catalog.FIX.4.4
begin_string: FIX.4.4
messages:
  - msg_type: D
    name: NewOrderSingle
    groups:
      - counter_tag: 453
        name: NoPartyIDs
        delim: 448
        fields: [448, 447, 452]
  - msg_type: A
    name: Logon
    groups:
      - counter_tag: 384
        name: NoMsgTypes
        delim: 372
        fields: [372, 385]
`

const fix50Manifest = `module: catalog.FIX.5.0
begin_string: FIX.5.0
messages:
  - msg_type: D
    name: NewOrderSingle
    groups:
      - counter_tag: 453
        name: NoPartyIDs
        delim: 448
        fields: [448, 447, 452, 2376]
`

const fixt11Manifest = `module: catalog.FIXT.1.1
begin_string: FIXT.1.1
messages:
  - msg_type: A
    name: Logon
    groups:
      - counter_tag: 384
        name: NoMsgTypes
        delim: 372
        fields: [372, 385, 1130, 1131]
`

const fix50sp2Manifest = `module: catalog.FIX.5.0SP2
begin_string: FIX.5.0SP2
messages: []
`
