package catalog

import (
	"strings"
	"testing"
)

func TestRegisterProvider_DuplicatePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on duplicate registration")
		}
		if !strings.Contains(r.(string), "already registered") {
			t.Errorf("panic = %v", r)
		}
	}()
	RegisterProvider(EntryPoint(versionStub), func(m *Module) (any, error) { return nil, nil })
}

func TestRegisterProvider_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil provider")
		}
	}()
	RegisterProvider("FIX98.MessageFactory", nil)
}

func TestLookupProvider(t *testing.T) {
	if _, ok := LookupProvider(EntryPoint(versionStub)); !ok {
		t.Error("stub provider not found")
	}
	if _, ok := LookupProvider(EntryPoint(versionOrphan)); ok {
		t.Error("orphan version unexpectedly has a provider")
	}

	names := ProviderNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("ProviderNames() not sorted: %v", names)
		}
	}
}
