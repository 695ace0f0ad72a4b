package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Provider turns a parsed module manifest into a catalog instance. The
// returned value is registered only if it implements MessageFactory.
type Provider func(m *Module) (any, error)

var (
	providersMu sync.RWMutex
	providers   = make(map[string]Provider)
)

// RegisterProvider makes a provider available under entryPoint. It is meant
// to be called from package init functions and panics on a nil provider or
// a duplicate name.
func RegisterProvider(entryPoint string, p Provider) {
	providersMu.Lock()
	defer providersMu.Unlock()

	if p == nil {
		panic("catalog: RegisterProvider provider is nil")
	}
	if _, exists := providers[entryPoint]; exists {
		panic(fmt.Sprintf("catalog: provider for entry point '%s' already registered", entryPoint))
	}
	providers[entryPoint] = p
}

// LookupProvider returns the provider registered under entryPoint.
func LookupProvider(entryPoint string) (Provider, bool) {
	providersMu.RLock()
	defer providersMu.RUnlock()
	p, ok := providers[entryPoint]
	return p, ok
}

// ProviderNames returns the registered entry points, sorted.
func ProviderNames() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
