package factory

import (
	"log/slog"
	"sync"

	"github.com/fixkit/fixfactory/internal/config"
	"github.com/fixkit/fixfactory/internal/fix"
)

// lazy builds a Factory on first use. Concurrent callers block until the
// single build finishes.
type lazy struct {
	once  sync.Once
	build func() *Factory
	f     *Factory
}

func (l *lazy) get() *Factory {
	l.once.Do(func() {
		l.f = l.build()
	})
	return l.f
}

var process = &lazy{build: func() *Factory { return Build(DefaultOptions()) }}

// DefaultOptions reads the search path and alias table from configuration
// and logs through slog.Default().
func DefaultOptions() Options {
	logger := slog.Default()

	aliases, err := config.TransportAliases()
	switch {
	case err != nil && aliases == nil:
		logger.Warn("No usable transport alias configured; using defaults.",
			"error", err, "defaults", DefaultTransportAliases())
	case err != nil:
		logger.Warn("Ignoring malformed transport alias entries.", "error", err)
	}

	return Options{
		SearchPath:       config.ModulePath(),
		TransportAliases: aliases,
		Logger:           logger,
	}
}

// Default returns the process-wide factory, building it on first call.
func Default() *Factory {
	return process.get()
}

// Create is Default().Create.
func Create(beginString, msgType string) (*fix.Message, error) {
	return Default().Create(beginString, msgType)
}

// CreateGroup is Default().CreateGroup.
func CreateGroup(beginString, msgType string, counterTag int) (*fix.Group, error) {
	return Default().CreateGroup(beginString, msgType, counterTag)
}
