package factory

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/fixkit/fixfactory/internal/catalog"
	"github.com/fixkit/fixfactory/internal/fix"
)

// DefaultTransportAliases maps FIXT.1.1 to FIX.5.0.
func DefaultTransportAliases() map[string]string {
	return map[string]string{fix.BeginStringFIXT11: fix.BeginStringFIX50}
}

// Options controls registry construction.
type Options struct {
	// SearchPath lists directories probed, in order, for module manifests.
	SearchPath []string
	// Candidates overrides catalog.Candidates().
	Candidates []catalog.Candidate
	// TransportAliases maps transport BeginStrings to the application
	// version their application messages are built with. Nil means
	// DefaultTransportAliases; an empty non-nil map disables aliasing.
	TransportAliases map[string]string
	// Logger receives skip and alias diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

type registered struct {
	factory catalog.MessageFactory
	origin  string
}

// Factory dispatches creation requests to version catalogs. It is read-only
// after Build.
type Factory struct {
	catalogs map[string]registered
	aliases  map[string]string
	logger   *slog.Logger
}

// Build probes every candidate on the search path and registers the ones
// that load. It never fails: each skipped candidate is logged and the rest
// are still attempted.
func Build(opts Options) *Factory {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	candidates := opts.Candidates
	if candidates == nil {
		candidates = catalog.Candidates()
	}
	aliases := opts.TransportAliases
	if aliases == nil {
		aliases = DefaultTransportAliases()
	}

	f := &Factory{
		catalogs: make(map[string]registered),
		aliases:  maps.Clone(aliases),
		logger:   logger,
	}

	logger.Debug("Building message factory registry.",
		"candidates", len(candidates), "search_path", opts.SearchPath)

	for _, c := range candidates {
		if _, exists := f.catalogs[c.BeginString]; exists {
			f.logSkip(&catalog.SkipError{
				Module:      c.Module,
				BeginString: c.BeginString,
				Reason:      catalog.ReasonDuplicate,
			})
			continue
		}

		loaded, err := catalog.Load(c, opts.SearchPath)
		if err != nil {
			f.logSkip(err)
			continue
		}

		f.catalogs[c.BeginString] = registered{factory: loaded.Factory, origin: loaded.Origin}
		logger.Debug("Registered version catalog.",
			"begin_string", c.BeginString, "module", c.Module, "origin", loaded.Origin)
	}

	f.checkAliases()
	logger.Info("Message factory ready.", "versions", f.Versions())
	return f
}

func (f *Factory) logSkip(err error) {
	var skipErr *catalog.SkipError
	if !errors.As(err, &skipErr) {
		f.logger.Warn("Skipped version catalog.", "error", err)
		return
	}

	attrs := []any{
		"module", skipErr.Module,
		"begin_string", skipErr.BeginString,
		"reason", string(skipErr.Reason),
	}
	if skipErr.Path != "" {
		attrs = append(attrs, "path", skipErr.Path)
	}
	if skipErr.Err != nil {
		attrs = append(attrs, "error", skipErr.Err)
	}

	if skipErr.Reason == catalog.ReasonAbsent {
		f.logger.Debug("Version catalog not deployed.", attrs...)
		return
	}
	f.logger.Warn("Skipped version catalog.", attrs...)
}

// Versions returns the registered BeginStrings in protocol order.
func (f *Factory) Versions() []string {
	versions := slices.Collect(maps.Keys(f.catalogs))
	sortVersions(versions)
	return versions
}

// Lookup returns the catalog registered directly under beginString.
func (f *Factory) Lookup(beginString string) (catalog.MessageFactory, bool) {
	r, ok := f.catalogs[beginString]
	return r.factory, ok
}

// TransportAliases returns a copy of the alias table in effect.
func (f *Factory) TransportAliases() map[string]string {
	return maps.Clone(f.aliases)
}

func sortVersions(versions []string) {
	slices.SortFunc(versions, func(a, b string) int {
		if cmp, err := fix.CompareVersions(a, b); err == nil && cmp != 0 {
			return cmp
		}
		return strings.Compare(a, b)
	})
}
