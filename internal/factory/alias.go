package factory

import (
	"slices"

	"github.com/fixkit/fixfactory/internal/fix"
)

// checkAliases logs alias entries that cannot work as configured or that
// hide a newer service pack of their target. It never changes the table.
func (f *Factory) checkAliases() {
	transports := make([]string, 0, len(f.aliases))
	for t := range f.aliases {
		transports = append(transports, t)
	}
	slices.Sort(transports)

	for _, transport := range transports {
		target := f.aliases[transport]

		if tv, err := fix.ParseVersion(transport); err != nil || !tv.Transport {
			f.logger.Warn("Transport alias source is not a transport version.",
				"transport", transport, "target", target)
		}

		targetVersion, err := fix.ParseVersion(target)
		if err != nil || targetVersion.Transport {
			f.logger.Warn("Transport alias target is not an application version.",
				"transport", transport, "target", target)
			continue
		}

		if _, ok := f.catalogs[target]; !ok {
			f.logger.Warn("Transport alias target not registered; application messages under this version will fail.",
				"transport", transport, "target", target)
		}

		for _, newer := range f.newerServicePacks(targetVersion) {
			f.logger.Warn("Transport alias is ambiguous; a newer service pack of the target is registered.",
				"transport", transport, "target", target, "registered", newer)
		}
	}
}

// newerServicePacks returns registered application versions of the same
// release as target with a higher service pack.
func (f *Factory) newerServicePacks(target *fix.Version) []string {
	var out []string
	for _, v := range f.Versions() {
		pv, err := fix.ParseVersion(v)
		if err != nil {
			continue
		}
		if pv.SameRelease(target) && pv.Semver.GreaterThan(target.Semver) {
			out = append(out, v)
		}
	}
	return out
}
