package fix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidBeginString is returned for identifiers that are not of the
// form FIX.<major>.<minor>[SP<n>] or FIXT.<major>.<minor>.
var ErrInvalidBeginString = errors.New("invalid begin string")

const (
	appPrefix       = "FIX."
	transportPrefix = "FIXT."
	servicePack     = "SP"
)

// Version is a parsed BeginString. Service packs become the patch number, so
// FIX.5.0SP2 orders as 5.0.2.
type Version struct {
	BeginString string
	Transport   bool
	Semver      *semver.Version
}

// ParseVersion parses a BeginString into an ordered version.
func ParseVersion(beginString string) (*Version, error) {
	v := &Version{BeginString: beginString}

	var rest string
	switch {
	case strings.HasPrefix(beginString, transportPrefix):
		v.Transport = true
		rest = strings.TrimPrefix(beginString, transportPrefix)
	case strings.HasPrefix(beginString, appPrefix):
		rest = strings.TrimPrefix(beginString, appPrefix)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBeginString, beginString)
	}

	patch := "0"
	if i := strings.Index(rest, servicePack); i >= 0 {
		if v.Transport {
			return nil, fmt.Errorf("%w: %q: service packs only apply to application versions", ErrInvalidBeginString, beginString)
		}
		patch = rest[i+len(servicePack):]
		rest = rest[:i]
	}
	if strings.Count(rest, ".") != 1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBeginString, beginString)
	}

	sv, err := semver.StrictNewVersion(rest + "." + patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBeginString, beginString, err)
	}
	v.Semver = sv
	return v, nil
}

// SameRelease reports whether both versions share kind, major and minor,
// differing at most in service pack.
func (v *Version) SameRelease(other *Version) bool {
	return v.Transport == other.Transport &&
		v.Semver.Major() == other.Semver.Major() &&
		v.Semver.Minor() == other.Semver.Minor()
}

// CompareVersions orders two BeginStrings. Returns -1 if a < b, 0 if equal,
// 1 if a > b. Transport versions sort before application versions.
func CompareVersions(a, b string) (int, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	if va.Transport != vb.Transport {
		if va.Transport {
			return -1, nil
		}
		return 1, nil
	}
	return va.Semver.Compare(vb.Semver), nil
}
