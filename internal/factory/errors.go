package factory

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion is matched by *UnsupportedVersionError.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrAliasTargetMissing is matched by *AliasTargetMissingError.
	ErrAliasTargetMissing = errors.New("transport alias target not registered")
	// ErrUnknownGroup is returned when a registered catalog has no group for
	// the requested message type and counter tag.
	ErrUnknownGroup = errors.New("unknown group")
)

// UnsupportedVersionError reports a group request for a version with no
// catalog, directly or through an alias.
type UnsupportedVersionError struct {
	BeginString string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedVersion, e.BeginString)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// AliasTargetMissingError reports an application message under a transport
// version whose configured target catalog is not registered.
type AliasTargetMissingError struct {
	Transport string
	Target    string
}

func (e *AliasTargetMissingError) Error() string {
	return fmt.Sprintf("%s: %s → %s", ErrAliasTargetMissing, e.Transport, e.Target)
}

func (e *AliasTargetMissingError) Is(target error) bool {
	return target == ErrAliasTargetMissing
}
