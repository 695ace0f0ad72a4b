package catalog

import (
	"errors"
	"fmt"
)

// ErrModuleSkipped matches every SkipError.
var ErrModuleSkipped = errors.New("module load skipped")

// SkipReason classifies why a candidate module was not registered.
type SkipReason string

const (
	ReasonAbsent             SkipReason = "absent"
	ReasonUnreadable         SkipReason = "unreadable"
	ReasonInvalid            SkipReason = "invalid"
	ReasonVersionMismatch    SkipReason = "version-mismatch"
	ReasonEntryPointMismatch SkipReason = "entry-point-mismatch"
	ReasonNoProvider         SkipReason = "no-provider"
	ReasonProviderFailed     SkipReason = "provider-failed"
	ReasonNotACatalog        SkipReason = "not-a-catalog"
	ReasonDuplicate          SkipReason = "duplicate"
)

// SkipError reports a candidate module that was absent or could not be
// turned into a catalog. It never reaches callers of the factory; the
// registry records it as a diagnostic event.
type SkipError struct {
	Module      string
	BeginString string
	Path        string
	Reason      SkipReason
	Err         error
}

func (e *SkipError) Error() string {
	msg := fmt.Sprintf("catalog %s: %s", e.Module, e.Reason)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SkipError) Unwrap() error { return e.Err }

// Is matches ErrModuleSkipped.
func (e *SkipError) Is(target error) bool {
	return target == ErrModuleSkipped
}

func skip(c Candidate, path string, reason SkipReason, err error) *SkipError {
	return &SkipError{
		Module:      c.Module,
		BeginString: c.BeginString,
		Path:        path,
		Reason:      reason,
		Err:         err,
	}
}
