package catalog

import (
	"strings"

	"github.com/fixkit/fixfactory/internal/fix"
)

const (
	modulePrefix     = "catalog."
	moduleExt        = ".yaml"
	entryPointSuffix = ".MessageFactory"
)

// MessageFactory builds version-specific messages and groups for one
// protocol version. Implementations must be safe for concurrent use.
type MessageFactory interface {
	// Create returns the message registered for msgType. Unknown message
	// types are the implementation's concern.
	Create(beginString, msgType string) *fix.Message

	// CreateGroup returns an empty instance of the group opened by
	// counterTag within msgType, or nil if there is none.
	CreateGroup(beginString, msgType string, counterTag int) *fix.Group
}

// Describer is implemented by factories that can name their message types.
type Describer interface {
	MessageName(msgType string) (string, bool)
}

// Candidate is one optional version module the registry will look for.
type Candidate struct {
	BeginString string
	Module      string
}

// NewCandidate returns the candidate for beginString using the module
// naming convention.
func NewCandidate(beginString string) Candidate {
	return Candidate{BeginString: beginString, Module: modulePrefix + beginString}
}

// FileName is the manifest file name looked up on the search path.
func (c Candidate) FileName() string {
	return c.Module + moduleExt
}

// EntryPoint is the provider name derived from the candidate's version.
func (c Candidate) EntryPoint() string {
	return EntryPoint(c.BeginString)
}

// knownVersions lists every supported protocol revision, in probe order.
var knownVersions = []string{
	fix.BeginStringFIXT11,
	fix.BeginStringFIX40,
	fix.BeginStringFIX41,
	fix.BeginStringFIX42,
	fix.BeginStringFIX43,
	fix.BeginStringFIX44,
	fix.BeginStringFIX50,
	fix.BeginStringFIX50SP1,
	fix.BeginStringFIX50SP2,
}

// Candidates returns the fixed, ordered list of known version modules.
func Candidates() []Candidate {
	out := make([]Candidate, 0, len(knownVersions))
	for _, v := range knownVersions {
		out = append(out, NewCandidate(v))
	}
	return out
}

// EntryPoint derives a provider name from a BeginString, e.g.
// "FIX.4.4" → "FIX44.MessageFactory", "FIX.5.0SP2" → "FIX50SP2.MessageFactory".
func EntryPoint(beginString string) string {
	return strings.ReplaceAll(beginString, ".", "") + entryPointSuffix
}
