package catalog

import (
	"fmt"
	"strings"
)

// Loaded is a candidate that produced a usable catalog.
type Loaded struct {
	Candidate Candidate
	Factory   MessageFactory
	Module    *Module
	Origin    string
}

// Load resolves one candidate against searchPath. Every failure, including
// a missing manifest, is returned as a *SkipError; a panicking provider is
// recovered and reported the same way.
func Load(c Candidate, searchPath []string) (*Loaded, error) {
	path, ok := Locate(c, searchPath)
	if !ok {
		return nil, skip(c, "", ReasonAbsent, nil)
	}

	data, err := readFile(path)
	if err != nil {
		return nil, skip(c, path, ReasonUnreadable, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, skip(c, path, ReasonInvalid, err)
	}
	if !result.Valid {
		return nil, skip(c, path, ReasonInvalid, issuesError(result.Issues))
	}

	m, err := Parse(data)
	if err != nil {
		return nil, skip(c, path, ReasonInvalid, err)
	}
	m.Path = path

	if m.BeginString != c.BeginString {
		return nil, skip(c, path, ReasonVersionMismatch,
			fmt.Errorf("manifest declares %q, want %q", m.BeginString, c.BeginString))
	}
	if m.Module != c.Module {
		return nil, skip(c, path, ReasonVersionMismatch,
			fmt.Errorf("manifest declares module %q, want %q", m.Module, c.Module))
	}

	entryPoint := c.EntryPoint()
	if m.EntryPoint != "" && m.EntryPoint != entryPoint {
		return nil, skip(c, path, ReasonEntryPointMismatch,
			fmt.Errorf("manifest declares %q, want %q", m.EntryPoint, entryPoint))
	}

	provider, ok := LookupProvider(entryPoint)
	if !ok {
		return nil, skip(c, path, ReasonNoProvider, fmt.Errorf("no provider registered for %s", entryPoint))
	}

	instance, err := invoke(provider, m)
	if err != nil {
		return nil, skip(c, path, ReasonProviderFailed, err)
	}

	factory, ok := instance.(MessageFactory)
	if !ok {
		return nil, skip(c, path, ReasonNotACatalog,
			fmt.Errorf("%s returned %T, which does not implement MessageFactory", entryPoint, instance))
	}

	return &Loaded{Candidate: c, Factory: factory, Module: m, Origin: path}, nil
}

func invoke(p Provider, m *Module) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	return p(m)
}

func issuesError(issues []ValidationIssue) error {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(parts, "; "))
}
