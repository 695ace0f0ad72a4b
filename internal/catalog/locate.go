package catalog

import (
	"os"
	"path/filepath"
)

// ProbeResult reports where, if anywhere, a candidate's manifest was found.
type ProbeResult struct {
	Candidate Candidate
	Path      string
	Present   bool
}

// Locate searches the directories of searchPath in order and returns the
// first manifest file for c. Inaccessible directories are skipped.
func Locate(c Candidate, searchPath []string) (string, bool) {
	for _, dir := range searchPath {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, c.FileName())
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return path, true
	}
	return "", false
}

// Probe reports the presence of every candidate on searchPath.
func Probe(candidates []Candidate, searchPath []string) []ProbeResult {
	results := make([]ProbeResult, 0, len(candidates))
	for _, c := range candidates {
		path, ok := Locate(c, searchPath)
		results = append(results, ProbeResult{Candidate: c, Path: path, Present: ok})
	}
	return results
}
