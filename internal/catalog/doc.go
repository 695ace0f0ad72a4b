// Package catalog defines the version catalog capability and everything
// needed to discover catalogs at runtime: the fixed ordered list of candidate
// versions, the entry-point naming convention, compiled-in providers,
// module manifests (YAML, validated against an embedded JSON schema), and
// probing of the module search path.
//
// A catalog module is a manifest named catalog.<BeginString>.yaml placed in
// any directory of the search path. When present, its entry point
// (FIX.4.4 → FIX44.MessageFactory) selects the compiled-in provider that
// turns the manifest into a MessageFactory. Absent modules are a supported
// deployment shape, not an error.
package catalog
