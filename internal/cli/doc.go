// Package cli defines the Cobra command tree for the fixfactory CLI. Each
// file registers one top-level command with the root command. Commands
// delegate to the factory and catalog packages and only handle flags and
// output formatting.
package cli
