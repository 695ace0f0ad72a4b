// Package factory builds the BeginString → catalog registry and dispatches
// message and group creation to the right version catalog.
//
// Lifecycle: Default builds the process-wide factory on first use, exactly
// once, from the configured module search path. Concurrent first callers
// wait for that single pass. The registry is never mutated afterwards, so
// Create, CreateGroup and Dump run without locks. There is no teardown.
//
// Transport versions (FIXT.1.1 by default) do not carry an application
// message catalog of their own. Application messages under a transport
// version are redirected to a configured application version. The mapping
// is an approximation: FIXT.1.1 can carry FIX.5.0, FIX.5.0SP1 or FIX.5.0SP2,
// and nothing here can tell them apart, so the target is configuration and
// Build warns when a newer service pack of the target is registered.
package factory
