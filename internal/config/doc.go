// Package config manages settings stored at ~/.fixfactory/config.yaml and
// FIXFACTORY_* environment variables: the module search path, the
// transport alias table, and logging.
package config
