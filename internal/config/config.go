package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fixkit/fixfactory/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	modulesDir = "modules"
)

// Configuration keys.
const (
	KeyModulePath     = "module_path"
	KeyTransportAlias = "transport_alias"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

// ErrBadAlias is returned for transport_alias entries not of the form
// TRANSPORT=APPLICATION.
var ErrBadAlias = errors.New("malformed transport alias")

// Dir returns the path to the config directory (~/.fixfactory/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.fixfactory/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from path (FilePath() when empty) and the
// environment.
func Load(path string) {
	if path == "" {
		path = FilePath()
	}
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault(KeyModulePath, DefaultModulePath())
	viper.SetDefault(KeyTransportAlias, DefaultTransportAliases())
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")
}

// DefaultModulePath returns ./modules, ~/.fixfactory/modules and the
// modules directory next to the running binary.
func DefaultModulePath() []string {
	path := []string{modulesDir, filepath.Join(Dir(), modulesDir)}
	if exe, err := os.Executable(); err == nil {
		path = append(path, filepath.Join(filepath.Dir(exe), modulesDir))
	}
	return path
}

// DefaultTransportAliases returns the alias entries used when none are
// configured.
func DefaultTransportAliases() []string {
	return []string{"FIXT.1.1=FIX.5.0"}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ModulePath returns the module search path. Entries may themselves be
// OS path lists, which is how the environment variable form arrives.
func ModulePath() []string {
	if !viper.IsSet(KeyModulePath) {
		return DefaultModulePath()
	}
	var out []string
	for _, entry := range viper.GetStringSlice(KeyModulePath) {
		for _, dir := range filepath.SplitList(entry) {
			if dir = strings.TrimSpace(dir); dir != "" {
				out = append(out, dir)
			}
		}
	}
	return out
}

// TransportAliases returns the transport → application version table.
// transport_alias may be a list of TRANSPORT=APPLICATION entries, a single
// comma separated string (the environment form) or a map keyed by transport
// version. Valid entries are returned even when others are malformed; the
// error lists the malformed ones. A nil table means nothing usable was
// configured and the caller should fall back to its defaults.
func TransportAliases() (map[string]string, error) {
	entries, err := aliasEntries(viper.Get(KeyTransportAlias))
	if err != nil {
		return nil, err
	}
	return ParseAliases(entries)
}

// aliasEntries normalizes the accepted shapes of transport_alias into
// TRANSPORT=APPLICATION entries.
func aliasEntries(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return DefaultTransportAliases(), nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		entries := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list entry %v is not a string", ErrBadAlias, item)
			}
			entries = append(entries, s)
		}
		return entries, nil
	case map[string]string:
		entries := make([]string, 0, len(v))
		for transport, target := range v {
			entries = append(entries, strings.ToUpper(transport)+"="+target)
		}
		sort.Strings(entries)
		return entries, nil
	case map[string]any:
		var entries []string
		if err := flattenAliasMap("", v, &entries); err != nil {
			return nil, err
		}
		sort.Strings(entries)
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: unsupported %s value of type %T", ErrBadAlias, KeyTransportAlias, raw)
	}
}

// flattenAliasMap turns the map form into entries. Viper lowercases keys and
// nests them at each '.', so FIXT.1.1 may arrive as fixt.1.1 or as
// fixt → 1 → 1; both are rejoined and upper-cased.
func flattenAliasMap(prefix string, m map[string]any, entries *[]string) error {
	for key, value := range m {
		transport := key
		if prefix != "" {
			transport = prefix + "." + key
		}
		switch target := value.(type) {
		case string:
			*entries = append(*entries, strings.ToUpper(transport)+"="+target)
		case map[string]any:
			if err := flattenAliasMap(transport, target, entries); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s: target %v is not a string", ErrBadAlias, strings.ToUpper(transport), value)
		}
	}
	return nil
}

// ParseAliases parses TRANSPORT=APPLICATION entries. Entries may be comma
// separated. An empty list yields an empty table, which disables aliasing;
// a list with no valid entry yields nil alongside the error.
func ParseAliases(entries []string) (map[string]string, error) {
	aliases := make(map[string]string)
	var errs []error
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			transport, target, ok := strings.Cut(part, "=")
			transport, target = strings.TrimSpace(transport), strings.TrimSpace(target)
			if !ok || transport == "" || target == "" {
				errs = append(errs, fmt.Errorf("%w: %q", ErrBadAlias, part))
				continue
			}
			aliases[transport] = target
		}
	}
	if len(aliases) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return aliases, errors.Join(errs...)
}

// LogLevel returns the configured log level.
func LogLevel() string {
	if v := viper.GetString(KeyLogLevel); v != "" {
		return v
	}
	return "info"
}

// LogFormat returns the configured log format ("text" or "json").
func LogFormat() string {
	if v := viper.GetString(KeyLogFormat); v != "" {
		return v
	}
	return "text"
}
