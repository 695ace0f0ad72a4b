package cli

import (
	"log/slog"

	"github.com/fixkit/fixfactory/internal/branding"
	"github.com/fixkit/fixfactory/internal/config"
	_ "github.com/fixkit/fixfactory/internal/dictionary" // registers catalog providers
	"github.com/fixkit/fixfactory/internal/factory"
	"github.com/fixkit/fixfactory/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	cfgFile string

	// factoryFn returns the registry commands operate on.
	factoryFn = factory.Default
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` locates the version catalog for a FIX BeginString and builds
version-specific messages and repeating groups from it. Catalog modules are
optional: drop catalog.<BeginString>.yaml files into any directory of the
module search path to enable a version.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load(cfgFile)
		slog.SetDefault(logging.New(config.LogLevel(), config.LogFormat(), cmd.ErrOrStderr()))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ~/.fixfactory/config.yaml)")
	flags.StringSlice("module-path", nil, "Directories searched for catalog modules")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(config.KeyModulePath, flags.Lookup("module-path"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
