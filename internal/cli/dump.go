package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "List registered version catalogs",
	Long: `Print one line per registered version catalog:

  <begin-string> => <catalog type> (<module file>)

Versions whose module is absent or failed to load are not listed; run with
--log-level debug to see why each candidate was skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		factoryFn().Dump(cmd.OutOrStdout())
		return nil
	},
}
