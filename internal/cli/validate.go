package cli

import (
	"errors"
	"fmt"

	"github.com/fixkit/fixfactory/internal/catalog"
	"github.com/fixkit/fixfactory/internal/dictionary"
	"github.com/spf13/cobra"
)

var errInvalidModule = errors.New("module manifest is invalid")

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Check a catalog module manifest",
	Long: `Validate a catalog module manifest against the module schema, then check
its group layouts the way the registry would when loading it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		result, err := catalog.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			fmt.Fprintf(out, "%s: %d issue(s)\n", path, len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
			return errInvalidModule
		}

		m, err := catalog.ParseFile(path)
		if err != nil {
			return err
		}
		c, err := dictionary.New(m)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			return errInvalidModule
		}

		fmt.Fprintf(out, "%s: valid %s catalog, %d message type(s), entry point %s\n",
			path, m.BeginString, len(c.MsgTypes()), catalog.EntryPoint(m.BeginString))
		return nil
	},
}
