package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fixkit/fixfactory/internal/catalog"
	"github.com/fixkit/fixfactory/internal/config"
	"github.com/spf13/cobra"
)

var modulesJSON bool

func init() {
	modulesCmd.Flags().BoolVar(&modulesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(modulesCmd)
}

// moduleEntry is one candidate for display.
type moduleEntry struct {
	BeginString string `json:"begin_string"`
	Module      string `json:"module"`
	EntryPoint  string `json:"entry_point"`
	Present     bool   `json:"present"`
	Path        string `json:"path,omitempty"`
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Show where each candidate catalog module was found",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := catalog.Probe(catalog.Candidates(), config.ModulePath())

		entries := make([]moduleEntry, 0, len(results))
		for _, r := range results {
			entries = append(entries, moduleEntry{
				BeginString: r.Candidate.BeginString,
				Module:      r.Candidate.Module,
				EntryPoint:  r.Candidate.EntryPoint(),
				Present:     r.Present,
				Path:        r.Path,
			})
		}

		if modulesJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tENTRY POINT\tSTATUS")
		for _, e := range entries {
			status := "absent"
			if e.Present {
				status = "present (" + e.Path + ")"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.BeginString, e.EntryPoint, status)
		}
		return w.Flush()
	},
}
