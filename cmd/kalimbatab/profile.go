package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kalimbatab/kalimbatab/internal/tine"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the tine table for the configured instrument",
	Long: `Profile prints the pitch-to-tine table the mapper would use, one line
per tine, ascending with pitch. Useful for checking what a given tine
count or custom reference table covers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reference := tine.DefaultReferenceTable()
		if path := stringSetting(cmd, "reference-table", "reference_table"); path != "" {
			var err error
			if reference, err = tine.LoadReferenceTable(path); err != nil {
				return err
			}
		}
		profile, err := tine.NewProfile(reference, intSetting(cmd, "tines", "tine_count"))
		if err != nil {
			return err
		}

		type row struct {
			pitch string
			idx   int
		}
		rows := make([]row, 0, profile.Size())
		for _, pitch := range reference {
			if idx, ok := profile.Lookup(pitch); ok {
				rows = append(rows, row{pitch, idx})
			}
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].idx < rows[j].idx })

		fmt.Fprintf(os.Stdout, "%-6s  %-6s  %s\n", "Tine", "Pitch", "Mark")
		for _, r := range rows {
			fmt.Fprintf(os.Stdout, "%-6d  %-6s  %s\n", r.idx, r.pitch, mark(r.idx))
		}
		return nil
	},
}

func mark(tineIdx int) string {
	if tineIdx%2 == 0 {
		return "▲"
	}
	return "▼"
}

func init() {
	profileCmd.Flags().Int("tines", 0, "number of tines on the target instrument")
	profileCmd.Flags().String("reference-table", "", "YAML file with a custom pitch table")

	rootCmd.AddCommand(profileCmd)
}
