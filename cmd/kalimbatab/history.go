package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kalimbatab/kalimbatab/internal/catalog"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent render runs",
	Long: `History lists recently rendered tablatures from the local run catalog,
newest first: source score, title, how many notes mapped, and where the
artifacts were written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := catalog.Open(viper.GetString("catalog.dir"))
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Fprintf(os.Stdout, "%-4s  %-19s  %-24s  %-11s  %s\n",
			"ID", "When", "Title", "Notes", "Artifacts")
		for _, r := range runs {
			title := r.Title
			if len(title) > 24 {
				title = title[:21] + "..."
			}
			artifacts := r.SVGPath
			if r.PDFPath != "" {
				artifacts += ", " + r.PDFPath
			}
			fmt.Fprintf(os.Stdout, "%-4d  %-19s  %-24s  %4d/%-6d  %s\n",
				r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				title, r.MappedCount, r.NoteCount, artifacts)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}
