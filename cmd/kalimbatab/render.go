package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kalimbatab/kalimbatab/internal/catalog"
	"github.com/kalimbatab/kalimbatab/internal/export"
	"github.com/kalimbatab/kalimbatab/internal/score"
	"github.com/kalimbatab/kalimbatab/internal/tab"
	"github.com/kalimbatab/kalimbatab/internal/tine"
	"github.com/kalimbatab/kalimbatab/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an ABC score as kalimba tablature",
	Long: `Render parses an ABC notation file, maps each note onto a tine of the
target instrument, and writes the tablature as an SVG image plus a PDF
document. A score whose notes all fall outside the instrument's range is
reported as "no valid notes" and produces no output files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		cfg := types.PipelineConfig{
			Mapper: types.MapperConfig{
				TineCount:          intSetting(cmd, "tines", "tine_count"),
				OctavePolicy:       stringSetting(cmd, "octave-policy", "octave_policy"),
				ReferenceTablePath: stringSetting(cmd, "reference-table", "reference_table"),
			},
			Output: types.OutputConfig{
				SVGPath: stringSetting(cmd, "svg", "output.svg"),
				PDFPath: stringSetting(cmd, "output", "output.pdf"),
			},
			Catalog: types.CatalogConfig{
				Dir:      viper.GetString("catalog.dir"),
				Disabled: noHistory || viper.GetBool("catalog.disabled"),
			},
		}

		return runRender(input, cfg, os.Stdout, os.Stderr)
	},
}

// stringSetting resolves a setting: an explicitly set flag wins over the
// config file and environment.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

// intSetting is stringSetting for integer flags.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return viper.GetInt(key)
}

func init() {
	renderCmd.Flags().StringP("input", "i", "", "path to the input .abc file (required)")
	renderCmd.MarkFlagRequired("input")
	renderCmd.Flags().StringP("output", "o", "", "output PDF path")
	renderCmd.Flags().String("svg", "", "output SVG path")
	renderCmd.Flags().Int("tines", 0, "number of tines on the target instrument")
	renderCmd.Flags().String("octave-policy", "", "out-of-range policy: ignore or shift_down")
	renderCmd.Flags().String("reference-table", "", "YAML file with a custom pitch table")
	renderCmd.Flags().Bool("no-history", false, "do not record this run in the local history")

	rootCmd.AddCommand(renderCmd)
}

// runRender executes the full pipeline: load, map, lay out, write SVG,
// export PDF, record history. Export and history failures are reported but
// do not fail the run; the SVG artifact is already persisted by then.
func runRender(input string, cfg types.PipelineConfig, out, diag io.Writer) error {
	policy, err := tine.ParsePolicy(cfg.Mapper.OctavePolicy)
	if err != nil {
		return err
	}

	reference := tine.DefaultReferenceTable()
	if cfg.Mapper.ReferenceTablePath != "" {
		if reference, err = tine.LoadReferenceTable(cfg.Mapper.ReferenceTablePath); err != nil {
			return err
		}
	}
	profile, err := tine.NewProfile(reference, cfg.Mapper.TineCount)
	if err != nil {
		return err
	}

	s, err := score.Load(input, diag)
	if err != nil {
		return fmt.Errorf("loading score: %w", err)
	}
	fmt.Fprintf(out, "parsed %s: %d notes\n", input, len(s.Events))

	mapped := tine.Map(s.Events, profile, policy, diag)
	if len(mapped) == 0 {
		fmt.Fprintln(out, "no valid notes found, nothing to render")
		return nil
	}

	sheet := tab.Layout(mapped, s.Title)
	if err := tab.SaveSVG(sheet, cfg.Output.SVGPath); err != nil {
		return fmt.Errorf("rendering tablature: %w", err)
	}
	fmt.Fprintf(out, "wrote %s (%d glyphs)\n", cfg.Output.SVGPath, len(sheet.Glyphs))

	pdfPath := cfg.Output.PDFPath
	if err := export.WritePDF(sheet, pdfPath); err != nil {
		fmt.Fprintf(diag, "warning: PDF export failed: %v\n", err)
		pdfPath = ""
	} else {
		fmt.Fprintf(out, "wrote %s\n", pdfPath)
	}

	if !cfg.Catalog.Disabled {
		recordRun(cfg.Catalog.Dir, catalog.Run{
			Source:      input,
			Title:       sheet.Title,
			NoteCount:   len(s.Events),
			MappedCount: len(mapped),
			SVGPath:     cfg.Output.SVGPath,
			PDFPath:     pdfPath,
		}, diag)
	}
	return nil
}

// recordRun appends the run to the local history. History is best-effort
// and never blocks the pipeline.
func recordRun(dir string, r catalog.Run, diag io.Writer) {
	store, err := catalog.Open(dir)
	if err != nil {
		fmt.Fprintf(diag, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(r); err != nil {
		fmt.Fprintf(diag, "warning: recording history: %v\n", err)
	}
}
