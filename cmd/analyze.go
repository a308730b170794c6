package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kandidlabs/kandid-cli/internal/dataset"
	"github.com/kandidlabs/kandid-cli/internal/fields"
	"github.com/kandidlabs/kandid-cli/internal/report"
	"github.com/kandidlabs/kandid-cli/internal/utils"
)

var (
	anaOutputPath string
	anaJSON       bool
	anaSave       bool
	anaDelimiter  string
	anaSampleRows int
	anaMaxRows    int
	anaGroupBy    []string
	anaWorkers    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Clean, label and summarize a candidate table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		d, err := loadDictionary()
		if err != nil {
			return err
		}
		refs, err := loadRefs()
		if err != nil {
			return err
		}

		delim, err := parseDelimiter(anaDelimiter)
		if err != nil {
			return err
		}
		loadOpt := dataset.Options{Delimiter: delim, MaxRows: anaMaxRows}
		if anaMaxRows == 0 && cfg != nil {
			loadOpt.MaxRows = cfg.MaxRows
		}
		records, warnings, err := dataset.Load(path, loadOpt)
		if err != nil {
			return err
		}
		warnings = append(warnings, dataset.Clean(records, refs)...)

		values := make([][]string, len(records))
		for i, c := range records {
			values[i] = dataset.SplitOccupations(c.Occupation)
		}
		workers := anaWorkers
		if workers == 0 && cfg != nil {
			workers = cfg.Workers
		}
		labels, err := fields.ClassifyAll(cmd.Context(), values, d, workers)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}
		for i := range records {
			records[i].Field = labels[i]
		}

		opt := report.DefaultOptions()
		if anaSampleRows > 0 {
			opt.SampleRows = anaSampleRows
		} else if cfg != nil && cfg.SampleRows > 0 {
			opt.SampleRows = cfg.SampleRows
		}
		if len(anaGroupBy) > 0 {
			opt.GroupBy = anaGroupBy
		}
		rep := report.Build(records, filepath.Base(path), opt)
		rep.Warnings = warnings

		var out []byte
		if anaJSON {
			out, err = utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
		} else {
			out = []byte(rep.Markdown())
		}

		written := false
		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, out); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote report to %s\n", anaOutputPath)
			written = true
		}
		if anaSave {
			dir := ""
			if cfg != nil {
				dir = cfg.ReportsDir
			}
			if dir == "" {
				return fmt.Errorf("--save requires reports_dir in config")
			}
			if err := utils.EnsureDir(dir); err != nil {
				return fmt.Errorf("mkdir reports dir: %w", err)
			}
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			ext := ".md"
			if anaJSON {
				ext = ".json"
			}
			outFile := filepath.Join(dir, base+"."+rep.RunID+ext)
			if err := utils.SafeWriteFile(outFile, out); err != nil {
				return err
			}
			fmt.Printf("✓ Saved report as %s\n", outFile)
			written = true
		}
		if !written {
			fmt.Println(string(out))
		}
		if debug {
			fmt.Fprintf(os.Stderr, "analyzed %d rows, %d warnings\n", rep.Rows, len(warnings))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report")
	analyzeCmd.Flags().BoolVar(&anaJSON, "json", false, "emit the report as JSON instead of Markdown")
	analyzeCmd.Flags().BoolVar(&anaSave, "save", false, "also save the report under reports_dir")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().IntVar(&anaSampleRows, "sample-rows", 0, "number of sample rows to include")
	analyzeCmd.Flags().IntVar(&anaMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	analyzeCmd.Flags().StringSliceVar(&anaGroupBy, "group-by", nil, "grouping dimensions: field|ideology|sex|region|party")
	analyzeCmd.Flags().IntVar(&anaWorkers, "workers", 0, "parallel classification workers (0 = GOMAXPROCS)")
}
