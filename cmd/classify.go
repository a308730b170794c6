package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kandidlabs/kandid-cli/internal/dataset"
	"github.com/kandidlabs/kandid-cli/internal/fields"
	"github.com/kandidlabs/kandid-cli/internal/utils"
)

var (
	clsInputPath  string
	clsOutputPath string
	clsColumn     string
	clsDelimiter  string
	clsWorkers    int
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify occupation text into a field category",
	Long: `Classify maps free-text occupation strings to field categories using the
configured keyword dictionary. Pass a text argument for a single lookup, or
--input to label a whole CSV (a "field" column is appended to each row).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDictionary()
		if err != nil {
			return err
		}
		if clsInputPath != "" {
			if len(args) > 0 {
				return fmt.Errorf("pass either a text argument or --input, not both")
			}
			return classifyFile(cmd, d)
		}
		if len(args) == 0 {
			return fmt.Errorf("nothing to classify: pass a text argument or --input")
		}
		fmt.Println(fields.ClassifyFirst(dataset.SplitOccupations(args[0]), d))
		return nil
	},
}

// classifyFile labels every row of the input CSV and writes the table back
// out with a trailing "field" column. Row order is preserved even though
// classification fans out across workers.
func classifyFile(cmd *cobra.Command, d *fields.Dictionary) error {
	delim, err := parseDelimiter(clsDelimiter)
	if err != nil {
		return err
	}
	f, err := os.Open(clsInputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	if delim != 0 {
		r.Comma = delim
	}

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	col := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), clsColumn) {
			col = i
			break
		}
	}
	if col < 0 {
		return fmt.Errorf("no column %q in header %v", clsColumn, header)
	}

	var rows [][]string
	values := [][]string{}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
		raw := ""
		if col < len(rec) {
			raw = rec[col]
		}
		values = append(values, dataset.SplitOccupations(raw))
	}

	workers := clsWorkers
	if workers == 0 && cfg != nil {
		workers = cfg.Workers
	}
	labels, err := fields.ClassifyAll(cmd.Context(), values, d, workers)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if delim != 0 {
		w.Comma = delim
	}
	if err := w.Write(append(header, "field")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(append(row, labels[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if clsOutputPath == "" {
		fmt.Print(b.String())
		return nil
	}
	if err := utils.SafeWriteFile(clsOutputPath, []byte(b.String())); err != nil {
		return err
	}
	fmt.Printf("✓ Labeled %d rows to %s\n", len(rows), clsOutputPath)
	return nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported --delimiter: %s", s)
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&clsInputPath, "input", "i", "", "CSV file to label")
	classifyCmd.Flags().StringVarP(&clsOutputPath, "output", "o", "", "optional path to write the labeled CSV (default stdout)")
	classifyCmd.Flags().StringVar(&clsColumn, "column", "povolani", "occupation column name in the input")
	classifyCmd.Flags().StringVar(&clsDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	classifyCmd.Flags().IntVar(&clsWorkers, "workers", 0, "parallel classification workers (0 = GOMAXPROCS)")
}
