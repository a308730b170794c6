package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kandidlabs/kandid-cli/internal/fields"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspect the field dictionary",
}

var dictValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configured dictionary and report shadowed keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDictionary()
		if err != nil {
			return err
		}
		// loadDictionary already printed warnings; re-run validation here so
		// the built-in dictionary gets the same treatment.
		warnings, err := d.Validate()
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Printf("⚠ %s\n", w)
		}
		keywords := 0
		for _, e := range d.Entries {
			keywords += len(e.Keywords)
		}
		fmt.Printf("✓ Dictionary OK: %d categories, %d keywords, %d warnings\n", len(d.Entries), keywords, len(warnings))
		return nil
	},
}

var dictListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and keywords in match priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDictionary()
		if err != nil {
			return err
		}
		for i, e := range d.Entries {
			fmt.Printf("%2d. %s: %s\n", i+1, e.Name, strings.Join(e.Keywords, ", "))
		}
		fmt.Printf("    (no match: %s)\n", fields.Other)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictValidateCmd)
	dictCmd.AddCommand(dictListCmd)
}
