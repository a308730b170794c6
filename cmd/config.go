package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/kandidlabs/kandid-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set kandid configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("dictionary_path: %s\n", orBuiltin(cfg.DictionaryPath))
		fmt.Printf("refs_path: %s\n", orBuiltin(cfg.RefsPath))
		fmt.Printf("reports_dir: %s\n", cfg.ReportsDir)
		fmt.Printf("workers: %d\n", cfg.Workers)
		fmt.Printf("sample_rows: %d\n", cfg.SampleRows)
		fmt.Printf("max_rows: %d\n", cfg.MaxRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "dictionary_path":
			cfg.DictionaryPath = val
		case "refs_path":
			cfg.RefsPath = val
		case "reports_dir":
			cfg.ReportsDir = val
		case "workers", "sample_rows", "max_rows":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid %s: %s (expect a non-negative integer)", key, val)
			}
			switch key {
			case "workers":
				cfg.Workers = n
			case "sample_rows":
				cfg.SampleRows = n
			case "max_rows":
				cfg.MaxRows = n
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s\n", key)
		return nil
	},
}

func orBuiltin(s string) string {
	if s == "" {
		return "(built-in)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
