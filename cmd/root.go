package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/kandidlabs/kandid-cli/internal/config"
	"github.com/kandidlabs/kandid-cli/internal/dataset"
	"github.com/kandidlabs/kandid-cli/internal/fields"
)

var (
	// Global flags (wired to config/viper)
	cfgFile  string
	debug    bool
	dictPath string
	refsPath string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "kandid",
	Short: "kandid: analyze election-candidate tables",
	Long:  `kandid loads candidate tables from CSV exports, cleans and joins them against party and region reference data, classifies free-text occupations into field categories, and renders summary reports.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.kandid/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "field dictionary YAML (overrides config)")
	rootCmd.PersistentFlags().StringVar(&refsPath, "refs", "", "party/region reference tables YAML (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if dictPath != "" {
		cfg.DictionaryPath = dictPath
	}
	if refsPath != "" {
		cfg.RefsPath = refsPath
	}
}

// loadDictionary resolves the effective field dictionary: --dict flag, then
// config, then the built-in default. Validation warnings go to stderr; a
// malformed dictionary is fatal before any classification happens.
func loadDictionary() (*fields.Dictionary, error) {
	path := dictPath
	if path == "" && cfg != nil {
		path = cfg.DictionaryPath
	}
	if path == "" {
		return fields.DefaultDictionary(), nil
	}
	d, warnings, err := fields.Load(path)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", w)
	}
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return d, nil
}

// loadRefs resolves the reference tables the same way.
func loadRefs() (*dataset.Refs, error) {
	path := refsPath
	if path == "" && cfg != nil {
		path = cfg.RefsPath
	}
	if path == "" {
		return dataset.DefaultRefs(), nil
	}
	r, err := dataset.LoadRefs(path)
	if err != nil {
		return nil, fmt.Errorf("load reference tables %s: %w", path, err)
	}
	return r, nil
}
