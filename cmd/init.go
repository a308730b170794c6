package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/kandidlabs/kandid-cli/internal/config"
	"github.com/kandidlabs/kandid-cli/internal/dataset"
	"github.com/kandidlabs/kandid-cli/internal/fields"
	"github.com/kandidlabs/kandid-cli/internal/utils"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter dictionary, reference tables and config to ~/.kandid",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".kandid")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}

		dictFile := filepath.Join(dir, "dictionary.yaml")
		refsFile := filepath.Join(dir, "refs.yaml")
		// Refuse to overwrite an edited setup unless forced.
		if !initForce {
			for _, p := range []string{dictFile, refsFile} {
				if _, err := os.Stat(p); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", p)
				}
			}
		}

		if err := writeYAML(dictFile, fields.DefaultDictionary()); err != nil {
			return err
		}
		if err := writeYAML(refsFile, dataset.DefaultRefs()); err != nil {
			return err
		}

		if cfg == nil {
			cfg = &cfgpkg.Global{}
		}
		cfg.DictionaryPath = dictFile
		cfg.RefsPath = refsFile
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Initialized %s\n", dir)
		return nil
	},
}

func writeYAML(path string, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing dictionary and reference files")
}
