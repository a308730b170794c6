package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DictionaryPath points to the field dictionary YAML; empty selects the
	// built-in dictionary.
	DictionaryPath string `mapstructure:"dictionary_path" yaml:"dictionary_path"`
	// RefsPath points to the party/region reference tables YAML; empty
	// selects the built-in tables.
	RefsPath   string `mapstructure:"refs_path" yaml:"refs_path"`
	ReportsDir string `mapstructure:"reports_dir" yaml:"reports_dir"`
	Workers    int    `mapstructure:"workers" yaml:"workers"`
	SampleRows int    `mapstructure:"sample_rows" yaml:"sample_rows"`
	MaxRows    int    `mapstructure:"max_rows" yaml:"max_rows"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.kandid/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".kandid")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("KANDID")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dictionary_path", "")
	v.SetDefault("refs_path", "")
	v.SetDefault("workers", 0)
	v.SetDefault("sample_rows", 5)
	v.SetDefault("max_rows", 100000)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".kandid")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve reports_dir default: ~/.kandid/reports
	if c.ReportsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ReportsDir = filepath.Join(home, ".kandid", "reports")
	}
	return &c, nil
}
