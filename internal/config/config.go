package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	InputPath    string `mapstructure:"input_path" yaml:"input_path"`
	Sheet        string `mapstructure:"sheet" yaml:"sheet"`
	SnapshotPath string `mapstructure:"snapshot_path" yaml:"snapshot_path"`
	ResultsDir   string `mapstructure:"results_dir" yaml:"results_dir"`
	SummaryPath  string `mapstructure:"summary_path" yaml:"summary_path"`
}

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "nutristat.yaml"

// Save writes the given configuration to the cfgFile path, or to
// ./nutristat.yaml when cfgFile is empty.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		path = DefaultFile
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
// Precedence: flags > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("NUTRISTAT")
	v.AutomaticEnv()

	v.SetDefault("input_path", "complete_data.xlsx")
	v.SetDefault("sheet", "")
	v.SetDefault("snapshot_path", "cleaned_data.csv")
	v.SetDefault("results_dir", "results")
	v.SetDefault("summary_path", "data_preparation_summary.txt")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("nutristat")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
