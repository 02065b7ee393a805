package cmd

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getcreddy/pokeid/pkg/config"
)

// loadSettings resolves the configuration: defaults, then the config file,
// then POKEID_* environment variables and flags (viper handles both).
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	for key, dst := range map[string]*string{
		"format":    &cfg.Format,
		"ledger":    &cfg.Ledger,
		"log_level": &cfg.LogLevel,
	} {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	logger = newLogger(cfg.LogLevel)
	logger.Debug("settings loaded", "config", viper.ConfigFileUsed(), "format", cfg.Format, "ledger", cfg.Ledger)
	return nil
}

func newLogger(level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pokeid",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}
