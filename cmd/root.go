package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getcreddy/pokeid/pkg/config"
)

var (
	cfgFile  string
	settings = config.Default()
	logger   = hclog.NewNullLogger()
)

var rootCmd = &cobra.Command{
	Use:   "pokeid [uuid...]",
	Short: "Give UUIDs pokémon names",
	Long: `Pokeid turns a UUID into a short name such as "Busy bulbasaur",
so people can talk about objects without reading hex aloud.

The same UUID always gets the same name. Several UUIDs can share
a name: use the ledger to find every object carrying one.

With no arguments a random UUID is generated.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadSettings,
	RunE:              runEncodeCmd,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pokeid/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("format", "", "output format (text or json)")
	rootCmd.PersistentFlags().String("ledger", "", "ledger database path")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("ledger", rootCmd.PersistentFlags().Lookup("ledger"))

	addEncodeFlags(rootCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search order: ~/.config/pokeid, ~/.pokeid, current dir
		viper.AddConfigPath(home + "/.config/pokeid")
		viper.AddConfigPath(home + "/.pokeid")
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("POKEID")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}
