package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chef-backup/src/config"
)

// addGlobalFlags adds persistent flags shared by every subcommand.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", config.DefaultPath(), "Path to the config file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loadConfig applies the verbosity flag and reads the config file named by
// the global --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(path)
}
