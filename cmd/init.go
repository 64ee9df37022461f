package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/lsh/core/config"
)

// initCmd writes the default interpreter configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the interpreter configuration in the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		return config.Initialize(cfgPath, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
