package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/lsh/core/config"
	"github.com/josephlewis42/lsh/core/shell"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	return config.Load(cfgPath)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lsh",
	Short: "A small interactive command interpreter.",
	Long: `lsh reads commands from the terminal one line at a time and runs
builtins or external programs, recording each line to a history file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		sh, err := shell.New(configuration, os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		defer sh.Close()

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
