package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	clearHistory bool

	colorBoldCyan = color.New(color.FgCyan, color.Bold)
	colorBoldBlue = color.New(color.FgBlue, color.Bold)
)

// historyCmd views the persisted history outside an interactive session.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the persisted command history.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}
		store := configuration.HistoryStore()

		if clearHistory {
			return store.Clear()
		}

		records, err := store.ReadAll()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, record := range records {
			if record.Time.IsZero() {
				fmt.Fprintln(w, record.Line)
				continue
			}
			fmt.Fprintf(w, "%s %s %s\n",
				colorBoldCyan.Sprintf("[%s]", record.Time.Format("2006-01-02 15:04:05")),
				colorBoldBlue.Sprintf("[%s]", record.Dir),
				record.Line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&clearHistory, "clear", false, "delete all history entries")
	rootCmd.AddCommand(historyCmd)
}
