package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/lsh/core/logger"
)

var (
	colorBoldGreen = color.New(color.FgGreen, color.Bold)
	colorBoldRed   = color.New(color.FgRed, color.Bold)
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore the interpreter event log.",
}

// openEventLog opens the configured event log for reading.
func openEventLog() (io.ReadCloser, error) {
	configuration, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if configuration.EventLog == "" {
		return nil, errors.New("event logging is disabled in the configuration")
	}

	return configuration.ReadEventLog()
}

// catCmd prints the raw event log in a readable form.
var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Print the event log in a human readable format.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fd, err := openEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		w := cmd.OutOrStdout()
		return logger.ReadJSONLinesLog(fd, func(le *logger.LogEntry) {
			eventColor := colorBoldGreen
			if le.Error != "" {
				eventColor = colorBoldRed
			}

			fmt.Fprintf(w, "%s %s %s",
				le.Time().Format("2006-01-02 15:04:05"),
				eventColor.Sprint(le.Event),
				strings.Join(le.Command, " "))
			if le.Error != "" {
				fmt.Fprintf(w, " (%s)", le.Error)
			}
			fmt.Fprintln(w)
		})
	},
}

// reportCmd summarizes the event log.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize command usage recorded in the event log.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fd, err := openEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewUsageReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Log entries: %d\n", report.LogEntries)
		printCounter(w, "External commands", report.Commands)
		printCounter(w, "Unknown commands", report.UnknownCommands)
		printCounter(w, "Builtins", report.Builtins)
		if report.HistoryErrors > 0 {
			fmt.Fprintf(w, "\nHistory sink errors: %d\n", report.HistoryErrors)
		}
		return nil
	},
}

func printCounter(w io.Writer, title string, counter map[string]int) {
	if len(counter) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s:\n", title)
	for _, name := range logger.SortedNames(counter) {
		fmt.Fprintf(w, "  %5d  %s\n", counter[name], name)
	}
}

func init() {
	logsCmd.AddCommand(catCmd)
	logsCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(logsCmd)
}
