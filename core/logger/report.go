package logger

import (
	"encoding/json"
	"io"
	"sort"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// NewUsageReport creates an empty report ready to fold entries in.
func NewUsageReport() *UsageReport {
	return &UsageReport{
		Commands:        make(map[string]int),
		UnknownCommands: make(map[string]int),
		Builtins:        make(map[string]int),
	}
}

// UsageReport aggregates how often each command was run.
type UsageReport struct {
	LogEntries int `json:"log_entries"`

	Commands        map[string]int `json:"commands"`
	UnknownCommands map[string]int `json:"unknown_commands"`
	Builtins        map[string]int `json:"builtins"`
	HistoryErrors   int            `json:"history_errors"`
}

// Update folds a single entry into the report.
func (r *UsageReport) Update(le *LogEntry) {
	r.LogEntries++

	name := ""
	if len(le.Command) > 0 {
		name = le.Command[0]
	}

	switch le.Event {
	case EventRunCommand:
		r.Commands[name]++
	case EventUnknownCommand:
		r.UnknownCommands[name]++
	case EventBuiltin:
		r.Builtins[name]++
	case EventHistoryError:
		r.HistoryErrors++
	}
}

// SortedNames returns a counter's keys in descending count order,
// breaking ties alphabetically.
func SortedNames(counter map[string]int) []string {
	var out []string
	for k := range counter {
		out = append(out, k)
	}

	sort.Slice(out, func(i, j int) bool {
		if counter[out[i]] == counter[out[j]] {
			return out[i] < out[j]
		}
		return counter[out[i]] > counter[out[j]]
	})
	return out
}
