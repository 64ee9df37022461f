// Package shell implements the interactive command interpreter: the
// read-tokenize-dispatch-execute loop, the builtin registry and the
// launcher that runs external programs.
package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/abiosoft/readline"

	"github.com/josephlewis42/lsh/core/config"
	"github.com/josephlewis42/lsh/core/history"
	"github.com/josephlewis42/lsh/core/logger"
)

// Shell owns one interpreter session: its input, output, builtin
// registry, history sink and event log.
type Shell struct {
	Readline *readline.Instance

	prompt   string
	builtins *Registry
	history  history.Store
	log      *logger.SessionLogger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	toClose listCloser
}

// New builds a Shell from the configuration, reading commands from
// stdin and writing to stdout and stderr.
func New(configuration *config.Configuration, stdin io.Reader, stdout, stderr io.Writer) (*Shell, error) {
	s := &Shell{
		prompt:   configuration.Prompt,
		builtins: NewRegistry(),
		history:  configuration.HistoryStore(),
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}

	if configuration.EventLog != "" {
		fd, err := configuration.OpenEventLog()
		if err != nil {
			// Event logging is best-effort, run without it.
			fmt.Fprintf(stderr, "lsh: can't open event log: %v\n", err)
		} else {
			s.toClose = append(s.toClose, fd)
			s.log = logger.NewJSONLinesLogRecorder(fd).NewSession()
		}
	}

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
		FuncIsTerminal: func() bool {
			fd, ok := stdin.(*os.File)
			return ok && readline.IsTerminal(int(fd.Fd()))
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	s.Readline = rl
	s.toClose = append(s.toClose, rl)

	return s, nil
}

// Run drives the interpreter until the exit builtin runs or the input
// is exhausted. Every other error is converted into a continuation
// decision on the spot; none propagate to the caller.
func (s *Shell) Run() error {
	for {
		s.Readline.SetPrompt(s.prompt)
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Interrupt discards the line.

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue
		}

		// The raw line is recorded before tokenizing, so a line of only
		// delimiters still lands in the history.
		if line != "" {
			s.recordHistory(line)
		}

		if s.Execute(Tokenize(line)) == Terminate {
			return nil
		}
	}
}

// recordHistory notifies the history sink. A failing sink never stops
// the loop.
func (s *Shell) recordHistory(line string) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "unknown"
	}

	record := history.Record{Time: time.Now(), Dir: wd, Line: line}
	if err := s.history.Append(record); err != nil {
		s.logEvent(logger.EventHistoryError, nil, err)
	}
}

// logEvent records an interpreter event, best-effort.
func (s *Shell) logEvent(event logger.EventType, command []string, err error) {
	if s.log == nil {
		return
	}
	_ = s.log.Record(event, command, err)
}

// Close releases the readline instance and any open log files.
func (s *Shell) Close() error {
	return s.toClose.Close()
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
