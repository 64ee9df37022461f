package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/josephlewis42/lsh/core/logger"
)

// Launch runs the token sequence as an external program. It blocks
// until the child process has fully terminated, either by exiting or by
// dying to a signal; job-control stops don't end the wait. External
// programs can never stop the interpreter, so the signal is always
// Continue.
func (s *Shell) Launch(tokens []string) Signal {
	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	// Hand the terminal straight to the child when there is one. A
	// piped stdin stays with the interpreter so the loop doesn't race
	// the child for upcoming command lines.
	if fd, ok := s.stdin.(*os.File); ok {
		cmd.Stdin = fd
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(s.stderr, "lsh: %v\n", err)
		s.logEvent(logger.EventUnknownCommand, tokens, err)
		return Continue
	}
	s.logEvent(logger.EventRunCommand, tokens, nil)

	// Wait reaps the child. The exit status isn't inspected beyond
	// "terminated", so a failing command doesn't affect the loop.
	var exitErr *exec.ExitError
	if err := cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(s.stderr, "lsh: %v\n", err)
	}

	return Continue
}
