package shell

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteEmpty(t *testing.T) {
	s, stdout, stderr := newTestShell()

	assert.Equal(t, Continue, s.Execute(nil))
	assert.Equal(t, Continue, s.Execute([]string{}))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecuteBuiltin(t *testing.T) {
	s, stdout, _ := newTestShell()

	// exit terminates regardless of extra arguments.
	assert.Equal(t, Terminate, s.Execute([]string{"exit"}))
	assert.Equal(t, Terminate, s.Execute([]string{"exit", "0", "now"}))

	// help runs as a builtin, not an external program.
	assert.Equal(t, Continue, s.Execute([]string{"help"}))
	assert.Contains(t, stdout.String(), "defined internally")
}

func TestExecuteCdError(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	s, _, stderr := newTestShell()
	assert.Equal(t, Continue, s.Execute([]string{"cd", "/does/not/exist"}))
	assert.NotEmpty(t, stderr.String())

	after, err := os.Getwd()
	assert.Nil(t, err)
	assert.Equal(t, before, after)
}

func TestExecuteExternal(t *testing.T) {
	s, stdout, stderr := newTestShell()

	// echo is expected on any host running the tests.
	assert.Equal(t, Continue, s.Execute([]string{"echo", "hi"}))
	assert.Equal(t, "hi\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecuteExternalFailureContinues(t *testing.T) {
	s, _, stderr := newTestShell()

	// A child that exits non-zero doesn't stop the loop and isn't an
	// interpreter error.
	assert.Equal(t, Continue, s.Execute([]string{"false"}))
	assert.Empty(t, stderr.String())
}

func TestExecuteUnknownCommand(t *testing.T) {
	s, stdout, stderr := newTestShell()

	assert.Equal(t, Continue, s.Execute([]string{"definitely-not-a-real-command-4cb2f"}))
	assert.Contains(t, stderr.String(), "lsh:")
	assert.Empty(t, stdout.String())
}
