package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/josephlewis42/lsh/core/history"
)

// newTestShell builds a Shell with buffered output and an in-memory
// history, skipping readline which the builtins never touch.
func newTestShell() (*Shell, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	s := &Shell{
		prompt:   "> ",
		builtins: NewRegistry(),
		history:  history.NewFileStore(afero.NewMemMapFs(), "history.txt"),
		stdout:   stdout,
		stderr:   stderr,
	}
	return s, stdout, stderr
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, []string{"cd", "help", "exit", "history"}, registry.Names())

	for _, name := range registry.Names() {
		builtin, ok := registry.Lookup(name)
		assert.True(t, ok)
		assert.NotNil(t, builtin)
	}

	// Lookups are case-sensitive exact matches.
	_, ok := registry.Lookup("CD")
	assert.False(t, ok)
	_, ok = registry.Lookup("pwd")
	assert.False(t, ok)
}

func TestCd(t *testing.T) {
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })

	t.Run("changes directory", func(t *testing.T) {
		dir, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}

		s, _, stderr := newTestShell()
		assert.Equal(t, Continue, Cd(s, []string{"cd", dir}))
		assert.Empty(t, stderr.String())

		wd, err := os.Getwd()
		assert.Nil(t, err)
		assert.Equal(t, dir, wd)
	})

	t.Run("missing argument", func(t *testing.T) {
		before, _ := os.Getwd()

		s, _, stderr := newTestShell()
		assert.Equal(t, Continue, Cd(s, []string{"cd"}))
		assert.Contains(t, stderr.String(), "expected argument")

		after, _ := os.Getwd()
		assert.Equal(t, before, after)
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		before, _ := os.Getwd()

		s, _, stderr := newTestShell()
		assert.Equal(t, Continue, Cd(s, []string{"cd", "/does/not/exist"}))
		assert.Contains(t, stderr.String(), "cd:")

		after, _ := os.Getwd()
		assert.Equal(t, before, after)
	})

	t.Run("too many arguments", func(t *testing.T) {
		before, _ := os.Getwd()

		s, _, stderr := newTestShell()
		assert.Equal(t, Continue, Cd(s, []string{"cd", "/tmp", "/var"}))
		assert.Contains(t, stderr.String(), "too many arguments")

		after, _ := os.Getwd()
		assert.Equal(t, before, after)
	})
}

func TestExit(t *testing.T) {
	s, stdout, stderr := newTestShell()

	assert.Equal(t, Terminate, Exit(s, []string{"exit"}))
	assert.Equal(t, Terminate, Exit(s, []string{"exit", "anything", "else"}))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHelp(t *testing.T) {
	s, stdout, _ := newTestShell()

	assert.Equal(t, Continue, Help(s, []string{"help"}))

	g := goldie.New(t, goldie.WithFixtureDir(filepath.Join("testdata", "golden")))
	g.Assert(t, "help", stdout.Bytes())
}

func TestHistoryBuiltin(t *testing.T) {
	seed := []history.Record{
		{Time: time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local), Dir: "/home/user", Line: "ls -la"},
		{Time: time.Date(2024, 5, 1, 9, 31, 0, 0, time.Local), Dir: "/tmp", Line: "pwd"},
	}

	newSeeded := func(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
		s, stdout, stderr := newTestShell()
		for _, record := range seed {
			if err := s.history.Append(record); err != nil {
				t.Fatal(err)
			}
		}
		return s, stdout, stderr
	}

	t.Run("prints records in order", func(t *testing.T) {
		s, stdout, _ := newSeeded(t)

		assert.Equal(t, Continue, History(s, []string{"history"}))
		assert.Equal(t,
			seed[0].Format()+"\n"+seed[1].Format()+"\n",
			stdout.String())
	})

	t.Run("clear", func(t *testing.T) {
		s, stdout, _ := newSeeded(t)

		assert.Equal(t, Continue, History(s, []string{"history", "-c"}))
		assert.Contains(t, stdout.String(), "History cleared")

		records, err := s.history.ReadAll()
		assert.Nil(t, err)
		assert.Empty(t, records)
	})

	t.Run("clear is case-insensitive", func(t *testing.T) {
		s, _, _ := newSeeded(t)

		assert.Equal(t, Continue, History(s, []string{"history", "-C"}))

		records, err := s.history.ReadAll()
		assert.Nil(t, err)
		assert.Empty(t, records)
	})

	t.Run("invalid option", func(t *testing.T) {
		s, _, stderr := newSeeded(t)

		assert.Equal(t, Continue, History(s, []string{"history", "-x"}))
		assert.Contains(t, stderr.String(), "usage: history [-c]")

		// Records are untouched.
		records, err := s.history.ReadAll()
		assert.Nil(t, err)
		assert.Len(t, records, len(seed))
	})

	t.Run("invalid positional argument", func(t *testing.T) {
		s, _, stderr := newSeeded(t)

		assert.Equal(t, Continue, History(s, []string{"history", "bogus"}))
		assert.Contains(t, stderr.String(), "invalid option: bogus")

		records, err := s.history.ReadAll()
		assert.Nil(t, err)
		assert.Len(t, records, len(seed))
	})

	t.Run("empty history", func(t *testing.T) {
		s, stdout, stderr := newTestShell()

		assert.Equal(t, Continue, History(s, []string{"history"}))
		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})
}
