// Package history persists the interpreter's command history.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// TimeLayout is the timestamp format used in history records.
const TimeLayout = "2006-01-02 15:04:05"

// Record is a single history entry.
type Record struct {
	Time time.Time
	Dir  string
	Line string
}

// Format renders the record in its on-disk form:
//
//	[YYYY-MM-DD HH:MM:SS] [<working directory>] <raw line>
func (r Record) Format() string {
	return fmt.Sprintf("[%s] [%s] %s", r.Time.Format(TimeLayout), r.Dir, r.Line)
}

// ParseRecord parses a single history line. Lines that don't match the
// record format come back verbatim in Line so old or hand-edited
// history files still display.
func ParseRecord(line string) Record {
	if !strings.HasPrefix(line, "[") {
		return Record{Line: line}
	}

	end := strings.Index(line, "] [")
	if end < 0 {
		return Record{Line: line}
	}
	ts, err := time.ParseInLocation(TimeLayout, line[1:end], time.Local)
	if err != nil {
		return Record{Line: line}
	}

	rest := line[end+len("] ["):]
	end = strings.Index(rest, "] ")
	if end < 0 {
		return Record{Line: line}
	}

	return Record{Time: ts, Dir: rest[:end], Line: rest[end+len("] "):]}
}

// Store is the interpreter's history sink. Appends are best-effort from
// the loop's point of view; callers tolerate failures without halting.
type Store interface {
	// Append adds a record after all existing ones.
	Append(r Record) error
	// ReadAll returns every record in the order it was appended.
	ReadAll() ([]Record, error)
	// Clear removes all records.
	Clear() error
}

// FileStore is a Store backed by a single text file with one record per
// line.
type FileStore struct {
	fs   afero.Fs
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store over the given filesystem and path.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Append adds a record to the end of the history file, creating the
// file if needed.
func (s *FileStore) Append(r Record) error {
	fd, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer fd.Close()

	_, err = fmt.Fprintln(fd, r.Format())
	return err
}

// ReadAll returns every record in original order. A missing history
// file is an empty history, not an error.
func (s *FileStore) ReadAll() ([]Record, error) {
	fd, err := s.fs.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var out []Record
	reader := bufio.NewReader(fd)
	for {
		line, err := reader.ReadString('\n')
		if trimmed := strings.TrimSuffix(line, "\n"); trimmed != "" {
			out = append(out, ParseRecord(trimmed))
		}

		switch {
		case err == io.EOF:
			return out, nil
		case err != nil:
			return nil, err
		}
	}
}

// Clear removes every record. Clearing an already empty history
// succeeds.
func (s *FileStore) Clear() error {
	err := s.fs.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
