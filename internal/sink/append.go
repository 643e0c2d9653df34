// Package sink appends generated wallet artifacts to line-oriented log files.
package sink

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileMode is the permission used when a log file is created.
// The logs hold secrets, so only the owner may read them.
const FileMode = 0o600

// ErrEmbeddedNewline is returned for records that would span more than one
// line and break the one-record-per-line layout.
var ErrEmbeddedNewline = errors.New("record contains a line break")

// Append writes record plus a trailing newline to the end of the file at
// path, creating the file if needed, and syncs it before returning.
// Parent directories are never created. The file is closed on every path.
func Append(path, record string) (err error) {
	if strings.ContainsAny(record, "\r\n") {
		return ErrEmbeddedNewline
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, FileMode)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	// One write call so the line lands contiguously under O_APPEND.
	if _, err := f.Write([]byte(record + "\n")); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	return nil
}
