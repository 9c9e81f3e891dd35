// Package subscribe implements the newsletter signup endpoint the
// serve command answers natively, matching the wire contract of the
// emitted PHP fallback.
package subscribe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// Store appends signups to a CSV file, one "timestamp,email" line per
// signup. Writes take an exclusive lock so concurrent processes never
// interleave lines.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a store writing to the given CSV path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Append records one signup.
func (s *Store) Append(email string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create signup directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("open signup file: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock signup file: %w", err)
	}
	defer func() {
		_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	}()

	email = strings.NewReplacer("\n", "", "\r", "").Replace(email)
	line := fmt.Sprintf("%s,%s\n", s.now().UTC().Format(time.RFC3339), email)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append signup: %w", err)
	}
	return nil
}
