// Package workspace manages the staging directory a build renders
// into. Output is assembled next to the final directory and swapped in
// only after the build succeeds, so a failing build never leaves a
// half-written site behind.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Manager stages one build for a final output directory.
type Manager struct {
	finalDir   string
	stagingDir string
}

// NewManager creates a manager for the given final output directory.
func NewManager(finalDir string) *Manager {
	return &Manager{finalDir: finalDir}
}

// Create makes a fresh timestamped staging directory beside the final
// directory. Rendering writes there until Promote.
func (m *Manager) Create() error {
	parent := filepath.Dir(m.finalDir)
	if err := os.MkdirAll(parent, 0o750); err != nil {
		return fmt.Errorf("create output parent directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	staging := filepath.Join(parent, fmt.Sprintf(".%s-staging-%s", filepath.Base(m.finalDir), timestamp))

	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("clear stale staging directory: %w", err)
	}
	if err := os.MkdirAll(staging, 0o750); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}

	m.stagingDir = staging
	slog.Debug("Created staging directory", "path", staging)
	return nil
}

// StagingPath returns the directory renders should write into.
func (m *Manager) StagingPath() string {
	return m.stagingDir
}

// FinalPath returns the promoted output directory.
func (m *Manager) FinalPath() string {
	return m.finalDir
}

// Promote replaces the final directory with the staged build. The old
// output is removed first; the rename itself is atomic on the same
// filesystem.
func (m *Manager) Promote() error {
	if m.stagingDir == "" {
		return fmt.Errorf("workspace not created")
	}

	if err := os.RemoveAll(m.finalDir); err != nil {
		return fmt.Errorf("remove previous output: %w", err)
	}
	if err := os.Rename(m.stagingDir, m.finalDir); err != nil {
		return fmt.Errorf("promote staged output: %w", err)
	}

	slog.Info("Promoted build output", "path", m.finalDir)
	m.stagingDir = ""
	return nil
}

// Cleanup removes the staging directory if it was never promoted.
func (m *Manager) Cleanup() error {
	if m.stagingDir == "" {
		return nil
	}
	if err := os.RemoveAll(m.stagingDir); err != nil {
		return fmt.Errorf("cleanup staging directory: %w", err)
	}
	slog.Debug("Removed staging directory", "path", m.stagingDir)
	m.stagingDir = ""
	return nil
}
