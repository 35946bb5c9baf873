// Package diag builds the diagnostic logger persistence failures are reported
// on.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Stderr returns a logger for the non-interactive commands.
func Stderr(prefix string, debug bool) *log.Logger {
	return log.New(os.Stderr, prefixOf(prefix), flags(debug))
}

// ToFile returns a logger appending to path. A full-screen UI owns the
// terminal, so diagnostics go to a file instead of stderr.
func ToFile(path, prefix string, debug bool) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("diag: ensure log directory: %w", err)
	}
	l := log.New(io.Discard, "", flags(debug))
	f, err := tea.LogToFileWith(path, prefix, l)
	if err != nil {
		return nil, nil, fmt.Errorf("diag: open log: %w", err)
	}
	return l, f, nil
}

func prefixOf(prefix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + " "
}

func flags(debug bool) int {
	if debug {
		return log.LstdFlags | log.Lshortfile
	}
	return log.LstdFlags
}
