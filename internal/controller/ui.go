// Package controller provides output controllers for the casegen CLI.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/casegen-dev/casegen/internal/model"
)

// TargetResult describes one generated target for the run summary.
type TargetResult struct {
	Name  string
	File  m.Path
	Cases int
}

// UI renders generation summaries and data file listings. Implementations
// differ by output mode (plain text vs interactive TUI).
type UI interface {
	// DisplaySummary renders the post-generation summary, in run order.
	DisplaySummary(results []TargetResult) error
	// DisplayCases renders the cases of one generated data file.
	DisplayCases(file m.Path, cases []m.TestCase) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
