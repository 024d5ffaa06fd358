package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/casegen-dev/casegen/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySummary prints the per-target case counts with styled output.
func (t *TUI) DisplaySummary(results []TargetResult) error {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if len(results) == 0 {
		_, err := fmt.Fprintln(t.output, titleStyle.Render("No targets generated"))
		return err
	}

	_, _ = fmt.Fprintln(t.output, titleStyle.Render("Generated test data"))

	total := 0

	for _, result := range results {
		_, _ = fmt.Fprintf(t.output, "  %s  %s\n",
			accentStyle.Render(fmt.Sprintf("%5d", result.Cases)),
			fileStyle.Render(string(result.File)),
		)

		total += result.Cases
	}

	_, err := fmt.Fprintf(t.output, "\nTotal: %s cases across %s file(s)\n",
		accentStyle.Render(fmt.Sprintf("%d", total)),
		accentStyle.Render(fmt.Sprintf("%d", len(results))),
	)

	return err
}

// DisplayCases shows the cases of one data file in a scrollable list.
func (t *TUI) DisplayCases(file m.Path, cases []m.TestCase) error {
	model := newCaseListModel(file, cases)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	// If the list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.plainView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
