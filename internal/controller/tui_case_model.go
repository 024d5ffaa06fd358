package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/casegen-dev/casegen/internal/model"
)

// caseItem is one test case shown in the viewer list.
type caseItem struct {
	number int
	tc     m.TestCase
}

func (i caseItem) FilterValue() string { return i.tc.Description }

// caseDelegate renders one case per line: number, description, call.
type caseDelegate struct{}

func (d caseDelegate) Height() int  { return 1 }
func (d caseDelegate) Spacing() int { return 0 }
func (d caseDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d caseDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ci, ok := item.(caseItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var numberStyle, descStyle lipgloss.Style

	if isSelected {
		numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(5).
			Align(lipgloss.Right)
		descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	} else {
		numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(5).
			Align(lipgloss.Right)
		descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}

	width := lm.Width() - 7 // Subtract number width (5) + spacing (2)
	text := fmt.Sprintf("%s  %s", ci.tc.Description, renderCall(ci.tc))

	line := fmt.Sprintf("%s  %s",
		numberStyle.Render(fmt.Sprintf("%d", ci.number)),
		descStyle.Render(truncateToWidth(text, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func renderCall(tc m.TestCase) string {
	return fmt.Sprintf("%s(%s)", tc.Function, strings.Join(tc.Arguments, ", "))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// caseListModel is the Bubble Tea model for browsing one data file.
type caseListModel struct {
	file     m.Path
	cases    []m.TestCase
	caseList list.Model
	width    int
	height   int
}

func newCaseListModel(file m.Path, cases []m.TestCase) caseListModel {
	items := make([]list.Item, 0, len(cases))
	for i, tc := range cases {
		items = append(items, caseItem{number: i + 1, tc: tc})
	}

	caseList := list.New(items, caseDelegate{}, 80, 20)
	caseList.SetShowPagination(false)
	caseList.SetShowFilter(true)
	caseList.SetShowHelp(false)
	caseList.SetShowTitle(false)
	caseList.SetShowStatusBar(false)
	caseList.FilterInput.Placeholder = "Filter by description…"

	return caseListModel{
		file:     file,
		cases:    cases,
		caseList: caseList,
	}
}

func (clm caseListModel) Init() tea.Cmd {
	return nil
}

func (clm caseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		clm.width = msg.Width
		clm.height = msg.Height
		clm.caseList.SetWidth(clm.width - 6)
		clm.caseList.SetHeight(clm.listHeight())

		return clm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if clm.caseList.FilterState() == list.Filtering {
				break
			}

			return clm, tea.Quit
		}

		clm.caseList, cmd = clm.caseList.Update(msg)

		return clm, cmd
	}

	return clm, cmd
}

func (clm caseListModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render(fmt.Sprintf("Casegen: %s", clm.file))

	summary := summaryStyle.Render(fmt.Sprintf(
		"Test Cases: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(clm.cases))),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(clm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		clm.renderTable(),
		footer,
	)
}

func (clm caseListModel) renderTable() string {
	listWidth := clm.caseList.Width()

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%5s  %s", "Case", "Description"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			clm.caseList.View(),
		),
	)
}

// listHeight reserves room for title (2), summary (2), footer (1), border (2)
// and padding (2).
func (clm caseListModel) listHeight() int {
	height := clm.height - 9
	if height < 5 {
		height = 5
	}

	return height
}

// itemsPerPage is how many cases fit on screen without scrolling.
func (clm caseListModel) itemsPerPage() int {
	if clm.height == 0 {
		return 10 // Default
	}

	return clm.listHeight()
}

// needsPagination returns true if the list is too large to fit on screen.
func (clm caseListModel) needsPagination() bool {
	if len(clm.cases) == 0 {
		return false
	}

	return len(clm.cases) > clm.itemsPerPage() && clm.height > 0
}

// plainView renders the whole list without entering the interactive program.
func (clm caseListModel) plainView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %d test case(s)\n\n", clm.file, len(clm.cases))

	for i, tc := range clm.cases {
		fmt.Fprintf(&b, "  %3d. %s\n       %s\n", i+1, tc.Description, renderCall(tc))
	}

	return b.String()
}
