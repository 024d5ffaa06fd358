package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/casegen-dev/casegen/internal/model"
)

// SimpleUI implements UI using cobra Command's output, for pipes and scripts.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints the per-target case counts as a table.
func (s *SimpleUI) DisplaySummary(results []TargetResult) error {
	if len(results) == 0 {
		s.cmd.Println("No targets generated")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "File", "Cases"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, result := range results {
		table.Append([]string{result.Name, string(result.File), fmt.Sprintf("%d", result.Cases)})

		total += result.Cases
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Targets %d", len(results)),
		"",
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCases prints every case of one data file, numbered in file order.
func (s *SimpleUI) DisplayCases(file m.Path, cases []m.TestCase) error {
	if len(cases) == 0 {
		s.printf("%s: no test cases\n", file)
		return nil
	}

	s.printf("%s: %d test case(s)\n", file, len(cases))

	for i, tc := range cases {
		s.printf("%3d. %s\n     %s(%s)\n", i+1, tc.Description, tc.Function, strings.Join(tc.Arguments, ", "))
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
