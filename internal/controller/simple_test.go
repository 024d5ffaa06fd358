package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/casegen-dev/casegen/internal/model"
)

func TestSimpleUIDisplaySummaryPrintsTable(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	results := []TargetResult{
		{Name: "alpha", File: "tests/suites/alpha.data", Cases: 1},
		{Name: "beta", File: "tests/suites/beta.data", Cases: 2},
	}

	if err := ui.DisplaySummary(results); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"alpha",
		"tests/suites/alpha.data",
		"beta",
		"tests/suites/beta.data",
		"TOTAL TARGETS 2",
		"3",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUIDisplaySummaryEmpty(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplaySummary(nil); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No targets generated") {
		t.Fatalf("output missing empty notice\noutput:\n%s", buf.String())
	}
}

func TestSimpleUIDisplayCases(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	cases := []m.TestCase{
		{Description: "Widget #1 basic", Function: "widget_check", Arguments: []string{"1", "2"}},
		{Description: "Widget #2 empty", Function: "widget_check_empty"},
	}

	if err := ui.DisplayCases(m.Path("tests/suites/widget.data"), cases); err != nil {
		t.Fatalf("DisplayCases() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"tests/suites/widget.data: 2 test case(s)",
		"Widget #1 basic",
		"widget_check(1, 2)",
		"Widget #2 empty",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestIsTTYForBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Fatalf("buffer should not look like a TTY")
	}
}
