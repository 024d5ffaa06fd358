// Package adapter contains infrastructure adapters for the casegen CLI.
package adapter

import (
	"bytes"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	m "github.com/casegen-dev/casegen/internal/model"
)

// DataFileStore persists and retrieves generated test suites. It hides direct
// os access so the generation logic can be tested without touching the disk.
type DataFileStore interface {
	// WriteDataFile serializes the cases to path, in order, consuming the
	// sequence exactly once. The file is either fully written or not
	// written at all. Returns the number of cases written.
	WriteDataFile(path m.Path, cases iter.Seq[m.TestCase]) (int, error)

	// LoadDataFile parses a previously generated data file back into
	// records, in file order.
	LoadDataFile(path m.Path) ([]m.TestCase, error)
}

type dataFileStore struct{}

// NewDataFileStore constructs a DataFileStore backed by the local filesystem.
func NewDataFileStore() DataFileStore {
	return &dataFileStore{}
}

// Data file line format, one block per case, blocks separated by a blank
// line:
//
//	description
//	depends_on:DEP1:DEP2    (only when the case has dependencies)
//	function:arg1:arg2
//
// Lines starting with '#' are comments and ignored on load.
const dependsOnPrefix = "depends_on:"

func (s *dataFileStore) WriteDataFile(path m.Path, cases iter.Seq[m.TestCase]) (int, error) {
	var buf bytes.Buffer

	count := 0

	for tc := range cases {
		buf.WriteString(tc.Description)
		buf.WriteByte('\n')

		if len(tc.Dependencies) > 0 {
			buf.WriteString(dependsOnPrefix)
			buf.WriteString(strings.Join(tc.Dependencies, ":"))
			buf.WriteByte('\n')
		}

		buf.WriteString(tc.Function)

		if len(tc.Arguments) > 0 {
			buf.WriteByte(':')
			buf.WriteString(strings.Join(tc.Arguments, ":"))
		}

		buf.WriteString("\n\n")

		count++
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// One write call, so a failed run leaves no partially written suite.
	if err := os.WriteFile(string(path), buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return count, nil
}

func (s *dataFileStore) LoadDataFile(path m.Path) ([]m.TestCase, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cases []m.TestCase

	var block []string

	flush := func() error {
		if len(block) == 0 {
			return nil
		}

		tc, err := parseBlock(block)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		cases = append(cases, tc)
		block = nil

		return nil
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.TrimSpace(line) == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "#"):
			continue
		default:
			block = append(block, line)
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return cases, nil
}

// parseBlock parses one blank-line delimited case block.
func parseBlock(lines []string) (m.TestCase, error) {
	if len(lines) < 2 {
		return m.TestCase{}, fmt.Errorf("malformed test case block starting %q", lines[0])
	}

	tc := m.TestCase{Description: lines[0]}

	funcLine := lines[1]
	if strings.HasPrefix(funcLine, dependsOnPrefix) {
		if len(lines) < 3 {
			return m.TestCase{}, fmt.Errorf("test case %q has dependencies but no function line", tc.Description)
		}

		tc.Dependencies = strings.Split(strings.TrimPrefix(funcLine, dependsOnPrefix), ":")
		funcLine = lines[2]
	}

	parts := strings.Split(funcLine, ":")
	tc.Function = parts[0]

	if len(parts) > 1 {
		tc.Arguments = parts[1:]
	}

	return tc, nil
}
