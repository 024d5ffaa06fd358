// Package model defines the data structures for test data generation.
package model

// Path represents a file system path.
type Path string

// TestCase is one generated test: a human readable description, the function
// under test and its ordered string arguments. Dependencies lists the
// preconditions the runner checks before executing the case; it is empty for
// unconditional cases.
type TestCase struct {
	Description  string
	Function     string
	Arguments    []string
	Dependencies []string
}
