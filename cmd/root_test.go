package cmd

import (
	"bytes"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casegen-dev/casegen/internal/controller"
)

// newTestRoot builds a fresh root command writing into a buffer, with the
// package-level UI redirected to it for the duration of the test.
func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	listFlag = false
	directoryFlag = ""

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	originalUI := ui
	ui = controller.NewSimpleUI(cmd)
	t.Cleanup(func() { ui = originalUI })

	return cmd, &buf
}

func TestRootCmdListPrintsSortedFilenames(t *testing.T) {
	dir := t.TempDir()
	cmd, buf := newTestRoot(t)

	cmd.SetArgs([]string{"--list", "-C", dir})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, path.Join(dir, "test_suite_constant_time.data"), lines[0])

	// Listing is side effect free: no data files are written.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRootCmdGeneratesAllTargets(t *testing.T) {
	dir := t.TempDir()
	cmd, buf := newTestRoot(t)

	cmd.SetArgs([]string{"-C", dir})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(path.Join(dir, "test_suite_constant_time.data"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "mbedtls_ct_memcmp")
	assert.Contains(t, string(content), "mbedtls_ct_uint_mask")
	assert.Contains(t, string(content), "mbedtls_ct_size_bool_eq")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Contains(t, buf.String(), "test_suite_constant_time")
}

func TestRootCmdTargetByDataFilePath(t *testing.T) {
	dir := t.TempDir()
	cmd, _ := newTestRoot(t)

	cmd.SetArgs([]string{"-C", dir, "tests/suites/test_suite_constant_time.data"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(path.Join(dir, "test_suite_constant_time.data"))
	require.NoError(t, err)
}

func TestRootCmdDashGeneratesNothing(t *testing.T) {
	dir := t.TempDir()
	cmd, buf := newTestRoot(t)

	cmd.SetArgs([]string{"-C", dir, "-"})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Contains(t, buf.String(), "No targets generated")
}

func TestRootCmdUnknownTargetFails(t *testing.T) {
	dir := t.TempDir()
	cmd, _ := newTestRoot(t)

	cmd.SetArgs([]string{"-C", dir, "bogus"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target "bogus"`)
}

func TestResolveTargets(t *testing.T) {
	all := []string{"alpha", "beta"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args selects all", nil, []string{"alpha", "beta"}},
		{"bare name", []string{"foo"}, []string{"foo"}},
		{"data suffix stripped", []string{"foo.data"}, []string{"foo"}},
		{"path reduced to basename", []string{"dir/foo.data"}, []string{"foo"}},
		{"dash dropped", []string{"-"}, []string{}},
		{"dash among names", []string{"-", "foo"}, []string{"foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveTargets(tt.args, all)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "casegen [TARGET...]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("list"))
	assert.NotNil(t, cmd.Flags().Lookup("directory"))
}
