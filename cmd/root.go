// Package cmd provides the root command and CLI setup for casegen.
package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casegen-dev/casegen/internal/adapter"
	"github.com/casegen-dev/casegen/internal/controller"
	"github.com/casegen-dev/casegen/internal/domain"
	_ "github.com/casegen-dev/casegen/internal/domain/variants"
)

var store adapter.DataFileStore
var ui controller.UI

func init() {
	store = adapter.NewDataFileStore()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

var listFlag bool
var directoryFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casegen [TARGET...]",
		Short: "Generate test data files",
		Long: `Casegen renders every registered variant family into flat .data files
consumable by the test runner.

Targets may be bare names, previously generated file paths, or "-" as a
no-op placeholder token for scripted invocations:
  - casegen                                         generate every target
  - casegen test_suite_constant_time                generate one target
  - casegen tests/suites/test_suite_constant_time.data
  - casegen --list                                  print target locations only`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := domain.NewGenerator(
				domain.Options{Directory: directoryFlag},
				domain.Targets(),
				store,
			)

			if listFlag {
				for _, name := range generator.TargetNames() {
					cmd.Println(generator.FilenameFor(name))
				}

				return nil
			}

			names := resolveTargets(args, generator.TargetNames())
			results := make([]controller.TargetResult, 0, len(names))

			for _, name := range names {
				count, err := generator.GenerateTarget(name)
				if err != nil {
					return err
				}

				results = append(results, controller.TargetResult{
					Name:  name,
					File:  generator.FilenameFor(name),
					Cases: count,
				})
			}

			return ui.DisplaySummary(results)
		},
	}
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list the output file of every target and exit")
	cmd.Flags().StringVarP(&directoryFlag, "directory", "C", "", `output directory for generated data files (default "tests/suites")`)

	return cmd
}

// resolveTargets maps CLI arguments to target names. Callers may pass bare
// names or data file paths; a literal "-" is dropped so scripts can pass an
// explicitly empty selection through a uniform argument pattern. No arguments
// selects every target, sorted.
func resolveTargets(args []string, all []string) []string {
	if len(args) == 0 {
		return all
	}

	names := make([]string, 0, len(args))

	for _, arg := range args {
		if arg == "-" {
			continue
		}

		names = append(names, path.Base(strings.TrimSuffix(arg, ".data")))
	}

	return names
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
