package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/casegen-dev/casegen/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "View a previously generated data file",
		Long:  "View the test cases of a previously generated .data file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			file := m.Path(args[0])

			cases, err := store.LoadDataFile(file)
			if err != nil {
				return err
			}

			return ui.DisplayCases(file, cases)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
