package entry

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Long:  `Delete an entry by id. Asks for confirmation first.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		m := newManager(app)
		confirmed, err := m.Delete(cmd.Context(), args[0])
		if err != nil {
			reportLastError(m)
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}

		color.Green("Entry deleted.")
		printEntries(m.Entries())
		return nil
	},
}
