package entry

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		m := newManager(app)
		if err := m.Refresh(cmd.Context()); err != nil {
			reportLastError(m)
			return fmt.Errorf("failed to load entries: %w", err)
		}

		printEntries(m.Entries())
		return nil
	},
}
