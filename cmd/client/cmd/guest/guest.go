// Package guest implements the read-only guest commands.
package guest

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"entrykeeper/cmd/client/cmd/types"
	"entrykeeper/internal/app/client"
)

// GuestCmd is the parent command for the read-only view.
var GuestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Browse entries read-only",
	Long:  `Browse entries without the ability to change them.`,
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}
		if !app.IsAuthenticated() {
			return fmt.Errorf("sign in first: entrykeeper auth login")
		}

		v := app.Viewer()
		if err := v.Refresh(cmd.Context()); err != nil {
			if len(v.Entries()) == 0 {
				return fmt.Errorf("failed to load entries: %w", err)
			}
			// A cached snapshot is better than nothing.
			color.Yellow("Server unreachable, showing the last known snapshot.")
		}

		entries := v.Entries()
		if len(entries) == 0 {
			fmt.Println("No entries found")
			return nil
		}

		if v.Stale() {
			color.Yellow("Data may be out of date.")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tADDRESS\tPIN\tPHONE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Address, e.PIN, e.Phone)
		}
		w.Flush()

		return nil
	},
}
