// Package role implements the role selection command shown after
// sign-in.
package role

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"entrykeeper/cmd/client/cmd/types"
	"entrykeeper/internal/app/client"
	"entrykeeper/internal/app/client/role"
)

// cliRouter maps navigation destinations to command hints. The CLI has
// no persistent screens, so routing prints where to go next.
type cliRouter struct{}

func (cliRouter) Navigate(dest role.Destination) {
	switch dest {
	case role.DestAdmin:
		fmt.Println("Admin role selected. Manage entries with: entrykeeper entry list|add|edit|delete")
	case role.DestGuest:
		fmt.Println("Guest role selected. Browse entries with: entrykeeper guest list")
	case role.DestLogin:
		fmt.Println("Signed out. Sign in again with: entrykeeper auth login")
	case role.DestRoleSelect:
		fmt.Println("Pick a role with: entrykeeper role")
	}
}

var RoleCmd = &cobra.Command{
	Use:   "role [admin|guest]",
	Short: "Choose a role",
	Long: `Choose how to use EntryKeeper for this session.

Admins can create, edit and delete entries. Guests get a read-only view.
The choice is local to this client and can be changed at any time by
running the command again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		if !app.IsAuthenticated() {
			return fmt.Errorf("sign in first: entrykeeper auth login")
		}

		selector := role.New(app, cliRouter{}, app.Logger())

		var choice string
		if len(args) == 1 {
			choice = args[0]
		} else {
			fmt.Print("Role [admin/guest]: ")
			_, _ = fmt.Scanln(&choice)
		}
		choice = strings.ToLower(strings.TrimSpace(choice))

		if choice == "" {
			_, err := selector.Confirm()
			return err
		}

		if err := selector.Select(role.Role(choice)); err != nil {
			return err
		}

		if _, err := selector.Confirm(); err != nil {
			return err
		}

		color.Green("Role set: %s", selector.Selected())
		return nil
	},
}
