package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"entrykeeper/cmd/client/cmd/auth"
	"entrykeeper/cmd/client/cmd/entry"
	"entrykeeper/cmd/client/cmd/guest"
	"entrykeeper/cmd/client/cmd/role"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show client status",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Printf("Server: %s\n", cfg.ServerAddress)

		if err := app.CheckConnection(); err != nil {
			fmt.Printf("Connection: unavailable (%v)\n", err)
		} else {
			fmt.Println("Connection: ok")
		}

		if app.IsAuthenticated() {
			fmt.Println("Session: signed in")
		} else {
			fmt.Println("Session: signed out")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(role.RoleCmd)

	rootCmd.AddCommand(entry.EntryCmd)
	entry.EntryCmd.AddCommand(entry.ListCmd)
	entry.EntryCmd.AddCommand(entry.AddCmd)
	entry.EntryCmd.AddCommand(entry.EditCmd)
	entry.EntryCmd.AddCommand(entry.DeleteCmd)

	rootCmd.AddCommand(guest.GuestCmd)
	guest.GuestCmd.AddCommand(guest.ListCmd)

	rootCmd.AddCommand(statusCmd)
}
