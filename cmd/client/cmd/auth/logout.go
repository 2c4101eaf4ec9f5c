package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"entrykeeper/cmd/client/cmd/types"
	"entrykeeper/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Long: `Revoke the current session on the server and remove the saved
token. If the server cannot be reached the token is kept so the sign-out
can be retried.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.SignOut(ctx); err != nil {
			return fmt.Errorf("sign-out failed: %w", err)
		}

		color.Green("Signed out.")

		return nil
	},
}
