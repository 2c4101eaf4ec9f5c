// Package entry implements the admin commands for managing entries.
package entry

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"entrykeeper/cmd/client/cmd/types"
	"entrykeeper/internal/app/client"
	"entrykeeper/internal/app/client/manager"
	"entrykeeper/internal/domain/entry"
)

// EntryCmd is the parent command for entry management.
var EntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage entries",
	Long:  `Create, list, edit and delete entries. Requires the admin role.`,
}

func getApp(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	if !app.IsAuthenticated() {
		return nil, fmt.Errorf("sign in first: entrykeeper auth login")
	}
	return app, nil
}

// terminalConfirm asks a yes/no question on stdin. Anything but an
// explicit yes declines.
func terminalConfirm(message string) bool {
	fmt.Printf("%s [y/N]: ", message)
	var answer string
	_, _ = fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func newManager(app *client.App) *manager.Manager {
	return app.Manager(terminalConfirm)
}

func printEntries(entries []entry.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tPIN\tPHONE\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Name, e.Address, e.PIN, e.Phone,
			e.UpdatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

// reportLastError prints the manager's error slot, if set, in red.
func reportLastError(m *manager.Manager) {
	if msg := m.LastError(); msg != "" {
		color.Red(msg)
	}
}
