package entry

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"entrykeeper/internal/app/client/manager"
	"entrykeeper/internal/domain/entry"
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Long: `Edit an existing entry. Each field shows its current value;
press enter to keep it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		m := newManager(app)
		if err := m.Refresh(cmd.Context()); err != nil {
			reportLastError(m)
			return fmt.Errorf("failed to load entries: %w", err)
		}

		var target *entry.Entry
		for _, e := range m.Entries() {
			if e.ID == args[0] {
				target = &e
				break
			}
		}
		if target == nil {
			return fmt.Errorf("entry not found: %s", args[0])
		}

		m.BeginEdit(*target)
		reader := bufio.NewReader(os.Stdin)

		current := map[manager.Field]string{
			manager.FieldName:    target.Name,
			manager.FieldAddress: target.Address,
			manager.FieldPIN:     target.PIN,
			manager.FieldPhone:   target.Phone,
		}

		for _, p := range fieldPrompts {
			value, err := readLine(reader, fmt.Sprintf("%s [%s]", p.label, current[p.field]))
			if err != nil {
				return err
			}
			if value != "" {
				m.SetField(p.field, value)
			}
		}

		if err := m.Submit(cmd.Context()); err != nil {
			if errors.Is(err, manager.ErrDraftIncomplete) {
				return fmt.Errorf("all fields are required")
			}
			reportLastError(m)
			return fmt.Errorf("failed to save entry: %w", err)
		}

		color.Green("Entry updated.")
		printEntries(m.Entries())
		return nil
	},
}
