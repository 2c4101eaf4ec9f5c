package entry

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"entrykeeper/internal/app/client/manager"
)

var fieldPrompts = []struct {
	field manager.Field
	label string
}{
	{manager.FieldName, "Name"},
	{manager.FieldAddress, "Address"},
	{manager.FieldPIN, "PIN"},
	{manager.FieldPhone, "Phone"},
}

func readLine(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new entry",
	Long:  `Create a new entry. All four fields are required.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		m := newManager(app)
		reader := bufio.NewReader(os.Stdin)

		for _, p := range fieldPrompts {
			value, err := readLine(reader, p.label)
			if err != nil {
				return err
			}
			m.SetField(p.field, value)
		}

		if err := m.Submit(cmd.Context()); err != nil {
			if errors.Is(err, manager.ErrDraftIncomplete) {
				return fmt.Errorf("all fields are required")
			}
			reportLastError(m)
			return fmt.Errorf("failed to save entry: %w", err)
		}

		color.Green("Entry created.")
		printEntries(m.Entries())
		return nil
	},
}
