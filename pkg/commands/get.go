package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/commands/options"
	"github.com/HoneyDaddy04/Voice-OS/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	long := strings.Builder{}
	long.WriteString("Get all entries, or only the feed for one category.\n\n")
	long.WriteString("Categories and aliases:\n")

	validArgs := make([]string, 0, len(category.Tiles()))
	for _, t := range category.Tiles() {
		long.WriteString(t.Symbol + ": " + strings.Join(t.Aliases, ", ") + "\n")
		validArgs = append(validArgs, t.Aliases[0])
	}

	cmd := &cobra.Command{
		Use:   "get [category]",
		Short: "get stored entries",
		Long:  long.String(),
		Example: `
voiceos get
voiceos get lists
voiceos get reminders --show-id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many categories set, confused")
			}
			if len(args) == 0 {
				return nil
			}
			return co.ResolveCategory(args[0])
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:   io.ShowID,
				Category: co.Category,
				Service:  svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
