package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/HoneyDaddy04/Voice-OS/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <entry-id> <item-id>",
		Short: "toggle a list item's completed flag",
		Example: `
voiceos toggle <entry-id> <item-id>
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}
			s := toggle.Toggle{
				EntryID: args[0],
				ItemID:  args[1],
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
