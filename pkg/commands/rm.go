package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/HoneyDaddy04/Voice-OS/pkg/runner/remove"
)

func addRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "delete an entry by id",
		Example: `
voiceos rm 171dff69-f8b9-9dca-0000-0123456789ab
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:      args[0],
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
