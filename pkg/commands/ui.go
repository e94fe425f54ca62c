package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	teaui "github.com/HoneyDaddy04/Voice-OS/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
voiceos ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, slot, cfg, err := newService()
			if err != nil {
				return err
			}
			recorder := capture.NewRecorder(capture.NewMicSource(cfg.SampleRate()))
			return teaui.Run(context.Background(), svc, recorder, slot)
		},
	}

	topLevel.AddCommand(cmd)
}
