package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	"github.com/HoneyDaddy04/Voice-OS/pkg/commands/options"
	runner "github.com/HoneyDaddy04/Voice-OS/pkg/runner/capture"
)

func addCapture(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "capture [category]",
		Short: "record a clip and let the classifier route it",
		Long: `Record from the microphone until enter is pressed, classify the clip
and store the resulting entry. Passing a category hints the classifier
toward that tool; without one the clip is routed automatically.`,
		Example: `
voiceos capture
voiceos capture reminders
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
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cfg, err := newService()
			if err != nil {
				return err
			}
			s := runner.Capture{
				Service:   svc,
				Recorder:  capture.NewRecorder(capture.NewMicSource(cfg.SampleRate())),
				Preferred: co.Category,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
