package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
	"github.com/HoneyDaddy04/Voice-OS/pkg/classify"
	"github.com/HoneyDaddy04/Voice-OS/pkg/notify"
	"github.com/HoneyDaddy04/Voice-OS/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "voiceos",
		Short: base.Wrap80("Voice capture suite on the command line: record a clip, let the classifier route it to Ideas, Lists, Reminders, Journal or Forms."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addCapture(topLevel)
	addGet(topLevel)
	addRm(topLevel)
	addToggle(topLevel)
	addVersion(topLevel)
	addCompletion(topLevel)
}

// newService wires the shared store, classifier and scheduler for one
// command invocation.
func newService() (*app.Service, store.Slot, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	slot, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log := slog.Default()
	svc := &app.Service{
		Store:      store.New(slot, log),
		Classifier: classify.NewClient(cfg.BaseURL(), cfg.Model(), cfg.APIKey()),
		Scheduler:  notify.NewScheduler(nil),
		Log:        log,
	}
	return svc, slot, cfg, nil
}
