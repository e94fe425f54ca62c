package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	"github.com/HoneyDaddy04/Voice-OS/pkg/store"
)

// Run opens the full-screen UI. When the slot is watchable, external writes
// to the store refresh the view.
func Run(ctx context.Context, svc *app.Service, recorder *capture.Recorder, slot store.Slot) error {
	m := New(svc, recorder)
	if slot != nil {
		if events, err := store.Watch(ctx, slot); err == nil {
			m.changes = events
		}
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
