package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/classify"
	"github.com/HoneyDaddy04/Voice-OS/pkg/entry"
	"github.com/HoneyDaddy04/Voice-OS/pkg/notify"
	"github.com/HoneyDaddy04/Voice-OS/pkg/store"
)

// ErrProcessing is the single generic failure surfaced to the user when a
// clip could not be classified. No entry is created in that case.
var ErrProcessing = errors.New("failed to process your request, check your connection or API key")

var ErrNotFound = errors.New("app: entry not found")

// Service provides high-level operations over the entry store, classifier
// and notification scheduler so the TUI and CLI runners can share logic.
type Service struct {
	Store      *store.Store
	Classifier classify.Classifier
	Scheduler  *notify.Scheduler
	Log        *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// ProcessClip sends one recorded clip to the classifier, maps the result
// into a typed entry, stores it at the front of the collection, and arms a
// reminder notification when the result calls for one. On any
// classification failure nothing is stored and ErrProcessing is returned.
func (s *Service) ProcessClip(ctx context.Context, clip capture.Clip, preferred *category.Category) (*entry.Entry, error) {
	if s.Store == nil || s.Classifier == nil {
		return nil, errors.New("app: service not configured")
	}

	result, err := s.Classifier.Classify(ctx, clip.Audio, clip.MimeType, preferred)
	if err != nil {
		s.logger().Error("classification failed", "err", err)
		return nil, ErrProcessing
	}

	content := classify.MapContent(result)
	e := s.Store.Create(category.Normalize(result.Category), content)

	if rem, ok := content.(*entry.Reminder); ok && rem.TriggerTime != nil && s.Scheduler != nil {
		if s.Scheduler.Schedule(rem.Text, rem.TriggerTime.Time) {
			s.logger().Info("reminder scheduled", "entry", e.ID, "at", rem.TriggerTime.String())
		}
	}

	return e, nil
}

// Entries lists stored entries, optionally filtered to one category,
// most recent first.
func (s *Service) Entries(c *category.Category) []*entry.Entry {
	if s.Store == nil {
		return nil
	}
	if c == nil {
		return s.Store.List()
	}
	return s.Store.ListByCategory(*c)
}

// Delete removes an entry permanently.
func (s *Service) Delete(id string) error {
	if s.Store == nil {
		return errors.New("app: no store configured")
	}
	if !s.Store.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// ToggleItem flips one list item's completed flag. The mutation is applied
// as a whole-entry replacement: every other item stays untouched.
func (s *Service) ToggleItem(entryID, itemID string) (*entry.Entry, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	e := s.Store.Get(entryID)
	if e == nil {
		return nil, ErrNotFound
	}
	lst, ok := e.Content.(*entry.List)
	if !ok {
		return nil, fmt.Errorf("app: entry %s is not a list", entryID)
	}

	items := make([]entry.ListItem, len(lst.Items))
	copy(items, lst.Items)
	updated := &entry.Entry{
		ID:       e.ID,
		Category: e.Category,
		Created:  e.Created,
		Content:  &entry.List{Title: lst.Title, Items: items},
	}
	if !updated.Content.(*entry.List).Toggle(itemID) {
		return nil, fmt.Errorf("app: item %s not found in entry %s", itemID, entryID)
	}
	s.Store.Update(updated)
	return updated, nil
}
