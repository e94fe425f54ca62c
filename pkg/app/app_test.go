package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/classify"
	"github.com/HoneyDaddy04/Voice-OS/pkg/entry"
	"github.com/HoneyDaddy04/Voice-OS/pkg/notify"
	"github.com/HoneyDaddy04/Voice-OS/pkg/store"
)

type fakeClassifier struct {
	result    classify.Result
	err       error
	preferred *category.Category
	calls     int
}

func (f *fakeClassifier) Classify(_ context.Context, _ []byte, _ string, preferred *category.Category) (classify.Result, error) {
	f.calls++
	f.preferred = preferred
	return f.result, f.err
}

type memSlot struct {
	data []byte
}

func (m *memSlot) Read() ([]byte, error) { return m.data, nil }
func (m *memSlot) Write(d []byte) error {
	m.data = append([]byte(nil), d...)
	return nil
}

type silentNotifier struct{ calls int }

func (s *silentNotifier) Notify(_, _ string) error {
	s.calls++
	return nil
}

func newService(c classify.Classifier) (*Service, *store.Store) {
	st := store.New(&memSlot{}, nil)
	return &Service{
		Store:      st,
		Classifier: c,
		Scheduler:  notify.NewScheduler(&silentNotifier{}),
	}, st
}

func clip() capture.Clip {
	return capture.Clip{Audio: []byte{1, 2, 3}, MimeType: "audio/wav", Duration: 2 * time.Second}
}

func TestProcessClipGroceries(t *testing.T) {
	fc := &fakeClassifier{result: classify.Result{
		Category: "LIST",
		StructuredData: map[string]any{
			"title": "Groceries",
			"items": []any{
				map[string]any{"text": "Milk"},
				map[string]any{"text": "Eggs"},
			},
		},
	}}
	svc, st := newService(fc)

	st.Create(category.Idea, &entry.Idea{CoreIdea: "older"})

	e, err := svc.ProcessClip(context.Background(), clip(), nil)
	require.NoError(t, err)
	assert.Equal(t, category.List, e.Category)

	all := svc.Entries(nil)
	require.Len(t, all, 2)
	assert.Equal(t, e.ID, all[0].ID, "new entry goes to the front")

	lst := all[0].Content.(*entry.List)
	assert.Equal(t, "Groceries", lst.Title)
	require.Len(t, lst.Items, 2)
	assert.False(t, lst.Items[0].Completed)
}

func TestProcessClipPassesPreferredCategory(t *testing.T) {
	fc := &fakeClassifier{result: classify.Result{Category: "JOURNAL"}}
	svc, _ := newService(fc)

	preferred := category.Journal
	_, err := svc.ProcessClip(context.Background(), clip(), &preferred)
	require.NoError(t, err)
	require.NotNil(t, fc.preferred)
	assert.Equal(t, category.Journal, *fc.preferred)
}

func TestProcessClipFailureStoresNothing(t *testing.T) {
	fc := &fakeClassifier{err: errors.New("upstream 500")}
	svc, st := newService(fc)

	e, err := svc.ProcessClip(context.Background(), clip(), nil)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrProcessing)
	assert.Equal(t, 0, st.Len())
}

func TestProcessClipPastReminderNotScheduled(t *testing.T) {
	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	fc := &fakeClassifier{result: classify.Result{
		Category:       "REMINDER",
		StructuredData: map[string]any{"text": "too late", "triggerTime": past},
	}}
	svc, _ := newService(fc)

	e, err := svc.ProcessClip(context.Background(), clip(), nil)
	require.NoError(t, err)

	rem := e.Content.(*entry.Reminder)
	assert.Equal(t, entry.NotificationPending, rem.NotificationStatus)
	assert.Equal(t, 0, svc.Scheduler.Pending())
}

func TestProcessClipFutureReminderScheduled(t *testing.T) {
	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	fc := &fakeClassifier{result: classify.Result{
		Category:       "REMINDER",
		StructuredData: map[string]any{"text": "call mom", "triggerTime": future},
	}}
	svc, _ := newService(fc)
	defer svc.Scheduler.Stop()

	_, err := svc.ProcessClip(context.Background(), clip(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Scheduler.Pending())
}

func TestToggleItemLeavesOthersUntouched(t *testing.T) {
	svc, st := newService(&fakeClassifier{})
	e := st.Create(category.List, &entry.List{
		Title: "Groceries",
		Items: []entry.ListItem{
			{ID: "milk", Text: "Milk"},
			{ID: "eggs", Text: "Eggs"},
		},
	})

	updated, err := svc.ToggleItem(e.ID, "milk")
	require.NoError(t, err)

	lst := updated.Content.(*entry.List)
	assert.True(t, lst.Items[0].Completed)
	assert.False(t, lst.Items[1].Completed)

	// the stored copy reflects the toggle too
	stored := st.Get(e.ID).Content.(*entry.List)
	assert.True(t, stored.Items[0].Completed)
	assert.False(t, stored.Items[1].Completed)
}

func TestToggleItemErrors(t *testing.T) {
	svc, st := newService(&fakeClassifier{})

	_, err := svc.ToggleItem("missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)

	j := st.Create(category.Journal, &entry.Journal{Summary: "not a list"})
	_, err = svc.ToggleItem(j.ID, "x")
	assert.Error(t, err)

	l := st.Create(category.List, &entry.List{Items: []entry.ListItem{{ID: "a", Text: "A"}}})
	_, err = svc.ToggleItem(l.ID, "missing-item")
	assert.Error(t, err)
}

func TestEntriesFilteredByCategory(t *testing.T) {
	svc, st := newService(&fakeClassifier{})
	st.Create(category.Idea, &entry.Idea{CoreIdea: "x"})
	st.Create(category.List, &entry.List{Title: "y"})

	ideas := category.Idea
	got := svc.Entries(&ideas)
	require.Len(t, got, 1)
	assert.Equal(t, category.Idea, got[0].Category)
}

func TestDelete(t *testing.T) {
	svc, st := newService(&fakeClassifier{})
	e := st.Create(category.Idea, &entry.Idea{CoreIdea: "bye"})

	require.NoError(t, svc.Delete(e.ID))
	assert.ErrorIs(t, svc.Delete(e.ID), ErrNotFound)
}
