package teaui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/classify"
	"github.com/HoneyDaddy04/Voice-OS/pkg/entry"
	"github.com/HoneyDaddy04/Voice-OS/pkg/store"
)

type fakeSlot struct {
	data []byte
}

func (f *fakeSlot) Read() ([]byte, error) { return f.data, nil }
func (f *fakeSlot) Write(d []byte) error {
	f.data = append([]byte(nil), d...)
	return nil
}

type fakeClassifier struct {
	result classify.Result
	err    error
	hint   *category.Category
}

func (f *fakeClassifier) Classify(_ context.Context, _ []byte, _ string, preferred *category.Category) (classify.Result, error) {
	f.hint = preferred
	return f.result, f.err
}

type fakeSource struct {
	onChunk  func([]byte)
	startErr error
	started  int
}

func (f *fakeSource) Start(onChunk func([]byte)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.onChunk = onChunk
	f.started++
	return nil
}

func (f *fakeSource) Stop() error    { return nil }
func (f *fakeSource) SampleRate() int { return 16000 }
func (f *fakeSource) Channels() int   { return 1 }

func newTestModel(fc *fakeClassifier) (Model, *fakeSource, *store.Store) {
	st := store.New(&fakeSlot{}, nil)
	src := &fakeSource{}
	svc := &app.Service{Store: st, Classifier: fc}
	return New(svc, capture.NewRecorder(src)), src, st
}

func press(t *testing.T, m Model, key tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got, cmd
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSignInToDashboardAndBack(t *testing.T) {
	m, _, _ := newTestModel(&fakeClassifier{})
	if m.view != viewSignIn {
		t.Fatalf("initial view = %d, want sign-in", m.view)
	}

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.view != viewDashboard {
		t.Fatalf("view after enter = %d, want dashboard", m.view)
	}

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.view != viewSignIn {
		t.Fatalf("view after esc = %d, want sign-in", m.view)
	}
}

func TestDashboardTileSelectionOpensTool(t *testing.T) {
	m, _, _ := newTestModel(&fakeClassifier{})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, keyRune('j'))
	if m.tile != 2 {
		t.Fatalf("tile cursor = %d, want 2", m.tile)
	}

	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.view != viewCategory {
		t.Fatalf("view = %d, want category", m.view)
	}
	if m.cat != category.Tiles()[2].Category {
		t.Fatalf("selected category = %s", m.cat)
	}
	if cmd == nil {
		t.Fatalf("opening a tool should load its entries")
	}
}

func TestDashboardCursorStopsAtEdges(t *testing.T) {
	m, _, _ := newTestModel(&fakeClassifier{})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	m, _ = press(t, m, keyRune('k'))
	if m.tile != 0 {
		t.Fatalf("tile cursor moved above first tile: %d", m.tile)
	}

	for range 10 {
		m, _ = press(t, m, keyRune('j'))
	}
	if m.tile != len(category.Tiles())-1 {
		t.Fatalf("tile cursor = %d, want last tile", m.tile)
	}
}

func TestEscFromToolClearsSelection(t *testing.T) {
	m, _, st := newTestModel(&fakeClassifier{})
	st.Create(category.List, &entry.List{Title: "Groceries"})

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		next, _ := m.Update(cmd())
		m = next.(Model)
	}
	if len(m.entries) == 0 {
		t.Fatalf("expected entries after opening tool")
	}

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.view != viewDashboard {
		t.Fatalf("view = %d, want dashboard", m.view)
	}
	if m.entries != nil || m.cursor != 0 || m.itemPick != 0 {
		t.Fatalf("leaving the tool must clear its selection state")
	}
}

func TestRecordToggleRunsFullCycle(t *testing.T) {
	fc := &fakeClassifier{result: classify.Result{
		Category:       "IDEA",
		StructuredData: map[string]any{"coreIdea": "solar kiln"},
	}}
	m, src, st := newTestModel(fc)
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	m, _ = press(t, m, keyRune('r'))
	if !m.recording {
		t.Fatalf("expected recording after first r")
	}
	if src.started != 1 {
		t.Fatalf("source started %d times", src.started)
	}
	src.onChunk([]byte{1, 2, 3, 4})

	m, stopCmd := press(t, m, keyRune('r'))
	if m.recording {
		t.Fatalf("expected recording stopped after second r")
	}
	clip, ok := stopCmd().(clipMsg)
	if !ok {
		t.Fatalf("expected clipMsg from stop command")
	}

	next, classifyCmd := m.Update(clip)
	m = next.(Model)
	if !m.processing {
		t.Fatalf("expected processing while classifying")
	}

	var done classifiedMsg
	found := false
	for _, msg := range runCmd(classifyCmd) {
		if c, ok := msg.(classifiedMsg); ok {
			done = c
			found = true
		}
	}
	if !found {
		t.Fatalf("expected classifiedMsg, classification failed")
	}
	next, _ = m.Update(done)
	m = next.(Model)
	if m.processing {
		t.Fatalf("processing flag should clear after classification")
	}
	if m.recorder.Phase() != capture.PhaseIdle {
		t.Fatalf("recorder phase = %s, want idle", m.recorder.Phase())
	}

	if fc.hint == nil || *fc.hint != m.cat {
		t.Fatalf("classifier hint = %v, want open tool %s", fc.hint, m.cat)
	}
	if st.Len() != 1 {
		t.Fatalf("store has %d entries, want 1", st.Len())
	}
}

func TestRecordUnavailableWhileProcessing(t *testing.T) {
	m, src, _ := newTestModel(&fakeClassifier{})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.processing = true

	m, _ = press(t, m, keyRune('r'))
	if m.recording {
		t.Fatalf("recording must not start while processing")
	}
	if src.started != 0 {
		t.Fatalf("source must not start while processing")
	}
	if !strings.Contains(m.status, "still processing") {
		t.Fatalf("status = %q", m.status)
	}

	// navigation stays available
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.view != viewDashboard {
		t.Fatalf("navigation blocked while processing")
	}
}

func TestClassifyErrorKeepsFeedAndFreesRecorder(t *testing.T) {
	m, _, st := newTestModel(&fakeClassifier{})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	m, _ = press(t, m, keyRune('r'))
	m, stopCmd := press(t, m, keyRune('r'))
	next, _ := m.Update(stopCmd())
	m = next.(Model)

	next, _ = m.Update(classifyErrMsg{err: app.ErrProcessing})
	m = next.(Model)
	if m.processing {
		t.Fatalf("processing flag should clear on error")
	}
	if m.recorder.Phase() != capture.PhaseIdle {
		t.Fatalf("recorder phase = %s, want idle", m.recorder.Phase())
	}
	if !strings.Contains(m.status, "ERR") {
		t.Fatalf("status = %q, want error marker", m.status)
	}
	if st.Len() != 0 {
		t.Fatalf("failed classification must not store an entry")
	}
}

func TestItemToggleBySpace(t *testing.T) {
	m, _, st := newTestModel(&fakeClassifier{})
	e := st.Create(category.List, &entry.List{Title: "Groceries", Items: []entry.ListItem{
		{ID: "milk", Text: "Milk"},
		{ID: "eggs", Text: "Eggs"},
	}})

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.tile = 1 // lists tile
	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	next, _ := m.Update(cmd())
	m = next.(Model)

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.itemPick != 1 {
		t.Fatalf("itemPick = %d, want 1", m.itemPick)
	}

	m, toggleCmd := press(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if toggleCmd == nil {
		t.Fatalf("expected reload command after toggle")
	}

	stored := st.Get(e.ID).Content.(*entry.List)
	if stored.Items[0].Completed || !stored.Items[1].Completed {
		t.Fatalf("toggle hit the wrong item: %+v", stored.Items)
	}
}

func TestDeleteEntry(t *testing.T) {
	m, _, st := newTestModel(&fakeClassifier{})
	st.Create(category.Idea, &entry.Idea{CoreIdea: "gone soon"})

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	next, _ := m.Update(cmd())
	m = next.(Model)

	m, _ = press(t, m, keyRune('d'))
	if st.Len() != 0 {
		t.Fatalf("store has %d entries after delete, want 0", st.Len())
	}
}

func TestStoreChangedReloadsOpenFeed(t *testing.T) {
	fc := &fakeClassifier{}
	slot := &fakeSlot{}
	st := store.New(slot, nil)
	svc := &app.Service{Store: st, Classifier: fc}
	m := New(svc, capture.NewRecorder(&fakeSource{}))

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	next, _ := m.Update(cmd())
	m = next.(Model)
	if len(m.entries) != 0 {
		t.Fatalf("expected empty feed")
	}

	// another process rewrites the slot
	other := store.New(slot, nil)
	other.Create(m.cat, &entry.Idea{CoreIdea: "external"})

	next, reload := m.Update(storeChangedMsg{})
	m = next.(Model)
	if reload == nil {
		t.Fatalf("expected reload command after external change")
	}
	if st.Len() != 1 {
		t.Fatalf("store not reloaded from slot")
	}
}

// runCmd executes a command, flattening batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
