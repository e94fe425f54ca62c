package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/entry"
	"github.com/HoneyDaddy04/Voice-OS/pkg/runner/tea/internal/theme"
	"github.com/HoneyDaddy04/Voice-OS/pkg/store"
)

// Navigation states
type view int

const (
	viewSignIn view = iota
	viewDashboard
	viewCategory
)

// Model contains UI state
type Model struct {
	svc      *app.Service
	recorder *capture.Recorder
	ctx      context.Context
	changes  <-chan store.Event

	view     view
	tile     int               // dashboard tile cursor
	cat      category.Category // selected tool, valid in viewCategory
	entries  []*entry.Entry
	cursor   int // entry cursor in the category feed
	itemPick int // list-item cursor inside the selected entry

	recording  bool
	processing bool
	elapsed    int
	spin       spinner.Model

	status string

	termWidth  int
	termHeight int

	th theme.Theme
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, recorder *capture.Recorder) Model {
	return Model{
		svc:      svc,
		recorder: recorder,
		ctx:      context.Background(),
		view:     viewSignIn,
		status:   "enter to sign in, q to quit",
		spin:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		th:       theme.Default(),
	}
}

// messages
type errMsg struct{ err error }
type entriesLoadedMsg struct{ entries []*entry.Entry }
type clipMsg struct{ clip capture.Clip }
type classifiedMsg struct{ e *entry.Entry }
type classifyErrMsg struct{ err error }
type tickMsg time.Time
type storeChangedMsg struct{}

// Init starts the external-change watcher, when one is wired.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m *Model) loadEntries() tea.Cmd {
	cat := m.cat
	return func() tea.Msg {
		return entriesLoadedMsg{entries: m.svc.Entries(&cat)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case errMsg:
		m.status = "ERR: " + msg.err.Error()

	case storeChangedMsg:
		m.svc.Store.Reload()
		if m.view == viewCategory {
			cmds = append(cmds, m.loadEntries())
		}
		cmds = append(cmds, m.waitForChange())

	case entriesLoadedMsg:
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = len(m.entries) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.itemPick = 0

	case tickMsg:
		if m.recording {
			m.elapsed = int(m.recorder.Elapsed().Seconds())
			cmds = append(cmds, tickCmd())
		}

	case clipMsg:
		m.processing = true
		m.status = "processing..."
		cmds = append(cmds, m.classify(msg.clip), m.spin.Tick)

	case spinner.TickMsg:
		if m.processing {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case classifiedMsg:
		m.recorder.Finish()
		m.processing = false
		m.status = fmt.Sprintf("captured %s", category.TileFor(msg.e.Category).Label)
		cmds = append(cmds, m.loadEntries())

	case classifyErrMsg:
		m.recorder.Finish()
		m.processing = false
		m.status = "ERR: " + msg.err.Error()

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewSignIn:
			switch msg.String() {
			case "enter":
				m.view = viewDashboard
				m.status = "j/k choose a tool, enter to open, q to sign out"
			case "q":
				return m, tea.Quit
			}

		case viewDashboard:
			switch msg.String() {
			case "j", "down":
				if m.tile < len(category.Tiles())-1 {
					m.tile++
				}
			case "k", "up":
				if m.tile > 0 {
					m.tile--
				}
			case "enter":
				m.cat = category.Tiles()[m.tile].Category
				m.view = viewCategory
				m.cursor = 0
				m.itemPick = 0
				m.status = "r record, j/k move, space toggle item, d delete, esc back"
				cmds = append(cmds, m.loadEntries())
			case "q", "esc":
				m.view = viewSignIn
				m.status = "enter to sign in, q to quit"
			}

		case viewCategory:
			switch msg.String() {
			case "esc":
				// leaving clears the tool selection
				m.view = viewDashboard
				m.entries = nil
				m.cursor = 0
				m.itemPick = 0
				m.status = "j/k choose a tool, enter to open, q to sign out"
			case "j", "down":
				if m.cursor < len(m.entries)-1 {
					m.cursor++
					m.itemPick = 0
				}
			case "k", "up":
				if m.cursor > 0 {
					m.cursor--
					m.itemPick = 0
				}
			case "tab":
				if lst, ok := m.currentList(); ok && len(lst.Items) > 0 {
					m.itemPick = (m.itemPick + 1) % len(lst.Items)
				}
			case "shift+tab":
				if lst, ok := m.currentList(); ok && len(lst.Items) > 0 {
					m.itemPick = (m.itemPick - 1 + len(lst.Items)) % len(lst.Items)
				}
			case " ", "space":
				if lst, ok := m.currentList(); ok && m.itemPick < len(lst.Items) {
					e := m.entries[m.cursor]
					if _, err := m.svc.ToggleItem(e.ID, lst.Items[m.itemPick].ID); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "toggled"
						cmds = append(cmds, m.loadEntries())
					}
				}
			case "d":
				if m.cursor < len(m.entries) {
					if err := m.svc.Delete(m.entries[m.cursor].ID); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "deleted"
						cmds = append(cmds, m.loadEntries())
					}
				}
			case "r":
				cmds = append(cmds, m.toggleRecording()...)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// toggleRecording drives the Idle→Recording→Processing cycle. The record
// control is unavailable while a clip is being classified; navigation is
// not.
func (m *Model) toggleRecording() []tea.Cmd {
	if m.processing {
		m.status = "still processing, hang on"
		return nil
	}

	if !m.recording {
		if err := m.recorder.Start(); err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		m.recording = true
		m.elapsed = 0
		m.status = "recording... r to stop"
		return []tea.Cmd{tickCmd()}
	}

	m.recording = false
	rec := m.recorder
	return []tea.Cmd{func() tea.Msg {
		clip, err := rec.Stop()
		if err != nil {
			return errMsg{err}
		}
		return clipMsg{clip: clip}
	}}
}

func (m *Model) classify(clip capture.Clip) tea.Cmd {
	hint := m.cat
	return func() tea.Msg {
		e, err := m.svc.ProcessClip(m.ctx, clip, &hint)
		if err != nil {
			return classifyErrMsg{err}
		}
		return classifiedMsg{e: e}
	}
}

func (m *Model) currentList() (*entry.List, bool) {
	if m.cursor >= len(m.entries) {
		return nil, false
	}
	lst, ok := m.entries[m.cursor].Content.(*entry.List)
	return lst, ok
}

// View renders the active navigation state plus a status footer.
func (m Model) View() string {
	var body string
	switch m.view {
	case viewSignIn:
		body = m.viewSignIn()
	case viewDashboard:
		body = m.viewDashboard()
	case viewCategory:
		body = m.viewCategory()
	}
	status := m.th.Status.Render("[" + m.phaseLabel() + "] " + m.status)
	return body + "\n\n" + status
}

func (m Model) phaseLabel() string {
	switch {
	case m.processing:
		return m.spin.View() + " PROCESSING"
	case m.recording:
		return fmt.Sprintf("REC %ds", m.elapsed)
	default:
		return "IDLE"
	}
}

func (m Model) viewSignIn() string {
	lines := []string{
		"",
		m.th.AppTitle.Render("VOICE OS"),
		m.th.Subtitle.Render("Capture your thoughts, plans, and reflections with the speed of sound."),
		"",
		m.th.Faint.Render("press enter to sign in with voice"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDashboard() string {
	lines := []string{
		m.th.AppTitle.Render("DASHBOARD"),
		m.th.Subtitle.Render("select your tool"),
		"",
	}
	for i, t := range category.Tiles() {
		label := fmt.Sprintf("%s %s", t.Symbol, t.Label)
		desc := t.Description
		style := m.th.Tile.BorderForeground(theme.Dim(t.Category))
		if i == m.tile {
			style = m.th.TileSelected.BorderForeground(theme.Accent(t.Category))
			label = lipgloss.NewStyle().Foreground(theme.Accent(t.Category)).Bold(true).Render(label)
		}
		tile := style.Render(label + "\n" + m.th.Faint.Render(desc))
		lines = append(lines, tile)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewCategory() string {
	tile := category.TileFor(m.cat)
	header := lipgloss.NewStyle().Foreground(theme.Accent(m.cat)).Bold(true).
		Render(fmt.Sprintf("%s %s SUITE", tile.Symbol, strings.ToUpper(tile.Label)))

	lines := []string{header, ""}

	if len(m.entries) == 0 && !m.processing {
		lines = append(lines, m.th.Faint.Render("no entries yet — press r to record"))
	}

	for i, e := range m.entries {
		lines = append(lines, m.renderCard(e, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) cardWidth() int {
	w := m.termWidth - 6
	if w < 24 {
		w = 64
	}
	if w > 100 {
		w = 100
	}
	return w
}

// renderCard dispatches on the entry's category tag to choose the
// presentation variant.
func (m Model) renderCard(e *entry.Entry, selected bool) string {
	w := m.cardWidth()
	marker := "  "
	if selected {
		marker = "» "
	}

	head := marker + m.th.CardTitle.Render(e.Title()) +
		m.th.Faint.Render("  "+e.Created.Local().Format("Jan 2, 3:04 PM"))
	lines := []string{head}

	switch c := e.Content.(type) {
	case *entry.Idea:
		if c.Summary != "" {
			lines = append(lines, m.th.CardBody.Render(wordwrap.String("  "+c.Summary, w)))
		}
		if len(c.Tags) > 0 {
			lines = append(lines, m.th.Tag.Render("  #"+strings.Join(c.Tags, " #")))
		}
	case *entry.List:
		for i, item := range c.Items {
			pick := "  "
			if selected && i == m.itemPick {
				pick = "→ "
			}
			if item.Completed {
				lines = append(lines, "  "+pick+m.th.Done.Render("✘ "+item.Text))
			} else {
				lines = append(lines, "  "+pick+"● "+item.Text)
			}
		}
	case *entry.Reminder:
		when := "no trigger time"
		if c.TriggerTime != nil {
			when = c.TriggerTime.Local().Format("Jan 2, 3:04 PM")
		}
		lines = append(lines, m.th.Faint.Render(fmt.Sprintf("  %s (%s)", when, c.NotificationStatus)))
	case *entry.Journal:
		if c.Transcript != "" {
			lines = append(lines, m.th.CardBody.Render(wordwrap.String("  "+c.Transcript, w)))
		}
		lines = append(lines, m.th.Tag.Render("  tone: "+c.EmotionalTone))
	case *entry.Form:
		for _, f := range c.Fields {
			lines = append(lines, m.th.CardBody.Render(fmt.Sprintf("  %s (%s)", f.Label, f.InputKind)))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
