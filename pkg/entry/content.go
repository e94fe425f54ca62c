package entry

import "github.com/HoneyDaddy04/Voice-OS/pkg/category"

// Content is the per-category payload of an entry. The sum is closed: one
// variant per category, dispatched exhaustively by the mapper and renderers.
type Content interface {
	Category() category.Category
	content()
}

// Idea is the default capture bucket for unstructured thoughts.
type Idea struct {
	Transcript string   `json:"transcript"`
	Summary    string   `json:"summary"`
	CoreIdea   string   `json:"coreIdea"`
	Tags       []string `json:"tags"`
}

func (*Idea) Category() category.Category { return category.Idea }
func (*Idea) content()                    {}

// ListItem is one line of a List. Item ids are unique within the entry.
type ListItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type List struct {
	Title string     `json:"title"`
	Items []ListItem `json:"items"`
}

func (*List) Category() category.Category { return category.List }
func (*List) content()                    {}

// Toggle flips the completed flag for the item with the given id, leaving
// every other item unchanged. Reports whether the item was found.
func (l *List) Toggle(itemID string) bool {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items[i].Completed = !l.Items[i].Completed
			return true
		}
	}
	return false
}

// NotificationStatus tracks the delivery state of a reminder alert.
// Transitions go pending→sent or pending→failed only, never backwards.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

type Reminder struct {
	Text               string             `json:"text"`
	TriggerTime        *Timestamp         `json:"triggerTime,omitempty"`
	NotificationStatus NotificationStatus `json:"notificationStatus"`
}

func (*Reminder) Category() category.Category { return category.Reminder }
func (*Reminder) content()                    {}

// MarkSent advances pending→sent. Reports whether the transition applied.
func (r *Reminder) MarkSent() bool {
	if r.NotificationStatus != NotificationPending {
		return false
	}
	r.NotificationStatus = NotificationSent
	return true
}

// MarkFailed advances pending→failed. Reports whether the transition applied.
func (r *Reminder) MarkFailed() bool {
	if r.NotificationStatus != NotificationPending {
		return false
	}
	r.NotificationStatus = NotificationFailed
	return true
}

type Journal struct {
	Transcript    string `json:"transcript"`
	Summary       string `json:"summary"`
	EmotionalTone string `json:"emotionalTone"`
}

func (*Journal) Category() category.Category { return category.Journal }
func (*Journal) content()                    {}

// FormField describes one input of a generated form. Fields are fixed at
// creation.
type FormField struct {
	Label     string `json:"label"`
	InputKind string `json:"type"`
}

type Form struct {
	Title     string              `json:"title"`
	Fields    []FormField         `json:"fields"`
	Responses []map[string]string `json:"responses"`
}

func (*Form) Category() category.Category { return category.Form }
func (*Form) content()                    {}

// AppendResponse records one submitted response. Responses are append-only.
func (f *Form) AppendResponse(r map[string]string) {
	f.Responses = append(f.Responses, r)
}
