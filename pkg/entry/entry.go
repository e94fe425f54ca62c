package entry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
)

// Entry is one persisted unit of captured content. Identity fields are fixed
// at creation; only Content mutates, and its variant never changes.
type Entry struct {
	ID       string
	Category category.Category
	Created  Timestamp
	Content  Content
}

// New allocates a fresh entry for the given content, stamped with now.
func New(c category.Category, content Content) *Entry {
	return &Entry{
		ID:       uuid.NewString(),
		Category: c,
		Created:  Timestamp{Time: time.Now()},
		Content:  content,
	}
}

// Title returns a one-line headline for list rendering.
func (e *Entry) Title() string {
	switch c := e.Content.(type) {
	case *Idea:
		return c.CoreIdea
	case *List:
		return c.Title
	case *Reminder:
		return c.Text
	case *Journal:
		return c.Summary
	case *Form:
		return c.Title
	}
	return ""
}

type envelope struct {
	ID       string            `json:"id"`
	Category category.Category `json:"category"`
	Created  Timestamp         `json:"created"`
	Content  json.RawMessage   `json:"content"`
}

func (e *Entry) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(e.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		ID:       e.ID,
		Category: e.Category,
		Created:  e.Created,
		Content:  raw,
	})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	content, err := unmarshalContent(env.Category, env.Content)
	if err != nil {
		return fmt.Errorf("entry %s: %w", env.ID, err)
	}
	e.ID = env.ID
	e.Category = env.Category
	e.Created = env.Created
	e.Content = content
	return nil
}

func unmarshalContent(c category.Category, raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	switch c {
	case category.List:
		v := &List{}
		return v, json.Unmarshal(raw, v)
	case category.Reminder:
		v := &Reminder{}
		return v, json.Unmarshal(raw, v)
	case category.Journal:
		v := &Journal{}
		return v, json.Unmarshal(raw, v)
	case category.Form:
		v := &Form{}
		return v, json.Unmarshal(raw, v)
	default:
		v := &Idea{}
		return v, json.Unmarshal(raw, v)
	}
}
