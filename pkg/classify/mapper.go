package classify

import (
	"github.com/google/uuid"

	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/entry"
)

// Result is the classifier's wire response: a category tag plus an untyped
// structured payload.
type Result struct {
	Category       string         `json:"type"`
	StructuredData map[string]any `json:"structuredData"`
}

// Placeholders applied when the classifier omits a field.
const (
	DefaultCoreIdea  = "General Idea"
	DefaultListTitle = "Voice List"
	DefaultReminder  = "Reminder"
	DefaultFormTitle = "Voice Form"
	DefaultTone      = "Neutral"
)

// MapContent translates a classification result into the content variant for
// its category. Absent or malformed fields degrade to defaults; unknown
// category tags map to the Idea shape. Never fails.
func MapContent(r Result) entry.Content {
	data := r.StructuredData
	switch category.Normalize(r.Category) {
	case category.List:
		return &entry.List{
			Title: str(data, "title", DefaultListTitle),
			Items: listItems(data["items"]),
		}
	case category.Reminder:
		return &entry.Reminder{
			Text:               str(data, "text", DefaultReminder),
			TriggerTime:        timestamp(data["triggerTime"]),
			NotificationStatus: entry.NotificationPending,
		}
	case category.Journal:
		return &entry.Journal{
			Transcript:    str(data, "transcript", ""),
			Summary:       str(data, "summary", ""),
			EmotionalTone: str(data, "emotionalTone", DefaultTone),
		}
	case category.Form:
		return &entry.Form{
			Title:     str(data, "title", DefaultFormTitle),
			Fields:    formFields(data["fields"]),
			Responses: []map[string]string{},
		}
	default:
		return &entry.Idea{
			Transcript: str(data, "transcript", ""),
			Summary:    str(data, "summary", ""),
			CoreIdea:   str(data, "coreIdea", DefaultCoreIdea),
			Tags:       tags(data["tags"]),
		}
	}
}

func str(data map[string]any, key, fallback string) string {
	if s, ok := data[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func listItems(v any) []entry.ListItem {
	raw, ok := v.([]any)
	if !ok {
		return []entry.ListItem{}
	}
	items := make([]entry.ListItem, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		text, ok := m["text"].(string)
		if !ok {
			continue
		}
		items = append(items, entry.ListItem{
			ID:        uuid.NewString(),
			Text:      text,
			Completed: false,
		})
	}
	return items
}

func formFields(v any) []entry.FormField {
	raw, ok := v.([]any)
	if !ok {
		return []entry.FormField{}
	}
	fields := make([]entry.FormField, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		label, _ := m["label"].(string)
		kind, _ := m["type"].(string)
		if label == "" && kind == "" {
			continue
		}
		fields = append(fields, entry.FormField{Label: label, InputKind: kind})
	}
	return fields
}

// tags keeps the first occurrence of each tag, preserving order.
func tags(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		s, ok := r.(string)
		if !ok || s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func timestamp(v any) *entry.Timestamp {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	t, err := entry.ParseTime(s)
	if err != nil {
		return nil
	}
	return &entry.Timestamp{Time: t}
}
