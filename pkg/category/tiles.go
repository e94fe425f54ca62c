package category

// Tile describes how a category is presented on the dashboard and in lists.
type Tile struct {
	Category    Category
	Symbol      string
	Label       string
	Description string
	Color       string // hex, used by the TUI theme
	Aliases     []string
}

func Tiles() []Tile {
	return []Tile{
		{
			Category:    Idea,
			Symbol:      "◆",
			Label:       "Ideas",
			Description: "Unstructured thoughts & brainstorms",
			Color:       "#3B82F6",
			Aliases:     []string{"idea", "ideas"},
		},
		{
			Category:    List,
			Symbol:      "☰",
			Label:       "Lists",
			Description: "To-dos, tasks, and shopping",
			Color:       "#10B981",
			Aliases:     []string{"list", "lists"},
		},
		{
			Category:    Reminder,
			Symbol:      "◷",
			Label:       "Reminders",
			Description: "Schedule alerts & future intent",
			Color:       "#F59E0B",
			Aliases:     []string{"reminder", "reminders"},
		},
		{
			Category:    Journal,
			Symbol:      "❧",
			Label:       "Journal",
			Description: "Check-ins & emotional patterns",
			Color:       "#F43F5E",
			Aliases:     []string{"journal", "journals"},
		},
		{
			Category:    Form,
			Symbol:      "▤",
			Label:       "Forms",
			Description: "Structured data collection",
			Color:       "#A855F7",
			Aliases:     []string{"form", "forms"},
		},
	}
}

// TileFor returns the tile for c, falling back to the Idea tile.
func TileFor(c Category) Tile {
	for _, t := range Tiles() {
		if t.Category == c {
			return t
		}
	}
	return Tiles()[0]
}
