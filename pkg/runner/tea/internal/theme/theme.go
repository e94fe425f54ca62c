package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	AppTitle lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Faint    lipgloss.Style
	Error    lipgloss.Style

	Tile         lipgloss.Style
	TileSelected lipgloss.Style

	CardTitle lipgloss.Style
	CardBody  lipgloss.Style
	Done      lipgloss.Style
	Tag       lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		AppTitle: lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2),
		TileSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 2),

		CardTitle: lipgloss.NewStyle().Bold(true),
		CardBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	}
}

// Accent returns the display color for a category tile.
func Accent(c category.Category) color.Color {
	return lipgloss.Color(category.TileFor(c).Color)
}

// Dim returns the category color blended halfway toward gray, for
// unselected tiles.
func Dim(c category.Category) color.Color {
	base, err := colorful.Hex(category.TileFor(c).Color)
	if err != nil {
		return lipgloss.Color("241")
	}
	gray, _ := colorful.Hex("#6B7280")
	return lipgloss.Color(base.BlendLab(gray, 0.6).Hex())
}
