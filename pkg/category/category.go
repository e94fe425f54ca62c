package category

import (
	"fmt"
	"strings"
)

// Category is the classification outcome for one captured clip.
type Category string

const (
	Idea     Category = "IDEA"
	List     Category = "LIST"
	Reminder Category = "REMINDER"
	Journal  Category = "JOURNAL"
	Form     Category = "FORM"
)

// All returns the five categories in dashboard order.
func All() []Category {
	return []Category{Idea, List, Reminder, Journal, Form}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	switch c {
	case Idea, List, Reminder, Journal, Form:
		return true
	}
	return false
}

// Normalize maps a classifier tag onto a known category. Unknown tags fall
// back to Idea, the default capture bucket; this is deliberate, not an error.
func Normalize(tag string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(tag)))
	if c.Valid() {
		return c
	}
	return Idea
}

// ForAlias resolves a user-supplied category name, e.g. command line args.
func ForAlias(alias string) (Category, error) {
	for _, t := range Tiles() {
		for _, a := range t.Aliases {
			if strings.EqualFold(alias, a) {
				return t.Category, nil
			}
		}
	}
	return Idea, fmt.Errorf("unknown category %q", alias)
}
