// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
)

// CategoryOptions captures common category selection state for commands.
type CategoryOptions struct {
	Category *category.Category
}

// ResolveCategory parses an optional positional category argument. An empty
// argument leaves the selection unset (all categories / no hint).
func (o *CategoryOptions) ResolveCategory(arg string) error {
	if arg == "" {
		o.Category = nil
		return nil
	}
	c, err := category.ForAlias(arg)
	if err != nil {
		return err
	}
	o.Category = &c
	return nil
}
