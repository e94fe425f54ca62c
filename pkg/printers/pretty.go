package printers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/entry"
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-0123456789ab  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(c category.Category) {
	t := color.New(color.Bold, color.Underline)
	tile := category.TileFor(c)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Printf("%s %s\n", tile.Symbol, tile.Label)
}

func (pp *PrettyPrint) TitleWithCount(c category.Category, count int) {
	pp.Title(c)
	f := color.New(color.Faint)
	switch count {
	case 1:
		_, _ = f.Println("1 entry")
	default:
		_, _ = f.Printf("%d entries\n", count)
	}
}

// Feed prints entries the way the category view renders them: one block per
// entry, dispatched on the category tag.
func (pp *PrettyPrint) Feed(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" no entries yet\n\n")
		return
	}

	for _, e := range entries {
		pp.Entry(e)
	}
}

func (pp *PrettyPrint) Entry(e *entry.Entry) {
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)
	head := color.New(color.Bold)

	if pp.ShowID {
		_, _ = id.Println(e.ID)
	}
	tile := category.TileFor(e.Category)
	_, _ = head.Printf("%s %s", tile.Symbol, e.Title())
	_, _ = faint.Printf("  %s\n", e.Created.Local().Format("Jan 2, 3:04 PM"))

	switch c := e.Content.(type) {
	case *entry.Idea:
		pp.idea(c)
	case *entry.List:
		pp.list(c)
	case *entry.Reminder:
		pp.reminder(c)
	case *entry.Journal:
		pp.journal(c)
	case *entry.Form:
		pp.form(c)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) idea(c *entry.Idea) {
	body := color.New()
	faint := color.New(color.Faint, color.Italic)
	if c.Summary != "" {
		_, _ = faint.Printf("  %s\n", c.Summary)
	}
	if len(c.Tags) > 0 {
		_, _ = body.Printf("  #%s\n", strings.Join(c.Tags, " #"))
	}
}

func (pp *PrettyPrint) list(c *entry.List) {
	tbl := uitable.New()
	tbl.Separator = " "
	done := color.New(color.Faint, color.CrossedOut)
	open := color.New()
	for _, item := range c.Items {
		if item.Completed {
			tbl.AddRow("  ✘", done.Sprint(item.Text))
		} else {
			tbl.AddRow("  ●", open.Sprint(item.Text))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) reminder(c *entry.Reminder) {
	faint := color.New(color.Faint)
	if c.TriggerTime != nil {
		_, _ = faint.Printf("  at %s (%s)\n", c.TriggerTime.Local().Format(time.RFC1123), c.NotificationStatus)
	} else {
		_, _ = faint.Printf("  no trigger time (%s)\n", c.NotificationStatus)
	}
}

func (pp *PrettyPrint) journal(c *entry.Journal) {
	faint := color.New(color.Faint, color.Italic)
	tone := color.New(color.FgHiMagenta)
	if c.Transcript != "" {
		_, _ = faint.Printf("  %s\n", c.Transcript)
	}
	_, _ = tone.Printf("  tone: %s\n", c.EmotionalTone)
}

func (pp *PrettyPrint) form(c *entry.Form) {
	tbl := uitable.New()
	tbl.Separator = "  "
	f := color.New(color.Faint)
	for _, field := range c.Fields {
		tbl.AddRow("  "+field.Label, f.Sprintf("(%s)", field.InputKind))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	if n := len(c.Responses); n > 0 {
		_, _ = f.Printf("  %d responses\n", n)
	}
}
