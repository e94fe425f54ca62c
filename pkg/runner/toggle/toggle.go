package toggle

import (
	"context"
	"errors"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
	"github.com/HoneyDaddy04/Voice-OS/pkg/printers"
)

type Toggle struct {
	EntryID string
	ItemID  string
	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}
	e, err := n.Service.ToggleItem(n.EntryID, n.ItemID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Entry(e)
	return nil
}
