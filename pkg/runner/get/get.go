package get

import (
	"context"
	"errors"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/printers"
)

type Get struct {
	ShowID   bool
	Category *category.Category
	Service  *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	if n.Category != nil {
		all := n.Service.Entries(n.Category)
		pp.Title(*n.Category)
		pp.Feed(all...)
		return nil
	}

	for _, c := range category.All() {
		c := c
		all := n.Service.Entries(&c)
		pp.TitleWithCount(c, len(all))
		pp.Feed(all...)
	}
	return nil
}
