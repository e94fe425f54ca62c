package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
)

type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.Delete(n.ID); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", n.ID)
	return nil
}
