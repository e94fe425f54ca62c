package capture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/HoneyDaddy04/Voice-OS/pkg/app"
	"github.com/HoneyDaddy04/Voice-OS/pkg/capture"
	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/printers"
)

// Capture records one clip from the microphone, classifies it and prints
// the stored entry.
type Capture struct {
	Service   *app.Service
	Recorder  *capture.Recorder
	Preferred *category.Category

	// In is where the stop signal (a newline) is read from. Defaults to
	// stdin.
	In io.Reader
}

func (n *Capture) Do(ctx context.Context) error {
	if n.Service == nil || n.Recorder == nil {
		return errors.New("can not capture, no service")
	}
	in := n.In
	if in == nil {
		in = os.Stdin
	}

	if err := n.Recorder.Start(); err != nil {
		return err
	}

	prompt := color.New(color.Bold)
	_, _ = prompt.Println("recording... press enter to stop")

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("\r%ds ", int(n.Recorder.Elapsed().Seconds()))
			}
		}
	}()

	_, _ = bufio.NewReader(in).ReadString('\n')
	close(done)
	fmt.Println("")

	clip, err := n.Recorder.Stop()
	if err != nil {
		return err
	}
	defer n.Recorder.Finish()

	fmt.Println("processing...")
	e, err := n.Service.ProcessClip(ctx, clip, n.Preferred)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Entry(e)
	return nil
}
