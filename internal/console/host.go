package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Host reads key presses and applies them to a live parameter block.
// When the input is a terminal it is switched to raw mode for the
// duration of Run.
type Host struct {
	live *control.Live
	in   io.Reader
	out  io.Writer
	log  *logrus.Entry
}

// NewHost returns a host reading from in and writing status lines to out.
// A nil log discards log output.
func NewHost(live *control.Live, in io.Reader, out io.Writer, log *logrus.Entry) *Host {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Host{live: live, in: in, out: out, log: log}
}

// Run processes keys until a quit key, end of input or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	if f, ok := h.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("console raw mode: %w", err)
		}
		defer func() {
			if err := term.Restore(fd, old); err != nil {
				h.log.WithError(err).Warn("restore terminal")
			}
		}()
	}

	keys := make(chan byte)
	readErr := make(chan error, 1)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := h.in.Read(buf)
			if n > 0 {
				select {
				case keys <- buf[0]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	h.println(Status(h.live.Load()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("console read: %w", err)
		case key := <-keys:
			switch HandleKey(h.live, key) {
			case ActionQuit:
				return nil
			case ActionStatus:
				h.println(Status(h.live.Load()))
			case ActionChanged:
				s := h.live.Load()
				h.log.WithField("key", string(key)).Debug("parameter changed")
				h.println(Status(s))
			}
		}
	}
}

// println writes a line with CRLF so it renders correctly in raw mode.
func (h *Host) println(line string) {
	fmt.Fprint(h.out, strings.ReplaceAll(line, "\n", "\r\n")+"\r\n")
}
