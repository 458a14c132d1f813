package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/ruin/internal/report"
	"github.com/san-kum/ruin/internal/ruin"
)

// Farewell is printed when input ends.
const Farewell = "Closing interactive session"

// MaxLineLength bounds a command line. Longer lines are dropped with a
// warning and the session keeps reading.
const MaxLineLength = 64 * 1024

type inputLine struct {
	text    string
	tooLong bool
}

// Run reads lines from in and dispatches them until in is exhausted, in
// which case it prints Farewell and returns nil. Signals arriving on
// interrupts print a blank line and the loop carries on. Canceling ctx
// returns ctx.Err().
//
// Reading happens on a separate goroutine; all session state is touched
// only by the caller's goroutine.
func (c *Controller) Run(ctx context.Context, in io.Reader, interrupts <-chan os.Signal) error {
	lines := make(chan inputLine)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		readErr <- readLines(ctx, in, lines)
	}()

	c.log.Debug("session started", "matrix", c.showMatrix)
	c.printPrompt()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case sig := <-interrupts:
			c.log.Debug("interrupt ignored", "signal", sig)
			fmt.Fprintln(c.out)
			c.printPrompt()

		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-readErr:
				default:
				}
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				fmt.Fprintln(c.out)
				report.Warn(c.out, Farewell)
				c.log.Debug("session closed", "wins", c.total.Wins, "losses", c.total.Losses)
				return nil
			}
			if line.tooLong {
				report.Warn(c.out, "Line too long (over %d bytes), ignored", MaxLineLength)
			} else {
				c.handle(line.text)
			}
			c.printPrompt()
		}
	}
}

// handle executes a line and reports any failure to the user. No error
// escapes the loop.
func (c *Controller) handle(line string) {
	err := c.Execute(line)
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownCommand):
		report.Warn(c.out, "Unknown command %s", strings.Fields(line)[0])
	case errors.Is(err, ErrUsage):
		report.Warn(c.out, "Usage Error: Type 'help' for more details")
	case errors.Is(err, ruin.ErrInvalidParameters):
		report.Warn(c.out, "Invalid parameters: %v", err)
	default:
		report.Warn(c.out, "%v", err)
	}
}

// readLines sends every line of in to lines until EOF, which returns nil.
// Lines past MaxLineLength are consumed to their end and reported with
// tooLong set rather than buffered.
func readLines(ctx context.Context, in io.Reader, lines chan<- inputLine) error {
	r := bufio.NewReader(in)
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if isPrefix {
			continue
		}

		select {
		case lines <- inputLine{text: string(buf), tooLong: tooLong}:
		case <-ctx.Done():
			return ctx.Err()
		}
		buf = buf[:0]
		tooLong = false
	}
}

func (c *Controller) printPrompt() {
	if c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}
}
