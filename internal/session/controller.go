package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/san-kum/ruin/internal/logging"
	"github.com/san-kum/ruin/internal/report"
	"github.com/san-kum/ruin/internal/ruin"
)

type handler func(c *Controller, args []string) error

var commands = map[string]handler{
	"run":    (*Controller).run,
	"total":  (*Controller).printTotal,
	"matrix": (*Controller).toggleMatrix,
	"help":   (*Controller).help,
}

type Options struct {
	Out    io.Writer
	Logger *slog.Logger
	Prompt string

	// Initial state. Games and Sets seed the parameters a bare run reuses.
	ShowMatrix bool
	Plot       bool
	Games      int
	Sets       int
}

type Controller struct {
	engine *ruin.Engine
	out    io.Writer
	log    *slog.Logger
	prompt string

	showMatrix bool
	plot       bool
	games      int
	sets       int
	total      ruin.Tally
}

func New(engine *ruin.Engine, opts Options) *Controller {
	c := &Controller{
		engine:     engine,
		out:        opts.Out,
		log:        opts.Logger,
		prompt:     opts.Prompt,
		showMatrix: opts.ShowMatrix,
		plot:       opts.Plot,
	}
	if c.out == nil {
		c.out = io.Discard
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	if opts.Games > 0 && opts.Sets > 0 {
		c.games, c.sets = opts.Games, opts.Sets
	}
	return c
}

func (c *Controller) Total() ruin.Tally { return c.total }
func (c *Controller) ShowMatrix() bool  { return c.showMatrix }

// LastParams returns the games/sets a bare run would use.
func (c *Controller) LastParams() (games, sets int, ok bool) {
	return c.games, c.sets, c.games > 0 && c.sets > 0
}

// Commands returns the command names in sorted order.
func (c *Controller) Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute dispatches one line. Blank lines are ignored. The remaining
// tokens are handed to the command unmodified.
func (c *Controller) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	h, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	c.log.Log(context.Background(), logging.LevelTrace, "dispatch", "cmd", name, "args", args)
	return h(c, args)
}

func (c *Controller) run(args []string) error {
	var p ruin.Params
	switch len(args) {
	case 0:
		if _, _, ok := c.LastParams(); !ok {
			return ErrUsage
		}
		p = ruin.Params{Games: c.games, Sets: c.sets, ShowMatrix: c.showMatrix}
	case 2:
		parsed, err := ruin.ParseParams(args[0], args[1], c.showMatrix)
		if err != nil {
			return err
		}
		p = parsed
		c.games, c.sets = p.Games, p.Sets
	default:
		return ErrUsage
	}

	result, err := c.engine.Simulate(p)
	if err != nil {
		return err
	}

	report.Summary(c.out, result)
	if c.plot {
		report.Plot(c.out, result)
	}

	c.total = c.total.Add(result.Tally)
	c.log.Debug("run complete",
		"games", p.Games, "sets", p.Sets,
		"wins", result.Wins, "losses", result.Losses,
		"total_wins", c.total.Wins, "total_losses", c.total.Losses)
	return nil
}

func (c *Controller) printTotal(args []string) error {
	report.Totals(c.out, c.total)
	return nil
}

func (c *Controller) toggleMatrix(args []string) error {
	c.showMatrix = !c.showMatrix
	c.log.Debug("matrix toggled", "show", c.showMatrix)
	return nil
}

func (c *Controller) help(args []string) error {
	report.Help(c.out)
	return nil
}
