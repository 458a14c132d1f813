package ruin

import (
	"fmt"
	"strconv"
)

// MaxFlips bounds games*sets for a single run so the per-set counts and
// the grid always fit in memory.
const MaxFlips = 100_000_000

type Params struct {
	Games      int
	Sets       int
	ShowMatrix bool
}

// Flips returns the number of coin flips a run with these parameters performs.
func (p Params) Flips() int { return p.Games * p.Sets }

func (p Params) Validate() error {
	if p.Games <= 0 {
		return &ParamError{Field: "games", Value: strconv.Itoa(p.Games), Wrapped: ErrInvalidParameters}
	}
	if p.Sets <= 0 {
		return &ParamError{Field: "sets", Value: strconv.Itoa(p.Sets), Wrapped: ErrInvalidParameters}
	}
	// Division keeps the check itself from overflowing.
	if p.Games > MaxFlips/p.Sets {
		return &ParamError{
			Field:   "flips",
			Value:   fmt.Sprintf("%dx%d", p.Games, p.Sets),
			Wrapped: fmt.Errorf("%w: more than %d flips", ErrInvalidParameters, MaxFlips),
		}
	}
	return nil
}

// ParseParams converts textual games/sets arguments into Params.
func ParseParams(games, sets string, showMatrix bool) (Params, error) {
	g, err := strconv.Atoi(games)
	if err != nil {
		return Params{}, &ParamError{Field: "games", Value: games, Wrapped: ErrInvalidParameters}
	}
	s, err := strconv.Atoi(sets)
	if err != nil {
		return Params{}, &ParamError{Field: "sets", Value: sets, Wrapped: ErrInvalidParameters}
	}
	p := Params{Games: g, Sets: s, ShowMatrix: showMatrix}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Grid holds one row per set and one column per game; 1 is a win, 0 a loss.
type Grid [][]uint8

func NewGrid(sets, games int) Grid {
	cells := make([]uint8, sets*games)
	g := make(Grid, sets)
	for i := range g {
		g[i] = cells[i*games : (i+1)*games : (i+1)*games]
	}
	return g
}

func (g Grid) Sets() int { return len(g) }

func (g Grid) Games() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Tally is a win/loss count. It is used both for a single run and for a
// running total across runs.
type Tally struct {
	Wins   int
	Losses int
}

func (t Tally) Total() int { return t.Wins + t.Losses }

// Add returns the sum of both tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{Wins: t.Wins + o.Wins, Losses: t.Losses + o.Losses}
}

// Percentage returns 100*wins/total, or ErrNoDataYet for an empty tally.
func (t Tally) Percentage() (float64, error) {
	n := t.Total()
	if n == 0 {
		return 0, ErrNoDataYet
	}
	return float64(t.Wins) / float64(n) * 100, nil
}

// Edge returns the deviation of the win percentage from 50.
func (t Tally) Edge() (float64, error) {
	pct, err := t.Percentage()
	if err != nil {
		return 0, err
	}
	return pct - 50.0, nil
}

// Run is the outcome of one simulation.
type Run struct {
	Params
	Tally
	SetWins []int
	// Grid is nil unless Params.ShowMatrix was set.
	Grid Grid
}

// SetPercentages returns the win percentage of every set in order.
func (r *Run) SetPercentages() []float64 {
	out := make([]float64, len(r.SetWins))
	if r.Games == 0 {
		return out
	}
	for i, w := range r.SetWins {
		out[i] = float64(w) / float64(r.Games) * 100
	}
	return out
}
