// Package report renders simulation results as terminal text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ruin/internal/ruin"
)

// HelpText lists the interactive commands.
const HelpText = `run [<games> <sets>]  Runs the simulation with inputs
matrix                Turns off/on matrix printing
total                 Prints running total
help                  Prints this help message
`

// FormatPercent prints v with the shortest representation that round-trips.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Summary writes the grid (when captured) followed by the run's tally.
func Summary(w io.Writer, run *ruin.Run) {
	if run.Grid != nil {
		Matrix(w, run.Grid)
	}
	writeTally(w, "", run.Tally)
	fmt.Fprintln(w)
}

// Totals writes the running tally. An empty tally reports no data
// instead of a percentage.
func Totals(w io.Writer, t ruin.Tally) {
	writeTally(w, "Total ", t)
	fmt.Fprintln(w)
}

// writeTally prints the counts, then the percentage and edge. A tally
// with no flips gets a no-data marker in place of the percentages.
func writeTally(w io.Writer, prefix string, t ruin.Tally) {
	fmt.Fprintln(w, Value.Render(fmt.Sprintf("%sWins = %d", prefix, t.Wins)))
	fmt.Fprintln(w, Value.Render(fmt.Sprintf("%sLosses = %d", prefix, t.Losses)))

	pct, err := t.Percentage()
	if err != nil {
		fmt.Fprintln(w, Subtle.Render("no data yet: use 'run' first"))
		return
	}
	edge := pct - 50.0
	fmt.Fprintln(w, Value.Render(fmt.Sprintf("%sPercentage Wins = %s", prefix, FormatPercent(pct))))
	fmt.Fprintln(w, edgeStyle(edge).Render(fmt.Sprintf("%sPercentage Edge = %s", prefix, FormatPercent(edge))))
}

// Matrix writes the grid framed by blank lines, one set per row.
func Matrix(w io.Writer, g ruin.Grid) {
	fmt.Fprintln(w)
	for _, row := range g {
		cells := make([]string, len(row))
		for j, c := range row {
			if c == 1 {
				cells[j] = Win.Render("1")
			} else {
				cells[j] = Loss.Render("0")
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	fmt.Fprintln(w)
}

// Plot charts the win percentage of each set. Runs with fewer than two
// sets have nothing to chart and are skipped.
func Plot(w io.Writer, run *ruin.Run) {
	data := run.SetPercentages()
	if len(data) < 2 {
		return
	}

	width := len(data)
	if width > 80 {
		width = 80
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption("win % per set"),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)
}

func Help(w io.Writer) {
	fmt.Fprintln(w, Warning.Render(strings.TrimRight(HelpText, "\n")))
}

func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Warning.Render(fmt.Sprintf(format, args...)))
}
