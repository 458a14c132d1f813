// Package ruin simulates the Gambler's Ruin coin-flip process.
//
// A run flips a fair coin games×sets times and tallies wins and losses:
//
//   - [Params]: games per set, number of sets, matrix capture flag
//   - [Coin]: source of fair binary outcomes
//   - [Engine]: validates parameters and performs a run
//   - [Run]: outcome of a single run (tally, per-set wins, optional grid)
//   - [Tally]: win/loss counts with percentage and edge
//
// # Example
//
//	eng := ruin.NewEngine(ruin.NewCoin())
//	run, err := eng.Simulate(ruin.Params{Games: 10, Sets: 5})
//	pct, _ := run.Percentage()
//
// # Thread Safety
//
// Engine instances are NOT thread-safe; the coin keeps unconsumed bits
// between tosses.
package ruin
