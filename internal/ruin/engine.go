package ruin

type Engine struct {
	coin Coin
}

// NewEngine returns an engine drawing outcomes from coin. A nil coin
// gets a freshly seeded one.
func NewEngine(coin Coin) *Engine {
	if coin == nil {
		coin = NewCoin()
	}
	return &Engine{coin: coin}
}

// Simulate flips p.Games coins for each of p.Sets sets. Parameters are
// validated before any flip so a failed call has no effect.
func (e *Engine) Simulate(p Params) (*Run, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	run := &Run{
		Params:  p,
		SetWins: make([]int, p.Sets),
	}
	if p.ShowMatrix {
		run.Grid = NewGrid(p.Sets, p.Games)
	}

	for i := 0; i < p.Sets; i++ {
		for j := 0; j < p.Games; j++ {
			if !e.coin.Toss() {
				run.Losses++
				continue
			}
			run.Wins++
			run.SetWins[i]++
			if run.Grid != nil {
				run.Grid[i][j] = 1
			}
		}
	}

	return run, nil
}
