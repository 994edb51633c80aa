// Package strategies defines the closed set of trading policies the bot can
// run. A Strategy is a plain value holding the scoring rule, exit
// thresholds, and position limit, so the full variant set is known and
// testable exhaustively.
package strategies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/papertrader/market"
)

// buyFraction is the share of available cash a single recommendation may
// claim.
const buyFraction = 0.25

// eligibleScore marks a stock the strategy would buy; everything else
// scores zero and is skipped by the buy pass.
const eligibleScore = 100

// Ranking is one scored buy candidate. Rankings are recomputed every cycle
// and never persisted between cycles.
type Ranking struct {
	Symbol            string
	Price             float64
	Score             float64
	RecommendedShares int
}

// Strategy is a trading policy: which stocks are eligible, when to take
// profit or cut losses, and how many positions it will hold at once.
type Strategy struct {
	Name        string
	TakeProfit  float64 // unrealized gain fraction that triggers a sell
	StopLoss    float64 // unrealized loss fraction that triggers a sell
	MaxHoldings int

	eligible func(market.Stock) bool
}

// Conservative follows momentum: it buys stocks that moved up, banks small
// gains at +5%, and bails at -3%. Up to five positions.
func Conservative() Strategy {
	return Strategy{
		Name:        "Conservative",
		TakeProfit:  0.05,
		StopLoss:    -0.03,
		MaxHoldings: 5,
		eligible:    market.Stock.Up,
	}
}

// Aggressive buys the dip: stocks that moved down score as candidates. It
// holds out for +15% and tolerates a -10% drawdown, across at most three
// positions.
func Aggressive() Strategy {
	return Strategy{
		Name:        "Aggressive",
		TakeProfit:  0.15,
		StopLoss:    -0.10,
		MaxHoldings: 3,
		eligible:    market.Stock.Down,
	}
}

// ByName resolves a strategy by its label, case-insensitively.
func ByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "conservative":
		return Conservative(), nil
	case "aggressive":
		return Aggressive(), nil
	default:
		return Strategy{}, fmt.Errorf("unknown strategy %q (supported: conservative, aggressive)", name)
	}
}

// Rank scores every stock and returns candidates ordered by score,
// descending. The sort is stable so equal scores keep catalog order, which
// keeps the buy pass deterministic.
//
// RecommendedShares is a quarter of available cash at the current price,
// floored at one share even when that one share is unaffordable; the buy
// path re-checks affordability before committing funds.
func (st Strategy) Rank(stocks []market.Stock, balance float64) []Ranking {
	rankings := make([]Ranking, 0, len(stocks))
	for _, s := range stocks {
		r := Ranking{
			Symbol: s.Symbol,
			Price:  s.Cur,
		}
		if st.eligible != nil && st.eligible(s) {
			r.Score = eligibleScore
		}

		r.RecommendedShares = int(balance * buyFraction / s.Cur)
		if r.RecommendedShares < 1 {
			r.RecommendedShares = 1
		}
		rankings = append(rankings, r)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Score > rankings[j].Score
	})
	return rankings
}
