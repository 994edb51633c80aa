package bot

import (
	"sort"

	"github.com/rustyeddy/papertrader/journal"
	"github.com/rustyeddy/papertrader/market"
	"github.com/rustyeddy/papertrader/strategies"
)

// Query methods return copies; callers never receive references into the
// bot's mutable state.

// Portfolio returns the open positions ordered by symbol.
func (t *Bot) Portfolio() []Position {
	out := make([]Position, 0, len(t.positions))
	for _, p := range t.sortedPositions() {
		out = append(out, *p)
	}
	return out
}

// History returns the trade log in append (chronological) order.
func (t *Bot) History() []journal.TradeRecord {
	out := make([]journal.TradeRecord, len(t.history))
	copy(out, t.history)
	return out
}

// Rankings returns the candidate list from the most recent trading cycle.
func (t *Bot) Rankings() []strategies.Ranking {
	out := make([]strategies.Ranking, len(t.rankings))
	copy(out, t.rankings)
	return out
}

// Stocks returns a snapshot of the market catalog.
func (t *Bot) Stocks() []market.Stock {
	return t.market.Stocks()
}

// Price returns the current price for a symbol, 0 when unknown.
func (t *Bot) Price(symbol string) float64 {
	return t.market.Price(symbol)
}

// Profit is total performance so far: realized gains from completed sells
// plus the paper gain or loss on everything still held.
func (t *Bot) Profit() float64 {
	unrealized := 0.0
	for _, p := range t.positions {
		unrealized += p.Profit(t.market.Price(p.Symbol))
	}
	return t.realizedProfit + unrealized
}

// RealizedProfit is the cash-settled part of Profit.
func (t *Bot) RealizedProfit() float64 { return t.realizedProfit }

// TotalShares counts every share held across the portfolio.
func (t *Bot) TotalShares() int {
	total := 0
	for _, p := range t.positions {
		total += p.Shares
	}
	return total
}

// Day is the current simulation day, starting at 1.
func (t *Bot) Day() int { return t.day }

// MarketCondition is the label from the last classification, "UNKNOWN"
// before the first cycle runs with auto-switching on.
func (t *Bot) MarketCondition() string { return t.condition }

// StrategyName is the label of the active strategy.
func (t *Bot) StrategyName() string { return t.strategy.Name }

func (t *Bot) portfolioValue() float64 {
	total := 0.0
	for _, p := range t.positions {
		total += p.Value(t.market.Price(p.Symbol))
	}
	return total
}

// sortedPositions gives a deterministic iteration order over the portfolio
// map so sell passes and liquidations replay identically run to run.
func (t *Bot) sortedPositions() []*Position {
	out := make([]*Position, 0, len(t.positions))
	for _, p := range t.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
