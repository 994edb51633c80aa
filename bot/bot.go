// Package bot implements the trading orchestrator: the per-day cycle that
// classifies the market, swaps strategy, liquidates positions past their
// exit thresholds, and opens new ones within the policy limit. It owns the
// market, the portfolio, and the trade history; cash only ever moves
// through the bank, which carries its own lock.
//
// The bot itself is not synchronized. Day stepping is inherently sequential
// (advance one day, then react) and must be driven by a single logical
// thread of control.
package bot

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/papertrader/bank"
	"github.com/rustyeddy/papertrader/journal"
	"github.com/rustyeddy/papertrader/market"
	"github.com/rustyeddy/papertrader/pkg/id"
	"github.com/rustyeddy/papertrader/strategies"
)

var (
	ErrInvalidShares      = errors.New("share count must be positive")
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrNoPosition         = errors.New("no position in symbol")
	ErrInsufficientShares = errors.New("not enough shares held")
)

// conditionUnknown is the market label before the first classification and
// after a reset.
const conditionUnknown = "UNKNOWN"

// Bot drives the simulation. It starts stopped, on day 1, with the
// conservative strategy and auto-switching enabled.
type Bot struct {
	market *market.Market
	bank   *bank.Bank
	sink   journal.Journal

	positions map[string]*Position
	history   []journal.TradeRecord
	rankings  []strategies.Ranking

	running        bool
	autoSwitch     bool
	day            int
	realizedProfit float64
	condition      string
	strategy       strategies.Strategy
}

// New wires a bot to its market and bank. The journal sink may be nil, in
// which case records are kept in memory only.
func New(m *market.Market, b *bank.Bank, sink journal.Journal) *Bot {
	if sink == nil {
		sink = journal.Nop{}
	}
	return &Bot{
		market:     m,
		bank:       b,
		sink:       sink,
		positions:  make(map[string]*Position),
		autoSwitch: true,
		day:        1,
		condition:  conditionUnknown,
		strategy:   strategies.Conservative(),
	}
}

// Start and Stop flip the running flag; both are idempotent.
func (t *Bot) Start() { t.running = true }
func (t *Bot) Stop()  { t.running = false }

func (t *Bot) IsRunning() bool { return t.running }

// SetAutoSwitch controls whether each cycle re-selects the strategy from
// the market condition.
func (t *Bot) SetAutoSwitch(enabled bool) { t.autoSwitch = enabled }

// SetStrategy pins a strategy directly. Useful with auto-switching off.
func (t *Bot) SetStrategy(s strategies.Strategy) { t.strategy = s }

// AdvanceDay moves the simulation one day forward and steps every price.
// The market moves whether or not the bot is running.
func (t *Bot) AdvanceDay() {
	t.day++
	t.market.AdvanceDay()
}

// ExecuteTradingCycle runs one full trading pass for the current day:
// strategy selection, ranking, the sell pass, then the buy pass. A stopped
// bot does nothing.
func (t *Bot) ExecuteTradingCycle() {
	if !t.running {
		return
	}

	if t.autoSwitch {
		t.switchStrategy()
	}

	balance := t.bank.Balance()
	t.rankings = t.strategy.Rank(t.market.Stocks(), balance)

	t.checkSells()
	t.checkBuys()

	_ = t.sink.RecordSnapshot(journal.DaySnapshot{
		Day:            t.day,
		Balance:        t.bank.Balance(),
		PortfolioValue: t.portfolioValue(),
		RealizedProfit: t.realizedProfit,
		Condition:      t.condition,
		Strategy:       t.strategy.Name,
	})
}

// switchStrategy classifies the last market day and selects the matching
// strategy variant. A bullish day selects Aggressive (buy the dip) and a
// bearish day selects Conservative (follow momentum). The swap constructs
// a fresh strategy value; it never mutates the active one in place.
func (t *Bot) switchStrategy() {
	condition := market.Classify(t.market.Stocks())
	t.condition = condition.String()

	needAggressive := condition == market.Bullish
	isAggressive := t.strategy.Name == "Aggressive"

	switch {
	case needAggressive && !isAggressive:
		t.strategy = strategies.Aggressive()
	case !needAggressive && isAggressive:
		t.strategy = strategies.Conservative()
	}
}

// checkSells liquidates every position whose unrealized profit has crossed
// the strategy's take-profit or stop-loss threshold. The whole position
// goes, never a partial lot. Take-profit is evaluated first, so a cost
// basis degenerate enough to satisfy both bounds resolves to "Take profit".
func (t *Bot) checkSells() {
	type exit struct {
		symbol string
		shares int
		reason string
	}
	var toSell []exit

	for _, p := range t.sortedPositions() {
		price := t.market.Price(p.Symbol)
		profitPct := p.ProfitPercent(price) / 100

		switch {
		case profitPct >= t.strategy.TakeProfit:
			toSell = append(toSell, exit{p.Symbol, p.Shares, "Take profit"})
		case profitPct <= t.strategy.StopLoss:
			toSell = append(toSell, exit{p.Symbol, p.Shares, "Stop loss"})
		}
	}

	for _, e := range toSell {
		_ = t.Sell(e.symbol, e.shares, e.reason)
	}
}

// checkBuys walks the rankings in order and opens positions until the
// strategy's holding limit is reached. Ineligible candidates and symbols
// already held are skipped; a failed buy (unaffordable recommendation)
// does not stop the walk.
func (t *Bot) checkBuys() {
	holdings := len(t.positions)

	for _, r := range t.rankings {
		if r.Score <= 0 {
			continue
		}
		if _, held := t.positions[r.Symbol]; held {
			continue
		}
		if holdings >= t.strategy.MaxHoldings {
			break
		}

		reason := t.strategy.Name + " pick"
		if err := t.Buy(r.Symbol, r.RecommendedShares, reason); err == nil {
			holdings++
		}
	}
}

// Buy purchases shares at the current market price, debiting the bank. The
// bank's withdraw is the affordability check: the balance test and the
// debit are one atomic ledger operation, so there is no window for another
// caller to spend the same cash.
func (t *Bot) Buy(symbol string, shares int, reason string) error {
	if shares <= 0 {
		return ErrInvalidShares
	}
	price := t.market.Price(symbol)
	if price <= 0 {
		return fmt.Errorf("buy %s: %w", symbol, ErrUnknownSymbol)
	}
	cost := price * float64(shares)

	if err := t.bank.Withdraw(cost, "Buy "+symbol, t.day); err != nil {
		return fmt.Errorf("buy %s: %w", symbol, err)
	}

	if p, ok := t.positions[symbol]; ok {
		p.AverageCost = (p.TotalCost + cost) / float64(p.Shares+shares)
		p.Shares += shares
		p.TotalCost += cost
	} else {
		t.positions[symbol] = &Position{
			Symbol:      symbol,
			Shares:      shares,
			AverageCost: price,
			TotalCost:   cost,
		}
	}

	t.record(journal.TradeRecord{
		ID:     id.New(),
		Side:   journal.SideBuy,
		Symbol: symbol,
		Shares: shares,
		Price:  price,
		Total:  cost,
		Day:    t.day,
		Reason: reason,
	})
	return nil
}

// Sell disposes of shares at the current market price, crediting the bank.
// The realized delta against average cost rolls into cumulative realized
// profit; a position sold down to zero shares is removed from the
// portfolio.
func (t *Bot) Sell(symbol string, shares int, reason string) error {
	if shares <= 0 {
		return ErrInvalidShares
	}
	p, ok := t.positions[symbol]
	if !ok {
		return fmt.Errorf("sell %s: %w", symbol, ErrNoPosition)
	}
	if p.Shares < shares {
		return fmt.Errorf("sell %s: %w (have %d, want %d)", symbol, ErrInsufficientShares, p.Shares, shares)
	}

	price := t.market.Price(symbol)
	revenue := price * float64(shares)

	if err := t.bank.Deposit(revenue, "Sell "+symbol, t.day); err != nil {
		return fmt.Errorf("sell %s: %w", symbol, err)
	}

	costBasis := p.AverageCost * float64(shares)
	t.realizedProfit += revenue - costBasis

	p.Shares -= shares
	p.TotalCost -= costBasis
	if p.Shares <= 0 {
		delete(t.positions, symbol)
	}

	t.record(journal.TradeRecord{
		ID:     id.New(),
		Side:   journal.SideSell,
		Symbol: symbol,
		Shares: shares,
		Price:  price,
		Total:  revenue,
		Day:    t.day,
		Reason: reason,
	})
	return nil
}

// LiquidateAll sells every open position at market, regardless of profit.
func (t *Bot) LiquidateAll() {
	for _, p := range t.sortedPositions() {
		_ = t.Sell(p.Symbol, p.Shares, "Liquidation")
	}
}

// LiquidateProfitableOnly sells only the positions currently in the green.
func (t *Bot) LiquidateProfitableOnly() {
	for _, p := range t.sortedPositions() {
		price := t.market.Price(p.Symbol)
		if p.Profit(price) > 0 {
			_ = t.Sell(p.Symbol, p.Shares, "Take profit")
		}
	}
}

// TryEndWithProfit winds the simulation down. It sells whatever is
// profitable now; if the portfolio is then empty it reports done. Once
// elapsedWaitDays reaches maxWaitDays it dumps everything that is left and
// reports done regardless. Otherwise the caller should advance a day and
// try again, for at most maxWaitDays+1 rounds in total.
func (t *Bot) TryEndWithProfit(maxWaitDays, elapsedWaitDays int) bool {
	t.LiquidateProfitableOnly()
	if len(t.positions) == 0 {
		return true
	}

	if elapsedWaitDays >= maxWaitDays {
		t.LiquidateAll()
		return true
	}
	return false
}

// Reset returns the bot to its initial state for a fresh simulation: day 1,
// no positions, no history, the conservative strategy, and every stock back
// at its opening price. The bank is not touched; resetting the account is
// the session's call.
func (t *Bot) Reset() {
	t.running = false
	t.day = 1
	t.realizedProfit = 0
	t.condition = conditionUnknown
	t.positions = make(map[string]*Position)
	t.history = nil
	t.rankings = nil
	t.strategy = strategies.Conservative()
	t.market.Reset()
}

func (t *Bot) record(rec journal.TradeRecord) {
	t.history = append(t.history, rec)
	_ = t.sink.RecordTrade(rec)
}
