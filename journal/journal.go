// Package journal records what the bot did: an append-only trade log plus
// per-day account snapshots. Sinks are pluggable; the engine keeps its own
// in-memory history and mirrors records into whichever sink it was built
// with.
package journal

// TradeRecord is one executed buy or sell. Records are immutable once
// appended and append order is chronological.
type TradeRecord struct {
	ID     string // ULID, time-sortable
	Side   string // "BUY" or "SELL"
	Symbol string
	Shares int
	Price  float64 // per share at execution
	Total  float64 // cash moved
	Day    int
	Reason string
}

const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// DaySnapshot captures account and portfolio state at the end of a
// simulated day.
type DaySnapshot struct {
	Day            int
	Balance        float64
	PortfolioValue float64
	RealizedProfit float64
	Condition      string
	Strategy       string
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordSnapshot(DaySnapshot) error
	Close() error
}

// Nop discards everything. It is the engine default when no sink is
// configured.
type Nop struct{}

func (Nop) RecordTrade(TradeRecord) error    { return nil }
func (Nop) RecordSnapshot(DaySnapshot) error { return nil }
func (Nop) Close() error                     { return nil }
