// Package market models the synthetic day-stepped stock market: a fixed
// catalog of instruments, each advanced once per simulation day by a
// bounded random walk, and the single-step bullish/bearish classifier.
package market

import "math/rand"

// priceFloor is the lowest a price can ever go. A zero or negative price
// would break percentage-change and ranking math downstream.
const priceFloor = 0.01

// Market holds the instrument catalog in a fixed order and the random
// source driving the walk. It is not internally synchronized: day stepping
// is sequential by contract and only one caller advances it.
type Market struct {
	stocks []Stock
	rng    *rand.Rand
}

// New builds a market over the given catalog. The seed fixes the price
// trajectory, which keeps simulations reproducible.
func New(catalog []Stock, seed int64) *Market {
	stocks := make([]Stock, len(catalog))
	copy(stocks, catalog)
	return &Market{
		stocks: stocks,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// AdvanceDay steps every instrument once: previous takes the current price,
// then current moves by drift plus a uniform shock in [-1,+1] scaled by
// volatility, floored at 0.01. This runs unconditionally, whether or not
// any trading happens that day.
func (m *Market) AdvanceDay() {
	for i := range m.stocks {
		s := &m.stocks[i]
		s.Prev = s.Cur

		shock := (m.rng.Float64()*2 - 1) * s.Volatility
		s.Cur = s.Cur * (1 + s.Drift + shock)
		if s.Cur < priceFloor {
			s.Cur = priceFloor
		}
	}
}

// Reset restores every instrument's current and previous price to its
// opening price.
func (m *Market) Reset() {
	for i := range m.stocks {
		s := &m.stocks[i]
		s.Cur = s.Opening
		s.Prev = s.Opening
	}
}

// Price returns the current price for a symbol, 0 when unknown.
func (m *Market) Price(symbol string) float64 {
	for i := range m.stocks {
		if m.stocks[i].Symbol == symbol {
			return m.stocks[i].Cur
		}
	}
	return 0
}

// Stocks returns a snapshot copy of the catalog in its fixed order.
func (m *Market) Stocks() []Stock {
	out := make([]Stock, len(m.stocks))
	copy(out, m.stocks)
	return out
}

// DefaultCatalog is the stock lineup every simulation starts from. Drift
// carries a slight upward bias so a long run tends to show profit.
func DefaultCatalog() []Stock {
	const (
		drift      = 0.0008
		volatility = 0.012
	)

	listing := []struct {
		symbol string
		name   string
		price  float64
	}{
		{"GOOG", "Alphabet", 320.12},
		{"AMZN", "Amazon", 233.22},
		{"NVDA", "Nvidia", 176.98},
		{"MSFT", "Microsoft", 491.92},
		{"META", "Meta Platforms", 647.95},
		{"GME", "GameStop Corp", 22.53},
		{"TSLA", "Tesla Inc", 430.17},
		{"GM", "General Motors", 45.00},
		{"F", "Ford Motor Co", 13.28},
		{"WMT", "Walmart Inc", 110.51},
		{"YELP", "Yelp Inc", 28.91},
		{"SONY", "Sony Group Corp", 29.35},
		{"MCD", "McDonalds Corp", 311.82},
		{"CSUSM", "San Marcos", 100.00},
	}

	catalog := make([]Stock, 0, len(listing))
	for _, l := range listing {
		catalog = append(catalog, Stock{
			Symbol:     l.symbol,
			Name:       l.name,
			Cur:        l.price,
			Prev:       l.price,
			Opening:    l.price,
			Drift:      drift,
			Volatility: volatility,
		})
	}
	return catalog
}
