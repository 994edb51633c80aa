package market

// Stock is one tradable instrument: its identity, the day-over-day price
// pair, and the parameters of its price walk. Opening is the restart
// anchor; Reset snaps both prices back to it.
type Stock struct {
	Symbol     string
	Name       string
	Cur        float64
	Prev       float64
	Opening    float64
	Drift      float64
	Volatility float64
}

// Up reports whether the stock advanced over the last step. A flat price is
// neither up nor down.
func (s Stock) Up() bool { return s.Cur > s.Prev }

// Down reports whether the stock declined over the last step.
func (s Stock) Down() bool { return s.Cur < s.Prev }

// PercentChange returns the day-over-day change as a percentage of the
// previous price, 0 when there is no previous price to compare against.
func (s Stock) PercentChange() float64 {
	if s.Prev == 0 {
		return 0
	}
	return (s.Cur - s.Prev) / s.Prev * 100
}
