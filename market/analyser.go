package market

// Condition labels the most recent market day.
type Condition int

const (
	Bullish Condition = iota
	Bearish
)

func (c Condition) String() string {
	if c == Bullish {
		return "BULLISH"
	}
	return "BEARISH"
}

// Classify labels the last step by counting advancing vs declining stocks:
// bullish when at least as many went up as down (ties are bullish),
// bearish otherwise. It is a pure function of the snapshot, with no history
// window beyond the single day the stocks already carry.
func Classify(stocks []Stock) Condition {
	up, down := 0, 0
	for _, s := range stocks {
		switch {
		case s.Up():
			up++
		case s.Down():
			down++
		}
	}
	if up >= down {
		return Bullish
	}
	return Bearish
}
