package bot

// Position is the bot's holding in one stock. TotalCost tracks the cash
// spent on the shares still held, so TotalCost ≈ Shares × AverageCost after
// every mutation. A position that reaches zero shares is deleted from the
// portfolio, never kept around empty.
type Position struct {
	Symbol      string
	Shares      int
	AverageCost float64
	TotalCost   float64
}

// Value is what the held shares are worth at the given price.
func (p Position) Value(price float64) float64 {
	return float64(p.Shares) * price
}

// Profit is the unrealized gain or loss at the given price.
func (p Position) Profit(price float64) float64 {
	return p.Value(price) - p.TotalCost
}

// ProfitPercent is the unrealized gain as a percentage of cost basis, 0
// when there is no cost basis to measure against.
func (p Position) ProfitPercent(price float64) float64 {
	if p.TotalCost <= 0 {
		return 0
	}
	return p.Profit(price) / p.TotalCost * 100
}
