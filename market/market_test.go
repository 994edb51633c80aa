package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Stock {
	return []Stock{
		{Symbol: "AAA", Name: "Alpha", Cur: 100, Prev: 100, Opening: 100, Drift: 0.0008, Volatility: 0.012},
		{Symbol: "BBB", Name: "Beta", Cur: 50, Prev: 50, Opening: 50, Drift: 0.0008, Volatility: 0.012},
	}
}

func TestAdvanceDayShiftsPreviousPrice(t *testing.T) {
	t.Parallel()

	m := New(testCatalog(), 42)

	before := m.Stocks()
	m.AdvanceDay()
	after := m.Stocks()

	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].Cur, after[i].Prev, "previous must equal pre-advance current for %s", after[i].Symbol)
		assert.GreaterOrEqual(t, after[i].Cur, 0.01)
	}
}

func TestAdvanceDayFloorsPrice(t *testing.T) {
	t.Parallel()

	// A catastrophic daily drift drives the multiplier negative; the walk
	// must clamp at the floor instead of going to zero or below.
	catalog := []Stock{
		{Symbol: "DOOM", Cur: 0.02, Prev: 0.02, Opening: 0.02, Drift: -2.0, Volatility: 0},
	}
	m := New(catalog, 1)

	for day := 0; day < 5; day++ {
		m.AdvanceDay()
		assert.Equal(t, 0.01, m.Stocks()[0].Cur)
	}
}

func TestAdvanceDayBoundedShock(t *testing.T) {
	t.Parallel()

	// With zero drift the per-day move can never exceed volatility.
	catalog := []Stock{
		{Symbol: "AAA", Cur: 100, Prev: 100, Opening: 100, Drift: 0, Volatility: 0.012},
	}
	m := New(catalog, 7)

	for day := 0; day < 200; day++ {
		m.AdvanceDay()
		s := m.Stocks()[0]
		change := (s.Cur - s.Prev) / s.Prev
		assert.LessOrEqual(t, change, 0.012)
		assert.GreaterOrEqual(t, change, -0.012)
	}
}

func TestSameSeedSameTrajectory(t *testing.T) {
	t.Parallel()

	m1 := New(testCatalog(), 99)
	m2 := New(testCatalog(), 99)

	for day := 0; day < 50; day++ {
		m1.AdvanceDay()
		m2.AdvanceDay()
	}
	assert.Equal(t, m1.Stocks(), m2.Stocks())
}

func TestResetRestoresOpeningPrices(t *testing.T) {
	t.Parallel()

	m := New(testCatalog(), 42)
	for day := 0; day < 10; day++ {
		m.AdvanceDay()
	}

	m.Reset()

	for _, s := range m.Stocks() {
		assert.Equal(t, s.Opening, s.Cur)
		assert.Equal(t, s.Opening, s.Prev)
	}
}

func TestPrice(t *testing.T) {
	t.Parallel()

	m := New(testCatalog(), 42)
	assert.Equal(t, 100.0, m.Price("AAA"))
	assert.Equal(t, 50.0, m.Price("BBB"))
	assert.Zero(t, m.Price("NOPE"))
}

func TestStocksReturnsCopy(t *testing.T) {
	t.Parallel()

	m := New(testCatalog(), 42)
	snapshot := m.Stocks()
	snapshot[0].Cur = -1

	assert.Equal(t, 100.0, m.Price("AAA"))
}

func TestStockDirectionHelpers(t *testing.T) {
	t.Parallel()

	up := Stock{Cur: 101, Prev: 100}
	down := Stock{Cur: 99, Prev: 100}
	flat := Stock{Cur: 100, Prev: 100}

	assert.True(t, up.Up())
	assert.False(t, up.Down())
	assert.True(t, down.Down())
	assert.False(t, down.Up())

	// A flat price is neither up nor down.
	assert.False(t, flat.Up())
	assert.False(t, flat.Down())
}

func TestPercentChange(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, Stock{Cur: 105, Prev: 100}.PercentChange(), 1e-9)
	assert.InDelta(t, -10.0, Stock{Cur: 90, Prev: 100}.PercentChange(), 1e-9)
	assert.Zero(t, Stock{Cur: 90, Prev: 0}.PercentChange())
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	require.Len(t, catalog, 14)

	seen := map[string]bool{}
	for _, s := range catalog {
		assert.False(t, seen[s.Symbol], "duplicate symbol %s", s.Symbol)
		seen[s.Symbol] = true

		assert.Equal(t, s.Opening, s.Cur)
		assert.Equal(t, s.Opening, s.Prev)
		assert.Greater(t, s.Opening, 0.0)
		assert.Equal(t, 0.0008, s.Drift)
		assert.Equal(t, 0.012, s.Volatility)
	}
	assert.True(t, seen["GOOG"])
	assert.True(t, seen["TSLA"])
}
