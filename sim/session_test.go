package sim

import (
	"testing"

	"github.com/rustyeddy/papertrader/bank"
	"github.com/rustyeddy/papertrader/bot"
	"github.com/rustyeddy/papertrader/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(drift float64) []market.Stock {
	return []market.Stock{
		{Symbol: "AAA", Name: "Alpha", Cur: 100, Prev: 100, Opening: 100, Drift: drift},
		{Symbol: "BBB", Name: "Beta", Cur: 50, Prev: 50, Opening: 50, Drift: drift},
	}
}

func newTestSession(t *testing.T, balance, drift float64) *Session {
	t.Helper()

	ledger := bank.New()
	require.NoError(t, ledger.Register("alice", "secret", balance))
	require.NoError(t, ledger.Login("alice", "secret"))

	trader := bot.New(market.New(testCatalog(drift), 1), ledger, nil)
	return New(ledger, trader)
}

func TestAdvanceDayAppliesScheduledDepositsBeforeTrading(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, 10000, 0.01)
	require.NoError(t, s.Bank.ScheduleDeposit(2, 200, "payday"))

	day, deposited := s.AdvanceDay()

	assert.Equal(t, 2, day)
	assert.Equal(t, 1, deposited)
	assert.Equal(t, 10200.0, s.Bank.Balance())
}

func TestAdvanceDayRunsCycleOnlyWhileRunning(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, 10000, 0.01)

	s.AdvanceDay()
	assert.Empty(t, s.Bot.History(), "stopped bot must not trade")

	s.Bot.Start()
	s.Bot.SetAutoSwitch(false) // keep Conservative: rising stocks are candidates
	s.AdvanceDay()
	assert.NotEmpty(t, s.Bot.History(), "running bot should have traded on rising stocks")
}

func TestEndWithProfitStopsBotAndEmptiesPortfolio(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, 10000, -0.01)
	require.NoError(t, s.Bot.Buy("AAA", 10, "entry"))
	s.Bot.Start()

	waited := s.EndWithProfit(3)

	assert.False(t, s.Bot.IsRunning())
	assert.LessOrEqual(t, waited, 3)
	assert.Empty(t, s.Bot.Portfolio())
}

func TestLogoutStopsBot(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, 10000, 0)
	s.Bot.Start()

	s.Logout()

	assert.False(t, s.Bot.IsRunning())
	assert.False(t, s.Bank.IsLoggedIn())
}

func TestResetRestoresBankAndBot(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, 10000, 0.01)
	require.NoError(t, s.Bot.Buy("AAA", 10, "entry"))
	s.Bot.Start()
	s.AdvanceDay()

	s.Reset(10000)

	assert.False(t, s.Bot.IsRunning())
	assert.Equal(t, 1, s.Bot.Day())
	assert.Empty(t, s.Bot.Portfolio())
	assert.Equal(t, 10000.0, s.Bank.Balance())
	assert.Empty(t, s.Bank.TransactionHistory())
	for _, stk := range s.Bot.Stocks() {
		assert.Equal(t, stk.Opening, stk.Cur)
	}
}

func TestResetWithoutSessionLeavesBankAlone(t *testing.T) {
	t.Parallel()

	ledger := bank.New()
	require.NoError(t, ledger.Register("alice", "secret", 5000))

	trader := bot.New(market.New(testCatalog(0), 1), ledger, nil)
	s := New(ledger, trader)

	s.Reset(10000) // no session: only the bot resets

	require.NoError(t, ledger.Login("alice", "secret"))
	assert.Equal(t, 5000.0, ledger.Balance())
}
