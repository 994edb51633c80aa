package journal

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','days')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["days"])
}

func TestSQLiteRecordAndListTrades(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	recs := []TradeRecord{
		{ID: "01A", Side: SideBuy, Symbol: "GOOG", Shares: 10, Price: 320.12, Total: 3201.2, Day: 1, Reason: "Conservative pick"},
		{ID: "01B", Side: SideSell, Symbol: "GOOG", Shares: 10, Price: 340.00, Total: 3400.0, Day: 4, Reason: "Take profit"},
		{ID: "01C", Side: SideBuy, Symbol: "GME", Shares: 50, Price: 22.53, Total: 1126.5, Day: 4, Reason: "Aggressive pick"},
	}
	for _, rec := range recs {
		require.NoError(t, j.RecordTrade(rec))
	}

	got, err := j.ListTrades()
	require.NoError(t, err)
	assert.Equal(t, recs, got)

	day4, err := j.ListTradesByDay(4)
	require.NoError(t, err)
	require.Len(t, day4, 2)
	assert.Equal(t, "01B", day4[0].ID)
	assert.Equal(t, "01C", day4[1].ID)
}

func TestSQLiteRecordSnapshot(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	snap := DaySnapshot{
		Day:            3,
		Balance:        9500.25,
		PortfolioValue: 640.80,
		RealizedProfit: 141.05,
		Condition:      "BULLISH",
		Strategy:       "Aggressive",
	}
	require.NoError(t, j.RecordSnapshot(snap))
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var got DaySnapshot
	err = db.QueryRow(`SELECT day, balance, portfolio_value, realized_profit, condition, strategy FROM days`).
		Scan(&got.Day, &got.Balance, &got.PortfolioValue, &got.RealizedProfit, &got.Condition, &got.Strategy)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}
