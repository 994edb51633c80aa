package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite persists the trade log and day snapshots to a SQLite database,
// one insert per record.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(id, side, symbol, shares, price, total, day, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Side, t.Symbol, t.Shares, t.Price, t.Total, t.Day, t.Reason,
	)
	return err
}

func (j *SQLite) RecordSnapshot(s DaySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO days
		(day, balance, portfolio_value, realized_profit, condition, strategy)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.Day, s.Balance, s.PortfolioValue, s.RealizedProfit, s.Condition, s.Strategy,
	)
	return err
}

// ListTrades returns every recorded trade in append order.
func (j *SQLite) ListTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, side, symbol, shares, price, total, day, reason
		FROM trades ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.ID, &t.Side, &t.Symbol, &t.Shares, &t.Price, &t.Total, &t.Day, &t.Reason); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListTradesByDay returns the trades executed on one simulation day.
func (j *SQLite) ListTradesByDay(day int) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, side, symbol, shares, price, total, day, reason
		FROM trades WHERE day = ? ORDER BY id`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.ID, &t.Side, &t.Symbol, &t.Shares, &t.Price, &t.Total, &t.Day, &t.Reason); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
