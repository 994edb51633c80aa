package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	side TEXT NOT NULL,
	symbol TEXT NOT NULL,
	shares INTEGER NOT NULL,
	price REAL NOT NULL,
	total REAL NOT NULL,
	day INTEGER NOT NULL,
	reason TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS days (
	day INTEGER NOT NULL,
	balance REAL NOT NULL,
	portfolio_value REAL NOT NULL,
	realized_profit REAL NOT NULL,
	condition TEXT NOT NULL,
	strategy TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_day ON trades(day);
CREATE INDEX IF NOT EXISTS idx_days_day ON days(day);
`
