package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVJournal writes trades and day snapshots to two CSV files, flushing
// after every record so a crashed run still leaves a usable log.
type CSVJournal struct {
	trades *csv.Writer
	days   *csv.Writer
	tf, df *os.File
}

func NewCSV(tradesPath, daysPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	df, err := os.Create(daysPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	dw := csv.NewWriter(df)

	if err := tw.Write([]string{"id", "side", "symbol", "shares", "price", "total", "day", "reason"}); err != nil {
		return nil, err
	}
	if err := dw.Write([]string{"day", "balance", "portfolio_value", "realized_profit", "condition", "strategy"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	dw.Flush()
	if err := dw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{tw, dw, tf, df}, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.ID,
		t.Side,
		t.Symbol,
		strconv.Itoa(t.Shares),
		f(t.Price),
		f(t.Total),
		strconv.Itoa(t.Day),
		t.Reason,
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordSnapshot(s DaySnapshot) error {
	err := j.days.Write([]string{
		strconv.Itoa(s.Day),
		f(s.Balance),
		f(s.PortfolioValue),
		f(s.RealizedProfit),
		s.Condition,
		s.Strategy,
	})
	if err != nil {
		return err
	}
	j.days.Flush()
	return j.days.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.days.Flush()
	if err := j.days.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.df.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
