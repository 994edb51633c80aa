// Package sim ties the ledger and the bot into one simulation session and
// owns the day-stepping order: scheduled deposits land before the trading
// cycle reads the balance, so cash scheduled for a day is spendable that
// same day.
package sim

import (
	"github.com/rustyeddy/papertrader/bank"
	"github.com/rustyeddy/papertrader/bot"
)

// Session is the composition root of one simulation: an explicitly
// constructed bank plus bot, passed around by reference. Independent
// sessions (and their tests) can coexist.
type Session struct {
	Bank *bank.Bank
	Bot  *bot.Bot
}

func New(b *bank.Bank, t *bot.Bot) *Session {
	return &Session{Bank: b, Bot: t}
}

// AdvanceDay steps the simulation one day: advance the market, apply any
// deposits scheduled for the new day, then run the trading cycle if the bot
// is running. Returns the new day and how many scheduled deposits landed.
func (s *Session) AdvanceDay() (day, deposited int) {
	s.Bot.AdvanceDay()
	day = s.Bot.Day()

	deposited = s.Bank.ExecuteScheduledDeposits(day)

	if s.Bot.IsRunning() {
		s.Bot.ExecuteTradingCycle()
	}
	return day, deposited
}

// EndWithProfit stops the bot and winds the portfolio down: each round
// sells what is profitable, and once maxWaitDays extra days have passed the
// rest is dumped at market. Returns the days waited beyond the stop.
func (s *Session) EndWithProfit(maxWaitDays int) (waited int) {
	s.Bot.Stop()

	for !s.Bot.TryEndWithProfit(maxWaitDays, waited) {
		waited++
		s.Bot.AdvanceDay()
	}
	return waited
}

// Logout stops the bot before clearing the bank session, so a logged-out
// ledger is never traded against.
func (s *Session) Logout() {
	if s.Bot.IsRunning() {
		s.Bot.Stop()
	}
	s.Bank.Logout()
}

// Reset starts the simulation over: bot back to day 1 with opening prices,
// and the current account (if logged in) restored to the given balance.
func (s *Session) Reset(initialBalance float64) {
	if s.Bot.IsRunning() {
		s.Bot.Stop()
	}
	s.Bot.Reset()
	if s.Bank.IsLoggedIn() {
		s.Bank.ResetCurrentAccount(initialBalance)
	}
}
