// Package bank implements the session ledger: named accounts with balances,
// transaction history and scheduled future deposits, plus a single
// "current session" pointer. One mutex guards all of it; every operation is
// a short independent critical section and never holds the lock across a
// call into another package.
package bank

import (
	"errors"
	"sync"
)

var (
	ErrAccountExists     = errors.New("account already exists")
	ErrBadCredentials    = errors.New("unknown user or wrong password")
	ErrNotLoggedIn       = errors.New("no active session")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Bank owns every account. At most one account is the current session;
// all balance-moving operations apply to it.
type Bank struct {
	mu       sync.Mutex
	accounts map[string]*account
	current  string
}

func New() *Bank {
	return &Bank{
		accounts: make(map[string]*account),
	}
}

// Register creates a new account with an empty history. The username must
// not already be taken.
func (b *Bank) Register(username, password string, balance float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[username]; ok {
		return ErrAccountExists
	}
	b.accounts[username] = &account{
		username: username,
		password: password,
		balance:  balance,
	}
	return nil
}

// Login makes the named account the current session. Password comparison is
// plaintext equality; unknown users and wrong passwords are reported the
// same way.
func (b *Bank) Login(username, password string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[username]
	if !ok {
		return ErrBadCredentials
	}
	if acct.password != password {
		return ErrBadCredentials
	}
	b.current = username
	return nil
}

func (b *Bank) Logout() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = ""
}

func (b *Bank) IsLoggedIn() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current != ""
}

func (b *Bank) CurrentUser() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Deposit credits the current session's account and appends a Transaction
// tagged with the supplied simulation day.
func (b *Bank) Deposit(amount float64, description string, day int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return err
	}
	return acct.deposit(amount, description, day)
}

// Withdraw debits the current session's account. The sufficiency check and
// the debit happen under one lock acquisition, so callers need no separate
// balance pre-check.
func (b *Bank) Withdraw(amount float64, description string, day int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return err
	}
	return acct.withdraw(amount, description, day)
}

// Balance returns the current session's balance, or 0 with no session.
func (b *Bank) Balance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return 0
	}
	return acct.balance
}

// TransactionHistory returns a copy of the current session's ordered
// history, oldest first. Empty with no session.
func (b *Bank) TransactionHistory() []Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return nil
	}
	out := make([]Transaction, len(acct.history))
	copy(out, acct.history)
	return out
}

// ScheduleDeposit appends a pending deposit for the given day to the current
// session. The day is not validated against the present; that is the
// caller's responsibility.
func (b *Bank) ScheduleDeposit(day int, amount float64, description string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return err
	}
	acct.scheduled = append(acct.scheduled, ScheduledDeposit{
		Day:         day,
		Amount:      amount,
		Description: description,
	})
	return nil
}

// ExecuteScheduledDeposits applies every unexecuted scheduled deposit whose
// day equals the given day and returns how many were applied. Entries that
// already ran, or target another day, are left untouched.
func (b *Bank) ExecuteScheduledDeposits(day int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return 0
	}
	return acct.executeScheduled(day)
}

// ScheduledDeposits returns a copy of the current session's schedule.
func (b *Bank) ScheduledDeposits() []ScheduledDeposit {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return nil
	}
	out := make([]ScheduledDeposit, len(acct.scheduled))
	copy(out, acct.scheduled)
	return out
}

// ResetCurrentAccount restores the current session's balance and clears its
// history and schedule. Other accounts are untouched; a no-op with no
// session.
func (b *Bank) ResetCurrentAccount(balance float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, err := b.sessionLocked()
	if err != nil {
		return
	}
	acct.reset(balance)
}

func (b *Bank) sessionLocked() (*account, error) {
	if b.current == "" {
		return nil, ErrNotLoggedIn
	}
	acct, ok := b.accounts[b.current]
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return acct, nil
}
