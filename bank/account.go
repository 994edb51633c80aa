package bank

import "time"

// Kind classifies a ledger transaction.
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// Transaction is one completed ledger movement. Records are append-only;
// Day is the simulation day supplied by the caller, Time the wall-clock
// moment the record was captured.
type Transaction struct {
	Kind        Kind
	Amount      float64
	Description string
	Day         int
	Time        time.Time
}

// ScheduledDeposit is a deposit bound to a future simulation day. It is
// applied exactly once, when ExecuteScheduledDeposits runs for its day.
type ScheduledDeposit struct {
	Day         int
	Amount      float64
	Description string
	Executed    bool
}

type account struct {
	username  string
	password  string
	balance   float64
	history   []Transaction
	scheduled []ScheduledDeposit
}

func (a *account) deposit(amount float64, description string, day int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.balance += amount
	a.history = append(a.history, Transaction{
		Kind:        Deposit,
		Amount:      amount,
		Description: description,
		Day:         day,
		Time:        time.Now(),
	})
	return nil
}

// withdraw is the atomic check-and-debit: the balance test and the debit
// happen together, under the Bank lock held by the caller.
func (a *account) withdraw(amount float64, description string, day int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.balance < amount {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	a.history = append(a.history, Transaction{
		Kind:        Withdrawal,
		Amount:      amount,
		Description: description,
		Day:         day,
		Time:        time.Now(),
	})
	return nil
}

func (a *account) executeScheduled(day int) int {
	executed := 0
	for i := range a.scheduled {
		s := &a.scheduled[i]
		if s.Executed || s.Day != day {
			continue
		}
		if err := a.deposit(s.Amount, s.Description, day); err != nil {
			continue
		}
		s.Executed = true
		executed++
	}
	return executed
}

func (a *account) reset(balance float64) {
	a.balance = balance
	a.history = nil
	a.scheduled = nil
}
