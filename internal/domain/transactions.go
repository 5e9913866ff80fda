package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind identifies the variant of a recorded transaction.
type TransactionKind int

const (
	KindDeposit TransactionKind = iota + 1
	KindWithdrawal
)

func (k TransactionKind) String() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

func (k TransactionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// TransactionRecord is the immutable trace a successful transaction leaves in a History.
type TransactionRecord struct {
	ID        uuid.UUID       `json:"id" yaml:"id"`
	Kind      TransactionKind `json:"kind" yaml:"kind"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
}

// Transaction is an intent applied to an account. Implementations carry only their amount.
type Transaction interface {
	Kind() TransactionKind
	Amount() decimal.Decimal
	Apply(account Account) error
}

// Deposit credits its amount to an account.
type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() TransactionKind   { return KindDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.amount }

// Apply deposits into the account and records the deposit only if the account accepted it.
func (d Deposit) Apply(account Account) error {
	if err := account.Deposit(d.amount); err != nil {
		return err
	}
	account.History().append(newRecord(d))
	return nil
}

// Withdrawal debits its amount from an account.
type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() TransactionKind   { return KindWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

// Apply withdraws from the account and records the withdrawal only if the account accepted it.
func (w Withdrawal) Apply(account Account) error {
	if err := account.Withdraw(w.amount); err != nil {
		return err
	}
	account.History().append(newRecord(w))
	return nil
}

func newRecord(tx Transaction) TransactionRecord {
	return TransactionRecord{
		ID:        uuid.New(),
		Kind:      tx.Kind(),
		Amount:    tx.Amount(),
		Timestamp: time.Now(),
	}
}
