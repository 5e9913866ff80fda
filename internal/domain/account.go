package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BranchCode is the single branch every account is opened in.
const BranchCode = "0001"

// Account is a balance-holding entity owned by exactly one client.
// The balance only moves through Deposit and Withdraw.
type Account interface {
	Number() int
	Branch() string
	Balance() decimal.Decimal
	Owner() Client
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Summary() string
}

// BaseAccount holds the balance and history shared by every account variant.
type BaseAccount struct {
	number  int
	branch  string
	balance decimal.Decimal
	owner   Client
	history *History
}

// NewAccount opens a plain account with a zero balance.
func NewAccount(owner Client, number int) *BaseAccount {
	return &BaseAccount{
		number:  number,
		branch:  BranchCode,
		balance: decimal.Zero,
		owner:   owner,
		history: newHistory(),
	}
}

func (a *BaseAccount) Number() int              { return a.number }
func (a *BaseAccount) Branch() string           { return a.branch }
func (a *BaseAccount) Balance() decimal.Decimal { return a.balance }
func (a *BaseAccount) Owner() Client            { return a.owner }
func (a *BaseAccount) History() *History        { return a.history }

func (a *BaseAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits the account. An amount above the balance is reported as
// insufficient funds before the amount itself is validated.
func (a *BaseAccount) Withdraw(amount decimal.Decimal) error {
	switch {
	case amount.GreaterThan(a.balance):
		return ErrInsufficientFunds
	case amount.IsPositive():
		a.balance = a.balance.Sub(amount)
		return nil
	default:
		return ErrInvalidAmount
	}
}

func (a *BaseAccount) Summary() string {
	return fmt.Sprintf("Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s", a.branch, a.number, ownerName(a.owner))
}

// CheckingPolicy caps a checking account's withdrawals.
type CheckingPolicy struct {
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

// DefaultCheckingPolicy allows withdrawals of up to 500, three times.
func DefaultCheckingPolicy() CheckingPolicy {
	return CheckingPolicy{
		WithdrawalLimit: decimal.NewFromInt(500),
		MaxWithdrawals:  3,
	}
}

// CheckingAccount is an account with a per-transaction limit and a cap on
// the number of withdrawals. The cap never resets within a session.
type CheckingAccount struct {
	*BaseAccount
	policy CheckingPolicy
}

func NewCheckingAccount(owner Client, number int, policy CheckingPolicy) *CheckingAccount {
	return &CheckingAccount{
		BaseAccount: NewAccount(owner, number),
		policy:      policy,
	}
}

func (a *CheckingAccount) Policy() CheckingPolicy { return a.policy }

// Withdraw checks the per-transaction limit, then the withdrawal count, then
// falls back to the balance rules of BaseAccount.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	withdrawals := a.history.CountByKind(KindWithdrawal)

	switch {
	case amount.GreaterThan(a.policy.WithdrawalLimit):
		return ErrLimitExceeded
	case withdrawals >= a.policy.MaxWithdrawals:
		return ErrWithdrawalCountExceeded
	default:
		return a.BaseAccount.Withdraw(amount)
	}
}

func ownerName(c Client) string {
	if c == nil {
		return ""
	}
	return c.DisplayName()
}
