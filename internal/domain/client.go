package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client owns an address and its accounts, and is the one initiating transactions on them.
type Client interface {
	Address() string
	Accounts() []Account
	AddAccount(account Account)
	ApplyTransaction(account Account, tx Transaction) error
	DisplayName() string
}

// clientBase is the address and account list shared by client variants.
type clientBase struct {
	address  string
	accounts []Account
}

func (c *clientBase) Address() string { return c.address }

// Accounts returns the client's accounts in the order they were opened.
func (c *clientBase) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *clientBase) AddAccount(account Account) {
	c.accounts = append(c.accounts, account)
}

// IndividualClient is a person identified by a national id.
type IndividualClient struct {
	clientBase
	FullName   string
	BirthDate  time.Time
	NationalID string
}

func NewIndividualClient(fullName string, birthDate time.Time, address, nationalID string) (*IndividualClient, error) {
	fullName = strings.TrimSpace(fullName)
	nationalID = strings.TrimSpace(nationalID)
	if fullName == "" || nationalID == "" {
		return nil, ErrInvalidClient
	}
	return &IndividualClient{
		clientBase: clientBase{address: strings.TrimSpace(address)},
		FullName:   fullName,
		BirthDate:  birthDate,
		NationalID: nationalID,
	}, nil
}

func (c *IndividualClient) DisplayName() string { return c.FullName }

// ApplyTransaction applies tx to one of the client's own accounts.
func (c *IndividualClient) ApplyTransaction(account Account, tx Transaction) error {
	if account == nil || account.Owner() != Client(c) {
		return ErrForeignAccount
	}
	return tx.Apply(account)
}

// FirstAccountOf returns the first account the client opened.
func FirstAccountOf(c Client) (Account, error) {
	accounts := c.Accounts()
	if len(accounts) == 0 {
		return nil, ErrNoAccount
	}
	return accounts[0], nil
}

func RecordDeposit(c Client, account Account, amount decimal.Decimal) error {
	return c.ApplyTransaction(account, NewDeposit(amount))
}

func RecordWithdrawal(c Client, account Account, amount decimal.Decimal) error {
	return c.ApplyTransaction(account, NewWithdrawal(amount))
}
