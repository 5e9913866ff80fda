package domain

import "github.com/shopspring/decimal"

// Statement is a point-in-time view of an account's history and balance.
type Statement struct {
	Branch        string              `json:"branch" yaml:"branch"`
	AccountNumber int                 `json:"account_number" yaml:"account_number"`
	Holder        string              `json:"holder" yaml:"holder"`
	Records       []TransactionRecord `json:"records" yaml:"records"`
	Balance       decimal.Decimal     `json:"balance" yaml:"balance"`
}

// RenderStatement reads the account without touching it.
func RenderStatement(account Account) Statement {
	return Statement{
		Branch:        account.Branch(),
		AccountNumber: account.Number(),
		Holder:        ownerName(account.Owner()),
		Records:       account.History().Records(),
		Balance:       account.Balance(),
	}
}
