package domain

import "errors"

// Business refusals. None of them is fatal: the caller reports the message and carries on.
var (
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrLimitExceeded           = errors.New("withdrawal exceeds the per-transaction limit")
	ErrWithdrawalCountExceeded = errors.New("maximum number of withdrawals reached")
	ErrClientNotFound          = errors.New("client not found")
	ErrDuplicateClient         = errors.New("a client with this national id already exists")
	ErrNoAccount               = errors.New("client has no account")
	ErrForeignAccount          = errors.New("account does not belong to client")
	ErrInvalidClient           = errors.New("client requires a name and a national id")
)
