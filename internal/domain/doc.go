// Package domain holds the ledger model: clients, accounts, transactions and their history.
//
// It does no I/O and knows nothing about the console or the registry that keeps clients alive.
package domain
