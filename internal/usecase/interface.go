package usecase

import (
	"context"
	"io"

	"mini-bank/internal/domain"
)

// ClientRepository keeps clients and accounts alive for the session.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go ClientRepository
type ClientRepository interface {
	AddClient(ctx context.Context, client *domain.IndividualClient) error
	FindClient(ctx context.Context, nationalID string) (*domain.IndividualClient, error)
	NextAccountNumber(ctx context.Context) (int, error)
	AddAccount(ctx context.Context, account domain.Account) error
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// StatementRenderer writes a statement in one output format.
type StatementRenderer interface {
	Render(w io.Writer, st domain.Statement) error
}
