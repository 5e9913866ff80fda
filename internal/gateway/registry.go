package gateway

import (
	"context"
	"fmt"
	"sync"

	"mini-bank/internal/domain"
)

// Registry implements the ClientRepository interface in memory. It starts empty and
// lives as long as the process.
type Registry struct {
	mu       sync.RWMutex
	byID     map[string]*domain.IndividualClient
	accounts []domain.Account
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*domain.IndividualClient)}
}

// AddClient stores a client. National ids are unique across the registry.
func (r *Registry) AddClient(ctx context.Context, client *domain.IndividualClient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[client.NationalID]; ok {
		return fmt.Errorf("national id %s: %w", client.NationalID, domain.ErrDuplicateClient)
	}
	r.byID[client.NationalID] = client
	return nil
}

// FindClient returns the client registered under nationalID.
func (r *Registry) FindClient(ctx context.Context, nationalID string) (*domain.IndividualClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.byID[nationalID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

// NextAccountNumber returns the number the next account will get. Numbers start at 1.
func (r *Registry) NextAccountNumber(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts) + 1, nil
}

func (r *Registry) AddAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, account)
	return nil
}

// ListAccounts returns all accounts in creation order.
func (r *Registry) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}
