package gateway

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"mini-bank/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, id string) *domain.IndividualClient {
	t.Helper()
	c, err := domain.NewIndividualClient("Client "+id, time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC), "Rua C, 5", id)
	require.NoError(t, err)
	return c
}

func TestRegistry_Clients(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	first := newTestClient(t, "111")

	require.NoError(t, r.AddClient(ctx, first))

	t.Run("found by national id", func(t *testing.T) {
		got, err := r.FindClient(ctx, "111")
		require.NoError(t, err)
		assert.Same(t, first, got)
	})

	t.Run("unknown national id", func(t *testing.T) {
		got, err := r.FindClient(ctx, "222")
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
		assert.Nil(t, got)
	})

	t.Run("duplicate national id", func(t *testing.T) {
		err := r.AddClient(ctx, newTestClient(t, "111"))
		assert.ErrorIs(t, err, domain.ErrDuplicateClient)

		got, _ := r.FindClient(ctx, "111")
		assert.Same(t, first, got, "the first registration wins")
	})
}

func TestRegistry_Accounts(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	c := newTestClient(t, "111")

	empty, err := r.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	var opened []domain.Account
	for i := 0; i < 3; i++ {
		n, err := r.NextAccountNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, n)

		acc := domain.NewCheckingAccount(c, n, domain.DefaultCheckingPolicy())
		require.NoError(t, r.AddAccount(ctx, acc))
		opened = append(opened, acc)
	}

	got, err := r.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, opened, got)

	got[0] = nil
	again, _ := r.ListAccounts(ctx)
	assert.NotNil(t, again[0], "listing returns a copy")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			c := newTestClient(t, fmt.Sprintf("%03d", i))
			assert.NoError(t, r.AddClient(ctx, c))
			assert.NoError(t, r.AddAccount(ctx, domain.NewAccount(c, i)))
		}(i)
	}
	wg.Wait()

	accounts, err := r.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, workers)
	n, _ := r.NextAccountNumber(ctx)
	assert.Equal(t, workers+1, n)
}
