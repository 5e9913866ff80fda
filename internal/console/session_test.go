package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"mini-bank/internal/console"
	"mini-bank/internal/domain"
	"mini-bank/internal/gateway"
	"mini-bank/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func run(t *testing.T, script ...string) (string, *gateway.Registry) {
	t.Helper()
	registry := gateway.NewRegistry()
	logger := zaptest.NewLogger(t)
	uc := usecase.NewBankUseCase(registry, usecase.Settings{CheckingPolicy: domain.DefaultCheckingPolicy()}, logger)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	session := console.NewSession(in, &out, uc, gateway.TextStatementRenderer{}, logger)

	require.NoError(t, session.Run(context.Background()))
	return out.String(), registry
}

var newClient = []string{"nu", "111", "Ana Souza", "17-05-1990", "Rua A, 10 - Centro - Recife/PE"}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestSession_FullFlow(t *testing.T) {
	out, registry := run(t, script(
		newClient,
		[]string{"nc", "111"},
		[]string{"d", "111", "100"},
		[]string{"s", "111", "40"},
		[]string{"e", "111"},
		[]string{"lc"},
		[]string{"q"},
	)...)

	assert.Contains(t, out, "=== Client created! ===")
	assert.Contains(t, out, "=== Account 1 created! ===")
	assert.Contains(t, out, "=== Deposit completed! ===")
	assert.Contains(t, out, "=== Withdrawal completed! ===")
	assert.Contains(t, out, "Deposit:\n\t$ 100.00")
	assert.Contains(t, out, "Withdrawal:\n\t$ 40.00")
	assert.Contains(t, out, "Balance:\n\t$ 60.00")
	assert.Contains(t, out, "Branch:\t\t0001\nAccount:\t1\nHolder:\t\tAna Souza")

	accounts, err := registry.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].Balance().Equal(decimal.RequireFromString("60")))
}

func TestSession_Failures(t *testing.T) {
	tests := []struct {
		name   string
		script []string
		want   string
	}{
		{
			name:   "unknown client on deposit",
			script: []string{"d", "999", "q"},
			want:   "@@@ Client not found! @@@",
		},
		{
			name:   "duplicate client",
			script: script(newClient, []string{"nu", "111", "q"}),
			want:   "@@@ A client with this national id already exists! @@@",
		},
		{
			name:   "client without account",
			script: script(newClient, []string{"d", "111", "10", "q"}),
			want:   "@@@ Client has no account! @@@",
		},
		{
			name:   "unparsable amount",
			script: script(newClient, []string{"nc", "111", "d", "111", "ten", "q"}),
			want:   "@@@ Operation failed! The amount entered is invalid. @@@",
		},
		{
			name:   "negative deposit",
			script: script(newClient, []string{"nc", "111", "d", "111", "-5", "q"}),
			want:   "@@@ Operation failed! The amount entered is invalid. @@@",
		},
		{
			name:   "insufficient funds",
			script: script(newClient, []string{"nc", "111", "s", "111", "10", "q"}),
			want:   "@@@ Operation failed! You do not have enough balance. @@@",
		},
		{
			name:   "withdrawal above limit",
			script: script(newClient, []string{"nc", "111", "d", "111", "1000", "s", "111", "600", "q"}),
			want:   "@@@ Operation failed! The withdrawal amount exceeds the limit. @@@",
		},
		{
			name: "fourth withdrawal",
			script: script(newClient, []string{"nc", "111", "d", "111", "100",
				"s", "111", "10", "s", "111", "10", "s", "111", "10", "s", "111", "10", "q"}),
			want: "@@@ Operation failed! Maximum number of withdrawals exceeded. @@@",
		},
		{
			name:   "account for unknown client",
			script: []string{"nc", "404", "q"},
			want:   "@@@ Client not found, account creation aborted! @@@",
		},
		{
			name:   "bad birth date",
			script: []string{"nu", "111", "Ana", "1990-05-17", "Rua A", "q"},
			want:   "@@@ Invalid birth date, expected dd-mm-yyyy. @@@",
		},
		{
			name:   "missing name",
			script: []string{"nu", "111", "", "17-05-1990", "Rua A", "q"},
			want:   "@@@ Operation failed! Name and national id are required. @@@",
		},
		{
			name:   "unknown option",
			script: []string{"x", "q"},
			want:   "@@@ Invalid operation, please select the desired operation again. @@@",
		},
		{
			name:   "empty statement",
			script: script(newClient, []string{"nc", "111", "e", "111", "q"}),
			want:   "No transactions recorded.",
		},
		{
			name:   "no accounts to list",
			script: []string{"lc", "q"},
			want:   "No accounts registered.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := run(t, tt.script...)

			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSession_EndOfInput(t *testing.T) {
	t.Run("between commands", func(t *testing.T) {
		out, _ := run(t, newClient...)

		assert.Contains(t, out, "=== Client created! ===")
	})

	t.Run("in the middle of a command", func(t *testing.T) {
		out, registry := run(t, "nu", "111", "Ana Souza")

		assert.NotContains(t, out, "Client created!")
		_, err := registry.FindClient(context.Background(), "111")
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}

func TestSession_CancelledContext(t *testing.T) {
	registry := gateway.NewRegistry()
	uc := usecase.NewBankUseCase(registry, usecase.Settings{CheckingPolicy: domain.DefaultCheckingPolicy()}, nil)
	session := console.NewSession(strings.NewReader("lc\n"), &bytes.Buffer{}, uc, gateway.TextStatementRenderer{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := session.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
