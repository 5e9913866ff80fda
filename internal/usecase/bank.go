package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mini-bank/internal/domain"
)

// Settings are the account rules applied to every newly opened account.
type Settings struct {
	CheckingPolicy domain.CheckingPolicy
}

// NewClientInput carries the data collected when registering a client.
type NewClientInput struct {
	FullName   string
	BirthDate  time.Time
	Address    string
	NationalID string
}

// BankUseCase orchestrates the ledger operations offered to the console.
// Operations run one at a time, so a balance change and its history record
// are never observed apart.
type BankUseCase struct {
	mu       sync.Mutex
	repo     ClientRepository
	settings Settings
	logger   *zap.Logger
}

// NewBankUseCase creates a new instance of the usecase.
func NewBankUseCase(repo ClientRepository, settings Settings, logger *zap.Logger) *BankUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankUseCase{repo: repo, settings: settings, logger: logger}
}

// CreateClient registers a new individual client. National ids are unique.
func (uc *BankUseCase) CreateClient(ctx context.Context, in NewClientInput) (*domain.IndividualClient, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.repo.FindClient(ctx, in.NationalID); err == nil {
		uc.logger.Warn("client already registered", zap.String("national_id", in.NationalID))
		return nil, fmt.Errorf("could not create client %s: %w", in.NationalID, domain.ErrDuplicateClient)
	} else if !errors.Is(err, domain.ErrClientNotFound) {
		return nil, fmt.Errorf("could not look up client %s: %w", in.NationalID, err)
	}

	client, err := domain.NewIndividualClient(in.FullName, in.BirthDate, in.Address, in.NationalID)
	if err != nil {
		return nil, fmt.Errorf("could not create client: %w", err)
	}
	if err := uc.repo.AddClient(ctx, client); err != nil {
		return nil, fmt.Errorf("could not store client %s: %w", in.NationalID, err)
	}

	uc.logger.Info("client created", zap.String("national_id", client.NationalID))
	return client, nil
}

// FindClient looks a client up by national id.
func (uc *BankUseCase) FindClient(ctx context.Context, nationalID string) (*domain.IndividualClient, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.findClient(ctx, nationalID)
}

// CreateAccount opens a checking account for the client under the next free number.
func (uc *BankUseCase) CreateAccount(ctx context.Context, nationalID string) (*domain.CheckingAccount, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	client, err := uc.findClient(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	number, err := uc.repo.NextAccountNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not allocate account number: %w", err)
	}

	account := domain.NewCheckingAccount(client, number, uc.settings.CheckingPolicy)
	if err := uc.repo.AddAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("could not store account %d: %w", number, err)
	}
	client.AddAccount(account)

	uc.logger.Info("account created",
		zap.String("national_id", nationalID),
		zap.Int("account", number),
	)
	return account, nil
}

// RecordDeposit deposits amount into the client's first account.
func (uc *BankUseCase) RecordDeposit(ctx context.Context, nationalID string, amount decimal.Decimal) (domain.Account, error) {
	return uc.record(ctx, nationalID, domain.NewDeposit(amount))
}

// RecordWithdrawal withdraws amount from the client's first account.
func (uc *BankUseCase) RecordWithdrawal(ctx context.Context, nationalID string, amount decimal.Decimal) (domain.Account, error) {
	return uc.record(ctx, nationalID, domain.NewWithdrawal(amount))
}

// Statement returns the statement of the client's first account.
func (uc *BankUseCase) Statement(ctx context.Context, nationalID string) (domain.Statement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	_, account, err := uc.resolve(ctx, nationalID)
	if err != nil {
		return domain.Statement{}, err
	}
	return domain.RenderStatement(account), nil
}

// ListAccounts returns every account in the order it was opened.
func (uc *BankUseCase) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	accounts, err := uc.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %w", err)
	}
	return accounts, nil
}

func (uc *BankUseCase) record(ctx context.Context, nationalID string, tx domain.Transaction) (domain.Account, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	client, account, err := uc.resolve(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("national_id", nationalID),
		zap.Int("account", account.Number()),
		zap.Stringer("kind", tx.Kind()),
		zap.Stringer("amount", tx.Amount()),
	}
	if err := client.ApplyTransaction(account, tx); err != nil {
		uc.logger.Warn("transaction refused", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("%s of %s refused: %w", tx.Kind(), tx.Amount(), err)
	}

	uc.logger.Info("transaction applied", append(fields, zap.Stringer("balance", account.Balance()))...)
	return account, nil
}

func (uc *BankUseCase) resolve(ctx context.Context, nationalID string) (*domain.IndividualClient, domain.Account, error) {
	client, err := uc.findClient(ctx, nationalID)
	if err != nil {
		return nil, nil, err
	}
	account, err := domain.FirstAccountOf(client)
	if err != nil {
		return nil, nil, fmt.Errorf("client %s: %w", nationalID, err)
	}
	return client, account, nil
}

func (uc *BankUseCase) findClient(ctx context.Context, nationalID string) (*domain.IndividualClient, error) {
	client, err := uc.repo.FindClient(ctx, nationalID)
	if err != nil {
		return nil, fmt.Errorf("could not find client %s: %w", nationalID, err)
	}
	return client, nil
}
