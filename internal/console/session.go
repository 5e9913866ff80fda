// Package console drives the ledger from a line-oriented text menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mini-bank/internal/domain"
	"mini-bank/internal/usecase"
)

// BirthDateLayout is the expected format of birth dates (dd-mm-yyyy).
const BirthDateLayout = "02-01-2006"

const menu = `
================ MENU ================
[d]	Deposit
[s]	Withdraw
[e]	Statement
[nc]	New account
[lc]	List accounts
[nu]	New client
[q]	Quit
=> `

// Ledger is what the menu needs from the bank.
type Ledger interface {
	CreateClient(ctx context.Context, in usecase.NewClientInput) (*domain.IndividualClient, error)
	FindClient(ctx context.Context, nationalID string) (*domain.IndividualClient, error)
	CreateAccount(ctx context.Context, nationalID string) (*domain.CheckingAccount, error)
	RecordDeposit(ctx context.Context, nationalID string, amount decimal.Decimal) (domain.Account, error)
	RecordWithdrawal(ctx context.Context, nationalID string, amount decimal.Decimal) (domain.Account, error)
	Statement(ctx context.Context, nationalID string) (domain.Statement, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// errEndOfInput ends the session when the input runs dry mid-command.
var errEndOfInput = errors.New("end of input")

// Session is one interactive run of the menu.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	ledger   Ledger
	renderer usecase.StatementRenderer
	logger   *zap.Logger
}

func NewSession(in io.Reader, out io.Writer, ledger Ledger, renderer usecase.StatementRenderer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		ledger:   ledger,
		renderer: renderer,
		logger:   logger,
	}
}

// Run reads commands until the user quits, the input ends or ctx is cancelled.
// Business failures are printed and never end the session.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		option, err := s.prompt(menu)
		if errors.Is(err, errEndOfInput) {
			return s.in.Err()
		}

		s.logger.Debug("menu option", zap.String("option", option))

		switch option {
		case "d":
			err = s.deposit(ctx)
		case "s":
			err = s.withdraw(ctx)
		case "e":
			err = s.statement(ctx)
		case "nu":
			err = s.createClient(ctx)
		case "nc":
			err = s.createAccount(ctx)
		case "lc":
			err = s.listAccounts(ctx)
		case "q":
			return nil
		default:
			s.fail("Invalid operation, please select the desired operation again.")
		}

		if errors.Is(err, errEndOfInput) {
			return s.in.Err()
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) deposit(ctx context.Context) error {
	return s.transact(ctx, "deposit", s.ledger.RecordDeposit, "Deposit completed!")
}

func (s *Session) withdraw(ctx context.Context) error {
	return s.transact(ctx, "withdrawal", s.ledger.RecordWithdrawal, "Withdrawal completed!")
}

type recordFunc func(ctx context.Context, nationalID string, amount decimal.Decimal) (domain.Account, error)

func (s *Session) transact(ctx context.Context, label string, record recordFunc, done string) error {
	id, err := s.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	if _, err := s.ledger.FindClient(ctx, id); err != nil {
		s.report(err)
		return nil
	}

	raw, err := s.prompt(fmt.Sprintf("Enter the %s amount: ", label))
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		s.report(domain.ErrInvalidAmount)
		return nil
	}

	if _, err := record(ctx, id, amount); err != nil {
		s.report(err)
		return nil
	}
	s.succeed(done)
	return nil
}

func (s *Session) statement(ctx context.Context) error {
	id, err := s.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	st, err := s.ledger.Statement(ctx, id)
	if err != nil {
		s.report(err)
		return nil
	}
	if err := s.renderer.Render(s.out, st); err != nil {
		return fmt.Errorf("could not print statement: %w", err)
	}
	return nil
}

func (s *Session) createClient(ctx context.Context) error {
	id, err := s.prompt("Enter the national id (numbers only): ")
	if err != nil {
		return err
	}
	if _, err := s.ledger.FindClient(ctx, id); err == nil {
		s.report(domain.ErrDuplicateClient)
		return nil
	} else if !errors.Is(err, domain.ErrClientNotFound) {
		s.report(err)
		return nil
	}

	name, err := s.prompt("Enter the full name: ")
	if err != nil {
		return err
	}
	rawDate, err := s.prompt("Enter the birth date (dd-mm-yyyy): ")
	if err != nil {
		return err
	}
	address, err := s.prompt("Enter the address (street, number - district - city/state): ")
	if err != nil {
		return err
	}

	birthDate, err := time.Parse(BirthDateLayout, rawDate)
	if err != nil {
		s.fail("Invalid birth date, expected dd-mm-yyyy.")
		return nil
	}

	_, err = s.ledger.CreateClient(ctx, usecase.NewClientInput{
		FullName:   name,
		BirthDate:  birthDate,
		Address:    address,
		NationalID: id,
	})
	if err != nil {
		s.report(err)
		return nil
	}
	s.succeed("Client created!")
	return nil
}

func (s *Session) createAccount(ctx context.Context) error {
	id, err := s.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	account, err := s.ledger.CreateAccount(ctx, id)
	if errors.Is(err, domain.ErrClientNotFound) {
		s.fail("Client not found, account creation aborted!")
		return nil
	}
	if err != nil {
		s.report(err)
		return nil
	}
	s.succeed(fmt.Sprintf("Account %d created!", account.Number()))
	return nil
}

func (s *Session) listAccounts(ctx context.Context) error {
	accounts, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	if len(accounts) == 0 {
		fmt.Fprintln(s.out, "No accounts registered.")
		return nil
	}
	for _, a := range accounts {
		fmt.Fprintln(s.out, strings.Repeat("=", 100))
		fmt.Fprintln(s.out, a.Summary())
	}
	return nil
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) succeed(msg string) {
	fmt.Fprintf(s.out, "\n=== %s ===\n", msg)
}

func (s *Session) fail(msg string) {
	fmt.Fprintf(s.out, "\n@@@ %s @@@\n", msg)
}

func (s *Session) report(err error) {
	s.logger.Debug("operation failed", zap.Error(err))
	s.fail(message(err))
}

func message(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Operation failed! The amount entered is invalid."
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Operation failed! You do not have enough balance."
	case errors.Is(err, domain.ErrLimitExceeded):
		return "Operation failed! The withdrawal amount exceeds the limit."
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "Operation failed! Maximum number of withdrawals exceeded."
	case errors.Is(err, domain.ErrClientNotFound):
		return "Client not found!"
	case errors.Is(err, domain.ErrDuplicateClient):
		return "A client with this national id already exists!"
	case errors.Is(err, domain.ErrNoAccount):
		return "Client has no account!"
	case errors.Is(err, domain.ErrInvalidClient):
		return "Operation failed! Name and national id are required."
	case errors.Is(err, domain.ErrForeignAccount):
		return "Operation failed! The account does not belong to the client."
	default:
		return "Operation failed! " + err.Error()
	}
}
