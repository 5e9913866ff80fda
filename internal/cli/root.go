package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mini-bank/internal/config"
	"mini-bank/internal/console"
	"mini-bank/internal/gateway"
	"mini-bank/internal/observability"
	"mini-bank/internal/usecase"
)

// Version is set at build time with -ldflags "-X mini-bank/internal/cli.Version=...".
var Version = "dev"

func Execute() {
	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:          "bank",
		Short:        "In-memory console banking ledger",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, in, out)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default: .env in the working directory, if present)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-output", "stderr", "log destination: stderr, stdout or a file path")
	flags.String("statement-format", "text", "statement format (text, csv, json, yaml)")
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogOutput, flags.Lookup("log-output"))
	_ = v.BindPFlag(config.KeyStatementFormat, flags.Lookup("statement-format"))

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bank %s\n", Version)
			return err
		},
	}
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	renderer, err := gateway.NewStatementRenderer(cfg.StatementFormat)
	if err != nil {
		return err
	}

	// --- Dependency Injection (wiring the application) ---
	registry := gateway.NewRegistry()
	bank := usecase.NewBankUseCase(registry, usecase.Settings{CheckingPolicy: cfg.CheckingPolicy()}, logger)
	session := console.NewSession(in, out, bank, renderer, logger)

	logger.Info("session started",
		zap.String("withdrawal_limit", cfg.WithdrawalLimit),
		zap.Int("max_withdrawals", cfg.MaxWithdrawals),
		zap.String("statement_format", cfg.StatementFormat),
	)
	if err := session.Run(ctx); err != nil {
		logger.Error("session aborted", zap.Error(err))
		return err
	}
	logger.Info("session ended")
	return nil
}
