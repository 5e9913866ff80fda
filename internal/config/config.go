// Package config loads the bank settings with viper.
//
// Values come, in increasing priority, from defaults, an optional config file
// (a .env in the working directory unless a path is given), BANK_* environment
// variables and command line flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"mini-bank/internal/domain"
)

const EnvPrefix = "BANK"

// Keys, as used in config files and (prefixed) in the environment.
const (
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogOutput       = "LOG_OUTPUT"
	KeyWithdrawalLimit = "WITHDRAWAL_LIMIT"
	KeyMaxWithdrawals  = "MAX_WITHDRAWALS"
	KeyStatementFormat = "STATEMENT_FORMAT"
)

var statementFormats = []string{"text", "csv", "json", "yaml"}

// Config stores all configuration for the application.
type Config struct {
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	LogOutput       string `mapstructure:"LOG_OUTPUT"`
	WithdrawalLimit string `mapstructure:"WITHDRAWAL_LIMIT"`
	MaxWithdrawals  int    `mapstructure:"MAX_WITHDRAWALS"`
	StatementFormat string `mapstructure:"STATEMENT_FORMAT"`
}

// New returns a viper instance with the defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogOutput, "stderr")
	v.SetDefault(KeyWithdrawalLimit, "500")
	v.SetDefault(KeyMaxWithdrawals, 3)
	v.SetDefault(KeyStatementFormat, "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and decodes the result.
// An empty path looks for .env in the working directory and tolerates its absence.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".env")
		v.SetConfigType("env")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the ledger cannot run with.
func (c Config) Validate() error {
	limit, err := decimal.NewFromString(c.WithdrawalLimit)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", KeyWithdrawalLimit, c.WithdrawalLimit, err)
	}
	if !limit.IsPositive() {
		return fmt.Errorf("invalid %s %q: must be greater than zero", KeyWithdrawalLimit, c.WithdrawalLimit)
	}
	if c.MaxWithdrawals < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", KeyMaxWithdrawals, c.MaxWithdrawals)
	}
	for _, f := range statementFormats {
		if strings.EqualFold(c.StatementFormat, f) {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: want one of %s", KeyStatementFormat, c.StatementFormat, strings.Join(statementFormats, ", "))
}

// CheckingPolicy converts the withdrawal settings for the domain. Call Validate first.
func (c Config) CheckingPolicy() domain.CheckingPolicy {
	return domain.CheckingPolicy{
		WithdrawalLimit: decimal.RequireFromString(c.WithdrawalLimit),
		MaxWithdrawals:  c.MaxWithdrawals,
	}
}
