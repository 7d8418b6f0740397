package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Interest rates, annual percent per account type
	SavingsAnnualRate  string `env:"SAVINGS_ANNUAL_RATE"   envDefault:"72"`
	HomeLoanAnnualRate string `env:"HOME_LOAN_ANNUAL_RATE" envDefault:"3.99"`

	// Statement
	MiniStatementLimit int `env:"MINI_STATEMENT_LIMIT" envDefault:"5"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Rates builds the interest rate table from the configured values.
func (c *Config) Rates() (map[domain.AccountType]decimal.Decimal, error) {
	savings, err := decimal.NewFromString(c.SavingsAnnualRate)
	if err != nil {
		return nil, fmt.Errorf("invalid savings rate %q: %w", c.SavingsAnnualRate, err)
	}

	homeLoan, err := decimal.NewFromString(c.HomeLoanAnnualRate)
	if err != nil {
		return nil, fmt.Errorf("invalid home loan rate %q: %w", c.HomeLoanAnnualRate, err)
	}

	return map[domain.AccountType]decimal.Decimal{
		domain.AccountTypeSavings:  savings,
		domain.AccountTypeHomeLoan: homeLoan,
	}, nil
}
