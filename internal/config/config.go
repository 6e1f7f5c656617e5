package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the calculator
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type EngineConfig struct {
	// MaxTermMonths is the longest loan term the service accepts.
	MaxTermMonths int `mapstructure:"max_term_months"`
	// PayoffCapMonths bounds the payoff-horizon walk.
	PayoffCapMonths int `mapstructure:"payoff_cap_months"`
	// MoneyPlaces is the currency precision of presented amounts.
	MoneyPlaces int32 `mapstructure:"money_places"`
}

type ReportConfig struct {
	Currency string `mapstructure:"currency"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from environment variables, with overrides like
// ENGINE_PAYOFF_CAP_MONTHS mapping onto engine.payoff_cap_months.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("engine.max_term_months", 600)
	v.SetDefault("engine.payoff_cap_months", 600)
	v.SetDefault("engine.money_places", 2)
	v.SetDefault("report.currency", "₹")
	v.SetDefault("logging.level", "info")

	// Read from environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Engine.MaxTermMonths <= 0 {
		return fmt.Errorf("engine.max_term_months must be greater than 0")
	}

	if c.Engine.PayoffCapMonths <= 0 {
		return fmt.Errorf("engine.payoff_cap_months must be greater than 0")
	}

	if c.Engine.MoneyPlaces < 0 || c.Engine.MoneyPlaces > 8 {
		return fmt.Errorf("engine.money_places must be between 0 and 8")
	}

	if c.Report.Currency == "" {
		return fmt.Errorf("report.currency is required")
	}

	return nil
}

// Default returns a configuration with all defaults applied, for callers
// that do not go through the environment.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxTermMonths:   600,
			PayoffCapMonths: 600,
			MoneyPlaces:     2,
		},
		Report: ReportConfig{
			Currency: "₹",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
