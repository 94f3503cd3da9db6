package config

import (
	"fmt"
	"strings"

	"github.com/hance08/payments/internal/constants"
)

const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

type Config struct {
	Engine     EngineConfig `mapstructure:"engine"`
	Output     OutputConfig `mapstructure:"output"`
	Export     ExportConfig `mapstructure:"export"`
	Log        LogConfig    `mapstructure:"log"`
	ConfigPath string       `mapstructure:"-"`
}

type EngineConfig struct {
	// FreezeLocked rejects deposits and withdrawals on locked accounts.
	FreezeLocked bool `mapstructure:"freeze_locked"`
}

type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
}

type ExportConfig struct {
	// Database is the SQLite file snapshots are exported to. Empty disables export.
	Database string `mapstructure:"database"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Engine: EngineConfig{FreezeLocked: false},
		Output: OutputConfig{Format: FormatCSV, Precision: constants.DefaultPrecision},
		Export: ExportConfig{Database: ""},
		Log:    LogConfig{Level: "warn"},
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case FormatCSV, FormatTable:
	default:
		return fmt.Errorf("invalid output format '%s' (must be csv or table)", c.Output.Format)
	}

	if c.Output.Precision > constants.MaxPrecision {
		return fmt.Errorf("invalid output precision %d (must be at most %d)", c.Output.Precision, constants.MaxPrecision)
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}
