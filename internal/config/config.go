package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported record store backends.
const (
	BackendMemory  = "memory"
	BackendMongoDB = "mongodb"
	BackendSheets  = "sheets"
)

// Config represents the full application configuration surface.
type Config struct {
	Server         ServerConfig
	Store          StoreConfig
	MongoDB        MongoDBConfig
	Sheets         SheetsConfig
	WhatsApp       WhatsAppConfig
	Reporting      ReportingConfig
	Regime         Regime
	Log            LogConfig
	RegulationFile string `env:"REGULATION_FILE"`
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string `env:"APP_PORT" envDefault:"8080"`
}

// StoreConfig selects the backing table for operational records.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DBName string `env:"MONGODB_DB_NAME" envDefault:"ecofinance"`
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string `env:"GOOGLE_SHEETS_CREDENTIALS_PATH"`
	SpreadsheetID   string `env:"GOOGLE_SHEET_DATABASE_ID"`
	Range           string `env:"GOOGLE_SHEET_RECORDS_RANGE" envDefault:"Operations!A:L"`
}

// WhatsAppConfig contains credentials and options for the Meta WhatsApp Cloud API.
// The advisor channel is disabled when AccessToken is empty.
type WhatsAppConfig struct {
	AccessToken     string `env:"WHATSAPP_TOKEN"`
	PhoneNumberID   string `env:"WHATSAPP_PHONE_NUMBER_ID"`
	VerifyToken     string `env:"META_VERIFY_TOKEN"`
	BaseURL         string `env:"WHATSAPP_BASE_URL" envDefault:"https://graph.facebook.com"`
	APIVersion      string `env:"WHATSAPP_API_VERSION" envDefault:"v20.0"`
	ReportRecipient string `env:"WHATSAPP_REPORT_RECIPIENT"`
}

// Enabled reports whether the WhatsApp channel has credentials.
func (c WhatsAppConfig) Enabled() bool {
	return c.AccessToken != "" && c.PhoneNumberID != ""
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string `env:"REPORT_CRON_SCHEDULE" envDefault:"0 8 1 * *"`
	Timezone     string `env:"TIMEZONE" envDefault:"America/Lima"`
	Archive      bool   `env:"REPORT_ARCHIVE" envDefault:"false"`
}

// Regime gathers the fixed heuristic multipliers used to derive record fields and
// scenario outputs. Swapping it lets the engine run against another regulatory regime.
type Regime struct {
	UnitPrice          float64 `env:"UNIT_PRICE" envDefault:"5000"`
	UnitCost           float64 `env:"UNIT_COST" envDefault:"3500"`
	EnvInvestmentRate  float64 `env:"ENV_INVESTMENT_RATE" envDefault:"40"`
	BaselineEnergyMean float64 `env:"BASELINE_ENERGY_MEAN" envDefault:"100"`
	PeriodDays         int     `env:"PERIOD_DAYS" envDefault:"30"`
	SavingsRate        float64 `env:"SAVINGS_RATE" envDefault:"0.2"`
	ReductionBand      string  `env:"REDUCTION_BAND" envDefault:"15-25%"`
	Material           string  `env:"MATERIAL" envDefault:"Copper"`
}

// DefaultRegime returns the multipliers applied by the capture form.
func DefaultRegime() Regime {
	return Regime{
		UnitPrice:          5000,
		UnitCost:           3500,
		EnvInvestmentRate:  40,
		BaselineEnergyMean: 100,
		PeriodDays:         30,
		SavingsRate:        0.2,
		ReductionBand:      "15-25%",
		Material:           "Copper",
	}
}

// LogConfig controls optional file output for the logger.
type LogConfig struct {
	File string `env:"LOG_FILE"`
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Store.Backend {
	case BackendMemory:
	case BackendMongoDB:
		if err := c.MongoDB.validate(); err != nil {
			return err
		}
	case BackendSheets:
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided")
		}
		if c.Sheets.Range == "" {
			return errors.New("GOOGLE_SHEET_RECORDS_RANGE must not be empty")
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.Store.Backend)
	}

	if c.Reporting.Archive {
		if err := c.MongoDB.validate(); err != nil {
			return err
		}
	}

	if c.WhatsApp.AccessToken != "" {
		switch {
		case c.WhatsApp.PhoneNumberID == "":
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided")
		case c.WhatsApp.VerifyToken == "":
			return errors.New("META_VERIFY_TOKEN must be provided")
		case c.WhatsApp.BaseURL == "":
			return errors.New("WHATSAPP_BASE_URL must not be empty")
		case c.WhatsApp.APIVersion == "":
			return errors.New("WHATSAPP_API_VERSION must not be empty")
		}
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	if _, err := time.LoadLocation(c.Reporting.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q is invalid: %w", c.Reporting.Timezone, err)
	}

	return c.Regime.Validate()
}

// Validate checks that the multipliers describe a usable regime.
func (r Regime) Validate() error {
	switch {
	case r.UnitPrice < 0:
		return errors.New("UNIT_PRICE must not be negative")
	case r.UnitCost < 0:
		return errors.New("UNIT_COST must not be negative")
	case r.EnvInvestmentRate < 0:
		return errors.New("ENV_INVESTMENT_RATE must not be negative")
	case r.BaselineEnergyMean < 0:
		return errors.New("BASELINE_ENERGY_MEAN must not be negative")
	case r.PeriodDays <= 0:
		return errors.New("PERIOD_DAYS must be positive")
	case r.SavingsRate < 0:
		return errors.New("SAVINGS_RATE must not be negative")
	case r.ReductionBand == "":
		return errors.New("REDUCTION_BAND must not be empty")
	}
	return nil
}

func (m MongoDBConfig) validate() error {
	if m.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if m.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}
	return nil
}
