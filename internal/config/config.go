package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jakobhellermann/beancount-paypal/internal/ledger"
	"github.com/jakobhellermann/beancount-paypal/internal/locale"
)

// Config is the top-level importer configuration file.
type Config struct {
	Accounts AccountsConfig    `yaml:"accounts"`
	Locale   string            `yaml:"locale"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// AccountsConfig names the ledger accounts postings are booked against.
type AccountsConfig struct {
	PayPal     string `yaml:"paypal"`
	Checking   string `yaml:"checking"`
	Commission string `yaml:"commission"`
	Fixme      string `yaml:"fixme,omitempty"`
}

// Load reads and validates a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks account names, the locale code and the metadata
// projection. The fixme account is the only optional entry.
func (c *Config) Validate() error {
	required := map[string]string{
		"accounts.paypal":     c.Accounts.PayPal,
		"accounts.checking":   c.Accounts.Checking,
		"accounts.commission": c.Accounts.Commission,
	}
	for key, name := range required {
		if name == "" {
			return fmt.Errorf("%s is required", key)
		}
		if err := ledger.ValidateAccount(name); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	if c.Accounts.Fixme != "" {
		if err := ledger.ValidateAccount(c.Accounts.Fixme); err != nil {
			return fmt.Errorf("accounts.fixme: %w", err)
		}
	}

	if _, err := locale.ByCode(c.Locale); err != nil {
		return err
	}

	for key, field := range c.Metadata {
		if !locale.IsKnownField(field) {
			return fmt.Errorf("metadata %q: unknown field %q", key, field)
		}
	}
	return nil
}

// Profile returns the locale profile the config selects.
func (c *Config) Profile() (*locale.Profile, error) {
	return locale.ByCode(c.Locale)
}

// Default returns a starter config for a new setup.
func Default() *Config {
	return &Config{
		Accounts: AccountsConfig{
			PayPal:     "Assets:PayPal",
			Checking:   "Assets:ZeroSum:Transfers",
			Commission: "Expenses:PayPal:Commission",
			Fixme:      "Expenses:FIXME",
		},
		Locale: "de",
		Metadata: map[string]string{
			"sender": locale.FieldFrom,
		},
	}
}
