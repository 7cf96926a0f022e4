// Package config loads the optional fsplit.yaml configuration.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/etnz/fundsplit"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "fsplit.yaml"

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Currency used to display amounts of states that do not name one.
	Currency  string          `yaml:"currency"`
	Constants ConstantsConfig `yaml:"constants"`
	Server    ServerConfig    `yaml:"server"`
}

// ConstantsConfig overrides the default policy. Unset fields keep the default.
type ConstantsConfig struct {
	SeedBaseline                  *float64 `yaml:"seed_baseline"`
	EntryFeeRate                  *float64 `yaml:"entry_fee_rate"`
	MgmtFeeRate                   *float64 `yaml:"mgmt_fee_rate"`
	FoundersMoonbagPct            *float64 `yaml:"founders_moonbag_pct"`
	FoundersCount                 *int     `yaml:"founders_count"`
	EntryFeeReducesInvestorCredit *bool    `yaml:"entry_fee_reduces_investor_credit"`
	DominanceLeadPct              *float64 `yaml:"dominance_lead_pct"`
	DrawPerFounder                *float64 `yaml:"draw_per_founder"`
	UnrealizedInWallet            *bool    `yaml:"unrealized_in_wallet"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		Currency: fundsplit.DefaultCurrency,
		Server:   ServerConfig{Addr: ":8080", AllowedOrigins: []string{"*"}},
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault is Load, except that a missing file yields the default configuration.
func LoadOrDefault(path string) (*Config, error) {
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

// LoadUnchecked loads the configuration over the defaults, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Currency != "" && money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	if err := c.Constants.Apply(fundsplit.DefaultConstants()).Check(); err != nil {
		return fmt.Errorf("constants invalid: %w", err)
	}
	return nil
}

// Apply overlays the fields set in cc onto base.
func (cc ConstantsConfig) Apply(base fundsplit.Constants) fundsplit.Constants {
	out := base
	if cc.SeedBaseline != nil {
		out.SeedBaseline = fundsplit.M(*cc.SeedBaseline)
	}
	if cc.EntryFeeRate != nil {
		out.EntryFeeRate = fundsplit.R(*cc.EntryFeeRate)
	}
	if cc.MgmtFeeRate != nil {
		out.MgmtFeeRate = fundsplit.R(*cc.MgmtFeeRate)
	}
	if cc.FoundersMoonbagPct != nil {
		out.FoundersMoonbagPct = fundsplit.R(*cc.FoundersMoonbagPct)
	}
	if cc.FoundersCount != nil {
		out.FoundersCount = *cc.FoundersCount
	}
	if cc.EntryFeeReducesInvestorCredit != nil {
		out.EntryFeeReducesInvestorCredit = *cc.EntryFeeReducesInvestorCredit
	}
	if cc.DominanceLeadPct != nil {
		out.DominanceLeadPct = fundsplit.R(*cc.DominanceLeadPct)
	}
	if cc.DrawPerFounder != nil {
		out.DrawPerFounder = fundsplit.M(*cc.DrawPerFounder)
	}
	if cc.UnrealizedInWallet != nil {
		out.UnrealizedInWallet = *cc.UnrealizedInWallet
	}
	return out
}

// Policy returns the constants of this configuration.
func (c *Config) Policy() fundsplit.Constants {
	return c.Constants.Apply(fundsplit.DefaultConstants())
}

// plainConstants decodes constants without resetting them to their defaults.
type plainConstants fundsplit.Constants

// DecodeState reads a JSON state. What the state does not set comes from c,
// then from the defaults.
func (c *Config) DecodeState(r io.Reader) (fundsplit.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return fundsplit.State{}, err
	}
	s, err := fundsplit.DecodeState(bytes.NewReader(data))
	if err != nil {
		return fundsplit.State{}, err
	}

	var overlay struct {
		Currency  string          `json:"currency"`
		Constants json.RawMessage `json:"constants"`
	}
	if err := json.Unmarshal(data, &overlay); err != nil {
		return fundsplit.State{}, fmt.Errorf("could not decode state: %w", err)
	}
	if overlay.Currency == "" && c.Currency != "" {
		s.Currency = c.Currency
	}
	constants := c.Policy()
	if len(overlay.Constants) > 0 {
		if err := json.Unmarshal(overlay.Constants, (*plainConstants)(&constants)); err != nil {
			return fundsplit.State{}, fmt.Errorf("could not decode state constants: %w", err)
		}
	}
	s.Constants = constants
	return s, nil
}
