package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/fundsplit"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fsplit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
currency: EUR
constants:
  entry_fee_rate: 0.05
  founders_count: 3
  unrealized_in_wallet: false
server:
  addr: ":9090"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Currency != "EUR" || c.Server.Addr != ":9090" {
		t.Errorf("Load() = %+v", c)
	}
	if len(c.Server.AllowedOrigins) != 1 {
		t.Errorf("AllowedOrigins = %v, want the default", c.Server.AllowedOrigins)
	}
	p := c.Policy()
	if !p.EntryFeeRate.Equal(fundsplit.R(0.05)) || p.FoundersCount != 3 || p.UnrealizedInWallet {
		t.Errorf("Policy() = %+v", p)
	}
	if !p.MgmtFeeRate.Equal(fundsplit.R(0.20)) {
		t.Errorf("MgmtFeeRate = %s, want the default", p.MgmtFeeRate)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown currency", "currency: XYZ1"},
		{"fee rate above one", "constants:\n  mgmt_fee_rate: 1.5"},
		{"negative founders", "constants:\n  founders_count: -1"},
		{"not yaml", "constants: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(write(t, tt.content)); err == nil {
				t.Error("Load() succeeded")
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if c.Currency != fundsplit.DefaultCurrency {
		t.Errorf("Currency = %q, want %q", c.Currency, fundsplit.DefaultCurrency)
	}
}

func TestDecodeState(t *testing.T) {
	c, err := Load(write(t, `
currency: EUR
constants:
  entry_fee_rate: 0.05
  mgmt_fee_rate: 0.25
`))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		input    string
		currency string
		entry    fundsplit.Ratio
		mgmt     fundsplit.Ratio
	}{
		{
			name:     "config fills the gaps",
			input:    `{"window": {"start": "2025-01-01", "end": "2025-01-31"}}`,
			currency: "EUR",
			entry:    fundsplit.R(0.05),
			mgmt:     fundsplit.R(0.25),
		},
		{
			name:     "state wins",
			input:    `{"window": {"start": "2025-01-01", "end": "2025-01-31"}, "currency": "GBP", "constants": {"mgmtFeeRate": 0.3}}`,
			currency: "GBP",
			entry:    fundsplit.R(0.05),
			mgmt:     fundsplit.R(0.3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := c.DecodeState(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodeState() error = %v", err)
			}
			if s.Currency != tt.currency {
				t.Errorf("Currency = %q, want %q", s.Currency, tt.currency)
			}
			if !s.Constants.EntryFeeRate.Equal(tt.entry) || !s.Constants.MgmtFeeRate.Equal(tt.mgmt) {
				t.Errorf("Constants = %+v", s.Constants)
			}
			if s.Constants.FoundersCount != 2 {
				t.Errorf("FoundersCount = %d, want the default", s.Constants.FoundersCount)
			}
		})
	}
}
