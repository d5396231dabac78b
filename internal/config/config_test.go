package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:             "8081",
		DataBackend:      "memory",
		RevenueSheetName: "Revenue",
		ExpenseSheetName: "Expenses",
		QueryCacheSize:   100,
		QueryCacheTTL:    5 * time.Minute,
		TopProducts:      10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid memory backend config",
			mutate: func(c *Config) {},
		},
		{
			name: "valid sheets backend config",
			mutate: func(c *Config) {
				c.DataBackend = "sheets"
				c.GoogleSpreadsheetID = "abc123"
			},
		},
		{
			name: "sheets backend accepts url instead of id",
			mutate: func(c *Config) {
				c.DataBackend = "sheets"
				c.GoogleSpreadsheetURL = "https://docs.google.com/spreadsheets/d/abc123/edit"
			},
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid backend",
			mutate:      func(c *Config) { c.DataBackend = "postgres" },
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name:        "sheets backend without spreadsheet",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "either GOOGLE_SPREADSHEET_ID or GOOGLE_SPREADSHEET_URL",
		},
		{
			name:        "empty revenue sheet name",
			mutate:      func(c *Config) { c.RevenueSheetName = "" },
			wantErr:     true,
			errorString: "revenue sheet name cannot be empty",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.QueryCacheSize = 0 },
			wantErr:     true,
			errorString: "invalid query cache size 0",
		},
		{
			name:        "cache TTL too short",
			mutate:      func(c *Config) { c.QueryCacheTTL = 100 * time.Millisecond },
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name:        "top products limit too small",
			mutate:      func(c *Config) { c.TopProducts = 0 },
			wantErr:     true,
			errorString: "invalid top products limit 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errorString)
			}
			if !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "REVENUE_SHEET_NAME", "EXPENSE_SHEET_NAME", "QUERY_CACHE_SIZE", "QUERY_CACHE_TTL", "TOP_PRODUCTS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg := Load()
	if cfg.Port != "8081" || cfg.DataBackend != "memory" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RevenueSheetName != "Revenue" || cfg.ExpenseSheetName != "Expenses" {
		t.Fatalf("unexpected sheet defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "sheets")
	t.Setenv("QUERY_CACHE_TTL", "30s")
	t.Setenv("QUERY_CACHE_SIZE", "50")
	cfg := Load()
	if cfg.Port != "9090" || cfg.DataBackend != "sheets" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.QueryCacheTTL != 30*time.Second || cfg.QueryCacheSize != 50 {
		t.Fatalf("cache overrides not applied: %+v", cfg)
	}
}
