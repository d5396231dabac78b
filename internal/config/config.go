package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Data source selection
	DataBackend string

	// Google Sheets
	GoogleSpreadsheetID  string
	GoogleSpreadsheetURL string
	RevenueSheetName     string
	ExpenseSheetName     string

	// Query cache
	QueryCacheSize int
	QueryCacheTTL  time.Duration

	// Reports
	TopProducts int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8081"),
		DataBackend: getEnv("DATA_BACKEND", "memory"),

		GoogleSpreadsheetID:  getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSpreadsheetURL: getEnv("GOOGLE_SPREADSHEET_URL", ""),
		RevenueSheetName:     getEnv("REVENUE_SHEET_NAME", "Revenue"),
		ExpenseSheetName:     getEnv("EXPENSE_SHEET_NAME", "Expenses"),

		QueryCacheSize: getEnvInt("QUERY_CACHE_SIZE", 200),
		QueryCacheTTL:  getEnvDuration("QUERY_CACHE_TTL", 5*time.Minute),

		TopProducts: getEnvInt("TOP_PRODUCTS", 10),
	}
}

// Validate checks the configuration, collecting every problem into one error.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sheets":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sheets]", c.DataBackend))
	}

	if c.DataBackend == "sheets" {
		if c.GoogleSpreadsheetID == "" && c.GoogleSpreadsheetURL == "" {
			errs = append(errs, "either GOOGLE_SPREADSHEET_ID or GOOGLE_SPREADSHEET_URL must be provided for sheets backend")
		}
	}

	if c.RevenueSheetName == "" {
		errs = append(errs, "revenue sheet name cannot be empty")
	}
	if c.ExpenseSheetName == "" {
		errs = append(errs, "expense sheet name cannot be empty")
	}

	if c.QueryCacheSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid query cache size %d: must be at least 1", c.QueryCacheSize))
	}
	if c.QueryCacheTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid query cache TTL %v: must be at least 1 second", c.QueryCacheTTL))
	} else if c.QueryCacheTTL > 24*time.Hour {
		errs = append(errs, fmt.Sprintf("invalid query cache TTL %v: must be at most 24 hours", c.QueryCacheTTL))
	}

	if c.TopProducts < 1 {
		errs = append(errs, fmt.Sprintf("invalid top products limit %d: must be at least 1", c.TopProducts))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
