package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks every field and reports all problems at once rather than
// stopping at the first.
func (c *Config) Validate() error {
	var problems []string

	if len(c.Tickers) == 0 {
		problems = append(problems, "at least one ticker is required")
	}
	seen := make(map[string]bool, len(c.Tickers))
	for _, ticker := range c.Tickers {
		if ticker == "" {
			problems = append(problems, "ticker names must be non-empty")
			continue
		}
		if seen[ticker] {
			problems = append(problems, fmt.Sprintf("duplicate ticker: %s", ticker))
		}
		seen[ticker] = true
	}

	if c.StepSize <= 0 {
		problems = append(problems, fmt.Sprintf("step size must be positive, got: %d", c.StepSize))
	}
	if c.RiskFreeRate < 0 || c.RiskFreeRate > 1 {
		problems = append(problems, fmt.Sprintf("risk-free rate must be between 0 and 1, got: %.4f", c.RiskFreeRate))
	}
	if c.InitialCapital <= 0 {
		problems = append(problems, fmt.Sprintf("initial capital must be positive, got: %.2f", c.InitialCapital))
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers must be non-negative, got: %d", c.Workers))
	}

	var start, end time.Time
	if c.Data.StartDate != "" {
		parsed, err := time.Parse(dateLayout, c.Data.StartDate)
		if err != nil {
			problems = append(problems, fmt.Sprintf("start date must be YYYY-MM-DD, got: %s", c.Data.StartDate))
		} else {
			start = parsed
		}
	}
	if c.Data.EndDate != "" {
		parsed, err := time.Parse(dateLayout, c.Data.EndDate)
		if err != nil {
			problems = append(problems, fmt.Sprintf("end date must be YYYY-MM-DD, got: %s", c.Data.EndDate))
		} else {
			end = parsed
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		problems = append(problems, fmt.Sprintf("end date %s is before start date %s", c.Data.EndDate, c.Data.StartDate))
	}

	switch c.Data.Provider {
	case ProviderCSV:
		if c.Data.Dir == "" {
			problems = append(problems, "data dir is required for the csv provider")
		}
	case ProviderBybit:
		switch c.Data.BybitCategory {
		case "spot", "linear", "inverse":
		default:
			problems = append(problems, fmt.Sprintf("bybit category must be spot, linear or inverse, got: %s", c.Data.BybitCategory))
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown data provider: %s", c.Data.Provider))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
