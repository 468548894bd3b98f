package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Provider selection for market data.
const (
	ProviderCSV   = "csv"
	ProviderBybit = "bybit"
)

// DataConfig selects and configures the market data source.
type DataConfig struct {
	Provider      string `json:"provider"`       // "csv" or "bybit"
	Dir           string `json:"dir"`            // CSV directory
	BybitCategory string `json:"bybit_category"` // "spot", "linear", "inverse"
	BybitLimit    int    `json:"bybit_limit"`    // daily candles to request
	StartDate     string `json:"start_date"`     // inclusive, 2006-01-02; empty = unbounded
	EndDate       string `json:"end_date"`       // inclusive, 2006-01-02; empty = unbounded
}

// OutputConfig holds optional report file destinations. Empty paths skip
// that writer.
type OutputConfig struct {
	CSVPath   string `json:"csv_path"`
	ExcelPath string `json:"excel_path"`
	JSONPath  string `json:"json_path"`
}

// Config holds all settings for an optimization and sweep run.
type Config struct {
	Tickers        []string     `json:"tickers"`
	StepSize       int          `json:"step_size"`
	RiskFreeRate   float64      `json:"risk_free_rate"`
	InitialCapital float64      `json:"initial_capital"`
	Workers        int          `json:"workers"`
	Data           DataConfig   `json:"data"`
	Output         OutputConfig `json:"output"`
	LogLevel       string       `json:"log_level"`
	LogFormat      string       `json:"log_format"`
	MetricsAddr    string       `json:"metrics_addr"`
}

// Default returns the baseline configuration before file and environment
// overrides.
func Default() *Config {
	return &Config{
		StepSize:       5,
		RiskFreeRate:   0.05,
		InitialCapital: 10000,
		Workers:        0, // 0 means use all CPUs
		Data: DataConfig{
			Provider:      ProviderCSV,
			Dir:           "data",
			BybitCategory: "spot",
			BybitLimit:    1000,
		},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load builds the configuration from defaults, an optional JSON file, and
// environment variable overrides, in that precedence order. Validation is
// deferred to the caller so command line flags can still be overlaid.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the config. Variables beat
// file values so deployments can tweak a shared config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("MPT_TICKERS"); v != "" {
		c.Tickers = splitList(v)
	}
	c.StepSize = getEnvInt("MPT_STEP_SIZE", c.StepSize)
	c.RiskFreeRate = getEnvFloat("MPT_RISK_FREE_RATE", c.RiskFreeRate)
	c.InitialCapital = getEnvFloat("MPT_INITIAL_CAPITAL", c.InitialCapital)
	c.Workers = getEnvInt("MPT_WORKERS", c.Workers)
	c.Data.Provider = getEnv("MPT_DATA_PROVIDER", c.Data.Provider)
	c.Data.Dir = getEnv("MPT_DATA_DIR", c.Data.Dir)
	c.Data.BybitCategory = getEnv("MPT_BYBIT_CATEGORY", c.Data.BybitCategory)
	c.Data.BybitLimit = getEnvInt("MPT_BYBIT_LIMIT", c.Data.BybitLimit)
	c.Data.StartDate = getEnv("MPT_START_DATE", c.Data.StartDate)
	c.Data.EndDate = getEnv("MPT_END_DATE", c.Data.EndDate)
	c.Output.CSVPath = getEnv("MPT_OUTPUT_CSV", c.Output.CSVPath)
	c.Output.ExcelPath = getEnv("MPT_OUTPUT_EXCEL", c.Output.ExcelPath)
	c.Output.JSONPath = getEnv("MPT_OUTPUT_JSON", c.Output.JSONPath)
	c.LogLevel = getEnv("MPT_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("MPT_LOG_FORMAT", c.LogFormat)
	c.MetricsAddr = getEnv("MPT_METRICS_ADDR", c.MetricsAddr)
}

// DateRange parses the configured start and end dates. A zero time means
// that side is unbounded. Call Validate first; this panics on dates it
// would have rejected.
func (c *Config) DateRange() (start, end time.Time) {
	if c.Data.StartDate != "" {
		start = mustParseDate(c.Data.StartDate)
	}
	if c.Data.EndDate != "" {
		end = mustParseDate(c.Data.EndDate)
	}
	return start, end
}

func mustParseDate(v string) time.Time {
	parsed, err := time.Parse(dateLayout, v)
	if err != nil {
		panic(fmt.Sprintf("unvalidated date %q: %v", v, err))
	}
	return parsed
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
