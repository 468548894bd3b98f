package main

import (
	"flag"
	"strings"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/config"
)

// cliFlags holds the raw command line values before they are merged into
// the configuration.
type cliFlags struct {
	configFile string
	envFile    string

	tickers      string
	stepSize     int
	riskFreeRate float64
	capital      float64
	workers      int

	provider  string
	dataDir   string
	category  string
	startDate string
	endDate   string

	csvOut   string
	excelOut string
	jsonOut  string

	logLevel    string
	logFormat   string
	metricsAddr string
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("optimize", flag.ContinueOnError)

	fs.StringVar(&f.configFile, "config", "", "Path to JSON configuration file")
	fs.StringVar(&f.envFile, "env", ".env", "Path to .env file")

	fs.StringVar(&f.tickers, "tickers", "", "Comma-separated ticker list (e.g. BTCUSDT,ETHUSDT)")
	fs.IntVar(&f.stepSize, "step", 0, "Window sweep step size")
	fs.Float64Var(&f.riskFreeRate, "rf", -1, "Annual risk-free rate (e.g. 0.05)")
	fs.Float64Var(&f.capital, "capital", 0, "Initial capital")
	fs.IntVar(&f.workers, "workers", -1, "Sweep worker count (0 = all CPUs)")

	fs.StringVar(&f.provider, "provider", "", "Data provider: csv or bybit")
	fs.StringVar(&f.dataDir, "data-dir", "", "Directory containing <ticker>.csv files")
	fs.StringVar(&f.category, "category", "", "Bybit market category: spot, linear or inverse")
	fs.StringVar(&f.startDate, "start-date", "", "Only use history from this date (YYYY-MM-DD, inclusive)")
	fs.StringVar(&f.endDate, "end-date", "", "Only use history up to this date (YYYY-MM-DD, inclusive)")

	fs.StringVar(&f.csvOut, "csv-out", "", "Write full ranking CSV to this path")
	fs.StringVar(&f.excelOut, "excel-out", "", "Write Excel workbook to this path")
	fs.StringVar(&f.jsonOut, "json-out", "", "Write best configuration JSON to this path")

	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format: console or json")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Prometheus listen address (e.g. :9090)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply overlays explicitly set flags onto the loaded configuration. Flags
// beat both the config file and environment variables.
func (f *cliFlags) apply(cfg *config.Config) {
	if f.tickers != "" {
		var tickers []string
		for _, t := range strings.Split(f.tickers, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				tickers = append(tickers, trimmed)
			}
		}
		cfg.Tickers = tickers
	}
	if f.stepSize > 0 {
		cfg.StepSize = f.stepSize
	}
	if f.riskFreeRate >= 0 {
		cfg.RiskFreeRate = f.riskFreeRate
	}
	if f.capital > 0 {
		cfg.InitialCapital = f.capital
	}
	if f.workers >= 0 {
		cfg.Workers = f.workers
	}
	if f.provider != "" {
		cfg.Data.Provider = f.provider
	}
	if f.dataDir != "" {
		cfg.Data.Dir = f.dataDir
	}
	if f.category != "" {
		cfg.Data.BybitCategory = f.category
	}
	if f.startDate != "" {
		cfg.Data.StartDate = f.startDate
	}
	if f.endDate != "" {
		cfg.Data.EndDate = f.endDate
	}
	if f.csvOut != "" {
		cfg.Output.CSVPath = f.csvOut
	}
	if f.excelOut != "" {
		cfg.Output.ExcelPath = f.excelOut
	}
	if f.jsonOut != "" {
		cfg.Output.JSONPath = f.jsonOut
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if f.metricsAddr != "" {
		cfg.MetricsAddr = f.metricsAddr
	}
}
