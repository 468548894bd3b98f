package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/config"
)

func TestParseFlagsDefaults(t *testing.T) {
	f, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, ".env", f.envFile)
	assert.Equal(t, 0, f.stepSize)
	assert.Equal(t, -1.0, f.riskFreeRate)
}

func TestFlagsOverrideConfig(t *testing.T) {
	f, err := parseFlags([]string{
		"-tickers", "BTCUSDT, ETHUSDT",
		"-step", "10",
		"-rf", "0",
		"-provider", "bybit",
		"-workers", "4",
		"-json-out", "best.json",
		"-start-date", "2024-01-01",
		"-end-date", "2024-06-30",
	})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Tickers = []string{"AAA"}
	f.apply(cfg)

	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, cfg.Tickers)
	assert.Equal(t, 10, cfg.StepSize)
	assert.Equal(t, 0.0, cfg.RiskFreeRate)
	assert.Equal(t, config.ProviderBybit, cfg.Data.Provider)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "best.json", cfg.Output.JSONPath)
	assert.Equal(t, "2024-01-01", cfg.Data.StartDate)
	assert.Equal(t, "2024-06-30", cfg.Data.EndDate)
}

func TestUnsetFlagsLeaveConfigAlone(t *testing.T) {
	f, err := parseFlags(nil)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Tickers = []string{"AAA"}
	cfg.StepSize = 25
	f.apply(cfg)

	assert.Equal(t, []string{"AAA"}, cfg.Tickers)
	assert.Equal(t, 25, cfg.StepSize)
	assert.Equal(t, 0.05, cfg.RiskFreeRate)
}
