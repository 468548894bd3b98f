package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.StepSize)
	assert.Equal(t, 0.05, cfg.RiskFreeRate)
	assert.Equal(t, ProviderCSV, cfg.Data.Provider)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"tickers": ["BTCUSDT", "ETHUSDT"],
		"step_size": 10,
		"risk_free_rate": 0.03,
		"data": {"provider": "bybit", "bybit_category": "spot"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, cfg.Tickers)
	assert.Equal(t, 10, cfg.StepSize)
	assert.Equal(t, 0.03, cfg.RiskFreeRate)
	assert.Equal(t, ProviderBybit, cfg.Data.Provider)
	// defaults survive partial files
	assert.Equal(t, 10000.0, cfg.InitialCapital)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"tickers": ["AAA"], "step_size": 5}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("MPT_TICKERS", "BBB, CCC")
	t.Setenv("MPT_STEP_SIZE", "25")
	t.Setenv("MPT_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BBB", "CCC"}, cfg.Tickers)
	assert.Equal(t, 25, cfg.StepSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("MPT_TICKERS", "AAA")
	t.Setenv("MPT_STEP_SIZE", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.StepSize)
}

func TestDateRange(t *testing.T) {
	cfg := Default()
	cfg.Tickers = []string{"AAA"}

	t.Run("unset means unbounded", func(t *testing.T) {
		start, end := cfg.DateRange()
		assert.True(t, start.IsZero())
		assert.True(t, end.IsZero())
	})

	t.Run("parses validated dates", func(t *testing.T) {
		cfg.Data.StartDate = "2024-01-02"
		cfg.Data.EndDate = "2024-03-04"
		require.NoError(t, cfg.Validate())

		start, end := cfg.DateRange()
		assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), end)
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Tickers = []string{"AAA", "BBB"}
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("no tickers", func(t *testing.T) {
		cfg := valid()
		cfg.Tickers = nil
		assert.ErrorContains(t, cfg.Validate(), "at least one ticker")
	})

	t.Run("duplicate ticker", func(t *testing.T) {
		cfg := valid()
		cfg.Tickers = []string{"AAA", "AAA"}
		assert.ErrorContains(t, cfg.Validate(), "duplicate ticker")
	})

	t.Run("bad step size", func(t *testing.T) {
		cfg := valid()
		cfg.StepSize = 0
		assert.ErrorContains(t, cfg.Validate(), "step size")
	})

	t.Run("bad risk-free rate", func(t *testing.T) {
		cfg := valid()
		cfg.RiskFreeRate = 1.5
		assert.ErrorContains(t, cfg.Validate(), "risk-free rate")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.Data.Provider = "yahoo"
		assert.ErrorContains(t, cfg.Validate(), "unknown data provider")
	})

	t.Run("bad bybit category", func(t *testing.T) {
		cfg := valid()
		cfg.Data.Provider = ProviderBybit
		cfg.Data.BybitCategory = "futures"
		assert.ErrorContains(t, cfg.Validate(), "bybit category")
	})

	t.Run("valid date range passes", func(t *testing.T) {
		cfg := valid()
		cfg.Data.StartDate = "2024-01-01"
		cfg.Data.EndDate = "2024-06-30"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("malformed start date", func(t *testing.T) {
		cfg := valid()
		cfg.Data.StartDate = "01/01/2024"
		assert.ErrorContains(t, cfg.Validate(), "start date")
	})

	t.Run("end before start", func(t *testing.T) {
		cfg := valid()
		cfg.Data.StartDate = "2024-06-30"
		cfg.Data.EndDate = "2024-01-01"
		assert.ErrorContains(t, cfg.Validate(), "before start date")
	})

	t.Run("collects multiple problems", func(t *testing.T) {
		cfg := valid()
		cfg.StepSize = -1
		cfg.InitialCapital = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step size")
		assert.Contains(t, err.Error(), "initial capital")
	})
}
