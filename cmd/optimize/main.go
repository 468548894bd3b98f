package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/backtest"
	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/logger"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/monitoring"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/portfolio"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/config"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/data"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/reporting"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

const progressLogInterval = 50

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	loadEnvFile(flags.envFile)

	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := monitoring.StartMetricsServer(cfg.MetricsAddr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics server started")
	}

	report, err := runPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	reporting.NewDefaultConsoleReporter().OutputReport(report)
	return writeFileReports(cfg, report, log)
}

func runPipeline(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*reporting.SweepReport, error) {
	provider, err := buildProvider(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("provider", provider.GetName()).Strs("tickers", cfg.Tickers).
		Msg("loading price history")

	filter := data.NewDefaultDataFilter()
	startDate, endDate := cfg.DateRange()

	series := make([]types.PriceSeries, 0, len(cfg.Tickers))
	for _, ticker := range cfg.Tickers {
		s, err := provider.LoadSeries(ctx, ticker)
		if err != nil {
			monitoring.RecordError("data")
			return nil, err
		}
		series = append(series, filter.FilterByDateRange(s, startDate, endDate))
	}

	aligned, err := data.Align(series)
	if err != nil {
		monitoring.RecordError("data")
		return nil, err
	}
	log.Info().Int("common_dates", aligned.Len()).Msg("aligned price history")

	returns, err := portfolio.DailyReturns(aligned)
	if err != nil {
		return nil, err
	}
	meanDaily := portfolio.MeanReturns(returns)
	cov := portfolio.Covariance(returns)

	weights, err := solveWeights(cfg.Tickers, meanDaily, cov, log)
	if err != nil {
		return nil, err
	}

	annRet, annVol := annualized(weights, cfg.Tickers, meanDaily, cov)
	sharpe := 0.0
	if annVol > 0 {
		sharpe = annRet / annVol
	}
	log.Info().Float64("annualized_return", annRet).Float64("annualized_volatility", annVol).
		Float64("sharpe", sharpe).Msg("portfolio solved")

	value, err := portfolio.CombinedValue(aligned, weights)
	if err != nil {
		return nil, err
	}

	sweepResult, err := runSweep(ctx, cfg, value, log)
	if err != nil {
		return nil, err
	}

	return &reporting.SweepReport{
		Tickers:          cfg.Tickers,
		Weights:          weights,
		AnnualizedReturn: annRet,
		AnnualizedVol:    annVol,
		SharpeRatio:      sharpe,
		RiskFreeRate:     cfg.RiskFreeRate,
		InitialCapital:   cfg.InitialCapital,
		StepSize:         cfg.StepSize,
		Best:             sweepResult.Best,
		Ranked:           sweepResult.Ranked,
		BuyHoldReturn:    sweepResult.BuyHoldReturn,
	}, nil
}

func buildProvider(cfg *config.Config, log zerolog.Logger) (data.Provider, error) {
	switch cfg.Data.Provider {
	case config.ProviderCSV:
		return data.NewCSVProvider(cfg.Data.Dir, log), nil
	case config.ProviderBybit:
		return data.NewBybitProvider(cfg.Data.BybitCategory, cfg.Data.BybitLimit, log), nil
	default:
		return nil, fmt.Errorf("unknown data provider: %s", cfg.Data.Provider)
	}
}

// solveWeights runs the Sharpe optimizer and falls back to equal weights
// when the objective is degenerate or the solver cannot converge.
func solveWeights(tickers []string, meanDaily []float64, cov *mat.SymDense, log zerolog.Logger) (types.WeightVector, error) {
	opt := portfolio.NewOptimizer(log)
	weights, err := opt.MaxSharpe(tickers, meanDaily, cov)
	if err == nil {
		return weights, nil
	}

	if errors.Is(err, engerrors.ErrDegenerateObjective) || errors.Is(err, engerrors.ErrOptimizationFailure) {
		monitoring.RecordError("optimizer")
		log.Warn().Err(err).Msg("optimizer fell back to equal weights")
		return portfolio.Equal(tickers), nil
	}
	return nil, err
}

func annualized(weights types.WeightVector, tickers []string, meanDaily []float64, cov *mat.SymDense) (float64, float64) {
	ordered := make([]float64, len(tickers))
	for i, ticker := range tickers {
		ordered[i] = weights[ticker]
	}
	return portfolio.AnnualizedMetrics(ordered, meanDaily, cov)
}

func runSweep(ctx context.Context, cfg *config.Config, value []float64, log zerolog.Logger) (*backtest.SweepResult, error) {
	engine := backtest.NewEngine(cfg.RiskFreeRate)

	progress := backtest.ObserverFunc(func(completed, total int) {
		if completed%progressLogInterval == 0 || completed == total {
			log.Info().Int("completed", completed).Int("total", total).Msg("sweep progress")
		}
	})
	observer := composeObservers(progress, monitoring.NewSweepObserver())

	sweep := backtest.NewSweep(engine, backtest.SweepOptions{
		Workers:  cfg.Workers,
		Observer: observer,
		Log:      logger.Component(log, "sweep"),
	})

	start := time.Now()
	result, err := sweep.Run(ctx, value, cfg.StepSize)
	if err != nil {
		monitoring.RecordError("sweep")
		return nil, err
	}
	monitoring.ObserveSweepDuration(time.Since(start))
	monitoring.RecordSweepOutcome(result.Best.Result.CumulativeReturn, result.BuyHoldReturn)

	log.Info().
		Int("lower", result.Best.Pair.Lower).
		Int("higher", result.Best.Pair.Higher).
		Float64("cumulative_return", result.Best.Result.CumulativeReturn).
		Float64("buy_hold_return", result.BuyHoldReturn).
		Dur("elapsed", time.Since(start)).
		Msg("sweep complete")
	return result, nil
}

func composeObservers(observers ...backtest.ProgressObserver) backtest.ProgressObserver {
	return backtest.ObserverFunc(func(completed, total int) {
		for _, o := range observers {
			o.Evaluated(completed, total)
		}
	})
}

func writeFileReports(cfg *config.Config, report *reporting.SweepReport, log zerolog.Logger) error {
	reporter := reporting.NewDefaultReporter()

	if path := cfg.Output.CSVPath; path != "" {
		if err := reporter.WriteRankingCSV(report, path); err != nil {
			return fmt.Errorf("write ranking CSV: %w", err)
		}
		log.Info().Str("path", path).Msg("saved ranking CSV")
	}
	if path := cfg.Output.ExcelPath; path != "" {
		if err := reporter.WriteReportXLSX(report, path); err != nil {
			return fmt.Errorf("write Excel report: %w", err)
		}
		log.Info().Str("path", path).Msg("saved Excel report")
	}
	if path := cfg.Output.JSONPath; path != "" {
		if err := reporter.WriteBestConfigJSON(report, path); err != nil {
			return fmt.Errorf("write best config JSON: %w", err)
		}
		log.Info().Str("path", path).Msg("saved best config JSON")
	}
	return nil
}

// loadEnvFile loads the .env file if present. A missing file is fine, the
// environment may already be populated.
func loadEnvFile(envFile string) {
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
	}
}
