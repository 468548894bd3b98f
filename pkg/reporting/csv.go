package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultCSVReporter writes the full sweep ranking as CSV.
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteRankingCSV writes every evaluated window pair, best first.
func (r *DefaultCSVReporter) WriteRankingCSV(report *SweepReport, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"lower",
		"higher",
		"cumulative_return",
		"trade_count",
		"idle_day_count",
		"risk_free_earnings_pct",
		"return_per_trade",
	}); err != nil {
		return err
	}

	for _, c := range report.Ranked {
		record := []string{
			strconv.Itoa(c.Pair.Lower),
			strconv.Itoa(c.Pair.Higher),
			strconv.FormatFloat(c.Result.CumulativeReturn, 'f', -1, 64),
			strconv.Itoa(c.Result.TradeCount),
			strconv.Itoa(c.Result.IdleDays),
			strconv.FormatFloat(c.Result.RiskFreeEarningsPct, 'f', -1, 64),
			strconv.FormatFloat(c.Result.ReturnPerTrade, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
