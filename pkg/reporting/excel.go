package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// DefaultExcelReporter writes the report as an Excel workbook with a
// summary sheet and a full ranking sheet.
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

type excelStyles struct {
	header  int
	percent int
}

// WriteReportXLSX writes the allocation summary and the sweep ranking.
func (r *DefaultExcelReporter) WriteReportXLSX(report *SweepReport, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const resultsSheet = "Results"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	if _, err := fx.NewSheet(resultsSheet); err != nil {
		return err
	}

	styles, err := r.createStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, report, styles); err != nil {
		return err
	}
	if err := r.writeResultsSheet(fx, resultsSheet, report, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *DefaultExcelReporter) createStyles(fx *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F5496"}, Pattern: 1},
	})
	if err != nil {
		return styles, err
	}

	styles.percent, err = fx.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, report *SweepReport, styles excelStyles) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Annualized Return", report.AnnualizedReturn},
		{"Annualized Volatility", report.AnnualizedVol},
		{"Sharpe Ratio", report.SharpeRatio},
		{"Risk-Free Rate", report.RiskFreeRate},
		{"Best Lower Window", report.Best.Pair.Lower},
		{"Best Higher Window", report.Best.Pair.Higher},
		{"Best Cumulative Return", report.Best.Result.CumulativeReturn},
		{"Buy-Hold Return", report.BuyHoldReturn},
		{"Initial Capital", report.InitialCapital},
		{"Strategy Final Capital", report.FinalCapital()},
		{"Buy-Hold Final Capital", report.BuyHoldFinalCapital()},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	// Allocation block below the metrics
	start := len(rows) + 2
	allocHeader := []interface{}{"Ticker", "Weight"}
	cell, err := excelize.CoordinatesToCellName(1, start)
	if err != nil {
		return err
	}
	if err := fx.SetSheetRow(sheet, cell, &allocHeader); err != nil {
		return err
	}
	for i, ticker := range sortedTickers(report.Weights) {
		row := []interface{}{ticker, report.Weights[ticker]}
		cell, err := excelize.CoordinatesToCellName(1, start+1+i)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := fx.SetCellStyle(sheet, "A1", "B1", styles.header); err != nil {
		return err
	}
	headerCell, err := excelize.CoordinatesToCellName(2, start)
	if err != nil {
		return err
	}
	return fx.SetCellStyle(sheet, fmt.Sprintf("A%d", start), headerCell, styles.header)
}

func (r *DefaultExcelReporter) writeResultsSheet(fx *excelize.File, sheet string, report *SweepReport, styles excelStyles) error {
	header := []interface{}{
		"Rank", "Lower", "Higher", "Cumulative Return",
		"Trades", "Idle Days", "Risk-Free Earnings", "Return Per Trade",
	}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "H1", styles.header); err != nil {
		return err
	}

	for i, c := range report.Ranked {
		row := []interface{}{
			i + 1,
			c.Pair.Lower,
			c.Pair.Higher,
			c.Result.CumulativeReturn,
			c.Result.TradeCount,
			c.Result.IdleDays,
			c.Result.RiskFreeEarningsPct,
			c.Result.ReturnPerTrade,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(report.Ranked) > 0 {
		last := len(report.Ranked) + 1
		if err := fx.SetCellStyle(sheet, "D2", fmt.Sprintf("D%d", last), styles.percent); err != nil {
			return err
		}
	}
	return nil
}
