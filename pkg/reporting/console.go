package reporting

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DefaultConsoleReporter renders reports as rounded tables.
type DefaultConsoleReporter struct {
	out     io.Writer
	maxRows int
}

// NewDefaultConsoleReporter creates a console reporter writing to stdout.
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{out: os.Stdout, maxRows: 10}
}

// NewConsoleReporterTo creates a console reporter writing to the given
// writer, used in tests.
func NewConsoleReporterTo(out io.Writer) *DefaultConsoleReporter {
	return &DefaultConsoleReporter{out: out, maxRows: 10}
}

// OutputReport prints the allocation, the top sweep candidates and the
// baseline comparison.
func (r *DefaultConsoleReporter) OutputReport(report *SweepReport) {
	r.printAllocation(report)
	r.printRanking(report)
	r.printSummary(report)
}

func (r *DefaultConsoleReporter) printAllocation(report *SweepReport) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("PORTFOLIO ALLOCATION")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Ticker", "Weight"})
	for _, ticker := range sortedTickers(report.Weights) {
		t.AppendRow(table.Row{ticker, fmt.Sprintf("%.2f%%", report.Weights[ticker]*100)})
	}
	t.AppendFooter(table.Row{"Ann. Return", fmt.Sprintf("%.2f%%", report.AnnualizedReturn*100)})
	t.AppendFooter(table.Row{"Ann. Volatility", fmt.Sprintf("%.2f%%", report.AnnualizedVol*100)})
	t.AppendFooter(table.Row{"Sharpe Ratio", fmt.Sprintf("%.3f", report.SharpeRatio)})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
	fmt.Fprintln(r.out)
}

func (r *DefaultConsoleReporter) printRanking(report *SweepReport) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("TOP WINDOW PAIRS")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"#", "Lower", "Higher", "Return", "Trades", "Idle Days", "Idle Earnings", "Return/Trade"})

	rows := report.Ranked
	if len(rows) > r.maxRows {
		rows = rows[:r.maxRows]
	}
	for i, c := range rows {
		t.AppendRow(table.Row{
			i + 1,
			c.Pair.Lower,
			c.Pair.Higher,
			fmt.Sprintf("%.2f%%", c.Result.CumulativeReturn*100),
			c.Result.TradeCount,
			c.Result.IdleDays,
			fmt.Sprintf("%.2f%%", c.Result.RiskFreeEarningsPct*100),
			fmt.Sprintf("%.4f%%", c.Result.ReturnPerTrade*100),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	t.Render()
	fmt.Fprintln(r.out)
}

func (r *DefaultConsoleReporter) printSummary(report *SweepReport) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("STRATEGY VS BUY AND HOLD")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Best Pair", fmt.Sprintf("(%d, %d)", report.Best.Pair.Lower, report.Best.Pair.Higher)},
		{"Initial Capital", fmt.Sprintf("$%.2f", report.InitialCapital)},
		{"Strategy Final", fmt.Sprintf("$%.2f", report.FinalCapital())},
		{"Buy-Hold Final", fmt.Sprintf("$%.2f", report.BuyHoldFinalCapital())},
		{"Edge", fmt.Sprintf("$%.2f", report.ProfitOverBuyHold())},
		{"Risk-Free Rate", fmt.Sprintf("%.2f%%", report.RiskFreeRate*100)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 16, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
	fmt.Fprintln(r.out)
}

func sortedTickers(weights map[string]float64) []string {
	tickers := make([]string, 0, len(weights))
	for ticker := range weights {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}
