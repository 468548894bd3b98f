package data

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// CSVProvider loads close series from per-ticker CSV files laid out as
// <dir>/<ticker>.csv.
type CSVProvider struct {
	dir    string
	format CSVColumnMapping
	log    zerolog.Logger
}

// NewCSVProvider creates a CSV provider over a directory with the default
// date,close format.
func NewCSVProvider(dir string, log zerolog.Logger) *CSVProvider {
	return &CSVProvider{
		dir:    dir,
		format: DefaultCSVFormat,
		log:    log.With().Str("component", "csv_provider").Logger(),
	}
}

// NewCSVProviderWithFormat creates a CSV provider with a custom column
// mapping.
func NewCSVProviderWithFormat(dir string, format CSVColumnMapping, log zerolog.Logger) *CSVProvider {
	p := NewCSVProvider(dir, log)
	p.format = format
	return p
}

// GetName returns the name of the data provider.
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadSeries reads <dir>/<ticker>.csv. Malformed rows are skipped with a
// warning rather than failing the whole load; the resulting series is
// validated before being returned.
func (p *CSVProvider) LoadSeries(_ context.Context, ticker string) (types.PriceSeries, error) {
	path := filepath.Join(p.dir, ticker+".csv")
	file, err := os.Open(path)
	if err != nil {
		return types.PriceSeries{}, fmt.Errorf("open price file for %s: %w", ticker, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return types.PriceSeries{}, fmt.Errorf("read header of %s: %w", path, err)
	}

	series := types.PriceSeries{Ticker: ticker}
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.PriceSeries{}, fmt.Errorf("read %s at line %d: %w", path, lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			p.log.Warn().Str("ticker", ticker).Int("line", lineNum).
				Msg("insufficient columns, skipping row")
			continue
		}

		date, err := time.Parse(p.format.DateFormat, record[p.format.DateCol])
		if err != nil {
			p.log.Warn().Str("ticker", ticker).Int("line", lineNum).
				Str("value", record[p.format.DateCol]).
				Msg("invalid date, skipping row")
			continue
		}

		close, err := strconv.ParseFloat(record[p.format.CloseCol], 64)
		if err != nil {
			p.log.Warn().Str("ticker", ticker).Int("line", lineNum).
				Str("value", record[p.format.CloseCol]).
				Msg("invalid close price, skipping row")
			continue
		}

		series.Points = append(series.Points, types.ClosePoint{Date: date, Close: close})
	}

	if err := ValidateSeries(series); err != nil {
		return types.PriceSeries{}, err
	}
	return series, nil
}
