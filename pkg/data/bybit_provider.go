package data

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
	"github.com/rs/zerolog"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

const bybitMaxKlineLimit = 1000

// BybitProvider loads daily close series from the Bybit market kline
// endpoint. Market data requires no API credentials.
type BybitProvider struct {
	httpClient *bybit_api.Client
	category   string
	limit      int
	log        zerolog.Logger
}

// NewBybitProvider creates a provider over the Bybit mainnet REST API.
// Category is "spot", "linear" or "inverse"; limit is the number of daily
// candles to request, capped at the API maximum of 1000.
func NewBybitProvider(category string, limit int, log zerolog.Logger) *BybitProvider {
	if category == "" {
		category = "spot"
	}
	if limit <= 0 || limit > bybitMaxKlineLimit {
		limit = bybitMaxKlineLimit
	}
	httpClient := bybit_api.NewBybitHttpClient(
		"", "",
		bybit_api.WithBaseURL(bybit_api.MAINNET),
	)
	return &BybitProvider{
		httpClient: httpClient,
		category:   category,
		limit:      limit,
		log:        log.With().Str("component", "bybit_provider").Logger(),
	}
}

// GetName returns the name of the data provider.
func (p *BybitProvider) GetName() string {
	return "Bybit Provider"
}

// LoadSeries fetches daily klines for a symbol and returns the close series
// in ascending date order.
func (p *BybitProvider) LoadSeries(ctx context.Context, ticker string) (types.PriceSeries, error) {
	params := map[string]interface{}{
		"category": p.category,
		"symbol":   ticker,
		"interval": "D",
		"limit":    p.limit,
	}

	result, err := p.httpClient.NewUtaBybitServiceWithParams(params).GetMarketKline(ctx)
	if err != nil {
		return types.PriceSeries{}, fmt.Errorf("fetch klines for %s: %w", ticker, err)
	}

	points, err := p.parseKlineResponse(ticker, result)
	if err != nil {
		return types.PriceSeries{}, fmt.Errorf("parse kline response for %s: %w", ticker, err)
	}

	// Bybit returns newest first
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	series := types.PriceSeries{Ticker: ticker, Points: points}
	if err := ValidateSeries(series); err != nil {
		return types.PriceSeries{}, err
	}

	p.log.Debug().Str("ticker", ticker).Int("points", series.Len()).
		Msg("loaded daily klines")
	return series, nil
}

func (p *BybitProvider) parseKlineResponse(ticker string, response interface{}) ([]types.ClosePoint, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}

	if serverResp.RetCode != 0 {
		return nil, fmt.Errorf("API error: %s (code: %d)", serverResp.RetMsg, serverResp.RetCode)
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	var klineResult struct {
		Symbol   string     `json:"symbol"`
		Category string     `json:"category"`
		List     [][]string `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &klineResult); err != nil {
		return nil, fmt.Errorf("unmarshal kline result: %w", err)
	}

	var points []types.ClosePoint
	for _, item := range klineResult.List {
		// Bybit kline format: [startTime, open, high, low, close, volume, turnover]
		if len(item) < 5 {
			p.log.Warn().Str("ticker", ticker).Msg("incomplete kline row, skipping")
			continue
		}

		startMs, err := strconv.ParseInt(item[0], 10, 64)
		if err != nil {
			p.log.Warn().Str("ticker", ticker).Str("value", item[0]).
				Msg("invalid kline start time, skipping")
			continue
		}
		close, err := strconv.ParseFloat(item[4], 64)
		if err != nil {
			p.log.Warn().Str("ticker", ticker).Str("value", item[4]).
				Msg("invalid kline close, skipping")
			continue
		}

		points = append(points, types.ClosePoint{
			Date:  day(time.UnixMilli(startMs).UTC()),
			Close: close,
		})
	}

	return points, nil
}
