package coingecko_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coindash/src/clients/coingecko"
)

// MockClient serves canned market data and counts calls. Err, when set, is
// returned by every method to simulate provider outages.
type MockClient struct {
	Markets []coingecko.MarketData
	Chart   *coingecko.MarketChartResponse
	Err     error
	Calls   int
}

func NewMockClient() *MockClient {
	now := time.Now().UTC()
	return &MockClient{
		Markets: []coingecko.MarketData{
			{
				ID:                       "bitcoin",
				Symbol:                   "btc",
				Name:                     "Bitcoin",
				CurrentPrice:             65000.25,
				MarketCap:                1_280_000_000_000,
				TotalVolume:              32_000_000_000,
				PriceChangePercentage24h: 2.4,
				LastUpdated:              now,
			},
			{
				ID:                       "ethereum",
				Symbol:                   "eth",
				Name:                     "Ethereum",
				CurrentPrice:             3200.5,
				MarketCap:                384_000_000_000,
				TotalVolume:              18_000_000_000,
				PriceChangePercentage24h: -1.1,
				LastUpdated:              now,
			},
		},
		Chart: &coingecko.MarketChartResponse{
			Prices: [][]float64{
				{float64(now.AddDate(0, 0, -2).UnixMilli()), 64000},
				{float64(now.AddDate(0, 0, -1).UnixMilli()), 64500},
				{float64(now.UnixMilli()), 65000.25},
			},
		},
	}
}

func (m *MockClient) GetMarkets(_ context.Context, ids []string, _ string) ([]coingecko.MarketData, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	var out []coingecko.MarketData
	for _, market := range m.Markets {
		for _, id := range ids {
			if strings.EqualFold(market.ID, id) {
				out = append(out, market)
			}
		}
	}
	return out, nil
}

func (m *MockClient) GetMarketChart(_ context.Context, id, _ string, _ int) (*coingecko.MarketChartResponse, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, market := range m.Markets {
		if market.ID == id {
			return m.Chart, nil
		}
	}
	return nil, fmt.Errorf("unknown coin: %s", id)
}
