package coingecko

import "time"

// MarketData is one row of the /coins/markets response.
type MarketData struct {
	ID                       string    `json:"id"`
	Symbol                   string    `json:"symbol"`
	Name                     string    `json:"name"`
	CurrentPrice             float64   `json:"current_price"`
	MarketCap                float64   `json:"market_cap"`
	TotalVolume              float64   `json:"total_volume"`
	PriceChangePercentage24h float64   `json:"price_change_percentage_24h"`
	LastUpdated              time.Time `json:"last_updated"`
}

// MarketChartResponse is the /coins/{id}/market_chart response. Each entry
// of Prices is a [unix_millis, price] pair.
type MarketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}
