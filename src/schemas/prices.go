package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceCard is the dashboard card for one asset. Stale is set when the
// upstream provider could not be reached and the values come from the last
// stored snapshot.
type PriceCard struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change24h"`
	MarketCap decimal.Decimal `json:"marketCap"`
	Volume24h decimal.Decimal `json:"volume24h"`
	Currency  string          `json:"currency"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Stale     bool            `json:"stale,omitempty"`
}

// PriceTick is the payload broadcast on the WebSocket price stream.
type PriceTick struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change24h"`
	Currency  string          `json:"currency"`
	Timestamp time.Time       `json:"timestamp"`
}

type ChartPoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Value     decimal.Decimal `json:"value"`
}

type ChartSeries struct {
	Symbol   string       `json:"symbol,omitempty"`
	Currency string       `json:"currency"`
	Points   []ChartPoint `json:"points"`
}
