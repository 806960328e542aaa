package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioPosition is one holding valued against the latest known price.
// Priced is false when no price is available for the symbol; the position
// is still listed so the dashboard can render it with a placeholder.
type PortfolioPosition struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	CostBasis     decimal.Decimal `json:"costBasis"`
	Price         decimal.Decimal `json:"price"`
	MarketValue   decimal.Decimal `json:"marketValue"`
	UnrealizedPnL decimal.Decimal `json:"unrealizedPnl"`
	PnLPercent    decimal.Decimal `json:"pnlPercent"`
	Priced        bool            `json:"priced"`
	Stale         bool            `json:"stale,omitempty"`
}

type Allocation struct {
	Symbol  string          `json:"symbol"`
	Percent decimal.Decimal `json:"percent"`
}

type PortfolioSummary struct {
	TotalValue  decimal.Decimal `json:"totalValue"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	TotalPnL    decimal.Decimal `json:"totalPnl"`
	PnLPercent  decimal.Decimal `json:"pnlPercent"`
	Currency    string          `json:"currency"`
	Allocations []Allocation    `json:"allocations"`
}

type PortfolioResponse struct {
	Positions []PortfolioPosition `json:"positions"`
	Summary   PortfolioSummary    `json:"summary"`
	AsOf      time.Time           `json:"asOf"`
}
