package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is a snapshot of an asset's market data as returned by the
// external provider. Rows are written by the sync worker only; the
// application never edits them.
type PricePoint struct {
	ID        int             `db:"id"`
	AssetID   int             `db:"asset_id"`
	Symbol    string          `db:"symbol"`
	Price     decimal.Decimal `db:"price"`
	Change24h decimal.Decimal `db:"change_24h"`
	MarketCap decimal.Decimal `db:"market_cap"`
	Volume24h decimal.Decimal `db:"volume_24h"`
	Currency  string          `db:"currency"`
	Timestamp time.Time       `db:"timestamp"`
}
