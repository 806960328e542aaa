package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AlertConditionAbove = "above"
	AlertConditionBelow = "below"
)

// Alert is a user's price alert. The worker evaluates enabled alerts after
// every sync tick; firing sets TriggeredAt and disables the alert.
type Alert struct {
	ID          int             `db:"id"`
	UserID      string          `db:"user_id"`
	AssetID     int             `db:"asset_id"`
	Condition   string          `db:"condition"`
	Threshold   decimal.Decimal `db:"threshold"`
	Enabled     bool            `db:"enabled"`
	TriggeredAt *time.Time      `db:"triggered_at"`
	CreatedAt   time.Time       `db:"created_at"`
	Deleted     bool            `db:"deleted"`
	DeletedAt   *time.Time      `db:"deleted_at"`
}
