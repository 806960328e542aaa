package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a user's position in an asset. Quantity must be positive and
// CostBasis non-negative; both are enforced at the API boundary.
type Holding struct {
	ID        int             `db:"id"`
	UserID    string          `db:"user_id"`
	AssetID   int             `db:"asset_id"`
	Quantity  decimal.Decimal `db:"quantity"`
	CostBasis decimal.Decimal `db:"cost_basis"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
	Deleted   bool            `db:"deleted"`
	DeletedAt *time.Time      `db:"deleted_at"`
}
