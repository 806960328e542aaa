package schemas

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateHoldingRequest struct {
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	CostBasis decimal.Decimal `json:"costBasis"`
}

func (r *CreateHoldingRequest) Validate() error {
	if strings.TrimSpace(r.Symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	if !r.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be greater than zero")
	}
	if r.CostBasis.IsNegative() {
		return fmt.Errorf("costBasis must not be negative")
	}
	return nil
}

type UpdateHoldingRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	CostBasis decimal.Decimal `json:"costBasis"`
}

func (r *UpdateHoldingRequest) Validate() error {
	if !r.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be greater than zero")
	}
	if r.CostBasis.IsNegative() {
		return fmt.Errorf("costBasis must not be negative")
	}
	return nil
}

type HoldingResponse struct {
	ID        int             `json:"id"`
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	CostBasis decimal.Decimal `json:"costBasis"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
