package schemas

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateAlertRequest struct {
	Symbol    string          `json:"symbol"`
	Condition string          `json:"condition"`
	Threshold decimal.Decimal `json:"threshold"`
}

func (r *CreateAlertRequest) Validate() error {
	if strings.TrimSpace(r.Symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	if r.Condition != "above" && r.Condition != "below" {
		return fmt.Errorf("condition must be 'above' or 'below'")
	}
	if !r.Threshold.IsPositive() {
		return fmt.Errorf("threshold must be greater than zero")
	}
	return nil
}

type UpdateAlertRequest struct {
	Condition string          `json:"condition"`
	Threshold decimal.Decimal `json:"threshold"`
	Enabled   bool            `json:"enabled"`
}

func (r *UpdateAlertRequest) Validate() error {
	if r.Condition != "above" && r.Condition != "below" {
		return fmt.Errorf("condition must be 'above' or 'below'")
	}
	if !r.Threshold.IsPositive() {
		return fmt.Errorf("threshold must be greater than zero")
	}
	return nil
}

type AlertResponse struct {
	ID          int             `json:"id"`
	Symbol      string          `json:"symbol"`
	Condition   string          `json:"condition"`
	Threshold   decimal.Decimal `json:"threshold"`
	Enabled     bool            `json:"enabled"`
	TriggeredAt *time.Time      `json:"triggeredAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
