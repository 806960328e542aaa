package services

import (
	"context"
	"strings"

	"coindash/src/models"
	"coindash/src/repositories"
	"coindash/src/schemas"
	"coindash/src/utils"

	"github.com/shopspring/decimal"
)

type AlertServiceI interface {
	Evaluate(ctx context.Context, ticks []schemas.PriceTick) ([]repositories.AlertWithAsset, error)
}

// AlertService checks enabled alerts against fresh ticks. A firing alert is
// disabled so it delivers once; the user re-enables it to arm it again.
type AlertService struct {
	alertRepo repositories.AlertRepository
}

func NewAlertService(alertRepo repositories.AlertRepository) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

func conditionMet(condition string, price, threshold decimal.Decimal) bool {
	switch condition {
	case models.AlertConditionAbove:
		return price.GreaterThanOrEqual(threshold)
	case models.AlertConditionBelow:
		return price.LessThanOrEqual(threshold)
	}
	return false
}

func (s *AlertService) Evaluate(ctx context.Context, ticks []schemas.PriceTick) ([]repositories.AlertWithAsset, error) {
	alerts, err := s.alertRepo.GetEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, nil
	}

	prices := make(map[string]decimal.Decimal, len(ticks))
	for _, t := range ticks {
		prices[strings.ToUpper(t.Symbol)] = t.Price
	}

	logger := utils.LoggerFromContext(ctx)
	var fired []repositories.AlertWithAsset
	for _, alert := range alerts {
		price, ok := prices[strings.ToUpper(alert.Symbol)]
		if !ok {
			continue
		}
		if !conditionMet(alert.Condition, price, alert.Threshold) {
			continue
		}
		if err := s.alertRepo.MarkTriggered(ctx, alert.ID); err != nil {
			return fired, err
		}
		logger.WithFields(map[string]interface{}{
			"alertId":   alert.ID,
			"userId":    alert.UserID,
			"symbol":    alert.Symbol,
			"condition": alert.Condition,
			"threshold": alert.Threshold.String(),
			"price":     price.String(),
		}).Info("price alert triggered")
		fired = append(fired, alert)
	}
	return fired, nil
}
