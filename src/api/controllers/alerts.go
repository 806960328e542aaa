package controllers

import (
	"context"
	"errors"
	"fmt"

	"coindash/src/models"
	"coindash/src/repositories"
	"coindash/src/schemas"
	"coindash/src/utils"
)

func alertToResponse(a *repositories.AlertWithAsset) *schemas.AlertResponse {
	return &schemas.AlertResponse{
		ID:          a.ID,
		Symbol:      a.Symbol,
		Condition:   a.Condition,
		Threshold:   a.Threshold,
		Enabled:     a.Enabled,
		TriggeredAt: a.TriggeredAt,
		CreatedAt:   a.CreatedAt,
	}
}

func (c *Controller) GetAlerts(ctx context.Context, userID string) ([]schemas.AlertResponse, error) {
	alerts, err := c.AlertRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]schemas.AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, *alertToResponse(&alerts[i]))
	}
	return responses, nil
}

func (c *Controller) CreateAlert(ctx context.Context, userID string, req *schemas.CreateAlertRequest) (*schemas.AlertResponse, error) {
	asset, err := c.AssetRepo.GetBySymbol(ctx, req.Symbol)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.UnprocessableEntity(fmt.Sprintf("unknown symbol: %s", req.Symbol))
		}
		return nil, err
	}

	alert := &models.Alert{
		UserID:    userID,
		AssetID:   asset.ID,
		Condition: req.Condition,
		Threshold: req.Threshold,
		Enabled:   true,
	}
	if err := c.AlertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	created, err := c.AlertRepo.GetByID(ctx, alert.ID, userID)
	if err != nil {
		return nil, err
	}
	return alertToResponse(created), nil
}

func (c *Controller) UpdateAlert(ctx context.Context, userID string, id int, req *schemas.UpdateAlertRequest) (*schemas.AlertResponse, error) {
	alert := &models.Alert{
		ID:        id,
		UserID:    userID,
		Condition: req.Condition,
		Threshold: req.Threshold,
		Enabled:   req.Enabled,
	}
	if err := c.AlertRepo.Update(ctx, alert); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("alert %d not found", id))
		}
		return nil, err
	}
	updated, err := c.AlertRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return alertToResponse(updated), nil
}

func (c *Controller) DeleteAlert(ctx context.Context, userID string, id int) error {
	if err := c.AlertRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound(fmt.Sprintf("alert %d not found", id))
		}
		return err
	}
	return nil
}
