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

func holdingToResponse(h *repositories.HoldingWithAsset) *schemas.HoldingResponse {
	return &schemas.HoldingResponse{
		ID:        h.ID,
		Symbol:    h.Symbol,
		Quantity:  h.Quantity,
		CostBasis: h.CostBasis,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (c *Controller) GetHoldings(ctx context.Context, userID string) ([]schemas.HoldingResponse, error) {
	holdings, err := c.HoldingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]schemas.HoldingResponse, 0, len(holdings))
	for i := range holdings {
		responses = append(responses, *holdingToResponse(&holdings[i]))
	}
	return responses, nil
}

func (c *Controller) CreateHolding(ctx context.Context, userID string, req *schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error) {
	asset, err := c.AssetRepo.GetBySymbol(ctx, req.Symbol)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.UnprocessableEntity(fmt.Sprintf("unknown symbol: %s", req.Symbol))
		}
		return nil, err
	}

	holding := &models.Holding{
		UserID:    userID,
		AssetID:   asset.ID,
		Quantity:  req.Quantity,
		CostBasis: req.CostBasis,
	}
	if err := c.HoldingRepo.Create(ctx, holding, nil); err != nil {
		return nil, err
	}
	return c.getHoldingResponse(ctx, holding.ID, userID)
}

func (c *Controller) getHoldingResponse(ctx context.Context, id int, userID string) (*schemas.HoldingResponse, error) {
	h, err := c.HoldingRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return holdingToResponse(h), nil
}

func (c *Controller) UpdateHolding(ctx context.Context, userID string, id int, req *schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error) {
	holding := &models.Holding{
		ID:        id,
		UserID:    userID,
		Quantity:  req.Quantity,
		CostBasis: req.CostBasis,
	}
	if err := c.HoldingRepo.Update(ctx, holding); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("holding %d not found", id))
		}
		return nil, err
	}
	return c.getHoldingResponse(ctx, id, userID)
}

func (c *Controller) DeleteHolding(ctx context.Context, userID string, id int) error {
	if err := c.HoldingRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound(fmt.Sprintf("holding %d not found", id))
		}
		return err
	}
	return nil
}
