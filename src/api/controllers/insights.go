package controllers

import (
	"context"

	"coindash/src/schemas"
)

func (c *Controller) GetInsight(ctx context.Context, userID string) (*schemas.InsightResponse, error) {
	return c.InsightService.GenerateInsight(ctx, userID)
}
