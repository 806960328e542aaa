package controllers

import (
	"context"

	"coindash/src/schemas"
)

func (c *Controller) GetPrices(ctx context.Context) ([]schemas.PriceCard, error) {
	return c.PriceService.LatestPrices(ctx)
}

func (c *Controller) GetPrice(ctx context.Context, symbol string) (*schemas.PriceCard, error) {
	return c.PriceService.LatestPrice(ctx, symbol)
}

func (c *Controller) GetPriceHistory(ctx context.Context, symbol string, days int) (*schemas.ChartSeries, error) {
	return c.PriceService.History(ctx, symbol, days)
}
