package controllers

import (
	"context"
	"io"

	"coindash/src/schemas"
	"coindash/src/utils"
)

func (c *Controller) GetPortfolio(ctx context.Context, userID string) (*schemas.PortfolioResponse, error) {
	return c.PortfolioService.GetPortfolio(ctx, userID)
}

func (c *Controller) GetPortfolioHistory(ctx context.Context, userID string, days int) (*schemas.ChartSeries, error) {
	return c.PortfolioService.GetHistory(ctx, userID, days)
}

// ExportPortfolioCSV writes the user's positions as CSV.
func (c *Controller) ExportPortfolioCSV(ctx context.Context, userID string, w io.Writer) error {
	portfolio, err := c.PortfolioService.GetPortfolio(ctx, userID)
	if err != nil {
		return err
	}

	header := []string{"symbol", "name", "quantity", "cost_basis", "price", "market_value", "unrealized_pnl", "pnl_percent"}
	rows := make([][]string, 0, len(portfolio.Positions))
	for _, pos := range portfolio.Positions {
		row := []string{pos.Symbol, pos.Name, pos.Quantity.String(), pos.CostBasis.StringFixed(2)}
		if pos.Priced {
			row = append(row, pos.Price.String(), pos.MarketValue.StringFixed(2),
				pos.UnrealizedPnL.StringFixed(2), pos.PnLPercent.StringFixed(2))
		} else {
			row = append(row, "", "", "", "")
		}
		rows = append(rows, row)
	}
	return utils.WriteCSV(w, header, rows)
}
