package services

import (
	"context"
	"strings"
	"time"

	"coindash/src/repositories"
	"coindash/src/schemas"
	"coindash/src/utils"

	"github.com/shopspring/decimal"
)

type PortfolioServiceI interface {
	GetPortfolio(ctx context.Context, userID string) (*schemas.PortfolioResponse, error)
	GetHistory(ctx context.Context, userID string, days int) (*schemas.ChartSeries, error)
}

// PortfolioService values holdings against the latest known prices. All
// money math runs on decimals; provider floats never reach this layer.
type PortfolioService struct {
	holdingRepo  repositories.HoldingRepository
	priceRepo    repositories.PriceRepository
	priceService PriceServiceI
	vsCurrency   string
}

func NewPortfolioService(
	holdingRepo repositories.HoldingRepository,
	priceRepo repositories.PriceRepository,
	priceService PriceServiceI,
	vsCurrency string,
) *PortfolioService {
	return &PortfolioService{
		holdingRepo:  holdingRepo,
		priceRepo:    priceRepo,
		priceService: priceService,
		vsCurrency:   vsCurrency,
	}
}

// GetPortfolio returns every position plus summary totals. A missing price
// leaves the position unpriced rather than failing the whole response.
func (s *PortfolioService) GetPortfolio(ctx context.Context, userID string) (*schemas.PortfolioResponse, error) {
	holdings, err := s.holdingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cards, err := s.priceService.LatestPrices(ctx)
	if err != nil {
		// Valuation degrades to unpriced positions.
		utils.LoggerFromContext(ctx).WithError(err).Warn("no prices available for portfolio valuation")
		cards = nil
	}
	bySymbol := make(map[string]schemas.PriceCard, len(cards))
	for _, c := range cards {
		bySymbol[strings.ToUpper(c.Symbol)] = c
	}

	resp := &schemas.PortfolioResponse{
		Positions: make([]schemas.PortfolioPosition, 0, len(holdings)),
		AsOf:      time.Now().UTC(),
	}
	totalValue := decimal.Zero
	totalCost := decimal.Zero

	for _, h := range holdings {
		pos := schemas.PortfolioPosition{
			Symbol:    h.Symbol,
			Name:      h.Name,
			Quantity:  h.Quantity,
			CostBasis: h.CostBasis,
		}
		if card, ok := bySymbol[strings.ToUpper(h.Symbol)]; ok {
			pos.Priced = true
			pos.Stale = card.Stale
			pos.Price = card.Price
			pos.MarketValue = h.Quantity.Mul(card.Price)
			pos.UnrealizedPnL = pos.MarketValue.Sub(h.CostBasis)
			pos.PnLPercent = utils.PercentOf(pos.UnrealizedPnL, h.CostBasis)
			totalValue = totalValue.Add(pos.MarketValue)
		}
		totalCost = totalCost.Add(h.CostBasis)
		resp.Positions = append(resp.Positions, pos)
	}

	resp.Summary = schemas.PortfolioSummary{
		TotalValue: totalValue,
		TotalCost:  totalCost,
		TotalPnL:   totalValue.Sub(totalCost),
		PnLPercent: utils.PercentOf(totalValue.Sub(totalCost), totalCost),
		Currency:   s.vsCurrency,
	}
	for _, pos := range resp.Positions {
		if !pos.Priced {
			continue
		}
		resp.Summary.Allocations = append(resp.Summary.Allocations, schemas.Allocation{
			Symbol:  pos.Symbol,
			Percent: utils.PercentOf(pos.MarketValue, totalValue),
		})
	}
	return resp, nil
}

// GetHistory computes the daily portfolio value over the last `days` days
// from stored price points. Days without a price for a symbol carry the
// last known price forward.
func (s *PortfolioService) GetHistory(ctx context.Context, userID string, days int) (*schemas.ChartSeries, error) {
	holdings, err := s.holdingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	to := utils.TruncateToDay(time.Now())
	from := to.AddDate(0, 0, -days)
	grid, err := utils.GenerateDates(from, to, 24*time.Hour)
	if err != nil {
		return nil, err
	}

	// Last stored price per symbol per day.
	type daily map[time.Time]decimal.Decimal
	pricesBySymbol := make(map[string]daily, len(holdings))
	for _, h := range holdings {
		points, err := s.priceRepo.SeriesBySymbol(ctx, h.Symbol, from, to.Add(24*time.Hour))
		if err != nil {
			return nil, err
		}
		d := make(daily)
		for _, p := range points {
			d[utils.TruncateToDay(p.Timestamp)] = p.Price
		}
		pricesBySymbol[h.Symbol] = d
	}

	series := &schemas.ChartSeries{Currency: s.vsCurrency}
	last := make(map[string]decimal.Decimal, len(holdings))
	for _, day := range grid {
		value := decimal.Zero
		priced := false
		for _, h := range holdings {
			price, ok := pricesBySymbol[h.Symbol][day]
			if !ok {
				price, ok = last[h.Symbol]
				if !ok {
					continue
				}
			}
			last[h.Symbol] = price
			value = value.Add(h.Quantity.Mul(price))
			priced = true
		}
		if !priced {
			continue
		}
		series.Points = append(series.Points, schemas.ChartPoint{Timestamp: day, Value: value})
	}
	return series, nil
}
