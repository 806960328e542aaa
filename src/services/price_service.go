package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coindash/src/clients/coingecko"
	"coindash/src/models"
	"coindash/src/repositories"
	"coindash/src/schemas"
	"coindash/src/utils"
	redis_utils "coindash/src/utils/redis"
)

const (
	latestPricesCacheKey = "prices:latest"
	// PriceTicksChannel carries fresh ticks from the sync worker to the
	// API service's WebSocket hub.
	PriceTicksChannel = "prices:ticks"
)

type PriceServiceI interface {
	LatestPrices(ctx context.Context) ([]schemas.PriceCard, error)
	LatestPrice(ctx context.Context, symbol string) (*schemas.PriceCard, error)
	History(ctx context.Context, symbol string, days int) (*schemas.ChartSeries, error)
	Refresh(ctx context.Context) ([]schemas.PriceTick, error)
}

// PriceService is the caching shim between the dashboard and the market
// data provider. Reads hit the cache first; a miss triggers one provider
// fetch whose result is persisted and cached. Provider failures degrade to
// the last stored snapshot, flagged stale.
type PriceService struct {
	assetRepo repositories.AssetRepository
	priceRepo repositories.PriceRepository
	client    coingecko.CoinGeckoServiceClientI

	redis    *redis_utils.RedisHandler
	memCache *utils.Cache[[]schemas.PriceCard]
	ttl      time.Duration

	coins      []string
	vsCurrency string
}

func NewPriceService(
	assetRepo repositories.AssetRepository,
	priceRepo repositories.PriceRepository,
	client coingecko.CoinGeckoServiceClientI,
	redis *redis_utils.RedisHandler,
	ttl time.Duration,
	coins []string,
	vsCurrency string,
) *PriceService {
	return &PriceService{
		assetRepo:  assetRepo,
		priceRepo:  priceRepo,
		client:     client,
		redis:      redis,
		memCache:   utils.NewCache[[]schemas.PriceCard](),
		ttl:        ttl,
		coins:      coins,
		vsCurrency: vsCurrency,
	}
}

func (s *PriceService) cachedCards() ([]schemas.PriceCard, bool) {
	if cards, ok := s.memCache.Get(); ok {
		return cards, true
	}
	if s.redis != nil {
		var cards []schemas.PriceCard
		if err := s.redis.Get(latestPricesCacheKey, &cards); err == nil && len(cards) > 0 {
			return cards, true
		}
	}
	return nil, false
}

func (s *PriceService) cacheCards(cards []schemas.PriceCard) {
	s.memCache.Set(cards, s.ttl)
	if s.redis != nil {
		_ = s.redis.Set(latestPricesCacheKey, cards, s.ttl)
	}
}

// LatestPrices returns one price card per tracked asset.
func (s *PriceService) LatestPrices(ctx context.Context) ([]schemas.PriceCard, error) {
	if cards, ok := s.cachedCards(); ok {
		return cards, nil
	}

	if _, err := s.Refresh(ctx); err != nil {
		utils.LoggerFromContext(ctx).WithError(err).Warn("price fetch failed, serving stored snapshot")
		return s.storedCards(ctx)
	}
	cards, _ := s.cachedCards()
	return cards, nil
}

// storedCards rebuilds price cards from the database, flagged stale. Used
// when the provider is unreachable or rate limiting us.
func (s *PriceService) storedCards(ctx context.Context) ([]schemas.PriceCard, error) {
	points, err := s.priceRepo.LatestPerAsset(ctx)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, utils.BadGateway("market data provider unavailable and no stored prices exist")
	}

	assets, err := s.assetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(assets))
	for _, a := range assets {
		names[a.ID] = a.Name
	}

	cards := make([]schemas.PriceCard, 0, len(points))
	for _, p := range points {
		cards = append(cards, schemas.PriceCard{
			Symbol:    p.Symbol,
			Name:      names[p.AssetID],
			Price:     p.Price,
			Change24h: p.Change24h,
			MarketCap: p.MarketCap,
			Volume24h: p.Volume24h,
			Currency:  p.Currency,
			UpdatedAt: p.Timestamp,
			Stale:     true,
		})
	}
	return cards, nil
}

// LatestPrice returns the card for a single symbol.
func (s *PriceService) LatestPrice(ctx context.Context, symbol string) (*schemas.PriceCard, error) {
	cards, err := s.LatestPrices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		if strings.EqualFold(cards[i].Symbol, symbol) {
			return &cards[i], nil
		}
	}

	// Not on the board: the symbol is either unknown or only in the store.
	if _, err := s.assetRepo.GetBySymbol(ctx, symbol); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("unknown symbol: %s", symbol))
		}
		return nil, err
	}
	point, err := s.priceRepo.LatestBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("no price data for symbol: %s", symbol))
		}
		return nil, err
	}
	return &schemas.PriceCard{
		Symbol:    point.Symbol,
		Price:     point.Price,
		Change24h: point.Change24h,
		MarketCap: point.MarketCap,
		Volume24h: point.Volume24h,
		Currency:  point.Currency,
		UpdatedAt: point.Timestamp,
		Stale:     true,
	}, nil
}

// History returns the price series for one symbol over the last `days` days.
func (s *PriceService) History(ctx context.Context, symbol string, days int) (*schemas.ChartSeries, error) {
	asset, err := s.assetRepo.GetBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("unknown symbol: %s", symbol))
		}
		return nil, err
	}

	chart, err := s.client.GetMarketChart(ctx, asset.Slug, s.vsCurrency, days)
	if err == nil {
		series := &schemas.ChartSeries{Symbol: asset.Symbol, Currency: s.vsCurrency}
		for _, pair := range chart.Prices {
			if len(pair) < 2 {
				continue
			}
			series.Points = append(series.Points, schemas.ChartPoint{
				Timestamp: time.UnixMilli(int64(pair[0])).UTC(),
				Value:     utils.DecimalFromFloat(pair[1]),
			})
		}
		return series, nil
	}
	utils.LoggerFromContext(ctx).WithError(err).Warn("market chart fetch failed, serving stored series")

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	points, err := s.priceRepo.SeriesBySymbol(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, utils.BadGateway(fmt.Sprintf("no price history available for %s", symbol))
	}
	series := &schemas.ChartSeries{Symbol: asset.Symbol, Currency: s.vsCurrency}
	for _, p := range points {
		series.Points = append(series.Points, schemas.ChartPoint{Timestamp: p.Timestamp, Value: p.Price})
	}
	return series, nil
}

// Refresh fetches current market data for all tracked coins, persists it,
// refreshes the cache and returns the resulting ticks.
func (s *PriceService) Refresh(ctx context.Context) ([]schemas.PriceTick, error) {
	markets, err := s.client.GetMarkets(ctx, s.coins, s.vsCurrency)
	if err != nil {
		return nil, err
	}
	if len(markets) == 0 {
		return nil, fmt.Errorf("provider returned no market data for %d coins", len(s.coins))
	}

	cards := make([]schemas.PriceCard, 0, len(markets))
	ticks := make([]schemas.PriceTick, 0, len(markets))
	for _, m := range markets {
		symbol := strings.ToUpper(m.Symbol)
		timestamp := m.LastUpdated
		if timestamp.IsZero() {
			timestamp = time.Now().UTC()
		}

		asset := &models.Asset{Slug: m.ID, Symbol: symbol, Name: m.Name, Active: true}
		if err := s.assetRepo.Upsert(ctx, asset, nil); err != nil {
			return nil, fmt.Errorf("upsert asset %s: %w", m.ID, err)
		}

		point := &models.PricePoint{
			AssetID:   asset.ID,
			Symbol:    symbol,
			Price:     utils.DecimalFromFloat(m.CurrentPrice),
			Change24h: utils.DecimalFromFloat(m.PriceChangePercentage24h),
			MarketCap: utils.DecimalFromFloat(m.MarketCap),
			Volume24h: utils.DecimalFromFloat(m.TotalVolume),
			Currency:  s.vsCurrency,
			Timestamp: timestamp,
		}
		if err := s.priceRepo.Insert(ctx, point, nil); err != nil {
			return nil, fmt.Errorf("insert price point for %s: %w", symbol, err)
		}

		cards = append(cards, schemas.PriceCard{
			Symbol:    symbol,
			Name:      m.Name,
			Price:     point.Price,
			Change24h: point.Change24h,
			MarketCap: point.MarketCap,
			Volume24h: point.Volume24h,
			Currency:  s.vsCurrency,
			UpdatedAt: timestamp,
		})
		ticks = append(ticks, schemas.PriceTick{
			Symbol:    symbol,
			Price:     point.Price,
			Change24h: point.Change24h,
			Currency:  s.vsCurrency,
			Timestamp: timestamp,
		})
	}

	s.cacheCards(cards)
	return ticks, nil
}
