package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"coindash/src/models"
	"coindash/src/repositories"
	"coindash/src/schemas"

	"github.com/jackc/pgx/v5"
)

// In-memory repository fakes for service tests that do not need a database.

type fakeAssetRepo struct {
	assets map[string]*models.Asset // keyed by slug
	nextID int
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[string]*models.Asset), nextID: 1}
}

func (r *fakeAssetRepo) GetAll(_ context.Context) ([]models.Asset, error) {
	var out []models.Asset
	for _, a := range r.assets {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

func (r *fakeAssetRepo) GetBySymbol(_ context.Context, symbol string) (*models.Asset, error) {
	for _, a := range r.assets {
		if strings.EqualFold(a.Symbol, symbol) {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeAssetRepo) GetBySlug(_ context.Context, slug string) (*models.Asset, error) {
	if a, ok := r.assets[slug]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeAssetRepo) Upsert(_ context.Context, a *models.Asset, _ pgx.Tx) error {
	if existing, ok := r.assets[a.Slug]; ok {
		a.ID = existing.ID
	} else {
		a.ID = r.nextID
		r.nextID++
	}
	copied := *a
	r.assets[a.Slug] = &copied
	return nil
}

type fakePriceRepo struct {
	points []models.PricePoint
	nextID int
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{nextID: 1}
}

func (r *fakePriceRepo) Insert(_ context.Context, p *models.PricePoint, _ pgx.Tx) error {
	p.ID = r.nextID
	r.nextID++
	r.points = append(r.points, *p)
	return nil
}

func (r *fakePriceRepo) LatestPerAsset(_ context.Context) ([]models.PricePoint, error) {
	latest := make(map[int]models.PricePoint)
	for _, p := range r.points {
		if existing, ok := latest[p.AssetID]; !ok || p.Timestamp.After(existing.Timestamp) {
			latest[p.AssetID] = p
		}
	}
	var out []models.PricePoint
	for _, p := range latest {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out, nil
}

func (r *fakePriceRepo) LatestBySymbol(_ context.Context, symbol string) (*models.PricePoint, error) {
	var found *models.PricePoint
	for i := range r.points {
		p := r.points[i]
		if !strings.EqualFold(p.Symbol, symbol) {
			continue
		}
		if found == nil || p.Timestamp.After(found.Timestamp) {
			copied := p
			found = &copied
		}
	}
	if found == nil {
		return nil, repositories.ErrNotFound
	}
	return found, nil
}

func (r *fakePriceRepo) SeriesBySymbol(_ context.Context, symbol string, from, to time.Time) ([]models.PricePoint, error) {
	var out []models.PricePoint
	for _, p := range r.points {
		if strings.EqualFold(p.Symbol, symbol) && !p.Timestamp.Before(from) && !p.Timestamp.After(to) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

type fakeHoldingRepo struct {
	holdings []repositories.HoldingWithAsset
}

func (r *fakeHoldingRepo) GetByUserID(_ context.Context, userID string) ([]repositories.HoldingWithAsset, error) {
	var out []repositories.HoldingWithAsset
	for _, h := range r.holdings {
		if h.UserID == userID && !h.Deleted {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHoldingRepo) GetByID(_ context.Context, id int, userID string) (*repositories.HoldingWithAsset, error) {
	for i := range r.holdings {
		h := r.holdings[i]
		if h.ID == id && h.UserID == userID && !h.Deleted {
			return &h, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeHoldingRepo) Create(_ context.Context, h *models.Holding, _ pgx.Tx) error {
	h.ID = len(r.holdings) + 1
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	r.holdings = append(r.holdings, repositories.HoldingWithAsset{Holding: *h})
	return nil
}

func (r *fakeHoldingRepo) Update(_ context.Context, h *models.Holding) error {
	for i := range r.holdings {
		if r.holdings[i].ID == h.ID && r.holdings[i].UserID == h.UserID && !r.holdings[i].Deleted {
			r.holdings[i].Quantity = h.Quantity
			r.holdings[i].CostBasis = h.CostBasis
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeHoldingRepo) Delete(_ context.Context, id int, userID string) error {
	for i := range r.holdings {
		if r.holdings[i].ID == id && r.holdings[i].UserID == userID && !r.holdings[i].Deleted {
			r.holdings[i].Deleted = true
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeAlertRepo struct {
	alerts []repositories.AlertWithAsset
}

func (r *fakeAlertRepo) GetByUserID(_ context.Context, userID string) ([]repositories.AlertWithAsset, error) {
	var out []repositories.AlertWithAsset
	for _, a := range r.alerts {
		if a.UserID == userID && !a.Deleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) GetByID(_ context.Context, id int, userID string) (*repositories.AlertWithAsset, error) {
	for i := range r.alerts {
		a := r.alerts[i]
		if a.ID == id && a.UserID == userID && !a.Deleted {
			return &a, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeAlertRepo) GetEnabled(_ context.Context) ([]repositories.AlertWithAsset, error) {
	var out []repositories.AlertWithAsset
	for _, a := range r.alerts {
		if a.Enabled && !a.Deleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) Create(_ context.Context, a *models.Alert) error {
	a.ID = len(r.alerts) + 1
	a.CreatedAt = time.Now()
	r.alerts = append(r.alerts, repositories.AlertWithAsset{Alert: *a})
	return nil
}

func (r *fakeAlertRepo) Update(_ context.Context, a *models.Alert) error {
	for i := range r.alerts {
		if r.alerts[i].ID == a.ID && r.alerts[i].UserID == a.UserID && !r.alerts[i].Deleted {
			r.alerts[i].Condition = a.Condition
			r.alerts[i].Threshold = a.Threshold
			r.alerts[i].Enabled = a.Enabled
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeAlertRepo) MarkTriggered(_ context.Context, id int) error {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			now := time.Now()
			r.alerts[i].Enabled = false
			r.alerts[i].TriggeredAt = &now
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeAlertRepo) Delete(_ context.Context, id int, userID string) error {
	for i := range r.alerts {
		if r.alerts[i].ID == id && r.alerts[i].UserID == userID && !r.alerts[i].Deleted {
			r.alerts[i].Deleted = true
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakePriceService satisfies services.PriceServiceI for portfolio tests.
type fakePriceService struct {
	cards []schemas.PriceCard
	err   error
}

func (s *fakePriceService) LatestPrices(_ context.Context) ([]schemas.PriceCard, error) {
	return s.cards, s.err
}

func (s *fakePriceService) LatestPrice(_ context.Context, symbol string) (*schemas.PriceCard, error) {
	for i := range s.cards {
		if strings.EqualFold(s.cards[i].Symbol, symbol) {
			return &s.cards[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakePriceService) History(_ context.Context, _ string, _ int) (*schemas.ChartSeries, error) {
	return &schemas.ChartSeries{}, s.err
}

func (s *fakePriceService) Refresh(_ context.Context) ([]schemas.PriceTick, error) {
	if s.err != nil {
		return nil, s.err
	}
	var ticks []schemas.PriceTick
	for _, c := range s.cards {
		ticks = append(ticks, schemas.PriceTick{
			Symbol:    c.Symbol,
			Price:     c.Price,
			Change24h: c.Change24h,
			Currency:  c.Currency,
			Timestamp: c.UpdatedAt,
		})
	}
	return ticks, nil
}
