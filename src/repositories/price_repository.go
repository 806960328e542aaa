package repositories

import (
	"context"
	"time"

	"coindash/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PriceRepository interface {
	Insert(ctx context.Context, p *models.PricePoint, tx pgx.Tx) error
	LatestPerAsset(ctx context.Context) ([]models.PricePoint, error)
	LatestBySymbol(ctx context.Context, symbol string) (*models.PricePoint, error)
	SeriesBySymbol(ctx context.Context, symbol string, from, to time.Time) ([]models.PricePoint, error)
}

type priceRepo struct {
	db *pgxpool.Pool
}

func NewPriceRepository(db *pgxpool.Pool) PriceRepository {
	return &priceRepo{db: db}
}

func (r *priceRepo) Insert(ctx context.Context, p *models.PricePoint, tx pgx.Tx) error {
	query := `
		INSERT INTO price_points (asset_id, price, change_24h, market_cap, volume_24h, currency, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (asset_id, timestamp) DO UPDATE SET
			price = EXCLUDED.price,
			change_24h = EXCLUDED.change_24h,
			market_cap = EXCLUDED.market_cap,
			volume_24h = EXCLUDED.volume_24h
		RETURNING id`

	args := []interface{}{
		p.AssetID, p.Price.String(), p.Change24h.String(),
		p.MarketCap.String(), p.Volume24h.String(), p.Currency, p.Timestamp,
	}
	if tx != nil {
		return tx.QueryRow(ctx, query, args...).Scan(&p.ID)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(&p.ID)
}

func scanPricePoints(rows pgx.Rows) ([]models.PricePoint, error) {
	defer rows.Close()

	var points []models.PricePoint
	for rows.Next() {
		p, err := scanPricePoint(rows)
		if err != nil {
			return nil, err
		}
		points = append(points, *p)
	}
	return points, rows.Err()
}

func scanPricePoint(row pgx.Row) (*models.PricePoint, error) {
	var p models.PricePoint
	var price, change, marketCap, volume string
	err := row.Scan(&p.ID, &p.AssetID, &p.Symbol, &price, &change, &marketCap, &volume, &p.Currency, &p.Timestamp)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if p.Change24h, err = decimal.NewFromString(change); err != nil {
		return nil, err
	}
	if p.MarketCap, err = decimal.NewFromString(marketCap); err != nil {
		return nil, err
	}
	if p.Volume24h, err = decimal.NewFromString(volume); err != nil {
		return nil, err
	}
	return &p, nil
}

const pricePointColumns = `p.id, p.asset_id, a.symbol, p.price::text, p.change_24h::text,
		p.market_cap::text, p.volume_24h::text, p.currency, p.timestamp`

func (r *priceRepo) LatestPerAsset(ctx context.Context) ([]models.PricePoint, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (p.asset_id) `+pricePointColumns+`
		FROM price_points p
		JOIN assets a ON a.id = p.asset_id
		WHERE a.deleted = FALSE
		ORDER BY p.asset_id, p.timestamp DESC`)
	if err != nil {
		return nil, err
	}
	return scanPricePoints(rows)
}

func (r *priceRepo) LatestBySymbol(ctx context.Context, symbol string) (*models.PricePoint, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+pricePointColumns+`
		FROM price_points p
		JOIN assets a ON a.id = p.asset_id
		WHERE UPPER(a.symbol) = UPPER($1) AND a.deleted = FALSE
		ORDER BY p.timestamp DESC
		LIMIT 1`,
		symbol)
	return scanPricePoint(row)
}

func (r *priceRepo) SeriesBySymbol(ctx context.Context, symbol string, from, to time.Time) ([]models.PricePoint, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+pricePointColumns+`
		FROM price_points p
		JOIN assets a ON a.id = p.asset_id
		WHERE UPPER(a.symbol) = UPPER($1) AND a.deleted = FALSE
			AND p.timestamp BETWEEN $2 AND $3
		ORDER BY p.timestamp`,
		symbol, from, to)
	if err != nil {
		return nil, err
	}
	return scanPricePoints(rows)
}
