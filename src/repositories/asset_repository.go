package repositories

import (
	"context"
	"errors"

	"coindash/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

type AssetRepository interface {
	GetAll(ctx context.Context) ([]models.Asset, error)
	GetBySymbol(ctx context.Context, symbol string) (*models.Asset, error)
	GetBySlug(ctx context.Context, slug string) (*models.Asset, error)
	Upsert(ctx context.Context, a *models.Asset, tx pgx.Tx) error
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

const assetColumns = `id, slug, symbol, name, active, created_at, deleted, deleted_at`

func scanAsset(row pgx.Row) (*models.Asset, error) {
	var a models.Asset
	err := row.Scan(&a.ID, &a.Slug, &a.Symbol, &a.Name, &a.Active, &a.CreatedAt, &a.Deleted, &a.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) GetAll(ctx context.Context) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assetColumns+`
		FROM assets
		WHERE deleted = FALSE AND active = TRUE
		ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.Slug, &a.Symbol, &a.Name, &a.Active, &a.CreatedAt, &a.Deleted, &a.DeletedAt); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *assetRepo) GetBySymbol(ctx context.Context, symbol string) (*models.Asset, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+assetColumns+`
		FROM assets
		WHERE UPPER(symbol) = UPPER($1) AND deleted = FALSE`,
		symbol)
	return scanAsset(row)
}

func (r *assetRepo) GetBySlug(ctx context.Context, slug string) (*models.Asset, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+assetColumns+`
		FROM assets
		WHERE slug = $1 AND deleted = FALSE`,
		slug)
	return scanAsset(row)
}

func (r *assetRepo) Upsert(ctx context.Context, a *models.Asset, tx pgx.Tx) error {
	query := `
		INSERT INTO assets (slug, symbol, name, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET
			symbol = EXCLUDED.symbol,
			name = EXCLUDED.name,
			active = EXCLUDED.active
		RETURNING id`

	if tx != nil {
		return tx.QueryRow(ctx, query, a.Slug, a.Symbol, a.Name, a.Active).Scan(&a.ID)
	}
	return r.db.QueryRow(ctx, query, a.Slug, a.Symbol, a.Name, a.Active).Scan(&a.ID)
}
