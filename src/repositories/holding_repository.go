package repositories

import (
	"context"

	"coindash/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// HoldingWithAsset joins a holding with the symbol and name of its asset,
// the shape the portfolio endpoints need.
type HoldingWithAsset struct {
	models.Holding
	Symbol string
	Name   string
}

type HoldingRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]HoldingWithAsset, error)
	GetByID(ctx context.Context, id int, userID string) (*HoldingWithAsset, error)
	Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error
	Update(ctx context.Context, h *models.Holding) error
	Delete(ctx context.Context, id int, userID string) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

const holdingColumns = `h.id, h.user_id, h.asset_id, h.quantity::text, h.cost_basis::text,
		h.created_at, h.updated_at, h.deleted, h.deleted_at, a.symbol, a.name`

func scanHolding(row pgx.Row) (*HoldingWithAsset, error) {
	var h HoldingWithAsset
	var quantity, costBasis string
	err := row.Scan(&h.ID, &h.UserID, &h.AssetID, &quantity, &costBasis,
		&h.CreatedAt, &h.UpdatedAt, &h.Deleted, &h.DeletedAt, &h.Symbol, &h.Name)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if h.Quantity, err = decimal.NewFromString(quantity); err != nil {
		return nil, err
	}
	if h.CostBasis, err = decimal.NewFromString(costBasis); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holdingRepo) GetByUserID(ctx context.Context, userID string) ([]HoldingWithAsset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings h
		JOIN assets a ON a.id = h.asset_id
		WHERE h.user_id = $1 AND h.deleted = FALSE
		ORDER BY a.symbol`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []HoldingWithAsset
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, *h)
	}
	return holdings, rows.Err()
}

func (r *holdingRepo) GetByID(ctx context.Context, id int, userID string) (*HoldingWithAsset, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings h
		JOIN assets a ON a.id = h.asset_id
		WHERE h.id = $1 AND h.user_id = $2 AND h.deleted = FALSE`,
		id, userID)
	return scanHolding(row)
}

func (r *holdingRepo) Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error {
	query := `
		INSERT INTO holdings (user_id, asset_id, quantity, cost_basis)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, asset_id) WHERE deleted = FALSE DO UPDATE SET
			quantity = EXCLUDED.quantity,
			cost_basis = EXCLUDED.cost_basis,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	args := []interface{}{h.UserID, h.AssetID, h.Quantity.String(), h.CostBasis.String()}
	if tx != nil {
		return tx.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *holdingRepo) Update(ctx context.Context, h *models.Holding) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE holdings
		SET quantity = $1, cost_basis = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4 AND deleted = FALSE`,
		h.Quantity.String(), h.CostBasis.String(), h.ID, h.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *holdingRepo) Delete(ctx context.Context, id int, userID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE holdings
		SET deleted = TRUE, deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted = FALSE`,
		id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
