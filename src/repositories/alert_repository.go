package repositories

import (
	"context"

	"coindash/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type AlertWithAsset struct {
	models.Alert
	Symbol string
}

type AlertRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]AlertWithAsset, error)
	GetByID(ctx context.Context, id int, userID string) (*AlertWithAsset, error)
	GetEnabled(ctx context.Context) ([]AlertWithAsset, error)
	Create(ctx context.Context, a *models.Alert) error
	Update(ctx context.Context, a *models.Alert) error
	MarkTriggered(ctx context.Context, id int) error
	Delete(ctx context.Context, id int, userID string) error
}

type alertRepo struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) AlertRepository {
	return &alertRepo{db: db}
}

const alertColumns = `al.id, al.user_id, al.asset_id, al.condition, al.threshold::text,
		al.enabled, al.triggered_at, al.created_at, al.deleted, al.deleted_at, a.symbol`

func scanAlert(row pgx.Row) (*AlertWithAsset, error) {
	var al AlertWithAsset
	var threshold string
	err := row.Scan(&al.ID, &al.UserID, &al.AssetID, &al.Condition, &threshold,
		&al.Enabled, &al.TriggeredAt, &al.CreatedAt, &al.Deleted, &al.DeletedAt, &al.Symbol)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if al.Threshold, err = decimal.NewFromString(threshold); err != nil {
		return nil, err
	}
	return &al, nil
}

func (r *alertRepo) queryAlerts(ctx context.Context, query string, args ...interface{}) ([]AlertWithAsset, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []AlertWithAsset
	for rows.Next() {
		al, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, *al)
	}
	return alerts, rows.Err()
}

func (r *alertRepo) GetByUserID(ctx context.Context, userID string) ([]AlertWithAsset, error) {
	return r.queryAlerts(ctx,
		`SELECT `+alertColumns+`
		FROM alerts al
		JOIN assets a ON a.id = al.asset_id
		WHERE al.user_id = $1 AND al.deleted = FALSE
		ORDER BY al.created_at DESC`,
		userID)
}

func (r *alertRepo) GetByID(ctx context.Context, id int, userID string) (*AlertWithAsset, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+alertColumns+`
		FROM alerts al
		JOIN assets a ON a.id = al.asset_id
		WHERE al.id = $1 AND al.user_id = $2 AND al.deleted = FALSE`,
		id, userID)
	return scanAlert(row)
}

func (r *alertRepo) GetEnabled(ctx context.Context) ([]AlertWithAsset, error) {
	return r.queryAlerts(ctx,
		`SELECT ` + alertColumns + `
		FROM alerts al
		JOIN assets a ON a.id = al.asset_id
		WHERE al.enabled = TRUE AND al.deleted = FALSE`)
}

func (r *alertRepo) Create(ctx context.Context, a *models.Alert) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO alerts (user_id, asset_id, condition, threshold, enabled)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, created_at`,
		a.UserID, a.AssetID, a.Condition, a.Threshold.String(),
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *alertRepo) Update(ctx context.Context, a *models.Alert) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE alerts
		SET condition = $1, threshold = $2, enabled = $3,
			triggered_at = CASE WHEN $3 THEN NULL ELSE triggered_at END
		WHERE id = $4 AND user_id = $5 AND deleted = FALSE`,
		a.Condition, a.Threshold.String(), a.Enabled, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *alertRepo) MarkTriggered(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE alerts
		SET enabled = FALSE, triggered_at = NOW()
		WHERE id = $1 AND deleted = FALSE`,
		id)
	return err
}

func (r *alertRepo) Delete(ctx context.Context, id int, userID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE alerts
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
