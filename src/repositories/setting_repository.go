package repositories

import (
	"context"

	"coindash/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Setting, error)
	Set(ctx context.Context, s *models.Setting) error
}

type settingRepo struct {
	db *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Setting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, key, value, updated_at
		FROM settings
		WHERE user_id = $1
		ORDER BY key`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.UserID, &s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *settingRepo) Set(ctx context.Context, s *models.Setting) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO settings (user_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING updated_at`,
		s.UserID, s.Key, s.Value,
	).Scan(&s.UpdatedAt)
}
