package models

import "time"

// Asset is a tracked cryptocurrency. Slug is the identifier used by the
// external market data provider (e.g. "bitcoin"), Symbol the ticker shown
// on the dashboard (e.g. "BTC").
type Asset struct {
	ID        int        `db:"id"`
	Slug      string     `db:"slug"`
	Symbol    string     `db:"symbol"`
	Name      string     `db:"name"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	Deleted   bool       `db:"deleted"`
	DeletedAt *time.Time `db:"deleted_at"`
}
