package repository

import (
	"database/sql"

	"github.com/doug-martin/goqu/v9"
)

// Repository wraps the catalog database handle with a goqu query builder.
type Repository struct {
	DB            *sql.DB
	GoquDBWrapper *goqu.Database
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB:            db,
		GoquDBWrapper: goqu.New("postgres", db),
	}
}
