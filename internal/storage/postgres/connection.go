package postgres

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// NewConnection exposes the pool through database/sql for the repositories.
// Closing the returned *sql.DB does not close the pool.
func NewConnection(pool *pgxpool.Pool) *sql.DB {
	db := stdlib.OpenDBFromPool(pool)
	db.SetMaxIdleConns(0)
	return db
}
