package data

import (
	"context"
	"database/sql"
	_ "embed"
	"time"
)

//go:embed "schema.sql"
var schema string

// Migrate creates the actors and movies tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// without bind arguments lib/pq sends a simple query,
	// so both statements run in one round trip
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return storeError("migrate", err)
	}

	return nil
}
