package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the fixture database named by DATABASE_URL. The
// dev server only reaches for Postgres when that variable is set; without
// it the in-memory fixtures are used instead.
func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the fixture tables. Menus are stored as one JSON
// document per restaurant; the dev server is a fixture store, not the
// production schema.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			cuisines JSONB NOT NULL DEFAULT '[]',
			phone VARCHAR(50),
			email VARCHAR(255),
			tax_rate_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
			fee_flat_cents BIGINT NOT NULL DEFAULT 0,
			fee_rate_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	menusSQL := `
		CREATE TABLE IF NOT EXISTS menus (
			restaurant_id UUID PRIMARY KEY REFERENCES restaurants(id),
			doc JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, menusSQL); err != nil {
		return err
	}

	return nil
}
