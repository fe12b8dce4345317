package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

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

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'WAITER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	// Orders keep the full document as JSONB. The collection column
	// separates delivery lunches, table lunches and breakfasts.
	ordersTableSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			collection VARCHAR(50) NOT NULL,
			doc JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersTableSQL); err != nil {
		return err
	}

	ordersIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_collection
		ON orders (collection, created_at)
	`
	if _, err := db.Exec(ctx, ordersIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATALOG OPTIONS
	// -------------------------------
	catalogTableSQL := `
		CREATE TABLE IF NOT EXISTS catalog_options (
			id UUID PRIMARY KEY,
			category VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			price BIGINT NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (category, name)
		)
	`
	if _, err := db.Exec(ctx, catalogTableSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
