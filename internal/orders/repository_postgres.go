package orders

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no document matches.
var ErrNotFound = errors.New("order not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new order document
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	doc, err := order.Document()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, collection, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, order.ID, order.Collection, doc, order.CreatedAt, order.UpdatedAt)

	return err
}

// --------------------------------------------------
// Get one order by collection + id
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, collection, id string) (*Order, error) {
	var (
		doc       []byte
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRow(ctx, `
		SELECT doc, created_at, updated_at
		FROM orders
		WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&doc, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return decodeOrder(doc, id, collection, createdAt, updatedAt)
}

// --------------------------------------------------
// List all orders in a collection
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context, collection string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, doc, created_at, updated_at
		FROM orders
		WHERE collection = $1
		ORDER BY created_at DESC
	`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows, collection)
}

// --------------------------------------------------
// Update an existing order document
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, order *Order) error {
	order.UpdatedAt = time.Now().UTC()

	doc, err := order.Document()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET doc = $1, updated_at = $2
		WHERE collection = $3 AND id = $4
	`, doc, order.UpdatedAt, order.Collection, order.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Bulk delete a whole collection (admin only, irreversible)
// --------------------------------------------------
func (r *PostgresRepository) DeleteAll(ctx context.Context, collection string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM orders WHERE collection = $1
	`, collection)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --------------------------------------------------
// List delivery orders not yet printed (worker queue)
// --------------------------------------------------
func (r *PostgresRepository) ListUnprinted(ctx context.Context, collection string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, doc, created_at, updated_at
		FROM orders
		WHERE collection = $1
		  AND doc->>'printedAt' IS NULL
		  AND doc->>'status' != $2
		ORDER BY created_at ASC
	`, collection, StatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows, collection)
}

func scanOrders(rows pgx.Rows, collection string) ([]*Order, error) {
	var list []*Order
	for rows.Next() {
		var (
			id        string
			doc       []byte
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&id, &doc, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		order, err := decodeOrder(doc, id, collection, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

func decodeOrder(doc []byte, id, collection string, createdAt, updatedAt time.Time) (*Order, error) {
	var order Order
	if err := json.Unmarshal(doc, &order); err != nil {
		return nil, err
	}
	order.ID = id
	order.Collection = collection
	order.CreatedAt = createdAt
	order.UpdatedAt = updatedAt
	return &order, nil
}
