package menu

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List active options in a category
// --------------------------------------------------
func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]Option, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category, name, price, active, created_at
		FROM catalog_options
		WHERE category = $1 AND active = TRUE
		ORDER BY name
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.Category, &o.Name, &o.Price, &o.Active, &o.CreatedAt); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// --------------------------------------------------
// Upsert an option by (category, name)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, option *Option) error {
	if option.ID == "" {
		option.ID = uuid.New().String()
	}
	option.Active = true

	return r.db.QueryRow(ctx, `
		INSERT INTO catalog_options (id, category, name, price, active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (category, name)
		DO UPDATE SET price = EXCLUDED.price, active = TRUE
		RETURNING id, created_at
	`, option.ID, option.Category, option.Name, option.Price).
		Scan(&option.ID, &option.CreatedAt)
}

// --------------------------------------------------
// Deactivate (options are never physically deleted)
// --------------------------------------------------
func (r *PostgresRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE catalog_options SET active = FALSE WHERE id = $1
	`, id)
	return err
}
