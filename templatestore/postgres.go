package templatestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens a pgx pool and checks it can reach the database.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return pool, nil
}

// PostgresStore persists templates in the document_templates table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ RowStore = (*PostgresStore)(nil)

// NewPostgresStore returns a store backed by pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const selectColumns = `id, user_id, name, description, type, category, is_public, is_premium,
	price, usage_count, template_data, created_at, updated_at`

// Insert writes a new row
func (s *PostgresStore) Insert(ctx context.Context, r Record) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO document_templates (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		r.ID, r.UserID, r.Name, r.Description, r.Type, r.Category, r.IsPublic, r.IsPremium,
		r.Price, r.UsageCount, []byte(r.TemplateData), r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// Update rewrites the editable columns of a row
func (s *PostgresStore) Update(ctx context.Context, r Record) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE document_templates
		SET name = $2, description = $3, type = $4, category = $5, is_public = $6,
			is_premium = $7, price = $8, template_data = $9, updated_at = $10
		WHERE id = $1`,
		r.ID, r.Name, r.Description, r.Type, r.Category, r.IsPublic,
		r.IsPremium, r.Price, []byte(r.TemplateData), r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Get loads one row by id
func (s *PostgresStore) Get(ctx context.Context, id string) (Record, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM document_templates WHERE id = $1`, id)
	r, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get template: %w", err)
	}
	return r, nil
}

// List returns matching rows, most recently updated first
func (s *PostgresStore) List(ctx context.Context, f ListFilter) ([]Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+selectColumns+` FROM document_templates
		WHERE (user_id = $1 OR ($2 AND is_public))
			AND ($3 = '' OR type = $3)
		ORDER BY updated_at DESC, id`,
		f.UserID, f.IncludePublic, f.Type,
	)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return out, nil
}

// Delete removes the row
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM document_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementUsage bumps usage_count in a single statement
func (s *PostgresStore) IncrementUsage(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE document_templates SET usage_count = usage_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var (
		r    Record
		data []byte
	)
	err := row.Scan(
		&r.ID, &r.UserID, &r.Name, &r.Description, &r.Type, &r.Category, &r.IsPublic, &r.IsPremium,
		&r.Price, &r.UsageCount, &data, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	r.TemplateData = data
	return r, nil
}
