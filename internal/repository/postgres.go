package repository

import (
	"context"
	"fmt"
	"strings"

	"orrery-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS bodies (
		position INT PRIMARY KEY,
		name     TEXT NOT NULL,
		value    TEXT NOT NULL
	);
`

// Repository stores the body catalog in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the bodies table if it does not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ListRecords returns every catalog record in catalog order
func (r *Repository) ListRecords(ctx context.Context) ([]models.CatalogRecord, error) {
	sql := `
		SELECT position, name, value
		FROM bodies
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute catalog query: %w", err)
	}
	defer rows.Close()

	records := []models.CatalogRecord{}
	for rows.Next() {
		var rec models.CatalogRecord
		if err := rows.Scan(&rec.Position, &rec.Name, &rec.Value); err != nil {
			return nil, fmt.Errorf("repository: failed to scan body: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}

// Catalog renders the stored records back into catalog text, one quoted line per body
func (r *Repository) Catalog(ctx context.Context) (string, error) {
	records, err := r.ListRecords(ctx)
	if err != nil {
		return "", err
	}
	return FormatCatalog(records), nil
}

// ReplaceCatalog swaps the stored catalog for records in a single transaction
func (r *Repository) ReplaceCatalog(ctx context.Context, records []models.CatalogRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM bodies"); err != nil {
		return fmt.Errorf("repository: failed to clear catalog: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"bodies"},
		[]string{"position", "name", "value"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.Position, rec.Name, rec.Value}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to copy bodies: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit catalog: %w", err)
	}
	return nil
}

// CountBodies returns the number of stored catalog records
func (r *Repository) CountBodies(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM bodies").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count bodies: %w", err)
	}
	return count, nil
}

// FormatCatalog renders records as catalog text
func FormatCatalog(records []models.CatalogRecord) string {
	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(`"` + rec.Name + `" "` + rec.Value + `"`)
		sb.WriteByte('\n')
	}
	return sb.String()
}
