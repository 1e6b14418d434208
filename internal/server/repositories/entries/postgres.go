package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/dbx"
	"github.com/reflecta-app/reflecta/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
// Tags and activities are stored as JSONB arrays.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) error {
	tags, err := json.Marshal(orEmpty(entry.Tags))
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	activities, err := json.Marshal(orEmpty(entry.Activities))
	if err != nil {
		return fmt.Errorf("failed to encode activities: %w", err)
	}

	query := `
		INSERT INTO entries
			(id, user_id, content, mood_level, energy_level, stress_level,
			 sleep_hours, work_hours, tags, activities, reflection,
			 idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Content,
		entry.MoodLevel, entry.EnergyLevel, entry.StressLevel,
		entry.SleepHours, entry.WorkHours, string(tags), string(activities),
		entry.Reflection, nullableKey(entry.IdempotencyKey),
		entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrDuplicateKey
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByIdempotencyKey(ctx context.Context, userID, key string) (*models.Entry, error) {
	query := selectColumns + `
		WHERE user_id = $1 AND idempotency_key = $2
	`
	row := r.db.QueryRowContext(ctx, query, userID, key)
	entry, err := scanEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Entry, error) {
	query := selectColumns + `
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

const selectColumns = `
		SELECT id, user_id, content, mood_level, energy_level, stress_level,
			sleep_hours, work_hours, tags, activities, reflection,
			idempotency_key, created_at, updated_at
		FROM entries
`

func scanEntry(scan func(dest ...any) error) (*models.Entry, error) {
	var (
		entry      models.Entry
		tags       []byte
		activities []byte
		key        sql.NullString
	)
	err := scan(
		&entry.ID, &entry.UserID, &entry.Content,
		&entry.MoodLevel, &entry.EnergyLevel, &entry.StressLevel,
		&entry.SleepHours, &entry.WorkHours, &tags, &activities,
		&entry.Reflection, &key, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &entry.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if err := json.Unmarshal(activities, &entry.Activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	entry.IdempotencyKey = key.String
	return &entry, nil
}

// orEmpty keeps nil slices from serializing as JSON null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// nullableKey maps an absent idempotency key to SQL NULL so that the partial
// unique index only constrains rows that actually carry a key.
func nullableKey(key string) sql.NullString {
	return sql.NullString{String: key, Valid: key != ""}
}
