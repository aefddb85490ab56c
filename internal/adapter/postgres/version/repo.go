// Package version implements the append-only topic version store using
// PostgreSQL. Versions are immutable snapshots; the unique constraint on
// (topic_id, created_at) backs the strictly-increasing timestamp invariant.
package version

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/topicwiki-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// Repo provides version persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new version repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const versionColumns = `id, topic_id, name, content_raw, author, reason,
    trivial, created_at, normalized_created`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const appendSQL = `
INSERT INTO topic_versions (
    id, topic_id, name, content_raw, author, reason,
    trivial, created_at, normalized_created
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const latestSQL = `
SELECT ` + versionColumns + `
FROM topic_versions
WHERE topic_id = $1
ORDER BY created_at DESC
LIMIT 1`

const getAtOrBeforeSQL = `
SELECT ` + versionColumns + `
FROM topic_versions
WHERE topic_id = $1 AND created_at < $2
ORDER BY created_at DESC
LIMIT 1`

const listByTopicSQL = `
SELECT ` + versionColumns + `
FROM topic_versions
WHERE topic_id = $1
ORDER BY created_at DESC`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Append inserts an immutable snapshot. A duplicate (topic_id, created_at)
// pair surfaces as domain.ErrVersionConflict via the unique constraint.
func (r *Repo) Append(ctx context.Context, v *domain.TopicVersion) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	_, err := querier.Exec(ctx, appendSQL,
		v.ID, v.TopicID, v.Name, v.ContentRaw, v.Author, v.Reason,
		v.Trivial, v.CreatedAt, v.NormalizedCreated,
	)
	if err != nil {
		return mapError(err, "topic_version", v.NormalizedCreated)
	}

	return nil
}

// Latest returns the newest version of a topic.
func (r *Repo) Latest(ctx context.Context, topicID uuid.UUID) (*domain.TopicVersion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, latestSQL, topicID)

	v, err := scanVersion(row)
	if err != nil {
		return nil, mapError(err, "topic_version", topicID.String())
	}

	return &v, nil
}

// GetAtOrBefore returns the newest version created strictly before
// ts plus one second. The one-second slack lets a second-truncated
// external timestamp resolve the full-precision version it was derived
// from. Callers compare NormalizedCreated against their request to tell
// an exact hit from a nearest-older fallback.
func (r *Repo) GetAtOrBefore(ctx context.Context, topicID uuid.UUID, ts time.Time) (*domain.TopicVersion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getAtOrBeforeSQL, topicID, ts.Add(time.Second))

	v, err := scanVersion(row)
	if err != nil {
		return nil, mapError(err, "topic_version", topicID.String())
	}

	return &v, nil
}

// ListByTopic returns every version of a topic, newest first.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.TopicVersion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByTopicSQL, topicID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []domain.TopicVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("list versions: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	if versions == nil {
		versions = []domain.TopicVersion{}
	}

	return versions, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanVersion(row pgx.Row) (domain.TopicVersion, error) {
	var v domain.TopicVersion

	err := row.Scan(
		&v.ID, &v.TopicID, &v.Name, &v.ContentRaw, &v.Author, &v.Reason,
		&v.Trivial, &v.CreatedAt, &v.NormalizedCreated,
	)
	if err != nil {
		return domain.TopicVersion{}, err
	}

	return v, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %q: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation on (topic_id, created_at)
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrVersionConflict)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %q: %w", entity, key, err)
}
