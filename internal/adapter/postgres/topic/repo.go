// Package topic implements the topic registry repository using PostgreSQL.
// Topics carry their current content and the embedded advisory write lock;
// prior states live in topic_versions. Rows are never removed: deleted
// topics flip the deleted flag and drop out of the partial unique index on
// lc_name, so the name becomes reusable while history stays addressable.
package topic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/topicwiki-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const topicColumns = `id, name, lc_name, content_raw, content_formatted,
    author, reason, locked, restricted, deleted,
    lock_owner, lock_expiry, created_at, modified_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO topics (
    id, name, lc_name, content_raw, content_formatted,
    author, reason, locked, restricted, deleted,
    created_at, modified_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const getByIDSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE id = $1`

// getByNameSQL prefers the live row; when only deleted rows carry the
// name, the most recently modified one wins (history browsing).
const getByNameSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE lc_name = $1
ORDER BY deleted, modified_at DESC
LIMIT 1`

const updateContentSQL = `
UPDATE topics
SET content_raw = $2, content_formatted = $3, author = $4, reason = $5, modified_at = $6
WHERE id = $1`

const updateNameSQL = `
UPDATE topics
SET name = $2, lc_name = $3, author = $4, reason = $5, modified_at = $6
WHERE id = $1`

const markDeletedSQL = `
UPDATE topics
SET deleted = TRUE, author = $2, reason = $3, modified_at = $4
WHERE id = $1 AND NOT deleted`

const setFlagsSQL = `
UPDATE topics
SET locked = $2, restricted = $3
WHERE id = $1`

const updateFormattedSQL = `
UPDATE topics
SET content_formatted = $2
WHERE id = $1`

const setWriteLockSQL = `
UPDATE topics
SET lock_owner = $2, lock_expiry = $3
WHERE id = $1`

const clearWriteLockSQL = `
UPDATE topics
SET lock_owner = NULL, lock_expiry = NULL
WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new topic row. The partial unique index on lc_name
// (live rows only) turns a duplicate live name into domain.ErrNameConflict.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	_, err := querier.Exec(ctx, createSQL,
		t.ID, t.Name, t.LCName, t.ContentRaw, t.ContentFormatted,
		t.Author, t.Reason, t.Locked, t.Restricted, t.Deleted,
		t.CreatedAt, t.ModifiedAt,
	)
	if err != nil {
		return mapError(err, "topic", t.Name)
	}

	return nil
}

// GetByID returns a topic by primary key, deleted or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	t, err := scanTopic(row)
	if err != nil {
		return nil, mapError(err, "topic", id.String())
	}

	return &t, nil
}

// GetByName resolves a normalized name to its topic: the live row when
// one exists, otherwise the most recent deleted row.
func (r *Repo) GetByName(ctx context.Context, lcName string) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByNameSQL, lcName)

	t, err := scanTopic(row)
	if err != nil {
		return nil, mapError(err, "topic", lcName)
	}

	return &t, nil
}

// UpdateContent replaces the current content and change attribution.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, raw, formatted, author, reason string, modifiedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, updateContentSQL, id, raw, formatted, author, reason, modifiedAt)
	if err != nil {
		return mapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateName changes the display name and its normalized form.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name, lcName, author, reason string, modifiedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, updateNameSQL, id, name, lcName, author, reason, modifiedAt)
	if err != nil {
		return mapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// MarkDeleted flips the deleted flag. Returns domain.ErrNotFound when the
// topic does not exist or is already deleted.
func (r *Repo) MarkDeleted(ctx context.Context, id uuid.UUID, author, reason string, modifiedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, markDeletedSQL, id, author, reason, modifiedAt)
	if err != nil {
		return mapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SetFlags updates the moderation flags.
func (r *Repo) SetFlags(ctx context.Context, id uuid.UUID, locked, restricted bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, setFlagsSQL, id, locked, restricted)
	if err != nil {
		return mapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateFormatted replaces only the rendered content. Used by re-render
// passes where the raw content and attribution stay untouched.
func (r *Repo) UpdateFormatted(ctx context.Context, id uuid.UUID, formatted string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, updateFormattedSQL, id, formatted)
	if err != nil {
		return mapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SetWriteLock stores an advisory edit claim on the topic row.
func (r *Repo) SetWriteLock(ctx context.Context, id uuid.UUID, owner string, expiry time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, setWriteLockSQL, id, owner, expiry)
	if err != nil {
		return mapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ClearWriteLock removes the advisory edit claim.
func (r *Repo) ClearWriteLock(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, clearWriteLockSQL, id)
	if err != nil {
		return mapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns topics matching the filter in lc_name order.
func (r *Repo) List(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error) {
	qb := squirrel.Select(
		"id", "name", "lc_name", "content_raw", "content_formatted",
		"author", "reason", "locked", "restricted", "deleted",
		"lock_owner", "lock_expiry", "created_at", "modified_at",
	).
		From("topics").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("lc_name")

	if !f.IncludeDeleted {
		qb = qb.Where(squirrel.Eq{"deleted": false})
	}
	if f.NameContains != "" {
		qb = qb.Where(squirrel.Like{"lc_name": "%" + strings.ToLower(f.NameContains) + "%"})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		qb = qb.Offset(uint64(f.Offset))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics, err := scanTopics(rows)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTopics(rows pgx.Rows) ([]domain.Topic, error) {
	var topics []domain.Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if topics == nil {
		topics = []domain.Topic{}
	}

	return topics, nil
}

func scanTopic(row pgx.Row) (domain.Topic, error) {
	var (
		t          domain.Topic
		lockOwner  pgtype.Text
		lockExpiry pgtype.Timestamptz
	)

	err := row.Scan(
		&t.ID, &t.Name, &t.LCName, &t.ContentRaw, &t.ContentFormatted,
		&t.Author, &t.Reason, &t.Locked, &t.Restricted, &t.Deleted,
		&lockOwner, &lockExpiry, &t.CreatedAt, &t.ModifiedAt,
	)
	if err != nil {
		return domain.Topic{}, err
	}

	if lockOwner.Valid && lockExpiry.Valid {
		t.WriteLock = &domain.WriteLock{Owner: lockOwner.String, Expiry: lockExpiry.Time}
	}

	return t, nil
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
		case "23505": // unique_violation
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrNameConflict)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %q: %w", entity, key, err)
}
