// Package nascent implements the reference index and nascent topic
// repository using PostgreSQL. topic_refs stores normalized names, not
// topic ids: a topic may reference itself or a name no topic carries yet,
// and renames re-bind references without touching referencing rows.
package nascent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/topicwiki-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// Repo provides reference index and nascent topic persistence backed by
// PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new nascent repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL: reference index
// ---------------------------------------------------------------------------

const deleteRefsSQL = `
DELETE FROM topic_refs WHERE topic_id = $1`

const insertRefsSQL = `
INSERT INTO topic_refs (topic_id, lc_name)
SELECT $1, unnest($2::varchar[])`

const listRefNamesSQL = `
SELECT lc_name
FROM topic_refs
WHERE topic_id = $1
ORDER BY lc_name`

// listReferencingSQL resolves a name to the live topics whose reference
// set contains it. Deleted referers are excluded.
const listReferencingSQL = `
SELECT r.topic_id
FROM topic_refs r
JOIN topics t ON t.id = r.topic_id
WHERE r.lc_name = $1 AND NOT t.deleted
ORDER BY t.lc_name`

// ---------------------------------------------------------------------------
// Raw SQL: nascent topics
// ---------------------------------------------------------------------------

const ensureNascentSQL = `
INSERT INTO nascent_topics (id, name, lc_name, author, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (lc_name) DO NOTHING`

const getNascentSQL = `
SELECT id, name, lc_name, author, created_at
FROM nascent_topics
WHERE lc_name = $1`

const deleteNascentSQL = `
DELETE FROM nascent_topics WHERE lc_name = $1`

const listNascentSQL = `
SELECT id, name, lc_name, author, created_at
FROM nascent_topics
ORDER BY lc_name`

// deleteShadowedSQL drops nascent rows whose name a live topic now carries.
const deleteShadowedSQL = `
DELETE FROM nascent_topics n
WHERE EXISTS (
    SELECT 1 FROM topics t
    WHERE t.lc_name = n.lc_name AND NOT t.deleted
)`

// deleteOrphanedSQL drops nascent rows no live topic references anymore.
const deleteOrphanedSQL = `
DELETE FROM nascent_topics n
WHERE NOT EXISTS (
    SELECT 1
    FROM topic_refs r
    JOIN topics t ON t.id = r.topic_id
    WHERE r.lc_name = n.lc_name AND NOT t.deleted
)`

// ---------------------------------------------------------------------------
// Reference index operations
// ---------------------------------------------------------------------------

// ReplaceRefs swaps the topic's reference set for the given normalized
// names. Callers wanting atomicity run it inside a transaction.
func (r *Repo) ReplaceRefs(ctx context.Context, topicID uuid.UUID, lcNames []string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, deleteRefsSQL, topicID); err != nil {
		return mapError(err, "topic_refs", topicID.String())
	}

	if len(lcNames) == 0 {
		return nil
	}

	if _, err := querier.Exec(ctx, insertRefsSQL, topicID, lcNames); err != nil {
		return mapError(err, "topic_refs", topicID.String())
	}

	return nil
}

// ListRefNames returns the normalized names a topic references.
func (r *Repo) ListRefNames(ctx context.Context, topicID uuid.UUID) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listRefNamesSQL, topicID)
	if err != nil {
		return nil, fmt.Errorf("list ref names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list ref names: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ref names: %w", err)
	}

	if names == nil {
		names = []string{}
	}

	return names, nil
}

// ListReferencing returns the ids of live topics referencing a name,
// ordered by the referer's normalized name.
func (r *Repo) ListReferencing(ctx context.Context, lcName string) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listReferencingSQL, lcName)
	if err != nil {
		return nil, fmt.Errorf("list referencing topics: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list referencing topics: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list referencing topics: %w", err)
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Nascent topic operations
// ---------------------------------------------------------------------------

// EnsureNascent records a placeholder for a referenced-but-nonexistent
// name. Idempotent: an existing placeholder for the name wins.
func (r *Repo) EnsureNascent(ctx context.Context, n *domain.NascentTopic) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	_, err := querier.Exec(ctx, ensureNascentSQL, n.ID, n.Name, n.LCName, n.Author, n.CreatedAt)
	if err != nil {
		return mapError(err, "nascent_topic", n.Name)
	}

	return nil
}

// GetByName returns the nascent placeholder for a normalized name.
func (r *Repo) GetByName(ctx context.Context, lcName string) (*domain.NascentTopic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getNascentSQL, lcName)

	var n domain.NascentTopic
	if err := row.Scan(&n.ID, &n.Name, &n.LCName, &n.Author, &n.CreatedAt); err != nil {
		return nil, mapError(err, "nascent_topic", lcName)
	}

	return &n, nil
}

// Delete removes the nascent placeholder for a normalized name. Deleting
// a name with no placeholder is not an error.
func (r *Repo) Delete(ctx context.Context, lcName string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, deleteNascentSQL, lcName); err != nil {
		return mapError(err, "nascent_topic", lcName)
	}

	return nil
}

// List returns every nascent placeholder in lc_name order.
func (r *Repo) List(ctx context.Context) ([]domain.NascentTopic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listNascentSQL)
	if err != nil {
		return nil, fmt.Errorf("list nascent topics: %w", err)
	}
	defer rows.Close()

	var nascents []domain.NascentTopic
	for rows.Next() {
		var n domain.NascentTopic
		if err := rows.Scan(&n.ID, &n.Name, &n.LCName, &n.Author, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("list nascent topics: %w", err)
		}
		nascents = append(nascents, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list nascent topics: %w", err)
	}

	if nascents == nil {
		nascents = []domain.NascentTopic{}
	}

	return nascents, nil
}

// DeleteShadowed removes nascent rows whose name a live topic carries.
// Returns the number of rows removed.
func (r *Repo) DeleteShadowed(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteShadowedSQL)
	if err != nil {
		return 0, fmt.Errorf("delete shadowed nascent topics: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteOrphaned removes nascent rows with an empty reference set.
// Returns the number of rows removed.
func (r *Repo) DeleteOrphaned(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteOrphanedSQL)
	if err != nil {
		return 0, fmt.Errorf("delete orphaned nascent topics: %w", err)
	}

	return tag.RowsAffected(), nil
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
