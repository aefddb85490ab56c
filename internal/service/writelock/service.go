// Package writelock implements advisory per-topic edit claims.
//
// A lock is a hint, not a guarantee: it tells other writers someone is
// editing, and any writer may override it after an explicit confirmation.
// Expiry is evaluated lazily; nothing sweeps stale locks.
package writelock

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	SetWriteLock(ctx context.Context, id uuid.UUID, owner string, expiry time.Time) error
	ClearWriteLock(ctx context.Context, id uuid.UUID) error
}

// Service grants, refreshes, and releases write locks.
type Service struct {
	topics        topicRepo
	ttl           time.Duration
	refreshWindow time.Duration
	log           *slog.Logger

	now func() time.Time
}

// NewService creates a new write lock service. ttl is how long a claim
// lasts; refreshWindow is how close to expiry an owner's claim gets
// silently extended on activity.
func NewService(log *slog.Logger, topics topicRepo, ttl, refreshWindow time.Duration) *Service {
	return &Service{
		topics:        topics,
		ttl:           ttl,
		refreshWindow: refreshWindow,
		log:           log.With("service", "writelock"),
		now:           time.Now,
	}
}
