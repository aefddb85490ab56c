package writelock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// Release clears the topic's write lock. Releasing an unclaimed or
// expired lock is a no-op. Releasing another user's live claim requires
// force and returns domain.ErrLockConflict without it.
func (s *Service) Release(ctx context.Context, topicID uuid.UUID, user string, force bool) error {
	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	lock := topic.WriteLock
	if lock == nil {
		return nil
	}

	if !force && lock.Owner != user && !lock.ExpiredAt(s.now()) {
		return fmt.Errorf("lock held by %q: %w", lock.Owner, domain.ErrLockConflict)
	}

	if err := s.topics.ClearWriteLock(ctx, topicID); err != nil {
		return fmt.Errorf("clear write lock: %w", err)
	}

	s.log.DebugContext(ctx, "write lock released",
		slog.String("topic_id", topicID.String()),
		slog.String("user", user),
		slog.Bool("force", force),
	)

	return nil
}
