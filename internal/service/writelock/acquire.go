package writelock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Acquire claims the topic's write lock for user. It reports false, nil
// when another user holds a live claim; the caller must then obtain an
// explicit override confirmation and call Seize.
//
// An expired claim counts as no claim. The owner's own claim is extended
// only when it has less than the refresh window left, so repeated saves
// do not hammer the lock column.
//
// The read and the write are separate statements: two writers racing
// here can both see the lock as free. Accepted, the lock is advisory.
func (s *Service) Acquire(ctx context.Context, topicID uuid.UUID, user string) (bool, error) {
	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return false, fmt.Errorf("get topic: %w", err)
	}

	now := s.now()
	lock := topic.WriteLock

	if lock != nil && !lock.ExpiredAt(now) {
		if lock.Owner != user {
			return false, nil
		}
		if lock.Expiry.Sub(now) >= s.refreshWindow {
			return true, nil
		}
	}

	if err := s.topics.SetWriteLock(ctx, topicID, user, now.Add(s.ttl)); err != nil {
		return false, fmt.Errorf("set write lock: %w", err)
	}

	s.log.DebugContext(ctx, "write lock acquired",
		slog.String("topic_id", topicID.String()),
		slog.String("user", user),
	)

	return true, nil
}

// Seize claims the lock regardless of the current holder. Callers use it
// after Acquire returned false and the user confirmed the override.
func (s *Service) Seize(ctx context.Context, topicID uuid.UUID, user string) error {
	if err := s.topics.SetWriteLock(ctx, topicID, user, s.now().Add(s.ttl)); err != nil {
		return fmt.Errorf("seize write lock: %w", err)
	}

	s.log.InfoContext(ctx, "write lock seized",
		slog.String("topic_id", topicID.String()),
		slog.String("user", user),
	)

	return nil
}
