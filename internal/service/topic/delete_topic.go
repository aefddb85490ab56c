package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// DeleteTopic appends a terminal version and flags the topic inactive.
// The row stays in storage for history browsing; the name drops out of
// active listings and becomes reusable. Topics referencing the deleted
// name re-render so their links go dead, which turns the name back into
// a nascent placeholder on their next reconcile.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) error {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return fmt.Errorf("no acting user: %w", domain.ErrPermissionDenied)
	}

	if err := input.Validate(); err != nil {
		return err
	}

	topic, err := s.resolveLive(ctx, input.Name)
	if err != nil {
		return err
	}
	if err := s.editableBy(topic, user); err != nil {
		return err
	}
	if err := s.claimLock(ctx, topic, user, input.Override); err != nil {
		return err
	}

	reason := input.Reason
	if reason == "" {
		reason = fmt.Sprintf("Topic %q deleted by %s", topic.Name, user.Name)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.appendVersion(txCtx, topic, topic.ContentRaw, user.Name, reason, false); err != nil {
			return err
		}
		if err := s.topics.MarkDeleted(txCtx, topic.ID, user.Name, reason, s.now()); err != nil {
			return fmt.Errorf("mark deleted: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// The topic is gone for editing purposes; any lock on it is moot.
	if err := s.locks.Release(ctx, topic.ID, user.Name, true); err != nil {
		s.log.WarnContext(ctx, "lock release failed after delete",
			slog.String("topic", topic.Name),
			slog.Any("error", err),
		)
	}

	referers, err := s.links.Referencing(ctx, topic.LCName)
	if err != nil {
		s.log.WarnContext(ctx, "listing referencing topics failed after delete",
			slog.String("topic", topic.Name),
			slog.Any("error", err),
		)
	}
	for _, id := range referers {
		if err := s.links.RerenderTopic(ctx, id); err != nil {
			s.log.WarnContext(ctx, "re-render failed after delete",
				slog.String("topic", topic.Name),
				slog.String("referencing_id", id.String()),
				slog.Any("error", err),
			)
		}
	}

	s.notify(ctx, topic, reason, false)

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic", topic.Name),
		slog.String("author", user.Name),
	)

	return nil
}
