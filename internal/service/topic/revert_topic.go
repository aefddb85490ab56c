package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// RevertTopic restores the snapshot addressed by a normalized timestamp
// as the topic's new current content, through the same lock contract and
// append-plus-update path as a normal edit. The new version's content is
// byte-equal to the snapshot's and its timestamp exceeds all prior ones.
func (s *Service) RevertTopic(ctx context.Context, input RevertTopicInput) (*domain.Topic, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("no acting user: %w", domain.ErrPermissionDenied)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.resolveLive(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.editableBy(topic, user); err != nil {
		return nil, err
	}

	ts, err := domain.ParseNormalizedTimestamp(input.Timestamp)
	if err != nil {
		return nil, domain.NewValidationError("timestamp", "must be "+domain.NormalizedTimestampLayout)
	}
	snapshot, err := s.versions.GetAtOrBefore(ctx, topic.ID, ts)
	if err != nil {
		return nil, fmt.Errorf("version at %s: %w", input.Timestamp, err)
	}

	if err := s.claimLock(ctx, topic, user, input.Override); err != nil {
		return nil, err
	}

	reason := input.Reason
	if reason == "" {
		reason = fmt.Sprintf("Topic %q reverted to version %s by %s",
			topic.Name, snapshot.NormalizedCreated, user.Name)
	}

	formatted, refs := s.render(ctx, snapshot.ContentRaw)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		modifiedAt := s.now()
		if err := s.topics.UpdateContent(txCtx, topic.ID, snapshot.ContentRaw, formatted, user.Name, reason, modifiedAt); err != nil {
			return fmt.Errorf("update content: %w", err)
		}
		if _, err := s.appendVersion(txCtx, topic, snapshot.ContentRaw, user.Name, reason, false); err != nil {
			return err
		}
		if err := s.links.Reconcile(txCtx, topic.ID, user.Name, refs); err != nil {
			return fmt.Errorf("reconcile refs: %w", err)
		}

		topic.ContentRaw = snapshot.ContentRaw
		topic.ContentFormatted = formatted
		topic.Author = user.Name
		topic.Reason = reason
		topic.ModifiedAt = modifiedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.locks.Release(ctx, topic.ID, user.Name, false); err != nil {
		s.log.WarnContext(ctx, "lock release failed after revert",
			slog.String("topic", topic.Name),
			slog.Any("error", err),
		)
	}

	s.notify(ctx, topic, reason, false)

	s.log.InfoContext(ctx, "topic reverted",
		slog.String("topic", topic.Name),
		slog.String("version", snapshot.NormalizedCreated),
		slog.String("author", user.Name),
	)

	return topic, nil
}
