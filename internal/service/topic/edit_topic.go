package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// EditTopic replaces a topic's content, appending a version that holds
// the new state. The version append and the content update commit as one
// transaction; saving releases the caller's write lock.
func (s *Service) EditTopic(ctx context.Context, input EditTopicInput) (*domain.Topic, error) {
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
	if err := s.claimLock(ctx, topic, user, input.Override); err != nil {
		return nil, err
	}

	reason := input.Reason
	if reason == "" {
		reason = fmt.Sprintf("Topic %q edited by %s", topic.Name, user.Name)
	}

	formatted, refs := s.render(ctx, input.Content)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		modifiedAt := s.now()
		if err := s.topics.UpdateContent(txCtx, topic.ID, input.Content, formatted, user.Name, reason, modifiedAt); err != nil {
			return fmt.Errorf("update content: %w", err)
		}
		if _, err := s.appendVersion(txCtx, topic, input.Content, user.Name, reason, input.Trivial); err != nil {
			return err
		}
		if err := s.links.Reconcile(txCtx, topic.ID, user.Name, refs); err != nil {
			return fmt.Errorf("reconcile refs: %w", err)
		}

		topic.ContentRaw = input.Content
		topic.ContentFormatted = formatted
		topic.Author = user.Name
		topic.Reason = reason
		topic.ModifiedAt = modifiedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Saving ends the editing session.
	if err := s.locks.Release(ctx, topic.ID, user.Name, false); err != nil {
		s.log.WarnContext(ctx, "lock release failed after edit",
			slog.String("topic", topic.Name),
			slog.Any("error", err),
		)
	}

	s.notify(ctx, topic, reason, input.Trivial)

	s.log.InfoContext(ctx, "topic edited",
		slog.String("topic", topic.Name),
		slog.String("author", user.Name),
		slog.Bool("trivial", input.Trivial),
	)

	return topic, nil
}
