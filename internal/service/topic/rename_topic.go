package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// RenameTopic changes a topic's display name and normalized key, then
// rewrites the links of every referencing topic. The primary rename
// commits on its own; cascade failures surface as a domain.CascadeError
// alongside the renamed topic and are repaired by re-running.
func (s *Service) RenameTopic(ctx context.Context, input RenameTopicInput) (*domain.Topic, error) {
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

	oldName := topic.Name
	newName := strings.TrimSpace(input.NewName)
	newLC := domain.NormalizeName(newName)

	// A case-only rename keeps the normalized key and can never collide.
	if newLC != topic.LCName {
		existing, err := s.topics.GetByName(ctx, newLC)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("check new name: %w", err)
		case !existing.Deleted:
			return nil, fmt.Errorf("topic %q already exists: %w", newName, domain.ErrNameConflict)
		}
	}

	if err := s.claimLock(ctx, topic, user, input.Override); err != nil {
		return nil, err
	}

	reason := input.Reason
	if reason == "" {
		reason = fmt.Sprintf("Topic renamed from %q to %q by %s", oldName, newName, user.Name)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		modifiedAt := s.now()
		if err := s.topics.UpdateName(txCtx, topic.ID, newName, newLC, user.Name, reason, modifiedAt); err != nil {
			return fmt.Errorf("update name: %w", err)
		}

		topic.Name = newName
		topic.LCName = newLC
		topic.Author = user.Name
		topic.Reason = reason
		topic.ModifiedAt = modifiedAt

		_, err := s.appendVersion(txCtx, topic, topic.ContentRaw, user.Name, reason, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.locks.Release(ctx, topic.ID, user.Name, false); err != nil {
		s.log.WarnContext(ctx, "lock release failed after rename",
			slog.String("topic", newName),
			slog.Any("error", err),
		)
	}

	cascadeErr := s.renameCascade(ctx, oldName, newName, user)

	if err := s.links.AdoptNascent(ctx, newName); err != nil {
		s.log.WarnContext(ctx, "nascent adoption failed after rename",
			slog.String("topic", newName),
			slog.Any("error", err),
		)
	}

	s.notify(ctx, topic, reason, false)

	s.log.InfoContext(ctx, "topic renamed",
		slog.String("from", oldName),
		slog.String("to", newName),
		slog.String("author", user.Name),
	)

	return topic, cascadeErr
}
