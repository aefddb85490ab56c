package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// CreateTopic creates a new topic with an initial version. The name must
// not collide, case-insensitively, with a live topic; a deleted topic's
// name is free for reuse and the deleted row keeps its own history.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("no acting user: %w", domain.ErrPermissionDenied)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	reason := input.Reason
	if reason == "" {
		reason = fmt.Sprintf("Topic %q created by %s", name, user.Name)
	}

	formatted, refs := s.render(ctx, input.Content)

	now := s.now()
	topic := &domain.Topic{
		ID:               uuid.New(),
		Name:             name,
		LCName:           domain.NormalizeName(name),
		ContentRaw:       input.Content,
		ContentFormatted: formatted,
		Author:           user.Name,
		Reason:           reason,
		CreatedAt:        now,
		ModifiedAt:       now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.topics.GetByName(txCtx, topic.LCName)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return fmt.Errorf("check name: %w", err)
		case !existing.Deleted:
			return fmt.Errorf("topic %q already exists: %w", name, domain.ErrNameConflict)
		}

		if err := s.topics.Create(txCtx, topic); err != nil {
			return fmt.Errorf("create topic: %w", err)
		}
		if _, err := s.appendVersion(txCtx, topic, input.Content, user.Name, reason, false); err != nil {
			return err
		}
		return s.links.Reconcile(txCtx, topic.ID, user.Name, refs)
	})
	if err != nil {
		return nil, err
	}

	// The new name may adopt an existing nascent placeholder. Adoption
	// failure leaves stale renders behind, repairable by the maintenance
	// pass, so it never fails the committed create.
	if err := s.links.AdoptNascent(ctx, name); err != nil {
		s.log.WarnContext(ctx, "nascent adoption failed after create",
			slog.String("topic", name),
			slog.Any("error", err),
		)
	}

	s.notify(ctx, topic, reason, false)

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic", name),
		slog.String("author", user.Name),
	)

	return topic, nil
}
