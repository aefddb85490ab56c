package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// SetTopicProperty toggles a topic's locked or restricted flag. Flags
// are administrative state, not content, so no version is appended.
func (s *Service) SetTopicProperty(ctx context.Context, input SetTopicPropertyInput) (*domain.Topic, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("no acting user: %w", domain.ErrPermissionDenied)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.authz.HasPermission(user, domain.PermLockTopic) {
		return nil, fmt.Errorf("set %s: %w", input.Property, domain.ErrPermissionDenied)
	}

	topic, err := s.resolveLive(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	locked, restricted := topic.Locked, topic.Restricted
	switch input.Property {
	case PropertyLocked:
		locked = input.Value
	case PropertyRestricted:
		restricted = input.Value
	}
	if locked == topic.Locked && restricted == topic.Restricted {
		return topic, nil
	}

	if err := s.topics.SetFlags(ctx, topic.ID, locked, restricted); err != nil {
		return nil, fmt.Errorf("set flags: %w", err)
	}
	topic.Locked = locked
	topic.Restricted = restricted

	s.log.InfoContext(ctx, "topic property set",
		slog.String("topic", topic.Name),
		slog.String("property", input.Property),
		slog.Bool("value", input.Value),
		slog.String("author", user.Name),
	)

	return topic, nil
}
