package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// GetVersion resolves a topic version by its normalized timestamp key.
// The lookup tolerates sub-second truncation: the latest version within
// one second at or before the key matches. exact reports whether the hit
// carries the requested key itself; on a near match the caller should
// redirect to the returned version's canonical key rather than silently
// serving it.
func (s *Service) GetVersion(ctx context.Context, name, normalizedTS string) (v *domain.TopicVersion, exact bool, err error) {
	user, _ := ctxutil.UserFromCtx(ctx)

	topic, err := s.resolve(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if !s.authz.Permitted(user, topic) {
		return nil, false, fmt.Errorf("topic %q: %w", topic.Name, domain.ErrPermissionDenied)
	}

	ts, err := domain.ParseNormalizedTimestamp(normalizedTS)
	if err != nil {
		return nil, false, domain.NewValidationError("timestamp", "must be "+domain.NormalizedTimestampLayout)
	}

	v, err = s.versions.GetAtOrBefore(ctx, topic.ID, ts)
	if err != nil {
		return nil, false, fmt.Errorf("version at %s: %w", normalizedTS, err)
	}
	return v, v.NormalizedCreated == normalizedTS, nil
}

// ListVersions returns a topic's full history, newest first.
func (s *Service) ListVersions(ctx context.Context, name string) ([]domain.TopicVersion, error) {
	user, _ := ctxutil.UserFromCtx(ctx)

	topic, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	if !s.authz.Permitted(user, topic) {
		return nil, fmt.Errorf("topic %q: %w", topic.Name, domain.ErrPermissionDenied)
	}

	versions, err := s.versions.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return versions, nil
}
