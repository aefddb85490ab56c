package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// ListTopics returns active topics matching the filter, ordered by
// normalized name. Restricted topics the caller may not see are dropped
// from the page rather than erroring the whole listing.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]domain.Topic, error) {
	user, _ := ctxutil.UserFromCtx(ctx)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topics, err := s.topics.List(ctx, domain.TopicFilter{
		NameContains: input.NameContains,
		Limit:        input.Limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	visible := topics[:0]
	for i := range topics {
		if s.authz.Permitted(user, &topics[i]) {
			visible = append(visible, topics[i])
		}
	}
	return visible, nil
}
