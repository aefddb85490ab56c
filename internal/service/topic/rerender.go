package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// RerenderTopic regenerates one topic's formatted content and reference
// set from its current raw content. Used after renderer changes and by
// the maintenance CLI.
func (s *Service) RerenderTopic(ctx context.Context, name string) error {
	topic, err := s.resolveLive(ctx, name)
	if err != nil {
		return err
	}
	return s.links.RerenderTopic(ctx, topic.ID)
}

// RerenderAll regenerates every active topic. Per-topic failures are
// logged and skipped; the count of successfully re-rendered topics is
// returned.
func (s *Service) RerenderAll(ctx context.Context) (int, error) {
	topics, err := s.topics.List(ctx, domain.TopicFilter{})
	if err != nil {
		return 0, fmt.Errorf("list topics: %w", err)
	}

	done := 0
	for i := range topics {
		if err := s.links.RerenderTopic(ctx, topics[i].ID); err != nil {
			s.log.WarnContext(ctx, "re-render failed",
				slog.String("topic", topics[i].Name),
				slog.Any("error", err),
			)
			continue
		}
		done++
	}
	return done, nil
}
