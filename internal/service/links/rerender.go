package links

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RerenderTopic regenerates a topic's formatted content from its raw
// content and reconciles its reference set. Raw content, attribution,
// and history stay untouched.
func (s *Service) RerenderTopic(ctx context.Context, topicID uuid.UUID) error {
	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	formatted, refs, err := s.renderer.Render(topic.ContentRaw)
	if err != nil {
		return fmt.Errorf("render topic %q: %w", topic.Name, err)
	}

	if err := s.topics.UpdateFormatted(ctx, topicID, formatted); err != nil {
		return fmt.Errorf("update formatted content: %w", err)
	}

	if err := s.Reconcile(ctx, topicID, topic.Author, refs); err != nil {
		return fmt.Errorf("reconcile refs: %w", err)
	}

	return nil
}
