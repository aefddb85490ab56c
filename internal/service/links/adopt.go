package links

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// AdoptNascent runs when a topic claims a previously nascent name, by
// creation or rename. Every topic referencing the name is re-rendered so
// its dead links come alive, then the placeholder is dropped. Calling it
// for a name with no placeholder is a no-op.
//
// A referencing topic that fails to re-render is logged and skipped;
// the next edit of that topic re-renders it anyway.
func (s *Service) AdoptNascent(ctx context.Context, name string) error {
	lc := domain.NormalizeName(name)

	ids, err := s.nascents.ListReferencing(ctx, lc)
	if err != nil {
		return fmt.Errorf("list referencing %q: %w", name, err)
	}

	for _, id := range ids {
		if err := s.RerenderTopic(ctx, id); err != nil {
			s.log.WarnContext(ctx, "re-render after adoption failed",
				slog.String("topic_id", id.String()),
				slog.String("adopted_name", name),
				slog.Any("error", err),
			)
		}
	}

	if err := s.nascents.Delete(ctx, lc); err != nil {
		return fmt.Errorf("delete nascent %q: %w", name, err)
	}

	return nil
}
