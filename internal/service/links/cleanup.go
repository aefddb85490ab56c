package links

import (
	"context"
	"fmt"
	"log/slog"
)

// CleanupResult reports what a maintenance pass removed.
type CleanupResult struct {
	Shadowed int64
	Orphaned int64
}

// CleanupNascent removes stale placeholders: names a live topic now
// carries, and names nothing references anymore. Running it twice in a
// row removes nothing the second time.
func (s *Service) CleanupNascent(ctx context.Context) (CleanupResult, error) {
	shadowed, err := s.nascents.DeleteShadowed(ctx)
	if err != nil {
		return CleanupResult{}, fmt.Errorf("delete shadowed: %w", err)
	}

	orphaned, err := s.nascents.DeleteOrphaned(ctx)
	if err != nil {
		return CleanupResult{Shadowed: shadowed}, fmt.Errorf("delete orphaned: %w", err)
	}

	res := CleanupResult{Shadowed: shadowed, Orphaned: orphaned}

	s.log.InfoContext(ctx, "nascent cleanup finished",
		slog.Int64("shadowed", res.Shadowed),
		slog.Int64("orphaned", res.Orphaned),
	)

	return res, nil
}
