package topic

import (
	"context"
	"log/slog"
)

// DiffVersions renders a human-readable diff between two of a topic's
// versions, addressed by normalized timestamp. Diffing is a convenience:
// with no diff engine wired, or when the engine fails, the result is the
// NoDiffAvailable placeholder, never an error.
func (s *Service) DiffVersions(ctx context.Context, name, fromTS, toTS string) (string, error) {
	from, _, err := s.GetVersion(ctx, name, fromTS)
	if err != nil {
		return "", err
	}
	to, _, err := s.GetVersion(ctx, name, toTS)
	if err != nil {
		return "", err
	}

	if s.differ == nil {
		return NoDiffAvailable, nil
	}
	out, err := s.differ.Diff(from.ContentRaw, to.ContentRaw)
	if err != nil {
		s.log.WarnContext(ctx, "diff engine failed",
			slog.String("topic", name),
			slog.Any("error", err),
		)
		return NoDiffAvailable, nil
	}
	return out, nil
}

// DiffToCurrent diffs a past version against the topic's current
// content.
func (s *Service) DiffToCurrent(ctx context.Context, name, fromTS string) (string, error) {
	from, _, err := s.GetVersion(ctx, name, fromTS)
	if err != nil {
		return "", err
	}
	topic, err := s.GetTopic(ctx, name)
	if err != nil {
		return "", err
	}

	if s.differ == nil {
		return NoDiffAvailable, nil
	}
	out, err := s.differ.Diff(from.ContentRaw, topic.ContentRaw)
	if err != nil {
		s.log.WarnContext(ctx, "diff engine failed",
			slog.String("topic", name),
			slog.Any("error", err),
		)
		return NoDiffAvailable, nil
	}
	return out, nil
}
