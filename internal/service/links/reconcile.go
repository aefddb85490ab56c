package links

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// Reconcile replaces a topic's reference set with the names extracted
// from its current content. refs carry display forms; normalization and
// dedup happen here.
//
// Side effects on the nascent set:
//   - a newly referenced name with no live topic gets a placeholder,
//     attributed to the referencing author;
//   - a name this topic stopped referencing loses its placeholder when
//     no other topic references it either.
func (s *Service) Reconcile(ctx context.Context, topicID uuid.UUID, author string, refs []string) error {
	oldNames, err := s.nascents.ListRefNames(ctx, topicID)
	if err != nil {
		return fmt.Errorf("list old refs: %w", err)
	}

	seen := make(map[string]string, len(refs)) // lc -> first display form
	lcNames := make([]string, 0, len(refs))
	for _, ref := range refs {
		lc := domain.NormalizeName(ref)
		if lc == "" {
			continue
		}
		if _, ok := seen[lc]; ok {
			continue
		}
		seen[lc] = ref
		lcNames = append(lcNames, lc)
	}

	if err := s.nascents.ReplaceRefs(ctx, topicID, lcNames); err != nil {
		return fmt.Errorf("replace refs: %w", err)
	}

	for lc, display := range seen {
		claimed, err := s.nameClaimed(ctx, lc)
		if err != nil {
			return err
		}
		if claimed {
			continue
		}

		n := &domain.NascentTopic{
			ID:        uuid.New(),
			Name:      display,
			LCName:    lc,
			Author:    author,
			CreatedAt: s.now(),
		}
		if err := s.nascents.EnsureNascent(ctx, n); err != nil {
			return fmt.Errorf("ensure nascent %q: %w", display, err)
		}
	}

	// Placeholders for names this topic no longer references die once
	// their reference set is empty.
	for _, old := range oldNames {
		if _, stillRef := seen[old]; stillRef {
			continue
		}
		referencing, err := s.nascents.ListReferencing(ctx, old)
		if err != nil {
			return fmt.Errorf("list referencing %q: %w", old, err)
		}
		if len(referencing) > 0 {
			continue
		}
		if err := s.nascents.Delete(ctx, old); err != nil {
			return fmt.Errorf("delete nascent %q: %w", old, err)
		}
	}

	return nil
}

// nameClaimed reports whether a live topic carries the normalized name.
func (s *Service) nameClaimed(ctx context.Context, lcName string) (bool, error) {
	t, err := s.topics.GetByName(ctx, lcName)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get topic %q: %w", lcName, err)
	}
	return !t.Deleted, nil
}
