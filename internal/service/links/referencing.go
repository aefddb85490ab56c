package links

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Referencing returns the IDs of live topics whose reference set
// contains the given normalized name.
func (s *Service) Referencing(ctx context.Context, lcName string) ([]uuid.UUID, error) {
	ids, err := s.nascents.ListReferencing(ctx, lcName)
	if err != nil {
		return nil, fmt.Errorf("list referencing %q: %w", lcName, err)
	}
	return ids, nil
}
