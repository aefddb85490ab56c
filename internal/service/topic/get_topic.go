package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// GetTopic resolves a topic by display name. Deleted topics still
// resolve so their history stays browsable; the Deleted flag tells the
// caller. Reads are open to anonymous users, restricted topics excepted.
func (s *Service) GetTopic(ctx context.Context, name string) (*domain.Topic, error) {
	user, _ := ctxutil.UserFromCtx(ctx)

	topic, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	if !s.authz.Permitted(user, topic) {
		return nil, fmt.Errorf("topic %q: %w", topic.Name, domain.ErrPermissionDenied)
	}
	return topic, nil
}
