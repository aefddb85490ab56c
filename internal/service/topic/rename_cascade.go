package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// renameCascade rewrites [[Old]] links to the new name in every topic
// that references the old one. Each referencing topic updates in its own
// transaction; failures never roll back the primary rename. Re-running
// is a no-op for topics already rewritten, since their content no longer
// matches the old name.
func (s *Service) renameCascade(ctx context.Context, oldName, newName string, user domain.User) error {
	ids, err := s.links.Referencing(ctx, domain.NormalizeName(oldName))
	if err != nil {
		return &domain.CascadeError{
			OldName: oldName,
			NewName: newName,
			Causes:  []error{err},
		}
	}

	cascade := &domain.CascadeError{OldName: oldName, NewName: newName}
	for _, id := range ids {
		name, err := s.cascadeOne(ctx, id, oldName, newName, user)
		if err != nil {
			s.log.WarnContext(ctx, "rename cascade: referencing topic not updated",
				slog.String("topic", name),
				slog.Any("error", err),
			)
			cascade.Failed = append(cascade.Failed, name)
			cascade.Causes = append(cascade.Causes, err)
		}
	}

	if len(cascade.Causes) > 0 {
		return cascade
	}
	return nil
}

// cascadeOne rewrites a single referencing topic. Returns the topic's
// display name for error reporting; when the topic cannot be loaded the
// ID string stands in.
func (s *Service) cascadeOne(ctx context.Context, id uuid.UUID, oldName, newName string, user domain.User) (string, error) {
	t, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return id.String(), fmt.Errorf("get referencing topic: %w", err)
	}

	rewritten, changed := s.renderer.RewriteLinks(t.ContentRaw, oldName, newName)
	if !changed {
		return t.Name, nil
	}

	reason := fmt.Sprintf("Topic %q renamed to %q", oldName, newName)
	formatted, refs := s.render(ctx, rewritten)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.topics.UpdateContent(txCtx, t.ID, rewritten, formatted, user.Name, reason, s.now()); err != nil {
			return fmt.Errorf("update content: %w", err)
		}
		if _, err := s.appendVersion(txCtx, t, rewritten, user.Name, reason, true); err != nil {
			return err
		}
		return s.links.Reconcile(txCtx, t.ID, user.Name, refs)
	})
	if err != nil {
		return t.Name, err
	}
	return t.Name, nil
}
