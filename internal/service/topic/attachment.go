package topic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
	"github.com/heartmarshall/topicwiki-backend/pkg/ctxutil"
)

// errNoAttachmentStore reports attachment operations on a deployment
// with no store wired.
var errNoAttachmentStore = errors.New("attachment store not configured")

// AddAttachment stores a blob under the topic and re-renders the topic,
// since content may list its attachments.
func (s *Service) AddAttachment(ctx context.Context, name, filename string, r io.Reader) error {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return fmt.Errorf("no acting user: %w", domain.ErrPermissionDenied)
	}
	if s.attachments == nil {
		return errNoAttachmentStore
	}
	if filename == "" {
		return domain.NewValidationError("filename", "required")
	}

	topic, err := s.resolveLive(ctx, name)
	if err != nil {
		return err
	}
	if err := s.editableBy(topic, user); err != nil {
		return err
	}

	if err := s.attachments.Save(ctx, topic.LCName, filename, r); err != nil {
		return fmt.Errorf("save attachment: %w", err)
	}
	s.rerenderAfterAttachmentChange(ctx, topic)

	s.log.InfoContext(ctx, "attachment added",
		slog.String("topic", topic.Name),
		slog.String("filename", filename),
		slog.String("author", user.Name),
	)
	return nil
}

// RemoveAttachment deletes a stored blob and re-renders the topic.
func (s *Service) RemoveAttachment(ctx context.Context, name, filename string) error {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return fmt.Errorf("no acting user: %w", domain.ErrPermissionDenied)
	}
	if s.attachments == nil {
		return errNoAttachmentStore
	}

	topic, err := s.resolveLive(ctx, name)
	if err != nil {
		return err
	}
	if err := s.editableBy(topic, user); err != nil {
		return err
	}

	if err := s.attachments.Delete(ctx, topic.LCName, filename); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	s.rerenderAfterAttachmentChange(ctx, topic)

	s.log.InfoContext(ctx, "attachment removed",
		slog.String("topic", topic.Name),
		slog.String("filename", filename),
		slog.String("author", user.Name),
	)
	return nil
}

// ListAttachments returns the topic's attachment filenames.
func (s *Service) ListAttachments(ctx context.Context, name string) ([]string, error) {
	if s.attachments == nil {
		return nil, nil
	}

	topic, err := s.GetTopic(ctx, name)
	if err != nil {
		return nil, err
	}

	files, err := s.attachments.List(ctx, topic.LCName)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return files, nil
}

// rerenderAfterAttachmentChange refreshes the topic's formatted content.
// The attachment write already happened; a failed refresh leaves a stale
// render, repaired by the next edit or the rerender command.
func (s *Service) rerenderAfterAttachmentChange(ctx context.Context, topic *domain.Topic) {
	if err := s.links.RerenderTopic(ctx, topic.ID); err != nil {
		s.log.WarnContext(ctx, "re-render failed after attachment change",
			slog.String("topic", topic.Name),
			slog.Any("error", err),
		)
	}
}
