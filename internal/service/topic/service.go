// Package topic implements the topic registry: create, edit, rename,
// delete, revert, and version browsing, with the write-lock contract and
// the rename cascade on top of the version store.
package topic

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetByName(ctx context.Context, lcName string) (*domain.Topic, error)
	UpdateContent(ctx context.Context, id uuid.UUID, raw, formatted, author, reason string, modifiedAt time.Time) error
	UpdateName(ctx context.Context, id uuid.UUID, name, lcName, author, reason string, modifiedAt time.Time) error
	MarkDeleted(ctx context.Context, id uuid.UUID, author, reason string, modifiedAt time.Time) error
	SetFlags(ctx context.Context, id uuid.UUID, locked, restricted bool) error
	List(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error)
}

type versionRepo interface {
	Append(ctx context.Context, v *domain.TopicVersion) error
	Latest(ctx context.Context, topicID uuid.UUID) (*domain.TopicVersion, error)
	GetAtOrBefore(ctx context.Context, topicID uuid.UUID, ts time.Time) (*domain.TopicVersion, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.TopicVersion, error)
}

type linkService interface {
	Reconcile(ctx context.Context, topicID uuid.UUID, author string, refs []string) error
	AdoptNascent(ctx context.Context, name string) error
	Referencing(ctx context.Context, lcName string) ([]uuid.UUID, error)
	RerenderTopic(ctx context.Context, topicID uuid.UUID) error
}

type lockService interface {
	Acquire(ctx context.Context, topicID uuid.UUID, user string) (bool, error)
	Seize(ctx context.Context, topicID uuid.UUID, user string) error
	Release(ctx context.Context, topicID uuid.UUID, user string, force bool) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides topic management operations.
type Service struct {
	topics      topicRepo
	versions    versionRepo
	links       linkService
	locks       lockService
	renderer    Renderer
	authz       Authorizer
	notifier    Notifier
	differ      Differ
	attachments AttachmentStore
	tx          txManager
	log         *slog.Logger

	now func() time.Time
}

// NewService creates a new topic service. differ and attachments may be
// nil; the corresponding operations degrade gracefully.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	versions versionRepo,
	links linkService,
	locks lockService,
	renderer Renderer,
	authz Authorizer,
	notifier Notifier,
	differ Differ,
	attachments AttachmentStore,
	tx txManager,
) *Service {
	return &Service{
		topics:      topics,
		versions:    versions,
		links:       links,
		locks:       locks,
		renderer:    renderer,
		authz:       authz,
		notifier:    notifier,
		differ:      differ,
		attachments: attachments,
		tx:          tx,
		log:         log.With("service", "topic"),
		now:         time.Now,
	}
}

// resolve looks up a topic by display or normalized name.
func (s *Service) resolve(ctx context.Context, name string) (*domain.Topic, error) {
	if err := domain.ValidateTopicName(name); err != nil {
		return nil, err
	}
	return s.topics.GetByName(ctx, domain.NormalizeName(name))
}

// resolveLive is resolve restricted to non-deleted topics.
func (s *Service) resolveLive(ctx context.Context, name string) (*domain.Topic, error) {
	t, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	if t.Deleted {
		return nil, fmt.Errorf("topic %q: %w", name, domain.ErrNotFound)
	}
	return t, nil
}

// editableBy enforces visibility and the locked flag. A locked topic
// only yields to users with the moderate permission.
func (s *Service) editableBy(topic *domain.Topic, user domain.User) error {
	if !s.authz.Permitted(user, topic) {
		return fmt.Errorf("topic %q: %w", topic.Name, domain.ErrPermissionDenied)
	}
	if topic.Locked && !s.authz.HasPermission(user, domain.PermModerate) {
		return fmt.Errorf("topic %q is locked: %w", topic.Name, domain.ErrPermissionDenied)
	}
	return nil
}

// claimLock runs the write-lock contract: acquire normally, or seize
// when the caller confirmed an override. Returns domain.ErrLockConflict
// when someone else holds the lock and no override was given.
func (s *Service) claimLock(ctx context.Context, topic *domain.Topic, user domain.User, override bool) error {
	ok, err := s.locks.Acquire(ctx, topic.ID, user.Name)
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if ok {
		return nil
	}
	if !override {
		owner := ""
		if topic.WriteLock != nil {
			owner = topic.WriteLock.Owner
		}
		return fmt.Errorf("topic %q locked for editing by %q: %w", topic.Name, owner, domain.ErrLockConflict)
	}
	if err := s.locks.Seize(ctx, topic.ID, user.Name); err != nil {
		return fmt.Errorf("seize lock: %w", err)
	}
	return nil
}

// nextVersionTime picks a creation time strictly after the topic's
// latest version, so per-topic version timestamps never collide even
// under clock skew or rapid successive edits.
func (s *Service) nextVersionTime(ctx context.Context, topicID uuid.UUID) (time.Time, error) {
	now := s.now()
	latest, err := s.versions.Latest(ctx, topicID)
	if errors.Is(err, domain.ErrNotFound) {
		return now, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get latest version: %w", err)
	}
	if !now.After(latest.CreatedAt) {
		now = latest.CreatedAt.Add(time.Microsecond)
	}
	return now, nil
}

// appendVersion snapshots content as the topic's next version. The
// snapshot holds the state AFTER the change; the latest version always
// equals the topic's current content.
func (s *Service) appendVersion(ctx context.Context, topic *domain.Topic, content, author, reason string, trivial bool) (*domain.TopicVersion, error) {
	ts, err := s.nextVersionTime(ctx, topic.ID)
	if err != nil {
		return nil, err
	}

	v := &domain.TopicVersion{
		ID:                uuid.New(),
		TopicID:           topic.ID,
		Name:              topic.Name,
		ContentRaw:        content,
		Author:            author,
		Reason:            reason,
		Trivial:           trivial,
		CreatedAt:         ts,
		NormalizedCreated: domain.NormalizeTimestamp(ts),
	}
	if err := s.versions.Append(ctx, v); err != nil {
		return nil, fmt.Errorf("append version: %w", err)
	}

	return v, nil
}

// render converts raw content through the Renderer port. A renderer
// failure degrades to escaped raw text with no references rather than
// failing the write.
func (s *Service) render(ctx context.Context, raw string) (string, []string) {
	formatted, refs, err := s.renderer.Render(raw)
	if err != nil {
		s.log.WarnContext(ctx, "render failed, falling back to escaped text",
			slog.Any("error", err),
		)
		return html.EscapeString(raw), nil
	}
	return formatted, refs
}

// notify fires a change notification. Trivial changes stay silent.
func (s *Service) notify(ctx context.Context, topic *domain.Topic, reason string, trivial bool) {
	if trivial {
		return
	}
	s.notifier.Notify(ctx, Notification{
		TopicName: topic.Name,
		Author:    topic.Author,
		Reason:    reason,
		Trivial:   trivial,
	})
}
