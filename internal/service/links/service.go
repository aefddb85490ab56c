// Package links maintains the reference index and the nascent topic set.
//
// The index maps each topic to the normalized names its content links to.
// A referenced name with no live topic gets a nascent placeholder, which
// lives exactly as long as the name stays unclaimed and referenced.
package links

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

type nascentRepo interface {
	ReplaceRefs(ctx context.Context, topicID uuid.UUID, lcNames []string) error
	ListRefNames(ctx context.Context, topicID uuid.UUID) ([]string, error)
	ListReferencing(ctx context.Context, lcName string) ([]uuid.UUID, error)
	EnsureNascent(ctx context.Context, n *domain.NascentTopic) error
	Delete(ctx context.Context, lcName string) error
	List(ctx context.Context) ([]domain.NascentTopic, error)
	DeleteShadowed(ctx context.Context) (int64, error)
	DeleteOrphaned(ctx context.Context) (int64, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetByName(ctx context.Context, lcName string) (*domain.Topic, error)
	UpdateFormatted(ctx context.Context, id uuid.UUID, formatted string) error
}

type renderer interface {
	Render(raw string) (string, []string, error)
}

// Service maintains topic references and nascent placeholders.
type Service struct {
	nascents nascentRepo
	topics   topicRepo
	renderer renderer
	log      *slog.Logger

	now func() time.Time
}

// NewService creates a new links service.
func NewService(log *slog.Logger, nascents nascentRepo, topics topicRepo, renderer renderer) *Service {
	return &Service{
		nascents: nascents,
		topics:   topics,
		renderer: renderer,
		log:      log.With("service", "links"),
		now:      time.Now,
	}
}
