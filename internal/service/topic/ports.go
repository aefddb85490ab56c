package topic

import (
	"context"
	"io"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// Renderer converts raw content to its display form and extracts the
// topic names the content links to. RewriteLinks retargets links after a
// rename without touching anything else in the content.
type Renderer interface {
	Render(raw string) (formatted string, refs []string, err error)
	RewriteLinks(raw, oldName, newName string) (rewritten string, changed bool)
}

// Authorizer answers access questions. Authentication happens outside
// the core; only the resulting identity and role reach this interface.
type Authorizer interface {
	Permitted(user domain.User, topic *domain.Topic) bool
	HasPermission(user domain.User, permission string) bool
}

// Notification describes a topic change for watchers.
type Notification struct {
	TopicName string
	Author    string
	Reason    string
	Trivial   bool
}

// Notifier delivers change notifications. Delivery is fire-and-forget:
// implementations must not block and have no way to fail the operation
// that triggered them.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NoDiffAvailable is returned by DiffVersions when no diff engine is
// wired or the engine fails. Diffing is a convenience, never an error.
const NoDiffAvailable = "no diff available"

// Differ produces a human-readable diff between two content snapshots.
type Differ interface {
	Diff(oldText, newText string) (string, error)
}

// AttachmentStore keeps opaque blobs keyed by topic and filename. The
// core never reads attachment bytes; it only reacts to changes by
// re-rendering the owning topic.
type AttachmentStore interface {
	Save(ctx context.Context, topicLCName, filename string, r io.Reader) error
	Delete(ctx context.Context, topicLCName, filename string) error
	List(ctx context.Context, topicLCName string) ([]string, error)
}
