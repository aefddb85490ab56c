// Package notify implements the Notifier port by writing change events
// to the structured log. Deployments with a real watcher system swap in
// their own implementation; the port keeps delivery fire-and-forget
// either way.
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/topicwiki-backend/internal/service/topic"
)

// LogNotifier logs every non-trivial topic change.
type LogNotifier struct {
	log *slog.Logger
}

// New creates a LogNotifier.
func New(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notifier")}
}

// Notify records the change event. It never blocks and never fails.
func (n *LogNotifier) Notify(ctx context.Context, event topic.Notification) {
	n.log.InfoContext(ctx, "topic changed",
		slog.String("topic", event.TopicName),
		slog.String("author", event.Author),
		slog.String("reason", event.Reason),
		slog.Bool("trivial", event.Trivial),
	)
}
