package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/topicwiki-backend/internal/adapter/attachment"
	"github.com/heartmarshall/topicwiki-backend/internal/adapter/diff"
	"github.com/heartmarshall/topicwiki-backend/internal/adapter/notify"
	"github.com/heartmarshall/topicwiki-backend/internal/adapter/postgres"
	nascentrepo "github.com/heartmarshall/topicwiki-backend/internal/adapter/postgres/nascent"
	topicrepo "github.com/heartmarshall/topicwiki-backend/internal/adapter/postgres/topic"
	versionrepo "github.com/heartmarshall/topicwiki-backend/internal/adapter/postgres/version"
	"github.com/heartmarshall/topicwiki-backend/internal/auth"
	"github.com/heartmarshall/topicwiki-backend/internal/config"
	"github.com/heartmarshall/topicwiki-backend/internal/markup"
	"github.com/heartmarshall/topicwiki-backend/internal/service/links"
	"github.com/heartmarshall/topicwiki-backend/internal/service/topic"
	"github.com/heartmarshall/topicwiki-backend/internal/service/writelock"
)

// Services bundles the wired service layer for entry points.
type Services struct {
	Topics *topic.Service
	Links  *links.Service
	Locks  *writelock.Service

	Log *slog.Logger
}

// Build connects to the database and wires repositories, ports, and
// services together. The returned func releases the connection pool.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, func(), error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	topics := topicrepo.New(pool)
	versions := versionrepo.New(pool)
	nascents := nascentrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	renderer := markup.New()
	authorizer := auth.New()
	notifier := notify.New(logger)

	attachments, err := attachment.NewStore(cfg.Wiki.AttachmentDir)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("attachment store: %w", err)
	}

	var differ topic.Differ
	if cfg.Wiki.DiffEnabled {
		differ = diff.New()
	}

	linkSvc := links.NewService(logger, nascents, topics, renderer)
	lockSvc := writelock.NewService(logger, topics, cfg.Wiki.LockTTL, cfg.Wiki.LockRefreshWindow)
	topicSvc := topic.NewService(
		logger,
		topics, versions, linkSvc, lockSvc,
		renderer, authorizer, notifier, differ, attachments,
		tx,
	)

	svcs := &Services{
		Topics: topicSvc,
		Links:  linkSvc,
		Locks:  lockSvc,
		Log:    logger,
	}
	return svcs, pool.Close, nil
}

// Run is the server entry point. It loads configuration, wires the
// services, and blocks until shutdown is signalled. Serving a transport
// on top of Services is left to the deployment.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svcs, closeFn, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	svcs.Log.Info("services ready")
	<-ctx.Done()
	svcs.Log.Info("shutting down")
	return nil
}
