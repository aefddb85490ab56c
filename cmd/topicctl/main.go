// Command topicctl is the operator CLI for the topic store: reference
// index maintenance, re-rendering, and listing. It is intended for cron
// jobs and manual repair, not for serving traffic.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/topicwiki-backend/internal/app"
	"github.com/heartmarshall/topicwiki-backend/internal/config"
	"github.com/heartmarshall/topicwiki-backend/internal/service/topic"
)

func main() {
	root := &cobra.Command{
		Use:           "topicctl",
		Short:         "Maintenance CLI for the topic store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(cleanupNascentCmd(), rerenderCmd(), listCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "topicctl:", err)
		os.Exit(1)
	}
}

// withServices builds the service layer for a single command run.
func withServices(fn func(ctx context.Context, svcs *app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	svcs, closeFn, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(ctx, svcs)
}

func cleanupNascentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-nascent",
		Short: "Remove placeholder topics shadowed by live topics or with no referers",
		Long: `Scans the nascent topic table and deletes rows that no longer belong:
placeholders whose name a live topic now carries, and placeholders no
topic references anymore. Safe to re-run; a second pass removes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(func(ctx context.Context, svcs *app.Services) error {
				res, err := svcs.Links.CleanupNascent(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("removed %d shadowed and %d orphaned placeholders\n",
					res.Shadowed, res.Orphaned)
				return nil
			})
		},
	}
}

func rerenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rerender [topic]",
		Short: "Re-render formatted content for one topic, or all active topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(func(ctx context.Context, svcs *app.Services) error {
				if len(args) == 1 {
					if err := svcs.Topics.RerenderTopic(ctx, args[0]); err != nil {
						return err
					}
					fmt.Printf("re-rendered %q\n", args[0])
					return nil
				}
				n, err := svcs.Topics.RerenderAll(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("re-rendered %d topics\n", n)
				return nil
			})
		},
	}
}

func listCmd() *cobra.Command {
	var contains string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(func(ctx context.Context, svcs *app.Services) error {
				topics, err := svcs.Topics.ListTopics(ctx, topic.ListTopicsInput{
					NameContains: contains,
					Limit:        limit,
				})
				if err != nil {
					return err
				}
				for _, t := range topics {
					fmt.Printf("%s\t%s\t%s\n",
						t.Name, t.ModifiedAt.Format(time.RFC3339), t.Author)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&contains, "contains", "", "filter by name substring")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum topics to print")
	return cmd
}
