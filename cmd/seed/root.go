package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"favorites_backend/internal/app/config"
	"favorites_backend/internal/app/di"
	"favorites_backend/internal/app/seed"
	"favorites_backend/internal/platform/db"
	"favorites_backend/internal/platform/logger"
)

// seedTimeout bounds a whole seed run, including SWAPI paging under the rate limit.
const seedTimeout = 30 * time.Minute

type rootOptions struct {
	databaseURL string
	migrate     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load users, people and planets into the favorites database",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "",
		"Database URL (defaults to $DATABASE_URL)")
	cmd.PersistentFlags().BoolVar(&opts.migrate, "migrate", true,
		"Create missing tables before seeding")

	cmd.AddCommand(newFileCommand(opts), newSwapiCommand(opts))
	return cmd
}

// openDB は設定を読み込み、ロガーを初期化してDBに接続します。
func (o *rootOptions) openDB() (*gorm.DB, func(), error) {
	cfg := config.Load()
	logger.Setup(cfg.Log, os.Stderr)

	if o.databaseURL != "" {
		cfg.DB.URL = o.databaseURL
	}
	cfg.DB.RunMigrations = cfg.DB.RunMigrations || o.migrate

	gdb, err := db.OpenDB(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return gdb, closeFn, nil
}

func newFileCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "Seed from a JSON or YAML file",
		Long: `Seed users, people and planets from a JSON or YAML file:

  users:
    - email: luke@example.com
      password: secret
      is_active: true
  people: [Luke Skywalker, Leia Organa]
  planets: [Tatooine, Alderaan]

Passwords are stored as bcrypt hashes. Existing emails and names are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}

			gdb, closeDB, err := opts.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
			defer cancel()

			users, err := seed.SeedUsers(ctx, di.NewUserUsecase(gdb), f.Users)
			if err != nil {
				return err
			}
			// ファイルは1ページのソースとして扱い、リミッターは不要
			res, err := di.NewImportUsecase(gdb, f.Source(), unlimited{}).ImportAll(ctx, 1)
			if err != nil {
				return err
			}

			slog.Info("seed finished",
				"users_created", users.Created, "users_skipped", users.Skipped, "users_failed", users.Failed,
				"people_created", res.People.Created, "planets_created", res.Planets.Created)
			if users.Failed > 0 || res.People.Failed > 0 || res.Planets.Failed > 0 {
				return fmt.Errorf("seed finished with failures")
			}
			return nil
		},
	}
}

func newSwapiCommand(opts *rootOptions) *cobra.Command {
	var maxPages int

	cmd := &cobra.Command{
		Use:   "swapi",
		Short: "Import people and planets from a SWAPI-compatible API",
		Long: `Page through /people/ and /planets/ of $SWAPI_BASE_URL (default https://swapi.dev/api)
and create every name that does not exist yet. Requests are limited to $SWAPI_RATE_LIMIT per minute.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, closeDB, err := opts.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
			defer cancel()

			res, err := di.NewSwapiImport(gdb).ImportAll(ctx, maxPages)
			if err != nil {
				return err
			}
			slog.Info("swapi import finished",
				"people_created", res.People.Created, "people_existing", res.People.Existing,
				"planets_created", res.Planets.Created, "planets_existing", res.Planets.Existing,
				"failed_pages", res.People.FailedPages+res.Planets.FailedPages)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum pages per resource (0 fetches all)")
	return cmd
}

// unlimited is a limiter that never waits.
type unlimited struct{}

func (unlimited) Wait(ctx context.Context) error { return ctx.Err() }
