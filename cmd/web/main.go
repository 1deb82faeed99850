package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamBeresnev/op-bracket/internal/app"
	"github.com/AdamBeresnev/op-bracket/internal/config"
	"github.com/AdamBeresnev/op-bracket/internal/db"
	"github.com/AdamBeresnev/op-bracket/internal/locale"
	"github.com/AdamBeresnev/op-bracket/internal/seed"
	"github.com/AdamBeresnev/op-bracket/internal/service"
	"github.com/AdamBeresnev/op-bracket/internal/store"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	importPath := flag.String("import", "", "import a seed file into the catalog and exit")
	list := flag.Bool("list", false, "list the brackets in the catalog and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, *importPath, *list); err != nil {
		logger.Error("Exiting", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, importPath string, list bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var database *sqlx.DB
	var catalog *service.CatalogService
	if cfg.DatabasePath != "" {
		var err error
		database, err = db.InitDB(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.RunMigrations(database.DB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		catalog = service.NewCatalogService(database, store.NewBracketStore(database))
	}

	if importPath != "" || list {
		return manageCatalog(ctx, catalog, importPath, list)
	}

	def, err := service.ResolveSeed(ctx, catalog, cfg.SeedName, cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed bracket: %w", err)
	}
	for _, w := range def.Warnings {
		slog.Warn("Suspicious seed data", "bracket", def.Name, "warning", w)
	}
	slog.Info("Bracket loaded", "bracket", def.Name, "rounds", len(def.Bracket.Rounds), "fights", def.Bracket.FightCount())

	translations, err := locale.NewCatalog(cfg.Locale)
	if err != nil {
		return err
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime
	if cfg.SessionStore == config.SQLiteSessions {
		sessionStore := sqlite3store.New(database.DB)
		defer sessionStore.StopCleanup()
		sessionManager.Store = sessionStore
	}

	application := app.New(def.Bracket, sessionManager, slog.Default())

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(application, translations, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func manageCatalog(ctx context.Context, catalog *service.CatalogService, importPath string, list bool) error {
	if catalog == nil {
		return errors.New("DATABASE_PATH must be set to manage the catalog")
	}

	if importPath != "" {
		def, err := seed.LoadFile(importPath)
		if err != nil {
			return err
		}
		for _, w := range def.Warnings {
			slog.Warn("Suspicious seed data", "bracket", def.Name, "warning", w)
		}
		id, err := catalog.Import(ctx, def)
		if err != nil {
			return err
		}
		slog.Info("Bracket imported", "bracket", def.Name, "id", id)
	}

	if list {
		names, err := catalog.Names(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
	}
	return nil
}
