package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/collections-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/collections-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository"
	collectionService "github.com/cmlabs-hris/collections-backend-go/internal/service/collection"
	serviceCompany "github.com/cmlabs-hris/collections-backend-go/internal/service/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/service/seed"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := appHTTP.NewRequestLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if cfg.App.Seed {
		seeder := seed.NewSeedService(store.Transactor, store.Collections, store.Memberships, store.Companies)
		seeded, err := seeder.SeedDefaults(ctx, cfg.Collections.LikedCollectionName)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		slog.Info("Seed check finished", "seeded", seeded)
	}

	liked, err := collectionService.ResolveLikedCollection(ctx, store.Collections, cfg.Collections.LikedCollectionID, cfg.Collections.LikedCollectionName)
	if err != nil {
		return err
	}
	slog.Info("Liked collection resolved", "id", liked.ID, "name", liked.Name)

	var jwtService jwt.Service
	if cfg.JWT.Secret != "" {
		jwtService = jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	} else {
		slog.Warn("JWT_SECRET_KEY not set, write endpoints are unauthenticated")
	}

	companyService := serviceCompany.NewCompanyService(store.Companies, liked)
	collectionSvc := collectionService.NewCollectionService(
		store.Transactor,
		store.Collections,
		store.Memberships,
		store.Companies,
		companyService,
		liked,
	)

	collectionHandler := appHTTP.NewCollectionHandler(collectionSvc)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	router := appHTTP.NewRouter(cfg, logger, jwtService, collectionHandler, companyHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "driver", store.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
