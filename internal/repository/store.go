// Package repository opens the configured store and exposes its repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/config"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository/sqlite"
)

type Store struct {
	Driver      string
	Transactor  database.Transactor
	Collections collection.CollectionRepository
	Memberships collection.MembershipRepository
	Companies   company.CompanyRepository

	migrate func(ctx context.Context) error
	close   func() error
}

// Open connects to the database selected by cfg.Database.Driver.
func Open(cfg *config.Config) (*Store, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &Store{
			Driver:      config.DriverPostgres,
			Transactor:  postgresql.NewTransactor(db),
			Collections: postgresql.NewCollectionRepository(db),
			Memberships: postgresql.NewMembershipRepository(db),
			Companies:   postgresql.NewCompanyRepository(db),
			migrate:     db.Migrate,
			close: func() error {
				db.Close()
				return nil
			},
		}, nil
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &Store{
			Driver:      config.DriverSQLite,
			Transactor:  sqlite.NewTransactor(db),
			Collections: sqlite.NewCollectionRepository(db),
			Memberships: sqlite.NewMembershipRepository(db),
			Companies:   sqlite.NewCompanyRepository(db),
			migrate:     db.Migrate,
			close:       db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Migrate applies pending embedded migrations.
func (s *Store) Migrate(ctx context.Context) error {
	return s.migrate(ctx)
}

func (s *Store) Close() error {
	return s.close()
}
