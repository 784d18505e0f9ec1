// Package seed installs the default companies and collections into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/validator"
)

type Service struct {
	transactor     database.Transactor
	collectionRepo collection.CollectionRepository
	membershipRepo collection.MembershipRepository
	companyRepo    company.CompanyRepository
}

func NewSeedService(
	transactor database.Transactor,
	collectionRepo collection.CollectionRepository,
	membershipRepo collection.MembershipRepository,
	companyRepo company.CompanyRepository,
) *Service {
	return &Service{
		transactor:     transactor,
		collectionRepo: collectionRepo,
		membershipRepo: membershipRepo,
		companyRepo:    companyRepo,
	}
}

// SeedDefaults creates the default companies, "My List" holding all of them and
// an empty Liked collection named likedName. It reports false without touching
// anything when at least one collection already exists.
func (s *Service) SeedDefaults(ctx context.Context, likedName string) (bool, error) {
	if validator.IsEmpty(likedName) {
		return false, fmt.Errorf("liked collection name is required")
	}

	seeded := false
	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.collectionRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		names := fixtures.DefaultCompanyNames()
		for _, name := range names {
			if _, err := s.companyRepo.Create(txCtx, name); err != nil {
				return err
			}
		}

		for _, name := range fixtures.DefaultCollectionNames(likedName) {
			created, err := s.collectionRepo.Create(txCtx, name)
			if err != nil {
				return err
			}
			if name != fixtures.MyListCollectionName {
				continue
			}
			if _, err := s.membershipRepo.AddAllCompanies(txCtx, created.ID); err != nil {
				return err
			}
		}

		slog.Info("Seeded default collections", "companies", len(names), "liked_collection", likedName)
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed defaults: %w", err)
	}
	return seeded, nil
}
