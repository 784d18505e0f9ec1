package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type CollectionServiceImpl struct {
	transactor     database.Transactor
	collectionRepo collection.CollectionRepository
	membershipRepo collection.MembershipRepository
	companyRepo    company.CompanyRepository
	companyService company.CompanyService
	liked          collection.LikedCollection
}

func NewCollectionService(
	transactor database.Transactor,
	collectionRepo collection.CollectionRepository,
	membershipRepo collection.MembershipRepository,
	companyRepo company.CompanyRepository,
	companyService company.CompanyService,
	liked collection.LikedCollection,
) collection.CollectionService {
	return &CollectionServiceImpl{
		transactor:     transactor,
		collectionRepo: collectionRepo,
		membershipRepo: membershipRepo,
		companyRepo:    companyRepo,
		companyService: companyService,
		liked:          liked,
	}
}

// ResolveLikedCollection finds the Liked collection by id, or by name when id is empty.
func ResolveLikedCollection(ctx context.Context, repo collection.CollectionRepository, id, name string) (collection.LikedCollection, error) {
	var (
		found collection.Collection
		err   error
	)
	if id != "" {
		found, err = repo.GetByID(ctx, id)
	} else {
		found, err = repo.GetByName(ctx, name)
	}
	if err != nil {
		if errors.Is(err, collection.ErrCollectionNotFound) {
			return collection.LikedCollection{}, collection.ErrLikedCollectionNotFound
		}
		return collection.LikedCollection{}, fmt.Errorf("failed to resolve liked collection: %w", err)
	}
	return collection.LikedCollection{ID: found.ID, Name: found.Name}, nil
}

// List implements collection.CollectionService.
func (s *CollectionServiceImpl) List(ctx context.Context) ([]collection.CollectionMetadataResponse, error) {
	collections, err := s.collectionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]collection.CollectionMetadataResponse, 0, len(collections))
	for _, c := range collections {
		result = append(result, collection.CollectionMetadataResponse{ID: c.ID, Name: c.Name})
	}
	return result, nil
}

// GetByID implements collection.CollectionService.
func (s *CollectionServiceImpl) GetByID(ctx context.Context, id string, page pagination.PageRequest) (collection.CollectionResponse, error) {
	if err := page.Validate(); err != nil {
		return collection.CollectionResponse{}, err
	}

	found, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return collection.CollectionResponse{}, err
	}

	var (
		total      int64
		companyIDs []int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.membershipRepo.CountByCollection(gCtx, found.ID)
		return err
	})
	g.Go(func() error {
		var err error
		companyIDs, err = s.membershipRepo.ListCompanyIDs(gCtx, found.ID, page.Offset, page.Limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return collection.CollectionResponse{}, err
	}

	companies, err := s.companyService.FetchCompaniesWithLiked(ctx, companyIDs)
	if err != nil {
		return collection.CollectionResponse{}, err
	}

	return collection.CollectionResponse{
		ID:        found.ID,
		Name:      found.Name,
		Companies: companies,
		Total:     total,
	}, nil
}

// UpdateCompanies implements collection.CollectionService.
func (s *CollectionServiceImpl) UpdateCompanies(ctx context.Context, id string, req collection.UpdateCompaniesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		target, err := s.collectionRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		companyIDs, err := s.companyRepo.ExistingIDs(txCtx, req.Companies)
		if err != nil {
			return err
		}

		for _, companyID := range companyIDs {
			removed, err := s.membershipRepo.Remove(txCtx, s.liked.ID, companyID)
			if err != nil {
				return err
			}
			// Selecting from the Liked collection itself can only unlike.
			if removed || s.liked.Is(target.ID) {
				continue
			}
			if err := s.membershipRepo.Add(txCtx, s.liked.ID, companyID); err != nil {
				return err
			}
		}

		slog.Debug("Toggled liked companies",
			"collection_id", target.ID,
			"requested", len(req.Companies),
			"resolved", len(companyIDs),
		)
		return nil
	})
	return s.translateWriteError(err)
}

// UpdateAllCompanies implements collection.CollectionService.
func (s *CollectionServiceImpl) UpdateAllCompanies(ctx context.Context, id string, req collection.UpdateAllCompaniesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		target, err := s.collectionRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if !s.liked.Is(target.ID) && req.ShouldAddAll() {
			added, err := s.membershipRepo.AddAllCompanies(txCtx, s.liked.ID)
			if err != nil {
				return err
			}
			slog.Debug("Liked all companies", "collection_id", target.ID, "added", added)
			return nil
		}

		removed, err := s.membershipRepo.RemoveAll(txCtx, s.liked.ID)
		if err != nil {
			return err
		}
		slog.Debug("Cleared liked companies", "collection_id", target.ID, "removed", removed)
		return nil
	})
	return s.translateWriteError(err)
}

// translateWriteError keeps not-found as is and reports everything else as a failed, rolled back update.
func (s *CollectionServiceImpl) translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, collection.ErrCollectionNotFound) {
		return err
	}
	slog.Error("Collection membership update rolled back", "error", err)
	return fmt.Errorf("%w: %w", collection.ErrMembershipUpdateFailed, err)
}
