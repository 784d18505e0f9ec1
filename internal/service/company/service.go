package company

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
	liked collection.LikedCollection
}

func NewCompanyService(companyRepo company.CompanyRepository, liked collection.LikedCollection) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepo,
		liked:             liked,
	}
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, page pagination.PageRequest) (company.CompanyBatchResponse, error) {
	if err := page.Validate(); err != nil {
		return company.CompanyBatchResponse{}, err
	}

	var (
		companies []company.LikedCompany
		total     int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		companies, err = s.CompanyRepository.ListWithLiked(gCtx, s.liked.ID, page.Offset, page.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.CompanyRepository.Count(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return company.CompanyBatchResponse{}, fmt.Errorf("failed to list companies: %w", err)
	}

	result := company.CompanyBatchResponse{
		Companies: make([]company.CompanyResponse, 0, len(companies)),
		Total:     total,
	}
	for _, c := range companies {
		result.Companies = append(result.Companies, company.NewCompanyResponse(c))
	}
	return result, nil
}

// FetchCompaniesWithLiked implements company.CompanyService.
func (s *CompanyServiceImpl) FetchCompaniesWithLiked(ctx context.Context, ids []int64) ([]company.CompanyResponse, error) {
	found, err := s.CompanyRepository.FetchWithLiked(ctx, s.liked.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies with liked flag: %w", err)
	}

	byID := make(map[int64]company.LikedCompany, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	result := make([]company.CompanyResponse, 0, len(found))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			continue
		}
		result = append(result, company.NewCompanyResponse(c))
	}
	return result, nil
}
