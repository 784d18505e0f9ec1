package collection

import (
	"context"

	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/pagination"
)

type CollectionService interface {
	List(ctx context.Context) ([]CollectionMetadataResponse, error)
	GetByID(ctx context.Context, id string, page pagination.PageRequest) (CollectionResponse, error)
	// UpdateCompanies toggles the Liked membership of the given companies.
	UpdateCompanies(ctx context.Context, id string, req UpdateCompaniesRequest) error
	// UpdateAllCompanies fills or clears the Liked collection.
	UpdateAllCompanies(ctx context.Context, id string, req UpdateAllCompaniesRequest) error
}
