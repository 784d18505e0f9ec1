package company

import (
	"context"

	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/pagination"
)

type CompanyService interface {
	List(ctx context.Context, page pagination.PageRequest) (CompanyBatchResponse, error)
	// FetchCompaniesWithLiked returns the known companies among ids, in the order given.
	FetchCompaniesWithLiked(ctx context.Context, ids []int64) ([]CompanyResponse, error)
}
