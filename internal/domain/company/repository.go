package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, name string) (Company, error)
	Count(ctx context.Context) (int64, error)
	// ExistingIDs returns the distinct ids from ids that belong to a stored company, ascending.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	// ListWithLiked returns a page of companies ordered by id, flagged against likedCollectionID.
	ListWithLiked(ctx context.Context, likedCollectionID string, offset, limit int) ([]LikedCompany, error)
	// FetchWithLiked returns the companies in ids, flagged against likedCollectionID. Order is unspecified.
	FetchWithLiked(ctx context.Context, likedCollectionID string, ids []int64) ([]LikedCompany, error)
}
