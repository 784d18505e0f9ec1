package collection

import "context"

type CollectionRepository interface {
	List(ctx context.Context) ([]Collection, error)
	GetByID(ctx context.Context, id string) (Collection, error)
	GetByName(ctx context.Context, name string) (Collection, error)
	Create(ctx context.Context, name string) (Collection, error)
	Count(ctx context.Context) (int64, error)
}

type MembershipRepository interface {
	// Add inserts the pair; an existing pair is left untouched.
	Add(ctx context.Context, collectionID string, companyID int64) error
	// Remove deletes the pair and reports whether it existed.
	Remove(ctx context.Context, collectionID string, companyID int64) (bool, error)
	// RemoveAll deletes every membership of the collection.
	RemoveAll(ctx context.Context, collectionID string) (int64, error)
	// AddAllCompanies inserts a membership for every company not yet in the collection.
	AddAllCompanies(ctx context.Context, collectionID string) (int64, error)
	CountByCollection(ctx context.Context, collectionID string) (int64, error)
	// ListCompanyIDs returns a page of member company ids ordered by company id.
	ListCompanyIDs(ctx context.Context, collectionID string, offset, limit int) ([]int64, error)
}
