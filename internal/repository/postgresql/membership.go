package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type membershipRepositoryImpl struct {
	db *database.DB
}

func NewMembershipRepository(db *database.DB) collection.MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

// Add implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) Add(ctx context.Context, collectionID string, companyID int64) error {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO company_collection_associations (collection_id, company_id)
		VALUES ($1, $2)
		ON CONFLICT (collection_id, company_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, collectionID, companyID); err != nil {
		return fmt.Errorf("failed to add company %d to collection %s: %w", companyID, collectionID, err)
	}
	return nil
}

// Remove implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) Remove(ctx context.Context, collectionID string, companyID int64) (bool, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		DELETE FROM company_collection_associations
		WHERE collection_id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, collectionID, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to remove company %d from collection %s: %w", companyID, collectionID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveAll implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) RemoveAll(ctx context.Context, collectionID string) (int64, error) {
	q := GetQuerier(ctx, m.db)

	tag, err := q.Exec(ctx, `DELETE FROM company_collection_associations WHERE collection_id = $1`, collectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear collection %s: %w", collectionID, err)
	}
	return tag.RowsAffected(), nil
}

// AddAllCompanies implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) AddAllCompanies(ctx context.Context, collectionID string) (int64, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO company_collection_associations (collection_id, company_id)
		SELECT $1::uuid, c.id
		FROM companies c
		WHERE NOT EXISTS (
			SELECT 1
			FROM company_collection_associations cca
			WHERE cca.collection_id = $1::uuid
			AND cca.company_id = c.id
		)
		ON CONFLICT (collection_id, company_id) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, collectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to add all companies to collection %s: %w", collectionID, err)
	}
	return tag.RowsAffected(), nil
}

// CountByCollection implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) CountByCollection(ctx context.Context, collectionID string) (int64, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT COUNT(*)
		FROM company_collection_associations cca
		JOIN companies c ON c.id = cca.company_id
		WHERE cca.collection_id = $1
	`

	var total int64
	if err := q.QueryRow(ctx, query, collectionID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count companies in collection %s: %w", collectionID, err)
	}
	return total, nil
}

// ListCompanyIDs implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) ListCompanyIDs(ctx context.Context, collectionID string, offset, limit int) ([]int64, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT c.id
		FROM company_collection_associations cca
		JOIN companies c ON c.id = cca.company_id
		WHERE cca.collection_id = $1
		ORDER BY c.id
		OFFSET $2
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, collectionID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies in collection %s: %w", collectionID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan company ids: %w", err)
	}
	return ids, nil
}
