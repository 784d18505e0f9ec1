package sqlite

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
)

type membershipRepositoryImpl struct {
	db *database.SQLiteDB
}

func NewMembershipRepository(db *database.SQLiteDB) collection.MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

// Add implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) Add(ctx context.Context, collectionID string, companyID int64) error {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO company_collection_associations (collection_id, company_id)
		VALUES (?, ?)
		ON CONFLICT (collection_id, company_id) DO NOTHING
	`

	if _, err := q.ExecContext(ctx, query, collectionID, companyID); err != nil {
		return fmt.Errorf("failed to add company %d to collection %s: %w", companyID, collectionID, err)
	}
	return nil
}

// Remove implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) Remove(ctx context.Context, collectionID string, companyID int64) (bool, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		DELETE FROM company_collection_associations
		WHERE collection_id = ? AND company_id = ?
	`

	res, err := q.ExecContext(ctx, query, collectionID, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to remove company %d from collection %s: %w", companyID, collectionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// RemoveAll implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) RemoveAll(ctx context.Context, collectionID string) (int64, error) {
	q := GetQuerier(ctx, m.db)

	res, err := q.ExecContext(ctx, `DELETE FROM company_collection_associations WHERE collection_id = ?`, collectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear collection %s: %w", collectionID, err)
	}
	return res.RowsAffected()
}

// AddAllCompanies implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) AddAllCompanies(ctx context.Context, collectionID string) (int64, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO company_collection_associations (collection_id, company_id)
		SELECT ?1, c.id
		FROM companies c
		WHERE NOT EXISTS (
			SELECT 1
			FROM company_collection_associations cca
			WHERE cca.collection_id = ?1
			AND cca.company_id = c.id
		)
		ON CONFLICT (collection_id, company_id) DO NOTHING
	`

	res, err := q.ExecContext(ctx, query, collectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to add all companies to collection %s: %w", collectionID, err)
	}
	return res.RowsAffected()
}

// CountByCollection implements collection.MembershipRepository.
func (m *membershipRepositoryImpl) CountByCollection(ctx context.Context, collectionID string) (int64, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT COUNT(*)
		FROM company_collection_associations cca
		JOIN companies c ON c.id = cca.company_id
		WHERE cca.collection_id = ?
	`

	var total int64
	if err := q.QueryRowContext(ctx, query, collectionID).Scan(&total); err != nil {
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
		WHERE cca.collection_id = ?
		ORDER BY c.id
		LIMIT ? OFFSET ?
	`

	rows, err := q.QueryContext(ctx, query, collectionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies in collection %s: %w", collectionID, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
