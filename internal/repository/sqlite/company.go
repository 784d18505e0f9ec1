package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.SQLiteDB
}

func NewCompanyRepository(db *database.SQLiteDB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const likedCompanyColumns = `
	c.id, c.company_name, strftime('%Y-%m-%dT%H:%M:%SZ', c.created_at),
	EXISTS (
		SELECT 1 FROM company_collection_associations cca
		WHERE cca.collection_id = ? AND cca.company_id = c.id
	) AS liked
`

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, name string) (company.Company, error) {
	if strings.TrimSpace(name) == "" {
		return company.Company{}, company.ErrInvalidCompanyName
	}
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (company_name)
		VALUES (?)
		RETURNING id, company_name, ` + createdAtColumn

	var (
		created   company.Company
		createdAt string
	)
	if err := q.QueryRowContext(ctx, query, name).Scan(&created.ID, &created.Name, &createdAt); err != nil {
		return company.Company{}, fmt.Errorf("failed to create company %q: %w", name, err)
	}
	created.CreatedAt = parseTimestamp(createdAt)
	return created, nil
}

// Count implements company.CompanyRepository.
func (c *companyRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, c.db)

	var total int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return total, nil
}

// ExistingIDs implements company.CompanyRepository.
func (c *companyRepositoryImpl) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	q := GetQuerier(ctx, c.db)

	list, err := idList(ids)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, `
		SELECT id FROM companies
		WHERE id IN (SELECT value FROM json_each(?))
		ORDER BY id
	`, list)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve company ids: %w", err)
	}
	defer rows.Close()

	found := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		found = append(found, id)
	}
	return found, rows.Err()
}

// ListWithLiked implements company.CompanyRepository.
func (c *companyRepositoryImpl) ListWithLiked(ctx context.Context, likedCollectionID string, offset, limit int) ([]company.LikedCompany, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + likedCompanyColumns + `
		FROM companies c
		ORDER BY c.id
		LIMIT ? OFFSET ?
	`

	rows, err := q.QueryContext(ctx, query, likedCollectionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return collectLikedCompanies(rows)
}

// FetchWithLiked implements company.CompanyRepository.
func (c *companyRepositoryImpl) FetchWithLiked(ctx context.Context, likedCollectionID string, ids []int64) ([]company.LikedCompany, error) {
	if len(ids) == 0 {
		return []company.LikedCompany{}, nil
	}
	q := GetQuerier(ctx, c.db)

	list, err := idList(ids)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT ` + likedCompanyColumns + `
		FROM companies c
		WHERE c.id IN (SELECT value FROM json_each(?))
	`

	rows, err := q.QueryContext(ctx, query, likedCollectionID, list)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	return collectLikedCompanies(rows)
}

func collectLikedCompanies(rows *sql.Rows) ([]company.LikedCompany, error) {
	defer rows.Close()

	companies := make([]company.LikedCompany, 0)
	for rows.Next() {
		var (
			found     company.LikedCompany
			createdAt string
		)
		if err := rows.Scan(&found.ID, &found.Name, &createdAt, &found.Liked); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		found.CreatedAt = parseTimestamp(createdAt)
		companies = append(companies, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}
	return companies, nil
}
