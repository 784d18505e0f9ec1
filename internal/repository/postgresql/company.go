package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, name string) (company.Company, error) {
	if strings.TrimSpace(name) == "" {
		return company.Company{}, company.ErrInvalidCompanyName
	}
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (company_name)
		VALUES ($1)
		RETURNING id, company_name, created_at
	`

	var created company.Company
	if err := q.QueryRow(ctx, query, name).Scan(&created.ID, &created.Name, &created.CreatedAt); err != nil {
		return company.Company{}, fmt.Errorf("failed to create company %q: %w", name, err)
	}
	return created, nil
}

// Count implements company.CompanyRepository.
func (c *companyRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, c.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
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

	rows, err := q.Query(ctx, `SELECT id FROM companies WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve company ids: %w", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan company ids: %w", err)
	}
	return found, nil
}

// ListWithLiked implements company.CompanyRepository.
func (c *companyRepositoryImpl) ListWithLiked(ctx context.Context, likedCollectionID string, offset, limit int) ([]company.LikedCompany, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT c.id, c.company_name, c.created_at,
			EXISTS (
				SELECT 1 FROM company_collection_associations cca
				WHERE cca.collection_id = $1 AND cca.company_id = c.id
			) AS liked
		FROM companies c
		ORDER BY c.id
		OFFSET $2
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, likedCollectionID, offset, limit)
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

	query := `
		SELECT c.id, c.company_name, c.created_at,
			EXISTS (
				SELECT 1 FROM company_collection_associations cca
				WHERE cca.collection_id = $1 AND cca.company_id = c.id
			) AS liked
		FROM companies c
		WHERE c.id = ANY($2)
	`

	rows, err := q.Query(ctx, query, likedCollectionID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	return collectLikedCompanies(rows)
}

func collectLikedCompanies(rows pgx.Rows) ([]company.LikedCompany, error) {
	defer rows.Close()

	companies := make([]company.LikedCompany, 0)
	for rows.Next() {
		var found company.LikedCompany
		if err := rows.Scan(&found.ID, &found.Name, &found.CreatedAt, &found.Liked); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}
	return companies, nil
}
