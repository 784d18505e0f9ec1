package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type collectionRepositoryImpl struct {
	db *database.DB
}

func NewCollectionRepository(db *database.DB) collection.CollectionRepository {
	return &collectionRepositoryImpl{db: db}
}

// List implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) List(ctx context.Context) ([]collection.Collection, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, collection_name, created_at
		FROM company_collections
		ORDER BY collection_name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	collections := make([]collection.Collection, 0)
	for rows.Next() {
		var found collection.Collection
		if err := rows.Scan(&found.ID, &found.Name, &found.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, found)
	}
	return collections, rows.Err()
}

// GetByID implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) GetByID(ctx context.Context, id string) (collection.Collection, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, collection_name, created_at
		FROM company_collections
		WHERE id = $1
	`

	var found collection.Collection
	err := q.QueryRow(ctx, query, id).Scan(&found.ID, &found.Name, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return collection.Collection{}, collection.ErrCollectionNotFound
		}
		return collection.Collection{}, fmt.Errorf("failed to get collection with id %s: %w", id, err)
	}
	return found, nil
}

// GetByName implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) GetByName(ctx context.Context, name string) (collection.Collection, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, collection_name, created_at
		FROM company_collections
		WHERE collection_name = $1
		ORDER BY created_at, id
		LIMIT 1
	`

	var found collection.Collection
	err := q.QueryRow(ctx, query, name).Scan(&found.ID, &found.Name, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return collection.Collection{}, collection.ErrCollectionNotFound
		}
		return collection.Collection{}, fmt.Errorf("failed to get collection named %q: %w", name, err)
	}
	return found, nil
}

// Create implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) Create(ctx context.Context, name string) (collection.Collection, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO company_collections (collection_name)
		VALUES ($1)
		RETURNING id, collection_name, created_at
	`

	var created collection.Collection
	if err := q.QueryRow(ctx, query, name).Scan(&created.ID, &created.Name, &created.CreatedAt); err != nil {
		return collection.Collection{}, fmt.Errorf("failed to create collection %q: %w", name, err)
	}
	return created, nil
}

// Count implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, c.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM company_collections`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count collections: %w", err)
	}
	return total, nil
}
