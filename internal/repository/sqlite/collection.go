package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type collectionRepositoryImpl struct {
	db *database.SQLiteDB
}

func NewCollectionRepository(db *database.SQLiteDB) collection.CollectionRepository {
	return &collectionRepositoryImpl{db: db}
}

// List implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) List(ctx context.Context) ([]collection.Collection, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, collection_name, ` + createdAtColumn + `
		FROM company_collections
		ORDER BY collection_name, id
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	collections := make([]collection.Collection, 0)
	for rows.Next() {
		found, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, found)
	}
	return collections, rows.Err()
}

// GetByID implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) GetByID(ctx context.Context, id string) (collection.Collection, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, collection_name, ` + createdAtColumn + `
		FROM company_collections
		WHERE id = ?
	`

	found, err := scanCollection(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
		SELECT id, collection_name, ` + createdAtColumn + `
		FROM company_collections
		WHERE collection_name = ?
		ORDER BY created_at, id
		LIMIT 1
	`

	found, err := scanCollection(q.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
		INSERT INTO company_collections (id, collection_name)
		VALUES (?, ?)
		RETURNING id, collection_name, ` + createdAtColumn

	created, err := scanCollection(q.QueryRowContext(ctx, query, uuid.NewString(), name))
	if err != nil {
		return collection.Collection{}, fmt.Errorf("failed to create collection %q: %w", name, err)
	}
	return created, nil
}

// Count implements collection.CollectionRepository.
func (c *collectionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, c.db)

	var total int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM company_collections`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count collections: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (collection.Collection, error) {
	var (
		found     collection.Collection
		createdAt string
	)
	if err := row.Scan(&found.ID, &found.Name, &createdAt); err != nil {
		return collection.Collection{}, err
	}
	found.CreatedAt = parseTimestamp(createdAt)
	return found, nil
}
