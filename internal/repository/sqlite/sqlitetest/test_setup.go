// Package sqlitetest builds migrated in-memory SQLite stores for tests.
package sqlitetest

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup bundles an in-memory database with its repositories.
type TestDatabaseSetup struct {
	DB          *database.SQLiteDB
	Transactor  database.Transactor
	Collections collection.CollectionRepository
	Memberships collection.MembershipRepository
	Companies   company.CompanyRepository
}

// NewTestDatabase opens and migrates a private in-memory database, closed when t ends.
func NewTestDatabase(t testing.TB) *TestDatabaseSetup {
	t.Helper()

	db, err := database.NewSQLiteDB(database.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))

	return &TestDatabaseSetup{
		DB:          db,
		Transactor:  sqlite.NewTransactor(db),
		Collections: sqlite.NewCollectionRepository(db),
		Memberships: sqlite.NewMembershipRepository(db),
		Companies:   sqlite.NewCompanyRepository(db),
	}
}

func (s *TestDatabaseSetup) CreateCollection(t testing.TB, name string) collection.Collection {
	t.Helper()
	created, err := s.Collections.Create(context.Background(), name)
	require.NoError(t, err)
	return created
}

// CreateCompanies inserts one company per name and returns their ids in order.
func (s *TestDatabaseSetup) CreateCompanies(t testing.TB, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		created, err := s.Companies.Create(context.Background(), name)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}

func (s *TestDatabaseSetup) AddMembers(t testing.TB, collectionID string, companyIDs ...int64) {
	t.Helper()
	for _, id := range companyIDs {
		require.NoError(t, s.Memberships.Add(context.Background(), collectionID, id))
	}
}

// Members returns every company id in the collection, ascending.
func (s *TestDatabaseSetup) Members(t testing.TB, collectionID string) []int64 {
	t.Helper()
	ids, err := s.Memberships.ListCompanyIDs(context.Background(), collectionID, 0, 1<<30)
	require.NoError(t, err)
	return ids
}
