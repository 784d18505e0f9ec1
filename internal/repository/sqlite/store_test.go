package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository/sqlite/sqlitetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== COLLECTION REPOSITORY TESTS =====

func TestCollectionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)

	created := db.CreateCollection(t, "My List")
	assert.Len(t, created.ID, 36)
	assert.Equal(t, "My List", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := db.Collections.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	byName, err := db.Collections.GetByName(ctx, "My List")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestCollectionRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)

	_, err := db.Collections.GetByID(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, collection.ErrCollectionNotFound)

	_, err = db.Collections.GetByName(ctx, "Liked Companies")
	assert.ErrorIs(t, err, collection.ErrCollectionNotFound)
}

func TestCollectionRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)

	empty, err := db.Collections.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	db.CreateCollection(t, "Tech")
	db.CreateCollection(t, "Liked Companies")

	collections, err := db.Collections.List(ctx)
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "Liked Companies", collections[0].Name)
	assert.Equal(t, "Tech", collections[1].Name)

	total, err := db.Collections.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

// ===== MEMBERSHIP REPOSITORY TESTS =====

func TestMembershipRepository_AddRemove(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")
	ids := db.CreateCompanies(t, "A", "B")

	require.NoError(t, db.Memberships.Add(ctx, liked.ID, ids[0]))
	require.NoError(t, db.Memberships.Add(ctx, liked.ID, ids[0]), "duplicate pair is a no-op")
	assert.Equal(t, []int64{ids[0]}, db.Members(t, liked.ID))

	removed, err := db.Memberships.Remove(ctx, liked.ID, ids[1])
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = db.Memberships.Remove(ctx, liked.ID, ids[0])
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, db.Members(t, liked.ID))
}

func TestMembershipRepository_AddUnknownCompanyFails(t *testing.T) {
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")

	err := db.Memberships.Add(context.Background(), liked.ID, 404)
	assert.Error(t, err)
}

func TestMembershipRepository_AddAllCompanies(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")
	other := db.CreateCollection(t, "Tech")
	ids := db.CreateCompanies(t, "A", "B", "C")
	db.AddMembers(t, liked.ID, ids[1])
	db.AddMembers(t, other.ID, ids[0])

	added, err := db.Memberships.AddAllCompanies(ctx, liked.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), added)
	assert.Equal(t, ids, db.Members(t, liked.ID))

	added, err = db.Memberships.AddAllCompanies(ctx, liked.ID)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, []int64{ids[0]}, db.Members(t, other.ID))
}

func TestMembershipRepository_RemoveAll(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")
	other := db.CreateCollection(t, "Tech")
	ids := db.CreateCompanies(t, "A", "B")
	db.AddMembers(t, liked.ID, ids...)
	db.AddMembers(t, other.ID, ids...)

	removed, err := db.Memberships.RemoveAll(ctx, liked.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.Empty(t, db.Members(t, liked.ID))
	assert.Equal(t, ids, db.Members(t, other.ID))
}

func TestMembershipRepository_CountAndPage(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	list := db.CreateCollection(t, "My List")
	ids := db.CreateCompanies(t, "A", "B", "C", "D", "E")
	db.AddMembers(t, list.ID, ids[4], ids[0], ids[2])

	total, err := db.Memberships.CountByCollection(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	page, err := db.Memberships.ListCompanyIDs(ctx, list.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[0], ids[2]}, page)

	page, err = db.Memberships.ListCompanyIDs(ctx, list.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[4]}, page)

	page, err = db.Memberships.ListCompanyIDs(ctx, list.ID, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

// ===== COMPANY REPOSITORY TESTS =====

func TestCompanyRepository_ExistingIDs(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	ids := db.CreateCompanies(t, "A", "B", "C")

	found, err := db.Companies.ExistingIDs(ctx, []int64{ids[2], 999, ids[0], ids[2]})
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[0], ids[2]}, found)

	found, err = db.Companies.ExistingIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCompanyRepository_LargeIDLists(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")
	ids := db.CreateCompanies(t, "A", "B")
	db.AddMembers(t, liked.ID, ids[0])

	requested := append([]int64{}, ids...)
	for id := int64(1000); id < 40000; id++ {
		requested = append(requested, id)
	}

	found, err := db.Companies.ExistingIDs(ctx, requested)
	require.NoError(t, err)
	assert.Equal(t, ids, found)

	fetched, err := db.Companies.FetchWithLiked(ctx, liked.ID, requested)
	require.NoError(t, err)
	require.Len(t, fetched, 2)
}

func TestCompanyRepository_CreateRejectsBlankName(t *testing.T) {
	db := sqlitetest.NewTestDatabase(t)

	_, err := db.Companies.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, company.ErrInvalidCompanyName)
}

func TestCompanyRepository_WithLiked(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")
	ids := db.CreateCompanies(t, "A", "B", "C")
	db.AddMembers(t, liked.ID, ids[1])

	page, err := db.Companies.ListWithLiked(ctx, liked.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "A", page[0].Name)
	assert.False(t, page[0].Liked)
	assert.True(t, page[1].Liked)
	assert.False(t, page[2].CreatedAt.IsZero())

	fetched, err := db.Companies.FetchWithLiked(ctx, liked.ID, []int64{ids[1], ids[2]})
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	likedByID := map[int64]bool{}
	for _, c := range fetched {
		likedByID[c.ID] = c.Liked
	}
	assert.Equal(t, map[int64]bool{ids[1]: true, ids[2]: false}, likedByID)
}

// ===== TRANSACTION TESTS =====

func TestTransactor_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")
	ids := db.CreateCompanies(t, "A", "B")
	boom := errors.New("boom")

	err := db.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := db.Memberships.Add(txCtx, liked.ID, ids[0]); err != nil {
			return err
		}
		if err := db.Memberships.Add(txCtx, liked.ID, ids[1]); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, db.Members(t, liked.ID))
}

func TestTransactor_Commits(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	liked := db.CreateCollection(t, "Liked Companies")
	ids := db.CreateCompanies(t, "A")

	err := db.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		return db.Memberships.Add(txCtx, liked.ID, ids[0])
	})
	require.NoError(t, err)
	assert.Equal(t, ids, db.Members(t, liked.ID))
}
