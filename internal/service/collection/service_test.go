package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository/sqlite/sqlitetest"
	companyService "github.com/cmlabs-hris/collections-backend-go/internal/service/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingCollectionID = "00000000-0000-4000-8000-000000000000"

var errStoreUnavailable = errors.New("store unavailable")

type collectionFixture struct {
	db        *sqlitetest.TestDatabaseSetup
	service   collection.CollectionService
	tech      collection.Collection
	liked     collection.Collection
	companies []int64
}

// newCollectionFixture builds the Tech / Liked Companies store with companies 1..3 and no memberships.
func newCollectionFixture(t *testing.T) *collectionFixture {
	t.Helper()
	db := sqlitetest.NewTestDatabase(t)

	f := &collectionFixture{
		db:        db,
		tech:      db.CreateCollection(t, "Tech"),
		liked:     db.CreateCollection(t, "Liked Companies"),
		companies: db.CreateCompanies(t, "Acme Labs", "Cedar Health", "Zenith Energy"),
	}
	f.service = f.newService(t, db.Memberships)
	return f
}

func (f *collectionFixture) newService(t *testing.T, memberships collection.MembershipRepository) collection.CollectionService {
	t.Helper()
	liked, err := ResolveLikedCollection(context.Background(), f.db.Collections, "", "Liked Companies")
	require.NoError(t, err)

	companySvc := companyService.NewCompanyService(f.db.Companies, liked)
	return NewCollectionService(f.db.Transactor, f.db.Collections, memberships, f.db.Companies, companySvc, liked)
}

func (f *collectionFixture) likedMembers(t *testing.T) []int64 {
	return f.db.Members(t, f.liked.ID)
}

func ids(v ...int64) []int64 { return v }

func boolPtr(b bool) *bool { return &b }

// failingMembershipRepository fails every write after the first allowedAdds inserts.
type failingMembershipRepository struct {
	collection.MembershipRepository
	allowedAdds int
	adds        int
}

func (r *failingMembershipRepository) Add(ctx context.Context, collectionID string, companyID int64) error {
	r.adds++
	if r.adds > r.allowedAdds {
		return errStoreUnavailable
	}
	return r.MembershipRepository.Add(ctx, collectionID, companyID)
}

func (r *failingMembershipRepository) AddAllCompanies(ctx context.Context, collectionID string) (int64, error) {
	return 0, errStoreUnavailable
}

func (r *failingMembershipRepository) RemoveAll(ctx context.Context, collectionID string) (int64, error) {
	if _, err := r.MembershipRepository.RemoveAll(ctx, collectionID); err != nil {
		return 0, err
	}
	return 0, errStoreUnavailable
}

// ===== TOGGLE SELECTED =====

func TestCollectionService_UpdateCompanies_Scenario(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	c1, c2 := f.companies[0], f.companies[1]

	err := f.service.UpdateCompanies(ctx, f.tech.ID, collection.UpdateCompaniesRequest{Companies: ids(c1, c2)})
	require.NoError(t, err)
	assert.Equal(t, ids(c1, c2), f.likedMembers(t))

	err = f.service.UpdateCompanies(ctx, f.tech.ID, collection.UpdateCompaniesRequest{Companies: ids(c1, c2)})
	require.NoError(t, err)
	assert.Empty(t, f.likedMembers(t))

	f.db.AddMembers(t, f.liked.ID, c1, c2)
	err = f.service.UpdateCompanies(ctx, f.liked.ID, collection.UpdateCompaniesRequest{Companies: ids(c1)})
	require.NoError(t, err)
	assert.Equal(t, ids(c2), f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_DoubleToggleIsIdentity(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	c1, c2, c3 := f.companies[0], f.companies[1], f.companies[2]
	f.db.AddMembers(t, f.liked.ID, c2)

	req := collection.UpdateCompaniesRequest{Companies: ids(c1, c2, c3)}

	require.NoError(t, f.service.UpdateCompanies(ctx, f.tech.ID, req))
	assert.Equal(t, ids(c1, c3), f.likedMembers(t))

	require.NoError(t, f.service.UpdateCompanies(ctx, f.tech.ID, req))
	assert.Equal(t, ids(c2), f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_LikedOnlyRemoves(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	c1, c2, c3 := f.companies[0], f.companies[1], f.companies[2]
	f.db.AddMembers(t, f.liked.ID, c1)

	err := f.service.UpdateCompanies(ctx, f.liked.ID, collection.UpdateCompaniesRequest{Companies: ids(c1, c2, c3)})
	require.NoError(t, err)
	assert.Empty(t, f.likedMembers(t))

	err = f.service.UpdateCompanies(ctx, f.liked.ID, collection.UpdateCompaniesRequest{Companies: ids(c2, c3)})
	require.NoError(t, err)
	assert.Empty(t, f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_TargetCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	c1, c2 := f.companies[0], f.companies[1]
	f.db.AddMembers(t, f.tech.ID, c1)

	err := f.service.UpdateCompanies(ctx, f.tech.ID, collection.UpdateCompaniesRequest{Companies: ids(c1, c2)})
	require.NoError(t, err)

	assert.Equal(t, ids(c1), f.db.Members(t, f.tech.ID))
	assert.Equal(t, ids(c1, c2), f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_UnknownAndDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	c1 := f.companies[0]

	err := f.service.UpdateCompanies(ctx, f.tech.ID, collection.UpdateCompaniesRequest{Companies: ids(c1, c1, 9999, -1)})
	require.NoError(t, err)
	assert.Equal(t, ids(c1), f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_LargeIDList(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)

	requested := append([]int64{}, f.companies...)
	for id := int64(1000); id < 40000; id++ {
		requested = append(requested, id)
	}

	err := f.service.UpdateCompanies(ctx, f.tech.ID, collection.UpdateCompaniesRequest{Companies: requested})
	require.NoError(t, err)
	assert.Equal(t, f.companies, f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_EmptyListIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	f.db.AddMembers(t, f.liked.ID, f.companies[0])

	err := f.service.UpdateCompanies(ctx, f.tech.ID, collection.UpdateCompaniesRequest{Companies: []int64{}})
	require.NoError(t, err)
	assert.Equal(t, ids(f.companies[0]), f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	f.db.AddMembers(t, f.liked.ID, f.companies[0])

	err := f.service.UpdateCompanies(ctx, missingCollectionID, collection.UpdateCompaniesRequest{Companies: f.companies})
	assert.ErrorIs(t, err, collection.ErrCollectionNotFound)
	assert.NotErrorIs(t, err, collection.ErrMembershipUpdateFailed)
	assert.Equal(t, ids(f.companies[0]), f.likedMembers(t))
}

func TestCollectionService_UpdateCompanies_MissingCompanies(t *testing.T) {
	f := newCollectionFixture(t)

	err := f.service.UpdateCompanies(context.Background(), f.tech.ID, collection.UpdateCompaniesRequest{})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "companies")
}

func TestCollectionService_UpdateCompanies_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	c1, c2, c3 := f.companies[0], f.companies[1], f.companies[2]
	f.db.AddMembers(t, f.liked.ID, c2)

	svc := f.newService(t, &failingMembershipRepository{MembershipRepository: f.db.Memberships, allowedAdds: 1})

	// c1 is added, c2 removed, then adding c3 fails.
	err := svc.UpdateCompanies(ctx, f.tech.ID, collection.UpdateCompaniesRequest{Companies: ids(c1, c2, c3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, collection.ErrMembershipUpdateFailed)
	assert.ErrorIs(t, err, errStoreUnavailable)

	assert.Equal(t, ids(c2), f.likedMembers(t))
}

// ===== TOGGLE ALL =====

func TestCollectionService_UpdateAllCompanies_AddAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	f.db.AddMembers(t, f.liked.ID, f.companies[1])

	req := collection.UpdateAllCompaniesRequest{UpdateAll: boolPtr(true)}

	require.NoError(t, f.service.UpdateAllCompanies(ctx, f.tech.ID, req))
	assert.Equal(t, f.companies, f.likedMembers(t))

	require.NoError(t, f.service.UpdateAllCompanies(ctx, f.tech.ID, req))
	assert.Equal(t, f.companies, f.likedMembers(t))
	assert.Empty(t, f.db.Members(t, f.tech.ID))
}

func TestCollectionService_UpdateAllCompanies_ClearsLiked(t *testing.T) {
	cases := []struct {
		name      string
		updateAll bool
		onLiked   bool
	}{
		{"other collection, update_all false", false, false},
		{"liked collection, update_all false", false, true},
		{"liked collection, update_all true", true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newCollectionFixture(t)
			f.db.AddMembers(t, f.liked.ID, f.companies...)
			f.db.AddMembers(t, f.tech.ID, f.companies[0])

			target := f.tech.ID
			if tc.onLiked {
				target = f.liked.ID
			}

			err := f.service.UpdateAllCompanies(ctx, target, collection.UpdateAllCompaniesRequest{UpdateAll: boolPtr(tc.updateAll)})
			require.NoError(t, err)
			assert.Empty(t, f.likedMembers(t))
			assert.Equal(t, ids(f.companies[0]), f.db.Members(t, f.tech.ID))
		})
	}
}

func TestCollectionService_UpdateAllCompanies_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	f.db.AddMembers(t, f.liked.ID, f.companies[0])

	err := f.service.UpdateAllCompanies(ctx, missingCollectionID, collection.UpdateAllCompaniesRequest{UpdateAll: boolPtr(false)})
	assert.ErrorIs(t, err, collection.ErrCollectionNotFound)
	assert.Equal(t, ids(f.companies[0]), f.likedMembers(t))
}

func TestCollectionService_UpdateAllCompanies_MissingFlag(t *testing.T) {
	f := newCollectionFixture(t)

	err := f.service.UpdateAllCompanies(context.Background(), f.tech.ID, collection.UpdateAllCompaniesRequest{})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "update_all")
}

func TestCollectionService_UpdateAllCompanies_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	f.db.AddMembers(t, f.liked.ID, f.companies[0], f.companies[2])

	svc := f.newService(t, &failingMembershipRepository{MembershipRepository: f.db.Memberships})

	err := svc.UpdateAllCompanies(ctx, f.tech.ID, collection.UpdateAllCompaniesRequest{UpdateAll: boolPtr(false)})
	assert.ErrorIs(t, err, collection.ErrMembershipUpdateFailed)
	assert.Equal(t, ids(f.companies[0], f.companies[2]), f.likedMembers(t))

	err = svc.UpdateAllCompanies(ctx, f.tech.ID, collection.UpdateAllCompaniesRequest{UpdateAll: boolPtr(true)})
	assert.ErrorIs(t, err, collection.ErrMembershipUpdateFailed)
	assert.Equal(t, ids(f.companies[0], f.companies[2]), f.likedMembers(t))
}

// ===== READ PATH =====

func TestCollectionService_List(t *testing.T) {
	f := newCollectionFixture(t)

	collections, err := f.service.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []collection.CollectionMetadataResponse{
		{ID: f.liked.ID, Name: "Liked Companies"},
		{ID: f.tech.ID, Name: "Tech"},
	}, collections)
}

func TestCollectionService_GetByID_Paginates(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)
	c1, c2, c3 := f.companies[0], f.companies[1], f.companies[2]
	f.db.AddMembers(t, f.tech.ID, c1, c2, c3)
	f.db.AddMembers(t, f.liked.ID, c2)

	got, err := f.service.GetByID(ctx, f.tech.ID, pagination.PageRequest{Offset: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, f.tech.ID, got.ID)
	assert.Equal(t, "Tech", got.Name)
	assert.Equal(t, int64(3), got.Total)
	require.Len(t, got.Companies, 2)
	assert.Equal(t, c2, got.Companies[0].ID)
	assert.Equal(t, "Cedar Health", got.Companies[0].Name)
	assert.True(t, got.Companies[0].Liked)
	assert.Equal(t, c3, got.Companies[1].ID)
	assert.False(t, got.Companies[1].Liked)

	first, err := f.service.GetByID(ctx, f.tech.ID, pagination.PageRequest{Offset: 0, Limit: 1})
	require.NoError(t, err)
	require.Len(t, first.Companies, 1)
	assert.Equal(t, c1, first.Companies[0].ID)
	assert.Equal(t, int64(3), first.Total)
}

func TestCollectionService_GetByID_Empty(t *testing.T) {
	f := newCollectionFixture(t)

	got, err := f.service.GetByID(context.Background(), f.liked.ID, pagination.Default())
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Total)
	assert.NotNil(t, got.Companies)
	assert.Empty(t, got.Companies)
}

func TestCollectionService_GetByID_NotFound(t *testing.T) {
	f := newCollectionFixture(t)

	_, err := f.service.GetByID(context.Background(), missingCollectionID, pagination.Default())
	assert.ErrorIs(t, err, collection.ErrCollectionNotFound)
}

func TestCollectionService_GetByID_InvalidPage(t *testing.T) {
	f := newCollectionFixture(t)

	_, err := f.service.GetByID(context.Background(), f.tech.ID, pagination.PageRequest{Offset: -1, Limit: 0})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 2)
}

// ===== LIKED RESOLUTION =====

func TestResolveLikedCollection(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)

	byName, err := ResolveLikedCollection(ctx, f.db.Collections, "", "Liked Companies")
	require.NoError(t, err)
	assert.Equal(t, f.liked.ID, byName.ID)
	assert.True(t, byName.Is(f.liked.ID))
	assert.False(t, byName.Is(f.tech.ID))

	byID, err := ResolveLikedCollection(ctx, f.db.Collections, f.tech.ID, "Liked Companies")
	require.NoError(t, err)
	assert.Equal(t, f.tech.ID, byID.ID)

	_, err = ResolveLikedCollection(ctx, f.db.Collections, "", "Favourites")
	assert.ErrorIs(t, err, collection.ErrLikedCollectionNotFound)

	_, err = ResolveLikedCollection(ctx, f.db.Collections, missingCollectionID, "")
	assert.ErrorIs(t, err, collection.ErrLikedCollectionNotFound)
}
